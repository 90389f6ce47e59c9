// Package normalize orchestrates per-record normalization: structural
// validation, text rules, name-cache resolution, null stripping, and report
// accumulation.
package normalize

import (
	"fmt"
	"log/slog"

	"github.com/joseph-ayodele/catalog-normalizer/constants"
	"github.com/joseph-ayodele/catalog-normalizer/internal/namesvc"
	"github.com/joseph-ayodele/catalog-normalizer/internal/record"
	"github.com/joseph-ayodele/catalog-normalizer/internal/report"
	"github.com/joseph-ayodele/catalog-normalizer/internal/validate"
)

// Normalizer runs the per-record pipeline for one batch. The name cache must
// be fully built before the first record is processed; it is read-only here.
type Normalizer struct {
	logger  *slog.Logger
	report  *report.Report
	general *validate.GeneralValidator
	media   validate.MediaValidator
}

func NewNormalizer(names namesvc.NameMap, rep *report.Report, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	if rep == nil {
		rep = report.NewReport()
	}
	return &Normalizer{
		logger:  logger,
		report:  rep,
		general: &validate.GeneralValidator{Names: names},
	}
}

// Report exposes the accumulating batch report.
func (n *Normalizer) Report() *report.Report {
	return n.report
}

// ProcessInput normalizes one payload (a single record or a list of records),
// returning the cleaned records. A record that fails is excluded from the
// output; the rest of the payload is unaffected.
func (n *Normalizer) ProcessInput(in record.Input) []record.Record {
	items := in.Items()
	n.report.TotalModels += len(items)

	var cleaned []record.Record
	for _, item := range items {
		if out, ok := n.processOne(item, in.FileName); ok {
			cleaned = append(cleaned, out)
		}
	}
	return cleaned
}

// processOne runs the full pipeline for one raw value. Any panic inside the
// validators is demoted to a record failure so the batch keeps going.
func (n *Normalizer) processOne(raw any, fileName string) (out record.Record, ok bool) {
	modelName := constants.DefaultModelName

	defer func() {
		if r := recover(); r != nil {
			n.fail(fileName, modelName, fmt.Sprintf("%v", r))
			out, ok = nil, false
		}
	}()

	rec, isRecord := record.AsRecord(raw)
	if !isRecord {
		n.fail(fileName, modelName, "record is not a JSON object")
		return nil, false
	}
	modelName = rec.ModelName()

	if general, hasGeneral := rec.General(); hasGeneral {
		for _, issue := range n.general.Validate(general, fileName, modelName) {
			n.report.AddIssue(modelName, issue)
		}
		// identity may have changed after name-cache resolution
		modelName = rec.ModelName()
	} else {
		n.report.AddIssue(modelName, fmt.Sprintf("Missing 'general' section in %s", fileName))
	}

	var issues []string
	issues = append(issues, n.media.ValidateImages(rec, fileName, modelName)...)
	issues = append(issues, n.media.ValidateVideos(rec, fileName, modelName)...)
	issues = append(issues, n.media.ValidateAttachments(rec, fileName, modelName)...)
	issues = append(issues, validate.CleanLists(rec, fileName, modelName)...)
	issues = append(issues, validate.FormatSpecs(rec, fileName, modelName)...)
	for _, issue := range issues {
		n.report.AddIssue(modelName, issue)
	}

	stripped, isMap := StripEmpty(map[string]any(rec), constants.EmptyExemptFields).(map[string]any)
	if !isMap {
		n.fail(fileName, modelName, "record stripped to a non-object")
		return nil, false
	}

	n.report.ProcessedModels++
	return record.Record(stripped), true
}

func (n *Normalizer) fail(fileName, modelName, cause string) {
	msg := fmt.Sprintf("Error processing model in %s - %s: %s", fileName, modelName, cause)
	n.logger.Error("normalize.record.failed", "file", fileName, "model", modelName, "cause", cause)
	n.report.AddError(msg)
	n.report.FailedModels++
}
