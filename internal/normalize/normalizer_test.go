package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/catalog-normalizer/internal/namesvc"
	"github.com/joseph-ayodele/catalog-normalizer/internal/record"
	"github.com/joseph-ayodele/catalog-normalizer/internal/report"
)

func messyRecord() map[string]any {
	return map[string]any{
		"general": map[string]any{
			"model":        "cat 259d",
			"manufacturer": "caterpillar",
			"category":     "skid steers",
			"subcategory":  "track loaders",
			"description":  "",
			"year":         "2020",
			"msrp":         "45,000",
			"countries":    []any{"US", "MX"},
		},
		"images":      []any{"https://example.com/1.jpg", "bad url"},
		"attachments": []any{map[string]any{"src": "https://example.com/a.pdf"}},
		"features":    []any{"Backup camera", ""},
		"engine": map[string]any{
			"Rated Horsepower": map[string]any{"label": "Rated Horsepower", "desc": "74 hp"},
		},
		"empty": nil,
	}
}

func TestProcessInput(t *testing.T) {
	rep := report.NewReport()
	n := NewNormalizer(namesvc.NameMap{"cat 259d": "CAT 259D"}, rep, nil)

	cleaned := n.ProcessInput(record.Input{Value: messyRecord(), FileName: "a.json"})

	require.Len(t, cleaned, 1)
	out := cleaned[0]

	general := out["general"].(map[string]any)
	assert.Equal(t, "CAT 259D", general["model"])
	assert.Equal(t, "Caterpillar", general["manufacturer"])
	assert.Equal(t, int64(2020), general["year"])
	assert.Equal(t, int64(45000), general["msrp"])
	assert.Equal(t, []any{"US"}, general["countries"])
	assert.NotContains(t, general, "description", "empty description stripped")

	assert.Len(t, out["images"].([]any), 1)
	att := out["attachments"].([]any)[0].(map[string]any)
	assert.Equal(t, "https://example.com/a.pdf", att["attachmentLocation"])
	assert.Equal(t, "pdf 1", att["attachmentDescription"])

	assert.Equal(t, []any{"Backup camera"}, out["features"])
	assert.Contains(t, out["engine"].(map[string]any), "ratedHorsepower")
	assert.NotContains(t, out, "empty")

	assert.Equal(t, 1, rep.TotalModels)
	assert.Equal(t, 1, rep.ProcessedModels)
	assert.Equal(t, 0, rep.FailedModels)
	assert.Contains(t, rep.IssuesByModel, "CAT 259D", "issues keyed by resolved model name")
}

func TestProcessInputListPayload(t *testing.T) {
	rep := report.NewReport()
	n := NewNormalizer(nil, rep, nil)

	in := record.Input{
		Value:    []any{messyRecord(), messyRecord()},
		FileName: "batch.json",
	}
	cleaned := n.ProcessInput(in)

	assert.Len(t, cleaned, 2)
	assert.Equal(t, 2, rep.TotalModels)
	assert.Equal(t, 2, rep.ProcessedModels)
}

func TestProcessInputMissingGeneral(t *testing.T) {
	rep := report.NewReport()
	n := NewNormalizer(nil, rep, nil)

	in := record.Input{
		Value:    map[string]any{"features": []any{"x"}},
		FileName: "a.json",
	}
	cleaned := n.ProcessInput(in)

	require.Len(t, cleaned, 1, "record without general is still emitted")
	assert.Equal(t, 1, rep.ProcessedModels)

	issues := rep.IssuesByModel["Unknown Model"]
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "Missing 'general' section in a.json")
}

func TestProcessInputNonObjectFails(t *testing.T) {
	rep := report.NewReport()
	n := NewNormalizer(nil, rep, nil)

	in := record.Input{
		Value:    []any{"just a string", messyRecord()},
		FileName: "a.json",
	}
	cleaned := n.ProcessInput(in)

	require.Len(t, cleaned, 1, "bad element skipped, rest of payload survives")
	assert.Equal(t, 2, rep.TotalModels)
	assert.Equal(t, 1, rep.ProcessedModels)
	assert.Equal(t, 1, rep.FailedModels)
	require.Len(t, rep.Errors, 1)
	assert.Contains(t, rep.Errors[0], "Error processing model in a.json")
}

func TestProcessInputIdempotent(t *testing.T) {
	rec := messyRecord()
	rec["general"].(map[string]any)["description"] = "compact track loader"

	n1 := NewNormalizer(namesvc.NameMap{"cat 259d": "CAT 259D"}, report.NewReport(), nil)
	first := n1.ProcessInput(record.Input{Value: rec, FileName: "a.json"})
	require.Len(t, first, 1)

	b1, err := json.Marshal(first[0])
	require.NoError(t, err)

	// feed the cleaned output back through a fresh pipeline
	var again any
	require.NoError(t, json.Unmarshal(b1, &again))

	rep2 := report.NewReport()
	n2 := NewNormalizer(nil, rep2, nil)
	second := n2.ProcessInput(record.Input{Value: again, FileName: "a.json"})
	require.Len(t, second, 1)

	b2, err := json.Marshal(second[0])
	require.NoError(t, err)

	assert.JSONEq(t, string(b1), string(b2))
	assert.Equal(t, 0, rep2.TotalIssues(), "clean input produces no issues")
}
