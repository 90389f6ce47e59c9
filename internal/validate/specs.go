package validate

import (
	"fmt"

	"github.com/joseph-ayodele/catalog-normalizer/constants"
	"github.com/joseph-ayodele/catalog-normalizer/internal/record"
	"github.com/joseph-ayodele/catalog-normalizer/internal/textrules"
)

// FormatSpecs normalizes every fixed spec section present on the record: unit
// abbreviations in entry descriptions, and entry keys rewritten to camelCase.
// Entries not shaped as {label, desc, ...} pass through under their original
// key. A section left empty becomes null.
func FormatSpecs(model record.Record, fileName, modelName string) []string {
	var issues []string

	for _, section := range constants.SpecSections {
		raw, ok := model[section]
		if !ok || raw == nil {
			continue
		}
		entries, ok := raw.(map[string]any)
		if !ok || len(entries) == 0 {
			continue
		}

		formatted := make(map[string]any, len(entries))
		for key, value := range entries {
			entry, ok := value.(map[string]any)
			if !ok {
				formatted[key] = value
				continue
			}
			_, hasLabel := entry["label"]
			_, hasDesc := entry["desc"]
			if !hasLabel || !hasDesc {
				formatted[key] = value
				continue
			}

			if desc, ok := entry["desc"].(string); ok && desc != "" {
				normalized := textrules.NormalizeUnits(desc)
				if normalized != desc {
					entry["desc"] = normalized
					issues = append(issues, ctxIssue(fmt.Sprintf("Normalized units in %s.%s", section, key), fileName, modelName))
				}
			}

			formatted[textrules.ToCamelCase(key)] = entry
		}

		if len(formatted) == 0 {
			model[section] = nil
		} else {
			model[section] = formatted
		}
	}

	return issues
}
