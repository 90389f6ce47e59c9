package validate

import (
	"fmt"
	"strings"

	"github.com/joseph-ayodele/catalog-normalizer/internal/record"
)

// listFields are the free-text collections cleaned of empty elements.
var listFields = []string{"features", "options"}

// CleanLists removes falsy and whitespace-only elements from the features and
// options lists, nulling a list that loses every element.
func CleanLists(model record.Record, fileName, modelName string) []string {
	var issues []string

	for _, field := range listFields {
		raw, ok := model[field]
		if !ok || raw == nil {
			continue
		}
		list, ok := raw.([]any)
		if !ok || len(list) == 0 {
			continue
		}

		var cleaned []any
		for _, item := range list {
			if keepListElement(item) {
				cleaned = append(cleaned, item)
			}
		}

		removed := len(list) - len(cleaned)
		if removed > 0 {
			issues = append(issues, ctxIssue(fmt.Sprintf("Removed %d empty %s(s)", removed, strings.TrimSuffix(field, "s")), fileName, modelName))
		}
		if len(cleaned) == 0 {
			model[field] = nil
		} else {
			model[field] = cleaned
		}
	}

	return issues
}

// keepListElement keeps truthy elements whose text form is not blank.
func keepListElement(item any) bool {
	switch v := item.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case bool:
		return v
	case float64:
		return v != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}
