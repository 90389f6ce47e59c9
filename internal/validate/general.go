// Package validate holds the per-field rules for the general metadata block,
// the media collections, the free-text lists, and the spec sections. Every
// validator mutates the record in place and returns the human-readable issues
// it fixed, each tagged with its file and model context.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/catalog-normalizer/constants"
	"github.com/joseph-ayodele/catalog-normalizer/internal/namesvc"
	"github.com/joseph-ayodele/catalog-normalizer/internal/textrules"
)

// GeneralValidator validates and formats the general section of a record.
// Model names resolve through the batch-wide cache built by the name
// resolver; the cache is read-only here.
type GeneralValidator struct {
	Names namesvc.NameMap
}

// Validate runs every general-section rule in order. Missing required fields
// are injected (null, or 0 for msrp) before the per-field checks.
func (v *GeneralValidator) Validate(general map[string]any, fileName, modelName string) []string {
	var issues []string

	for _, field := range constants.RequiredGeneralFields {
		if _, ok := general[field]; !ok {
			issues = append(issues, ctxIssue(fmt.Sprintf("Missing required field '%s' in general section", field), fileName, modelName))
			if field == "msrp" {
				general[field] = 0
			} else {
				general[field] = nil
			}
		}
	}

	issues = append(issues, v.formatTextFields(general, fileName, modelName)...)
	issues = append(issues, validateYear(general, fileName, modelName)...)
	issues = append(issues, validateMSRP(general, fileName, modelName)...)
	issues = append(issues, validateCountries(general, fileName, modelName)...)

	return issues
}

// formatTextFields capitalizes manufacturer/category/subcategory and resolves
// the model name through the cache. description is intentionally untouched.
func (v *GeneralValidator) formatTextFields(general map[string]any, fileName, modelName string) []string {
	var issues []string

	for _, field := range []string{"manufacturer", "category", "subcategory"} {
		val, ok := general[field].(string)
		if !ok || val == "" {
			continue
		}
		formatted := textrules.CapitalizeWords(val)
		if formatted != val {
			general[field] = formatted
			issues = append(issues, ctxIssue(fmt.Sprintf("Formatted %s: '%s' → '%s'", field, val, formatted), fileName, modelName))
		}
	}

	if name, ok := general["model"].(string); ok && name != "" {
		if resolved, ok := v.Names[name]; ok && resolved != name {
			general["model"] = resolved
			issues = append(issues, ctxIssue(fmt.Sprintf("Formatted model: '%s' → '%s'", name, resolved), fileName, modelName))
		}
	}

	return issues
}

// validateYear coerces a present, non-integer year to an integer, or nulls it
// when the value cannot be interpreted as one.
func validateYear(general map[string]any, fileName, modelName string) []string {
	var issues []string

	switch year := general["year"].(type) {
	case float64:
		if year == 0 {
			break
		}
		n := int64(year)
		if float64(n) != year {
			issues = append(issues, ctxIssue(fmt.Sprintf("Converted year to integer: %v → %d", year, n), fileName, modelName))
		}
		general["year"] = n
	case string:
		if year == "" {
			break
		}
		n, err := strconv.ParseInt(strings.TrimSpace(year), 10, 64)
		if err != nil {
			issues = append(issues, ctxIssue(fmt.Sprintf("Invalid year value '%s', setting to null", year), fileName, modelName))
			general["year"] = nil
			break
		}
		issues = append(issues, ctxIssue(fmt.Sprintf("Converted year to integer: %s → %d", year, n), fileName, modelName))
		general["year"] = n
	case nil, int, int64:
		// already normalized (or injected null)
	default:
		issues = append(issues, ctxIssue(fmt.Sprintf("Invalid year value '%v', setting to null", year), fileName, modelName))
		general["year"] = nil
	}

	return issues
}

// validateMSRP coerces msrp to a non-negative number: strings lose thousands
// separators and parse decimally, integral values demote to int64, anything
// unusable becomes 0.
func validateMSRP(general map[string]any, fileName, modelName string) []string {
	var issues []string

	raw, ok := general["msrp"]
	if !ok {
		return issues
	}

	switch msrp := raw.(type) {
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(msrp, ",", ""))
		if s == "" {
			general["msrp"] = 0
			break
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			issues = append(issues, ctxIssue(fmt.Sprintf("Invalid MSRP value '%s', setting to 0", msrp), fileName, modelName))
			general["msrp"] = 0
			break
		}
		general["msrp"] = demote(d)
		issues = append(issues, ctxIssue(fmt.Sprintf("Formatted MSRP: %v", general["msrp"]), fileName, modelName))
	case nil:
		general["msrp"] = 0
	case float64:
		if msrp < 0 {
			issues = append(issues, ctxIssue(fmt.Sprintf("Negative MSRP value %v, setting to 0", msrp), fileName, modelName))
			general["msrp"] = 0
		}
	case int, int64:
		// already numeric
	default:
		issues = append(issues, ctxIssue(fmt.Sprintf("Invalid MSRP value '%v', setting to 0", msrp), fileName, modelName))
		general["msrp"] = 0
	}

	// string parses can also come out negative
	switch n := general["msrp"].(type) {
	case float64:
		if n < 0 {
			issues = append(issues, ctxIssue(fmt.Sprintf("Negative MSRP value %v, setting to 0", n), fileName, modelName))
			general["msrp"] = 0
		}
	case int64:
		if n < 0 {
			issues = append(issues, ctxIssue(fmt.Sprintf("Negative MSRP value %d, setting to 0", n), fileName, modelName))
			general["msrp"] = 0
		}
	}

	return issues
}

// demote turns an integral decimal into int64, keeping float64 otherwise.
func demote(d decimal.Decimal) any {
	if d.IsInteger() {
		return d.IntPart()
	}
	return d.InexactFloat64()
}

// validateCountries filters countries down to the valid set, defaulting to the
// full set whenever the field is missing, malformed, or filters to nothing.
func validateCountries(general map[string]any, fileName, modelName string) []string {
	var issues []string

	list, ok := general["countries"].([]any)
	if !ok || len(list) == 0 {
		general["countries"] = defaultCountries()
		issues = append(issues, ctxIssue(fmt.Sprintf("Empty or invalid countries, set to default %v", constants.ValidCountries), fileName, modelName))
		return issues
	}

	var filtered []any
	var removed []any
	for _, c := range list {
		if s, ok := c.(string); ok && isValidCountry(s) {
			filtered = append(filtered, c)
		} else {
			removed = append(removed, c)
		}
	}

	switch {
	case len(filtered) == 0:
		general["countries"] = defaultCountries()
		issues = append(issues, ctxIssue(fmt.Sprintf("No valid countries found, set to default %v", constants.ValidCountries), fileName, modelName))
	case len(removed) > 0:
		general["countries"] = filtered
		issues = append(issues, ctxIssue(fmt.Sprintf("Removed invalid countries %v", removed), fileName, modelName))
	}

	return issues
}

func isValidCountry(c string) bool {
	for _, v := range constants.ValidCountries {
		if c == v {
			return true
		}
	}
	return false
}

func defaultCountries() []any {
	out := make([]any, len(constants.ValidCountries))
	for i, c := range constants.ValidCountries {
		out[i] = c
	}
	return out
}

// ctxIssue tags an issue with its file and model context. The report builder
// strips this suffix when rendering.
func ctxIssue(msg, fileName, modelName string) string {
	return fmt.Sprintf("%s in %s - %s", msg, fileName, modelName)
}
