package normalize

// StripEmpty walks a decoded JSON value depth-first and removes null values,
// empty strings, and empty sequences. keepEmpty names the fields whose empty
// strings survive. A sequence that loses every element collapses to nil
// rather than an empty slice; mappings may legitimately end up empty.
func StripEmpty(v any, keepEmpty map[string]struct{}) any {
	switch node := v.(type) {
	case map[string]any:
		cleaned := make(map[string]any, len(node))
		for k, child := range node {
			if s, ok := child.(string); ok && s == "" {
				if _, exempt := keepEmpty[k]; exempt {
					cleaned[k] = s
				}
				continue
			}
			if child == nil || isEmptySlice(child) {
				continue
			}
			if walked := StripEmpty(child, keepEmpty); walked != nil {
				cleaned[k] = walked
			}
		}
		return cleaned
	case []any:
		var cleaned []any
		for _, child := range node {
			if child == nil || isEmptySlice(child) {
				continue
			}
			if s, ok := child.(string); ok && s == "" {
				continue
			}
			if walked := StripEmpty(child, keepEmpty); walked != nil {
				cleaned = append(cleaned, walked)
			}
		}
		if len(cleaned) == 0 {
			return nil
		}
		return cleaned
	default:
		return v
	}
}

func isEmptySlice(v any) bool {
	s, ok := v.([]any)
	return ok && len(s) == 0
}
