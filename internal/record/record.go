// Package record models the raw vendor payloads flowing through the pipeline.
// Field presence and types are unpredictable, so every access is a checked,
// defaultable lookup.
package record

import "github.com/joseph-ayodele/catalog-normalizer/constants"

// Record is one product model's JSON mapping.
type Record map[string]any

// Input is one parsed JSON payload paired with its source file name. The
// payload is either a single record mapping or a sequence of them.
type Input struct {
	Value    any
	FileName string
}

// IsList reports whether the payload is a sequence of records.
func (in Input) IsList() bool {
	_, ok := in.Value.([]any)
	return ok
}

// Items returns the payload as individual raw values: the elements of a
// sequence payload, or the payload itself as a one-element slice.
func (in Input) Items() []any {
	if list, ok := in.Value.([]any); ok {
		return list
	}
	return []any{in.Value}
}

// AsRecord converts a raw value to a Record, reporting whether it is a JSON
// object at all.
func AsRecord(v any) (Record, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Record(m), true
}

// General returns the record's general section when it is present and shaped
// as a mapping.
func (r Record) General() (map[string]any, bool) {
	g, ok := r["general"].(map[string]any)
	return g, ok
}

// ModelName extracts the record's identity from general.model, falling back
// to the default when absent or malformed.
func (r Record) ModelName() string {
	if g, ok := r.General(); ok {
		if name, ok := g["model"].(string); ok && name != "" {
			return name
		}
	}
	return constants.DefaultModelName
}

// CollectModelNames gathers every non-empty general.model string from a raw
// payload, in order.
func CollectModelNames(v any) []string {
	var names []string
	collect := func(item any) {
		rec, ok := AsRecord(item)
		if !ok {
			return
		}
		g, ok := rec.General()
		if !ok {
			return
		}
		if name, ok := g["model"].(string); ok && name != "" {
			names = append(names, name)
		}
	}

	if list, ok := v.([]any); ok {
		for _, item := range list {
			collect(item)
		}
	} else {
		collect(v)
	}
	return names
}
