package namesvc

import "context"

// Completer issues one structured call to the external text-completion
// service, correcting the casing of a chunk of model names. The returned
// slice must pair with the input by position; the resolver rejects any
// response whose length differs from the input.
type Completer interface {
	CompleteNames(ctx context.Context, names []string, apiKey string) ([]string, error)
}

// NameMap maps raw model names to their normalized forms.
type NameMap map[string]string

// Identity returns the fallback mapping where every name maps to itself.
func Identity(names []string) NameMap {
	m := make(NameMap, len(names))
	for _, n := range names {
		m[n] = n
	}
	return m
}
