package namesvc

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/catalog-normalizer/internal/keypool"
	"github.com/joseph-ayodele/catalog-normalizer/internal/record"
)

// fakeCompleter scripts per-call outcomes and records what it was asked.
type fakeCompleter struct {
	calls     int
	seenKeys  []string
	seenNames [][]string
	respond   func(call int, names []string, apiKey string) ([]string, error)
}

func (f *fakeCompleter) CompleteNames(_ context.Context, names []string, apiKey string) ([]string, error) {
	f.calls++
	f.seenKeys = append(f.seenKeys, apiKey)
	f.seenNames = append(f.seenNames, names)
	return f.respond(f.calls, names, apiKey)
}

func upperAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.ToUpper(n)
	}
	return out
}

func inputsFor(names ...string) []record.Input {
	var items []any
	for _, n := range names {
		items = append(items, map[string]any{"general": map[string]any{"model": n}})
	}
	return []record.Input{{Value: items, FileName: "batch.json"}}
}

func newKeys(t *testing.T, keys ...string) *keypool.Manager {
	t.Helper()
	m, err := keypool.NewManager(keys, 15)
	require.NoError(t, err)
	return m
}

func TestResolveAllSuccess(t *testing.T) {
	fake := &fakeCompleter{respond: func(_ int, names []string, _ string) ([]string, error) {
		return upperAll(names), nil
	}}
	r := NewResolver(fake, newKeys(t, "k1"), 30, nil)

	cache := r.ResolveAll(context.Background(), inputsFor("cat 259d", "bobcat s650"))

	assert.Equal(t, NameMap{"cat 259d": "CAT 259D", "bobcat s650": "BOBCAT S650"}, cache)
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, 0, r.FallbackChunks())
}

func TestResolveAllDeduplicates(t *testing.T) {
	fake := &fakeCompleter{respond: func(_ int, names []string, _ string) ([]string, error) {
		return upperAll(names), nil
	}}
	r := NewResolver(fake, newKeys(t, "k1"), 30, nil)

	r.ResolveAll(context.Background(), inputsFor("a", "b", "a", "b", "a"))

	require.Equal(t, 1, fake.calls)
	assert.Equal(t, []string{"a", "b"}, fake.seenNames[0], "duplicates collapse, first-seen order kept")
}

func TestResolveAllChunks(t *testing.T) {
	fake := &fakeCompleter{respond: func(_ int, names []string, _ string) ([]string, error) {
		return upperAll(names), nil
	}}
	r := NewResolver(fake, newKeys(t, "k1"), 2, nil)

	cache := r.ResolveAll(context.Background(), inputsFor("a", "b", "c", "d", "e"))

	assert.Equal(t, 3, fake.calls)
	assert.Len(t, fake.seenNames[0], 2)
	assert.Len(t, fake.seenNames[2], 1)
	assert.Len(t, cache, 5)
}

func TestResolveAllRotatesOnFailure(t *testing.T) {
	fake := &fakeCompleter{respond: func(call int, names []string, _ string) ([]string, error) {
		if call == 1 {
			return nil, fmt.Errorf("quota exceeded")
		}
		return upperAll(names), nil
	}}
	r := NewResolver(fake, newKeys(t, "k1", "k2"), 30, nil)

	cache := r.ResolveAll(context.Background(), inputsFor("a"))

	require.Equal(t, 2, fake.calls)
	assert.Equal(t, []string{"k1", "k2"}, fake.seenKeys)
	assert.Equal(t, NameMap{"a": "A"}, cache)
	assert.Equal(t, 0, r.FallbackChunks())
}

func TestResolveAllLengthMismatchCountsAsFailure(t *testing.T) {
	fake := &fakeCompleter{respond: func(call int, names []string, _ string) ([]string, error) {
		if call == 1 {
			return []string{"only one"}, nil
		}
		return upperAll(names), nil
	}}
	r := NewResolver(fake, newKeys(t, "k1", "k2"), 30, nil)

	cache := r.ResolveAll(context.Background(), inputsFor("a", "b"))

	assert.Equal(t, 2, fake.calls)
	assert.Equal(t, NameMap{"a": "A", "b": "B"}, cache)
}

func TestResolveAllExhaustionFallsBackToIdentity(t *testing.T) {
	fake := &fakeCompleter{respond: func(int, []string, string) ([]string, error) {
		return nil, fmt.Errorf("429 rate limited")
	}}
	r := NewResolver(fake, newKeys(t, "k1", "k2", "k3"), 30, nil)

	cache := r.ResolveAll(context.Background(), inputsFor("cat 259d", "bobcat s650"))

	assert.Equal(t, 3, fake.calls, "each key tried once")
	assert.Equal(t, NameMap{"cat 259d": "cat 259d", "bobcat s650": "bobcat s650"}, cache)
	assert.Equal(t, 1, r.FallbackChunks())
}

func TestResolveAllFailedChunkDoesNotAffectOthers(t *testing.T) {
	fake := &fakeCompleter{respond: func(call int, names []string, _ string) ([]string, error) {
		if names[0] == "a" {
			return nil, fmt.Errorf("boom")
		}
		return upperAll(names), nil
	}}
	r := NewResolver(fake, newKeys(t, "k1"), 1, nil)

	cache := r.ResolveAll(context.Background(), inputsFor("a", "b"))

	assert.Equal(t, NameMap{"a": "a", "b": "B"}, cache)
	assert.Equal(t, 1, r.FallbackChunks())
}

func TestResolveAllDisabledWithoutKeys(t *testing.T) {
	r := NewResolver(nil, nil, 30, nil)

	cache := r.ResolveAll(context.Background(), inputsFor("cat 259d"))

	assert.Equal(t, NameMap{"cat 259d": "cat 259d"}, cache)
	assert.Equal(t, 0, r.FallbackChunks())
}

func TestResolveAllEmptyBatch(t *testing.T) {
	fake := &fakeCompleter{respond: func(int, []string, string) ([]string, error) {
		t.Fatal("no call expected")
		return nil, nil
	}}
	r := NewResolver(fake, newKeys(t, "k1"), 30, nil)

	cache := r.ResolveAll(context.Background(), nil)

	assert.Empty(t, cache)
	assert.Equal(t, 0, fake.calls)
}

func TestBuildPromptNumbersNames(t *testing.T) {
	prompt := BuildPrompt([]string{"cat 259d", "bobcat s650"})

	assert.Contains(t, prompt, "1. cat 259d")
	assert.Contains(t, prompt, "2. bobcat s650")
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildNamesJSONSchema()

	assert.NoError(t, ValidateJSONAgainstSchema(schema, []byte(`{"names":["A","B"]}`)))
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"names":"A"}`)), "names must be an array")
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{}`)), "names is required")
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"names":["A"],"extra":1}`)), "no extra properties")
}
