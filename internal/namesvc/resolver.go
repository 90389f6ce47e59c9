package namesvc

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/joseph-ayodele/catalog-normalizer/internal/keypool"
	"github.com/joseph-ayodele/catalog-normalizer/internal/record"
)

// DefaultChunkSize is how many unique names go into one service call.
const DefaultChunkSize = 30

// Resolver builds the batch-wide name cache: it collects every model name
// across an upload, deduplicates preserving first-seen order, and resolves
// fixed-size chunks through the external service with key rotation. Chunks
// are independent; a failed chunk degrades to identity without affecting the
// others.
type Resolver struct {
	completer Completer
	keys      *keypool.Manager
	chunkSize int
	logger    *slog.Logger

	fallbackChunks int
}

// NewResolver wires a resolver. A nil keys manager (no credentials
// configured) disables external calls entirely; every name then resolves to
// itself.
func NewResolver(completer Completer, keys *keypool.Manager, chunkSize int, logger *slog.Logger) *Resolver {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		completer: completer,
		keys:      keys,
		chunkSize: chunkSize,
		logger:    logger,
	}
}

// FallbackChunks reports how many chunks fell back to identity mapping after
// exhausting every credential.
func (r *Resolver) FallbackChunks() int {
	return r.fallbackChunks
}

// ResolveAll builds the name cache for a whole batch of inputs. The returned
// mapping covers every unique name; it is complete before any per-record
// normalization should begin.
func (r *Resolver) ResolveAll(ctx context.Context, inputs []record.Input) NameMap {
	var all []string
	for _, in := range inputs {
		all = append(all, record.CollectModelNames(in.Value)...)
	}
	unique := dedupe(all)
	if len(unique) == 0 {
		return NameMap{}
	}

	if r.keys == nil || r.completer == nil {
		r.logger.Warn("namesvc.resolve.disabled", "unique_names", len(unique))
		return Identity(unique)
	}

	totalChunks := (len(unique) + r.chunkSize - 1) / r.chunkSize
	r.logger.Info("namesvc.resolve.start",
		"unique_names", len(unique),
		"chunks", totalChunks,
		"chunk_size", r.chunkSize,
	)

	start := time.Now()
	cache := make(NameMap, len(unique))
	for i := 0; i < len(unique); i += r.chunkSize {
		end := i + r.chunkSize
		if end > len(unique) {
			end = len(unique)
		}
		chunk := unique[i:end]
		chunkNum := i/r.chunkSize + 1

		resolved := r.resolveChunk(ctx, chunk, chunkNum, totalChunks)
		for k, v := range resolved {
			cache[k] = v
		}
	}

	r.logger.Info("namesvc.resolve.ok",
		"unique_names", len(unique),
		"chunks", totalChunks,
		"fallback_chunks", r.fallbackChunks,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return cache
}

// resolveChunk runs the retry protocol for one chunk: try each credential at
// most once, rotating on every failure, and give up into identity mapping
// once the pool is exhausted.
func (r *Resolver) resolveChunk(ctx context.Context, names []string, chunkNum, totalChunks int) NameMap {
	tried := make(map[string]struct{}, r.keys.Len())

	for attempt := 0; attempt < r.keys.Len(); attempt++ {
		key := r.keys.Current()
		keyNum := r.keys.CurrentIndex()

		if _, seen := tried[key]; seen {
			r.keys.RecordFailure()
			continue
		}
		tried[key] = struct{}{}

		r.logger.Info("namesvc.chunk.call",
			"chunk", chunkNum, "total_chunks", totalChunks,
			"names", len(names), "key_number", keyNum,
		)

		result, err := r.completer.CompleteNames(ctx, names, key)
		if err != nil {
			r.logger.Warn("namesvc.chunk.call_failed",
				"chunk", chunkNum, "key_number", keyNum,
				"kind", classifyFailure(err), "error", err,
			)
			r.keys.RecordFailure()
			continue
		}
		if len(result) != len(names) {
			r.logger.Warn("namesvc.chunk.length_mismatch",
				"chunk", chunkNum, "key_number", keyNum,
				"want", len(names), "got", len(result),
			)
			r.keys.RecordFailure()
			continue
		}

		r.keys.RecordSuccess()
		status := r.keys.Status()
		r.logger.Info("namesvc.chunk.ok",
			"chunk", chunkNum, "key_number", keyNum,
			"calls_with_key", status.CallsWithCurrentKey,
			"max_calls_per_key", status.MaxCallsPerKey,
		)

		mapping := make(NameMap, len(names))
		for i, name := range names {
			mapping[name] = result[i]
		}
		return mapping
	}

	r.fallbackChunks++
	r.logger.Warn("namesvc.chunk.exhausted",
		"chunk", chunkNum, "names", len(names),
		"hint", "all API keys exhausted; using original names for this chunk",
	)
	return Identity(names)
}

// classifyFailure buckets a call error for logging.
func classifyFailure(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota") || strings.Contains(msg, "exhausted"):
		return "quota"
	case strings.Contains(msg, "429"):
		return "rate_limit"
	default:
		return "other"
	}
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var out []string
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
