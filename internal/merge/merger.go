// Package merge combines many JSON payloads into one flat record list.
package merge

import "github.com/joseph-ayodele/catalog-normalizer/internal/record"

// Merge flattens every payload into a single ordered record list: sequence
// payloads contribute their elements, single objects are appended as-is.
// Non-object elements are dropped and counted.
func Merge(inputs []record.Input) ([]record.Record, int) {
	var merged []record.Record
	skipped := 0
	for _, in := range inputs {
		for _, item := range in.Items() {
			rec, ok := record.AsRecord(item)
			if !ok {
				skipped++
				continue
			}
			merged = append(merged, rec)
		}
	}
	return merged, skipped
}
