// Package knowledge holds the static mapping from clinical categories to
// candidate ICD-10/CPT codes with fixed confidence values.
package knowledge

import (
	"fmt"

	"medcoder/internal/domain"
)

// DefaultTopKPerType is the number of candidates kept per code type when no
// limit is configured, matching the documented sample of 5 ICD-10 + 5 CPT.
const DefaultTopKPerType = 5

// Base maps categories to their candidate code predictions. Immutable after
// construction and safe for concurrent use.
type Base struct {
	entries     map[domain.Category][]domain.CodePrediction
	topKPerType int
}

// NewBase builds a knowledge base from per-category candidate lists.
// Every candidate must be structurally valid and General must have a
// non-empty candidate list, since it backs the guaranteed fallback.
func NewBase(entries map[domain.Category][]domain.CodePrediction, topKPerType int) (*Base, error) {
	if topKPerType <= 0 {
		topKPerType = DefaultTopKPerType
	}
	if len(entries[domain.CategoryGeneral]) == 0 {
		return nil, fmt.Errorf("knowledge base must define candidates for the general category")
	}

	copied := make(map[domain.Category][]domain.CodePrediction, len(entries))
	for cat, preds := range entries {
		if !cat.Valid() {
			return nil, fmt.Errorf("unknown category %q in knowledge base", cat)
		}
		for _, p := range preds {
			if err := p.Validate(); err != nil {
				return nil, fmt.Errorf("category %s: %w", cat, err)
			}
		}
		copied[cat] = append([]domain.CodePrediction(nil), preds...)
	}

	return &Base{entries: copied, topKPerType: topKPerType}, nil
}

// CodesFor returns the ranked candidates for the given category set: the
// per-category lists are unioned, deduplicated by (code, type) keeping the
// higher confidence, sorted per the result ordering contract, and truncated
// to top-K per code type. Pure and total.
func (b *Base) CodesFor(categories []domain.Category) domain.PredictionResult {
	var candidates []domain.CodePrediction
	for _, cat := range categories {
		candidates = append(candidates, b.entries[cat]...)
	}

	merged := domain.DedupePredictions(candidates)
	domain.SortPredictions(merged)

	result := make(domain.PredictionResult, 0, len(merged))
	perType := make(map[domain.CodeType]int, 2)
	for _, p := range merged {
		if perType[p.Type] >= b.topKPerType {
			continue
		}
		perType[p.Type]++
		result = append(result, p)
	}
	return result
}
