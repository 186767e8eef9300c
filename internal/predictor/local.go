// Package predictor provides the deterministic local fallback predictor.
package predictor

import (
	"medcoder/internal/classifier"
	"medcoder/internal/domain"
	"medcoder/internal/knowledge"
)

// Local composes the category classifier and the code knowledge base into
// the guaranteed fallback prediction function. It is pure, deterministic,
// and total: the same text always produces the same non-empty result.
type Local struct {
	classifier *classifier.Classifier
	base       *knowledge.Base
}

// NewLocal creates the local predictor.
func NewLocal(c *classifier.Classifier, base *knowledge.Base) *Local {
	return &Local{classifier: c, base: base}
}

// Predict normalizes the text, classifies it, and returns the ranked code
// candidates for the active categories. Never fails: when nothing matches,
// the general category's defaults are returned.
func (l *Local) Predict(text string) domain.PredictionResult {
	normalized := domain.Normalize(text)
	categories := l.classifier.Categories(normalized)
	return l.base.CodesFor(categories)
}
