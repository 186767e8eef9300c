// Package classifier maps normalized clinical text to clinical categories
// using Aho-Corasick keyword matching for a single O(n+m) pass over the text.
package classifier

import (
	"github.com/cloudflare/ahocorasick"

	"medcoder/internal/domain"
)

// KeywordRule binds a clinical category to the phrases that activate it.
// A category is active for a text when at least one of its phrases occurs
// as a substring of the normalized text.
type KeywordRule struct {
	Category domain.Category
	Phrases  []string
}

// Classifier assigns categories to normalized clinical text. It is immutable
// after construction and safe for concurrent use without locking.
type Classifier struct {
	matcher *ahocorasick.Matcher
	// phraseCategory[i] is the category of the i-th phrase fed to the matcher.
	phraseCategory []domain.Category
}

// New builds a classifier from the given rules. Phrases are normalized the
// same way input text is, so matching is case- and whitespace-insensitive.
func New(rules []KeywordRule) *Classifier {
	var phrases []string
	var categories []domain.Category
	for _, rule := range rules {
		for _, phrase := range rule.Phrases {
			normalized := domain.Normalize(phrase)
			if normalized == "" {
				continue
			}
			phrases = append(phrases, normalized)
			categories = append(categories, rule.Category)
		}
	}

	c := &Classifier{phraseCategory: categories}
	if len(phrases) > 0 {
		c.matcher = ahocorasick.NewStringMatcher(phrases)
	}
	return c
}

// Categories returns the set of categories active for the normalized text,
// ordered per domain.Categories for determinism. The result is never empty:
// when no rule matches, it is exactly {General}. Classification depends only
// on the text; it is pure and total.
func (c *Classifier) Categories(normalized string) []domain.Category {
	active := make(map[domain.Category]bool)

	if c.matcher != nil {
		// Match mutates matcher-internal counters; MatchThreadSafe is the
		// variant safe for concurrent requests.
		for _, hit := range c.matcher.MatchThreadSafe([]byte(normalized)) {
			if hit < len(c.phraseCategory) {
				active[c.phraseCategory[hit]] = true
			}
		}
	}

	if len(active) == 0 {
		return []domain.Category{domain.CategoryGeneral}
	}

	result := make([]domain.Category, 0, len(active))
	for _, cat := range domain.Categories {
		if active[cat] {
			result = append(result, cat)
		}
	}
	return result
}
