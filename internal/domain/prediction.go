// Package domain holds the core types shared across the prediction service.
package domain

import (
	"fmt"
	"sort"
)

// CodeType identifies the coding standard a prediction belongs to.
type CodeType string

// Supported code types.
const (
	CodeTypeICD10 CodeType = "ICD-10"
	CodeTypeCPT   CodeType = "CPT"
)

// CodePrediction is a single predicted billing code. Immutable once produced.
type CodePrediction struct {
	Code        string   `json:"code"`
	Type        CodeType `json:"type"`
	Description string   `json:"description"`
	Confidence  float64  `json:"confidence"`
}

// Validate checks the prediction's structural invariants.
func (p CodePrediction) Validate() error {
	if p.Code == "" {
		return fmt.Errorf("prediction has empty code")
	}
	if p.Type != CodeTypeICD10 && p.Type != CodeTypeCPT {
		return fmt.Errorf("prediction %s has unknown code type %q", p.Code, p.Type)
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		return fmt.Errorf("prediction %s has confidence %v outside [0,1]", p.Code, p.Confidence)
	}
	return nil
}

// PredictionResult is an ordered sequence of code predictions:
// confidence descending, ties broken by code type (ICD-10 before CPT),
// then lexicographic code order. No duplicate (code, type) pairs.
type PredictionResult []CodePrediction

// Validate checks the result-level invariants: ordering, uniqueness,
// and per-prediction bounds.
func (r PredictionResult) Validate() error {
	seen := make(map[codeKey]struct{}, len(r))
	for i, p := range r {
		if err := p.Validate(); err != nil {
			return err
		}
		k := codeKey{p.Code, p.Type}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("duplicate prediction %s (%s)", p.Code, p.Type)
		}
		seen[k] = struct{}{}
		if i > 0 && lessPrediction(p, r[i-1]) {
			return fmt.Errorf("predictions out of order at index %d (%s)", i, p.Code)
		}
	}
	return nil
}

type codeKey struct {
	code string
	typ  CodeType
}

// SortPredictions orders predictions in place per the PredictionResult
// ordering contract.
func SortPredictions(preds []CodePrediction) {
	sort.SliceStable(preds, func(i, j int) bool {
		return lessPrediction(preds[i], preds[j])
	})
}

// DedupePredictions unions predictions by (code, type), keeping the highest
// confidence for each pair. Order of the returned slice is unspecified;
// callers sort afterwards.
func DedupePredictions(preds []CodePrediction) []CodePrediction {
	byKey := make(map[codeKey]CodePrediction, len(preds))
	order := make([]codeKey, 0, len(preds))
	for _, p := range preds {
		k := codeKey{p.Code, p.Type}
		existing, ok := byKey[k]
		if !ok {
			byKey[k] = p
			order = append(order, k)
			continue
		}
		if p.Confidence > existing.Confidence {
			byKey[k] = p
		}
	}
	out := make([]CodePrediction, 0, len(byKey))
	for _, k := range order {
		out = append(out, byKey[k])
	}
	return out
}

// lessPrediction implements the ordering contract: confidence descending,
// then ICD-10 before CPT, then lexicographic code.
func lessPrediction(a, b CodePrediction) bool {
	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}
	if a.Type != b.Type {
		return a.Type == CodeTypeICD10
	}
	return a.Code < b.Code
}
