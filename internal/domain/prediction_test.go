package domain

import (
	"testing"
)

func TestNormalize_Deterministic(t *testing.T) {
	raw := "  68-year-old Male\twith CHEST pain\n and  shortness of breath "
	first := Normalize(raw)
	second := Normalize(raw)

	if first != second {
		t.Fatalf("Normalize not deterministic: %q vs %q", first, second)
	}

	want := "68-year-old male with chest pain and shortness of breath"
	if first != want {
		t.Errorf("Normalize = %q, want %q", first, want)
	}
}

func TestNormalize_FoldsDiacritics(t *testing.T) {
	got := Normalize("Patient naïve to café-au-lait SPOTS")
	want := "patient naive to cafe-au-lait spots"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestSortPredictions_Ordering(t *testing.T) {
	preds := []CodePrediction{
		{Code: "93000", Type: CodeTypeCPT, Confidence: 0.91},
		{Code: "I21.4", Type: CodeTypeICD10, Confidence: 0.92},
		{Code: "J18.9", Type: CodeTypeICD10, Confidence: 0.85},
		{Code: "71046", Type: CodeTypeCPT, Confidence: 0.85},
		{Code: "I10", Type: CodeTypeICD10, Confidence: 0.85},
	}

	SortPredictions(preds)

	wantOrder := []string{"I21.4", "93000", "I10", "J18.9", "71046"}
	for i, code := range wantOrder {
		if preds[i].Code != code {
			t.Errorf("position %d: got %s, want %s", i, preds[i].Code, code)
		}
	}
}

func TestDedupePredictions_KeepsHigherConfidence(t *testing.T) {
	preds := []CodePrediction{
		{Code: "I10", Type: CodeTypeICD10, Confidence: 0.80},
		{Code: "I10", Type: CodeTypeICD10, Confidence: 0.89},
		{Code: "93000", Type: CodeTypeCPT, Confidence: 0.91},
	}

	out := DedupePredictions(preds)

	if len(out) != 2 {
		t.Fatalf("expected 2 predictions after dedupe, got %d", len(out))
	}
	for _, p := range out {
		if p.Code == "I10" && p.Confidence != 0.89 {
			t.Errorf("expected I10 to keep confidence 0.89, got %v", p.Confidence)
		}
	}
}

func TestPredictionResult_Validate(t *testing.T) {
	tests := []struct {
		name    string
		result  PredictionResult
		wantErr bool
	}{
		{
			name: "valid ordered result",
			result: PredictionResult{
				{Code: "I21.4", Type: CodeTypeICD10, Description: "NSTEMI", Confidence: 0.92},
				{Code: "93000", Type: CodeTypeCPT, Description: "ECG complete", Confidence: 0.91},
			},
		},
		{
			name: "confidence out of bounds",
			result: PredictionResult{
				{Code: "I10", Type: CodeTypeICD10, Confidence: 1.2},
			},
			wantErr: true,
		},
		{
			name: "duplicate code and type",
			result: PredictionResult{
				{Code: "I10", Type: CodeTypeICD10, Confidence: 0.9},
				{Code: "I10", Type: CodeTypeICD10, Confidence: 0.9},
			},
			wantErr: true,
		},
		{
			name: "out of order",
			result: PredictionResult{
				{Code: "93000", Type: CodeTypeCPT, Confidence: 0.80},
				{Code: "I21.4", Type: CodeTypeICD10, Confidence: 0.92},
			},
			wantErr: true,
		},
		{
			name: "unknown code type",
			result: PredictionResult{
				{Code: "X1", Type: CodeType("HCPCS"), Confidence: 0.5},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
