package knowledge

import "medcoder/internal/domain"

// Default builds the knowledge base from the built-in candidate tables.
func Default(topKPerType int) *Base {
	base, err := NewBase(DefaultEntries(), topKPerType)
	if err != nil {
		// The built-in tables are constants validated by tests; a failure
		// here is a programming error.
		panic(err)
	}
	return base
}

// DefaultEntries returns the built-in candidate tables, also used to seed
// the optional code catalog store. Cardiac confidence values
// mirror the endpoint's documented sample output; the remaining categories
// use fixed values in the 0.70-0.90 band so that matched categories always
// outrank the low-confidence general defaults.
func DefaultEntries() map[domain.Category][]domain.CodePrediction {
	return map[domain.Category][]domain.CodePrediction{
		domain.CategoryCardiac: {
			{Code: "I21.4", Type: domain.CodeTypeICD10, Description: "Non-ST elevation (NSTEMI) myocardial infarction", Confidence: 0.92},
			{Code: "I10", Type: domain.CodeTypeICD10, Description: "Essential (primary) hypertension", Confidence: 0.89},
			{Code: "I50.9", Type: domain.CodeTypeICD10, Description: "Heart failure, unspecified", Confidence: 0.84},
			{Code: "I48.91", Type: domain.CodeTypeICD10, Description: "Unspecified atrial fibrillation", Confidence: 0.81},
			{Code: "I25.10", Type: domain.CodeTypeICD10, Description: "Atherosclerotic heart disease of native coronary artery", Confidence: 0.78},
			{Code: "93000", Type: domain.CodeTypeCPT, Description: "Electrocardiogram, routine ECG with at least 12 leads; complete", Confidence: 0.91},
			{Code: "93454", Type: domain.CodeTypeCPT, Description: "Coronary angiography", Confidence: 0.88},
			{Code: "93306", Type: domain.CodeTypeCPT, Description: "Echocardiography, transthoracic, complete", Confidence: 0.83},
			{Code: "99291", Type: domain.CodeTypeCPT, Description: "Critical care, first hour", Confidence: 0.82},
			{Code: "84484", Type: domain.CodeTypeCPT, Description: "Troponin, quantitative", Confidence: 0.77},
		},
		domain.CategoryNeurological: {
			{Code: "R51.9", Type: domain.CodeTypeICD10, Description: "Headache, unspecified", Confidence: 0.82},
			{Code: "G43.909", Type: domain.CodeTypeICD10, Description: "Migraine, unspecified, not intractable", Confidence: 0.79},
			{Code: "R42", Type: domain.CodeTypeICD10, Description: "Dizziness and giddiness", Confidence: 0.74},
			{Code: "G40.909", Type: domain.CodeTypeICD10, Description: "Epilepsy, unspecified, not intractable", Confidence: 0.72},
			{Code: "70450", Type: domain.CodeTypeCPT, Description: "CT head or brain, without contrast", Confidence: 0.86},
			{Code: "95816", Type: domain.CodeTypeCPT, Description: "Electroencephalogram (EEG), awake and drowsy", Confidence: 0.78},
		},
		domain.CategoryRespiratory: {
			{Code: "J18.9", Type: domain.CodeTypeICD10, Description: "Pneumonia, unspecified organism", Confidence: 0.86},
			{Code: "J44.1", Type: domain.CodeTypeICD10, Description: "COPD with acute exacerbation", Confidence: 0.80},
			{Code: "J45.901", Type: domain.CodeTypeICD10, Description: "Unspecified asthma with acute exacerbation", Confidence: 0.77},
			{Code: "R06.02", Type: domain.CodeTypeICD10, Description: "Shortness of breath", Confidence: 0.74},
			{Code: "71046", Type: domain.CodeTypeCPT, Description: "Radiologic examination, chest; 2 views", Confidence: 0.85},
			{Code: "94010", Type: domain.CodeTypeCPT, Description: "Spirometry", Confidence: 0.84},
			{Code: "94760", Type: domain.CodeTypeCPT, Description: "Pulse oximetry, single determination", Confidence: 0.72},
		},
		domain.CategoryStroke: {
			{Code: "I63.9", Type: domain.CodeTypeICD10, Description: "Cerebral infarction, unspecified", Confidence: 0.90},
			{Code: "G45.9", Type: domain.CodeTypeICD10, Description: "Transient cerebral ischemic attack, unspecified", Confidence: 0.84},
			{Code: "I69.398", Type: domain.CodeTypeICD10, Description: "Other sequelae of cerebral infarction", Confidence: 0.71},
			{Code: "70450", Type: domain.CodeTypeCPT, Description: "CT head or brain, without contrast", Confidence: 0.88},
			{Code: "70553", Type: domain.CodeTypeCPT, Description: "MRI brain with and without contrast", Confidence: 0.83},
		},
		domain.CategoryGastrointestinal: {
			{Code: "R10.9", Type: domain.CodeTypeICD10, Description: "Unspecified abdominal pain", Confidence: 0.81},
			{Code: "K92.2", Type: domain.CodeTypeICD10, Description: "Gastrointestinal hemorrhage, unspecified", Confidence: 0.78},
			{Code: "K21.9", Type: domain.CodeTypeICD10, Description: "Gastro-esophageal reflux disease without esophagitis", Confidence: 0.76},
			{Code: "K59.00", Type: domain.CodeTypeICD10, Description: "Constipation, unspecified", Confidence: 0.70},
			{Code: "43239", Type: domain.CodeTypeCPT, Description: "Esophagogastroduodenoscopy with biopsy", Confidence: 0.83},
			{Code: "45378", Type: domain.CodeTypeCPT, Description: "Colonoscopy, flexible; diagnostic", Confidence: 0.80},
		},
		// General backs the guaranteed fallback: it must never be empty and
		// stays below the matched-category confidence band.
		domain.CategoryGeneral: {
			{Code: "R69", Type: domain.CodeTypeICD10, Description: "Illness, unspecified", Confidence: 0.55},
			{Code: "Z00.00", Type: domain.CodeTypeICD10, Description: "General adult medical examination without abnormal findings", Confidence: 0.52},
			{Code: "99213", Type: domain.CodeTypeCPT, Description: "Office or other outpatient visit, established patient", Confidence: 0.62},
			{Code: "80053", Type: domain.CodeTypeCPT, Description: "Comprehensive metabolic panel", Confidence: 0.58},
			{Code: "36415", Type: domain.CodeTypeCPT, Description: "Collection of venous blood by venipuncture", Confidence: 0.55},
		},
	}
}
