package classifier

import "medcoder/internal/domain"

// DefaultRules is the built-in keyword rule table. Phrases are matched as
// case-insensitive substrings of the normalized note text; a note may
// activate any number of categories. General carries no phrases: it is the
// classifier's default, never a matched category.
func DefaultRules() []KeywordRule {
	return []KeywordRule{
		{
			Category: domain.CategoryCardiac,
			Phrases: []string{
				"chest pain",
				"acute coronary syndrome",
				"myocardial infarction",
				"nstemi",
				"stemi",
				"angina",
				"heart failure",
				"congestive heart failure",
				"atrial fibrillation",
				"palpitations",
				"hypertension",
				"high blood pressure",
				"troponin",
				"cardiac enzymes",
				"ecg",
				"ekg",
				"electrocardiogram",
				"echocardiogram",
				"cardiac catheterization",
				"coronary angiography",
			},
		},
		{
			Category: domain.CategoryNeurological,
			Phrases: []string{
				"headache",
				"migraine",
				"seizure",
				"epilepsy",
				"dizziness",
				"vertigo",
				"syncope",
				"altered mental status",
				"numbness",
				"tingling",
				"neuropathy",
				"tremor",
			},
		},
		{
			Category: domain.CategoryRespiratory,
			Phrases: []string{
				"shortness of breath",
				"dyspnea",
				"cough",
				"wheezing",
				"pneumonia",
				"asthma",
				"chronic obstructive pulmonary disease",
				"copd exacerbation",
				"respiratory distress",
				"hypoxia",
				"chest x-ray",
				"spirometry",
			},
		},
		{
			Category: domain.CategoryStroke,
			Phrases: []string{
				"stroke",
				"cerebrovascular accident",
				"transient ischemic attack",
				"facial droop",
				"slurred speech",
				"hemiparesis",
				"hemiplegia",
				"aphasia",
				"cerebral infarction",
			},
		},
		{
			Category: domain.CategoryGastrointestinal,
			Phrases: []string{
				"abdominal pain",
				"nausea",
				"vomiting",
				"diarrhea",
				"constipation",
				"gastroesophageal reflux",
				"gerd",
				"gastrointestinal bleeding",
				"gi bleed",
				"melena",
				"hematemesis",
				"colonoscopy",
				"endoscopy",
			},
		},
	}
}
