package domain

// Category is a clinical category a note can be assigned to.
type Category string

// Clinical categories recognized by the classifier.
const (
	CategoryCardiac          Category = "cardiac"
	CategoryNeurological     Category = "neurological"
	CategoryRespiratory      Category = "respiratory"
	CategoryStroke           Category = "stroke"
	CategoryGastrointestinal Category = "gastrointestinal"
	// CategoryGeneral is the guaranteed default when no other category matches.
	CategoryGeneral Category = "general"
)

// Categories lists every recognized category in a stable order.
// CategoryGeneral is last so rule tables read specific-first.
var Categories = []Category{
	CategoryCardiac,
	CategoryNeurological,
	CategoryRespiratory,
	CategoryStroke,
	CategoryGastrointestinal,
	CategoryGeneral,
}

// Valid reports whether c is one of the recognized categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
