package domain

// The classifier maps a feature's OSM-style tag set to one of the fixed
// asset categories. Rules are kept as ordered data so every rule can be
// exercised independently; the first matching rule wins.

var accommodationTourism = map[string]bool{
	"hotel":       true,
	"guest_house": true,
	"apartment":   true,
	"hostel":      true,
	"motel":       true,
	"camp_site":   true,
}

var heritageTourism = map[string]bool{
	"attraction":  true,
	"museum":      true,
	"viewpoint":   true,
	"artwork":     true,
	"information": true,
	"picnic_site": true,
}

var urbanAmenity = map[string]bool{
	"restaurant":  true,
	"cafe":        true,
	"fast_food":   true,
	"bar":         true,
	"food_court":  true,
	"bank":        true,
	"townhall":    true,
	"police":      true,
	"school":      true,
	"hospital":    true,
	"marketplace": true,
}

// ClassifierRule pairs a predicate over feature properties with the
// category assigned when it matches.
type ClassifierRule struct {
	Name     string
	Category string
	Matches  func(props map[string]string) bool
}

// ClassifierRules is evaluated in order; evaluation stops at the first
// match. ClassifyProperties appends the urban default, so the table itself
// stays a pure rule list.
var ClassifierRules = []ClassifierRule{
	{
		Name:     "tourism accommodation",
		Category: CategoryAccommodation,
		Matches: func(props map[string]string) bool {
			return accommodationTourism[props["tourism"]]
		},
	},
	{
		Name:     "tourism heritage",
		Category: CategoryHeritage,
		Matches: func(props map[string]string) bool {
			return heritageTourism[props["tourism"]]
		},
	},
	{
		Name:     "place of worship",
		Category: CategoryReligious,
		Matches: func(props map[string]string) bool {
			return props["amenity"] == "place_of_worship"
		},
	},
	{
		Name:     "shops and urban amenities",
		Category: CategoryUrban,
		Matches: func(props map[string]string) bool {
			if _, ok := props["shop"]; ok {
				return true
			}
			return urbanAmenity[props["amenity"]]
		},
	},
	{
		Name:     "shelters and wilderness huts",
		Category: CategoryNature,
		Matches: func(props map[string]string) bool {
			return props["amenity"] == "shelter" || props["tourism"] == "wilderness_hut"
		},
	},
}

// ClassifyProperties assigns a category to a tag set. Total and
// deterministic: every input yields exactly one category, defaulting
// to urban.
func ClassifyProperties(props map[string]string) string {
	for _, rule := range ClassifierRules {
		if rule.Matches(props) {
			return rule.Category
		}
	}
	return CategoryUrban
}
