package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tourism-inventory/internal/domain"
)

func TestClassifyProperties_AccommodationRule(t *testing.T) {
	for _, tourism := range []string{"hotel", "guest_house", "apartment", "hostel", "motel", "camp_site"} {
		got := domain.ClassifyProperties(map[string]string{"tourism": tourism})
		assert.Equal(t, domain.CategoryAccommodation, got, "tourism=%s", tourism)
	}
}

func TestClassifyProperties_HeritageRule(t *testing.T) {
	for _, tourism := range []string{"attraction", "museum", "viewpoint", "artwork", "information", "picnic_site"} {
		got := domain.ClassifyProperties(map[string]string{"tourism": tourism})
		assert.Equal(t, domain.CategoryHeritage, got, "tourism=%s", tourism)
	}
}

func TestClassifyProperties_ReligiousRule(t *testing.T) {
	got := domain.ClassifyProperties(map[string]string{"amenity": "place_of_worship"})
	assert.Equal(t, domain.CategoryReligious, got)
}

func TestClassifyProperties_UrbanRule(t *testing.T) {
	// Any shop value counts as urban
	assert.Equal(t, domain.CategoryUrban,
		domain.ClassifyProperties(map[string]string{"shop": "bakery"}))
	assert.Equal(t, domain.CategoryUrban,
		domain.ClassifyProperties(map[string]string{"shop": ""}))

	for _, amenity := range []string{
		"restaurant", "cafe", "fast_food", "bar", "food_court",
		"bank", "townhall", "police", "school", "hospital", "marketplace",
	} {
		got := domain.ClassifyProperties(map[string]string{"amenity": amenity})
		assert.Equal(t, domain.CategoryUrban, got, "amenity=%s", amenity)
	}
}

func TestClassifyProperties_NatureRule(t *testing.T) {
	assert.Equal(t, domain.CategoryNature,
		domain.ClassifyProperties(map[string]string{"amenity": "shelter"}))
	assert.Equal(t, domain.CategoryNature,
		domain.ClassifyProperties(map[string]string{"tourism": "wilderness_hut"}))
}

func TestClassifyProperties_Default(t *testing.T) {
	assert.Equal(t, domain.CategoryUrban, domain.ClassifyProperties(map[string]string{}))
	assert.Equal(t, domain.CategoryUrban, domain.ClassifyProperties(nil))
	assert.Equal(t, domain.CategoryUrban,
		domain.ClassifyProperties(map[string]string{"tourism": "unknown_value"}))
}

func TestClassifyProperties_RuleOrder(t *testing.T) {
	// Accommodation beats heritage and nature when multiple tags match
	got := domain.ClassifyProperties(map[string]string{
		"tourism": "hotel",
		"amenity": "place_of_worship",
		"shop":    "souvenirs",
	})
	assert.Equal(t, domain.CategoryAccommodation, got)

	// Heritage beats religious and urban
	got = domain.ClassifyProperties(map[string]string{
		"tourism": "attraction",
		"amenity": "place_of_worship",
	})
	assert.Equal(t, domain.CategoryHeritage, got)

	// Religious beats urban
	got = domain.ClassifyProperties(map[string]string{
		"amenity": "place_of_worship",
		"shop":    "books",
	})
	assert.Equal(t, domain.CategoryReligious, got)

	// Urban (shop) beats nature
	got = domain.ClassifyProperties(map[string]string{
		"shop":    "outdoor",
		"tourism": "wilderness_hut",
	})
	assert.Equal(t, domain.CategoryUrban, got)
}

func TestClassifierRules_EveryRuleYieldsValidCategory(t *testing.T) {
	for _, rule := range domain.ClassifierRules {
		assert.True(t, domain.IsValidCategory(rule.Category), "rule %q", rule.Name)
		assert.NotNil(t, rule.Matches, "rule %q", rule.Name)
	}
}
