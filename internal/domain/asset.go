package domain

import "time"

// Asset is a persisted point of interest in the tourism inventory.
type Asset struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Description *string   `json:"description,omitempty" db:"description"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	ImageURL    *string   `json:"image_url,omitempty" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Asset category constants
const (
	CategoryAccommodation = "accommodation"
	CategoryHeritage      = "heritage"
	CategoryReligious     = "religious"
	CategoryUrban         = "urban"
	CategoryNature        = "nature"
)

// ValidCategories returns the fixed category enumeration.
func ValidCategories() []string {
	return []string{
		CategoryAccommodation,
		CategoryHeritage,
		CategoryReligious,
		CategoryUrban,
		CategoryNature,
	}
}

// IsValidCategory checks if category is part of the enumeration.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories() {
		if c == category {
			return true
		}
	}
	return false
}

// CategoryCount is one row of the gap-analysis aggregate.
type CategoryCount struct {
	Category string `json:"category" db:"category"`
	Count    int    `json:"count" db:"count"`
}

// GapReport holds category labels and counts as parallel arrays,
// ordered by descending count.
type GapReport struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// GeoJSONUpload records one bulk ingestion so the most recent upload
// survives restarts.
type GeoJSONUpload struct {
	ID            int64     `json:"id" db:"id"`
	Filename      string    `json:"filename" db:"filename"`
	OriginalName  string    `json:"original_name" db:"original_name"`
	FeaturesTotal int       `json:"features_total" db:"features_total"`
	ItemsAdded    int       `json:"items_added" db:"items_added"`
	UploadedAt    time.Time `json:"uploaded_at" db:"uploaded_at"`
}
