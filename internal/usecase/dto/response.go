package dto

// MessageResponse - simple confirmation payload
type MessageResponse struct {
	Message string `json:"message"`
}

// IngestResponse - result of a GeoJSON bulk ingestion
type IngestResponse struct {
	Message       string `json:"message"`
	Filename      string `json:"filename"`
	FeaturesTotal int    `json:"features_total"`
	ItemsAdded    int    `json:"items_added"`
}

// GapAnalysisResponse - parallel label/count arrays for the report chart
type GapAnalysisResponse struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// LastUploadResponse - filename of the most recent ingested GeoJSON
type LastUploadResponse struct {
	Filename   string `json:"filename"`
	ItemsAdded int    `json:"items_added"`
}

// HealthResponse - service health snapshot
type HealthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	TotalAssets int    `json:"total_assets"`
}
