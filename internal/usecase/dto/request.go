package dto

// CreateAssetRequest - multipart form for single-asset upload. Coordinates
// arrive as form strings and are parsed by the use case so that a missing
// field is distinguishable from latitude/longitude zero.
type CreateAssetRequest struct {
	Name        string `form:"name" validate:"required"`
	Category    string `form:"category" validate:"required"`
	Description string `form:"description"`
	Lat         string `form:"lat" validate:"required"`
	Lng         string `form:"lng" validate:"required"`
}

// UpdateAssetRequest - JSON or form body for asset update. Pointer
// coordinates keep zero values valid while still being required.
type UpdateAssetRequest struct {
	Name        string   `json:"name" form:"name" validate:"required"`
	Category    string   `json:"category" form:"category" validate:"required"`
	Description *string  `json:"description" form:"description"`
	Latitude    *float64 `json:"latitude" form:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" form:"longitude" validate:"required"`
}
