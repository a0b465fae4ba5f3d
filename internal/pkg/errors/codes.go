package errors

import "net/http"

var (
	ErrMissingFields = New(
		"MISSING_REQUIRED_FIELDS",
		"Missing required fields",
		http.StatusBadRequest,
	)

	ErrInvalidCategory = New(
		"INVALID_CATEGORY",
		"Invalid asset category",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidGeoJSON = New(
		"INVALID_GEOJSON",
		"Uploaded file is not a valid GeoJSON FeatureCollection",
		http.StatusBadRequest,
	)

	ErrNoFileUploaded = New(
		"NO_FILE_UPLOADED",
		"No file attached to the request",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrAssetNotFound = New(
		"ASSET_NOT_FOUND",
		"Asset not found",
		http.StatusNotFound,
	)

	ErrNoUploadFound = New(
		"NO_UPLOAD_FOUND",
		"No GeoJSON file has been uploaded yet",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrFileError = New(
		"FILE_ERROR",
		"File operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
