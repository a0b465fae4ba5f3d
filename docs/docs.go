// Package docs registers the OpenAPI document served at /swagger.
// Regenerate the path definitions with `swag init -g cmd/api/main.go`
// after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{escape .Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/assets": {
            "get": {
                "summary": "List all tourism assets ordered by id",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "summary": "Create a single asset from a multipart form",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing required fields"}
                }
            }
        },
        "/api/assets/{id}": {
            "put": {
                "summary": "Update an asset",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Missing required fields"},
                    "404": {"description": "Asset not found"}
                }
            },
            "delete": {
                "summary": "Delete an asset",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Asset not found"}
                }
            }
        },
        "/api/geojson-upload": {
            "post": {
                "summary": "Bulk-ingest Point features from a GeoJSON file",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Ingestion result"},
                    "400": {"description": "No file or invalid GeoJSON"},
                    "500": {"description": "Storage failure, batch rolled back"}
                }
            }
        },
        "/api/last-uploaded-geojson": {
            "get": {
                "summary": "Most recent GeoJSON upload record",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Nothing uploaded yet"}
                }
            }
        },
        "/api/gap-analysis": {
            "get": {
                "summary": "Asset counts per category as parallel label/data arrays",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/health": {
            "get": {
                "summary": "Service health snapshot",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Tourism Asset Inventory API",
	Description:      "Inventory of tourism points of interest with GeoJSON bulk ingestion and gap analysis.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
