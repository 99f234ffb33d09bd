// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Kubernetes liveness probe",
                "responses": {
                    "200": {"description": "Service is alive", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Kubernetes readiness probe",
                "responses": {
                    "200": {"description": "Service is ready", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "503": {"description": "Service is not ready", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/games": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "List the catalog",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/games/{rank}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Get one game",
                "parameters": [
                    {"type": "integer", "description": "Catalog rank", "name": "rank", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Malformed rank", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Unknown rank", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/titles": {
            "get": {
                "description": "Returns every catalog title sorted ascending, for pick lists feeding /recommendations.",
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "List titles",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/genres": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "List genres",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/recommendations": {
            "get": {
                "description": "Ranks every other game by genre cosine similarity, then score, then rank.",
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Recommend similar games",
                "parameters": [
                    {"type": "string", "description": "Exact reference title", "name": "title", "in": "query", "required": true},
                    {"type": "integer", "description": "Number of recommendations (default 10, capped at RECOMMEND_MAX_K, default 100); returns min(k, games-1) up to the cap", "name": "k", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Missing title or malformed k", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Unknown title", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "409": {"description": "Title shared by several games", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "422": {"description": "Catalog too small", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/recommendations/index/{index}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Recommend games similar to a catalog position",
                "parameters": [
                    {"type": "integer", "description": "Catalog position (0-based)", "name": "index", "in": "path", "required": true},
                    {"type": "integer", "description": "Number of recommendations (default 10, capped at RECOMMEND_MAX_K, default 100); returns min(k, games-1) up to the cap", "name": "k", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Malformed index or k", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Index out of range", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "422": {"description": "Catalog too small", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/search": {
            "get": {
                "description": "Conjunction of title keyword, required genres, release year range and score range. Unset bounds default to the catalog's range.",
                "produces": ["application/json"],
                "tags": ["Search"],
                "summary": "Search the catalog",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive title substring", "name": "q", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Required genre (repeatable, at most 3)", "name": "genre", "in": "query"},
                    {"type": "integer", "description": "Earliest release year", "name": "min_year", "in": "query"},
                    {"type": "integer", "description": "Latest release year", "name": "max_year", "in": "query"},
                    {"type": "number", "description": "Lowest score", "name": "min_score", "in": "query"},
                    {"type": "number", "description": "Highest score", "name": "max_score", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/search/defaults": {
            "get": {
                "description": "Returns the catalog's release year and score ranges, which a search uses for any unset bound.",
                "produces": ["application/json"],
                "tags": ["Search"],
                "summary": "Default search bounds",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/stats/popular": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Stats"],
                "summary": "Popular titles and genres",
                "parameters": [
                    {"type": "integer", "description": "List size (default from config, max 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Malformed limit", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "503": {"description": "Statistics disabled", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {},
                "message": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "api.APIMeta": {
            "type": "object",
            "properties": {
                "duration_ms": {"type": "integer"},
                "request_id": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/api.APIError"},
                "meta": {"$ref": "#/definitions/api.APIMeta"},
                "success": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Gamescout API",
	Description:      "Content-based video game recommendations and multi-criteria catalog search.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
