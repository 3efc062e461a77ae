// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/catalog/items": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List items",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "enum": ["all", "verified", "unverified"], "name": "quality", "in": "query"},
                    {"type": "string", "enum": ["all", "compromised", "standard"], "name": "integrity", "in": "query"},
                    {"type": "string", "enum": ["name", "orders"], "name": "sort", "in": "query"},
                    {"type": "boolean", "name": "color_coding", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "post": {
                "tags": ["Catalog"],
                "summary": "Create a new item",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/createReq"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request - missing field"}}
            }
        },
        "/api/v1/catalog/items/{id}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Get item detail",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["Catalog"],
                "summary": "Remove an item",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/catalog/items/{id}/order": {
            "post": {
                "tags": ["Catalog"],
                "summary": "Adjust an item's order count",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/adjustReq"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/catalog/view": {
            "get": {"tags": ["Catalog"], "summary": "Get held view parameters", "responses": {"200": {"description": "OK"}}},
            "put": {
                "tags": ["Catalog"],
                "summary": "Replace held view parameters",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/viewReq"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "delete": {"tags": ["Catalog"], "summary": "Reset held view parameters", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/catalog/images": {
            "get": {"tags": ["Catalog"], "summary": "List preset images", "responses": {"200": {"description": "OK"}}}
        },
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "Catalog is ready"}, "503": {"description": "Catalog unavailable"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}}
    },
    "definitions": {
        "createReq": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "image_ref": {"type": "string"},
                "quality_verified": {"type": "boolean"},
                "integrity_compromised": {"type": "boolean"}
            }
        },
        "adjustReq": {
            "type": "object",
            "required": ["delta"],
            "properties": {"delta": {"type": "integer"}}
        },
        "viewReq": {
            "type": "object",
            "properties": {
                "search": {"type": "string"},
                "quality": {"type": "string"},
                "integrity": {"type": "string"},
                "sort": {"type": "string"},
                "color_coding": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Catalog Manager API",
	Description:      "In-memory product catalog with filtering, sorting and order counters.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
