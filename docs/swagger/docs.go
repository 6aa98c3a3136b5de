// Package swagger registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/start.go -o docs/swagger
package swagger

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
        "/extract": {
            "get": {
                "description": "List extraction runs of this process, oldest first.",
                "produces": ["application/json"],
                "tags": ["extract"],
                "summary": "List Extracts",
                "responses": {
                    "200": {
                        "description": "Runs",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/ingest.Run"}}
                    }
                }
            },
            "post": {
                "description": "Upload a CSV extract; it is reconciled with the item store in the background.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["extract"],
                "summary": "Launch Extract",
                "parameters": [
                    {"type": "file", "description": "CSV extract", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "Extract launched", "schema": {"$ref": "#/definitions/ingest.LaunchResponse"}},
                    "400": {"description": "No file or launch failure", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/extract/{id}": {
            "get": {
                "description": "Get the status of an extraction run.",
                "produces": ["application/json"],
                "tags": ["extract"],
                "summary": "Get Extract",
                "parameters": [
                    {"type": "string", "description": "Extract id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Run status", "schema": {"$ref": "#/definitions/ingest.Run"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/items/all": {
            "get": {
                "description": "Get every stored item.",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "List Items",
                "responses": {
                    "200": {"description": "All items", "schema": {"$ref": "#/definitions/itemapi.ItemsResponse"}}
                }
            }
        },
        "/items/batch": {
            "put": {
                "description": "Overwrite a batch of items by id.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Update Items",
                "parameters": [
                    {"description": "Items to update", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/itemapi.UpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "Success", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "description": "Store a batch of items, assigning a new id to each.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Create Items",
                "parameters": [
                    {"description": "Items to create", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/itemapi.CreateRequest"}}
                ],
                "responses": {
                    "200": {"description": "Success", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/items/byFederatedIds": {
            "get": {
                "description": "Get stored items by comma separated federated ids.",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Lookup Items",
                "parameters": [
                    {"type": "string", "description": "Comma separated federated ids", "name": "federatedIds", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Matching items", "schema": {"$ref": "#/definitions/itemapi.ItemsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "catalog.Item": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "federatedId": {"type": "string"},
                "name": {"type": "string"},
                "roles": {"type": "array", "items": {"type": "string", "enum": ["FAMILY", "OPTION"]}}
            }
        },
        "catalog.StoredItem": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "description": {"type": "string"},
                "federatedId": {"type": "string"},
                "name": {"type": "string"},
                "roles": {"type": "array", "items": {"type": "string", "enum": ["FAMILY", "OPTION"]}}
            }
        },
        "ingest.LaunchResponse": {
            "type": "object",
            "properties": {
                "extract_id": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "ingest.Run": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "extract_id": {"type": "string"},
                "finished_at": {"type": "string"},
                "flush_failures": {"type": "integer"},
                "rejected": {"type": "integer"},
                "rows": {"type": "integer"},
                "started_at": {"type": "string"},
                "status": {"type": "string", "enum": ["running", "completed", "failed"]}
            }
        },
        "itemapi.CreateRequest": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/catalog.Item"}}
            }
        },
        "itemapi.ItemsResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/catalog.StoredItem"}}
            }
        },
        "itemapi.UpdateRequest": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/catalog.StoredItem"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Catalog Ingest API",
	Description:      "Upload catalog extracts and reconcile them with the item store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
