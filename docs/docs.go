// Package docs registers the OpenAPI description of the API served under /swagger/.
// It is maintained by hand alongside the swag annotations on the controllers.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Liveness message",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}}
                }
            }
        },
        "/test": {
            "get": {
                "description": "Reports the configured backend, database name, connection status and up to ten collection names.\nAlways answers 200; failures are described in connection_status.",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Database diagnostics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Diagnostics"}}
                }
            }
        },
        "/api/speakers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["speakers"],
                "summary": "List speakers",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Store a speaker profile. Only name is required; socials is a free-form map of platform to URL.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["speakers"],
                "summary": "Add a speaker",
                "parameters": [
                    {"description": "Speaker profile", "name": "speaker", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.Speaker"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.CreatedResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "422": {"description": "error.code: validation_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/events": {
            "get": {
                "description": "Every stored event with its id. date is returned as an ISO 8601 string.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Store a summit event. date accepts ISO 8601 with or without a UTC offset; naive values are read as UTC.\nspeaker_ids defaults to an empty list and duplicate tags are dropped.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Create an event",
                "parameters": [
                    {"description": "Event", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.Event"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.CreatedResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "422": {"description": "error.code: validation_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/tickets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tickets"],
                "summary": "List ticket orders",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Record a ticket order. quantity must be between 1 and 10 and status defaults to \"pending\".\nWhen amount_paid is omitted or zero it is priced from the referenced event, if that event exists.\nA confirmation email is sent to buyer_email; delivery failures do not fail the order.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tickets"],
                "summary": "Place a ticket order",
                "parameters": [
                    {"description": "Ticket order", "name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.TicketOrder"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.CreatedResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "422": {"description": "error.code: validation_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/highlights": {
            "get": {
                "produces": ["application/json"],
                "tags": ["highlights"],
                "summary": "List highlights",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["highlights"],
                "summary": "Add a past-edition highlight",
                "parameters": [
                    {"description": "Highlight", "name": "highlight", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.Highlight"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.CreatedResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "422": {"description": "error.code: validation_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Diagnostics": {
            "type": "object",
            "properties": {
                "backend": {"type": "string"},
                "collections": {"type": "array", "items": {"type": "string"}},
                "connection_status": {"type": "string"},
                "database": {"type": "string"},
                "database_name": {"type": "string"},
                "database_url": {"type": "string"}
            }
        },
        "domain.Event": {
            "type": "object",
            "required": ["date", "location", "name"],
            "properties": {
                "capacity": {"type": "integer", "minimum": 0},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "location": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number", "minimum": 0},
                "speaker_ids": {"type": "array", "items": {"type": "string"}},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "domain.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "domain.Highlight": {
            "type": "object",
            "required": ["headline", "year"],
            "properties": {
                "gallery": {"type": "array", "items": {"type": "string"}},
                "headline": {"type": "string"},
                "stats": {"type": "object", "additionalProperties": true},
                "year": {"type": "integer"}
            }
        },
        "domain.Speaker": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "bio": {"type": "string"},
                "company": {"type": "string"},
                "name": {"type": "string"},
                "photo_url": {"type": "string"},
                "socials": {"type": "object", "additionalProperties": {"type": "string"}},
                "title": {"type": "string"}
            }
        },
        "domain.TicketOrder": {
            "type": "object",
            "required": ["buyer_email", "buyer_name", "event_id"],
            "properties": {
                "amount_paid": {"type": "number", "minimum": 0},
                "buyer_email": {"type": "string"},
                "buyer_name": {"type": "string"},
                "event_id": {"type": "string"},
                "quantity": {"type": "integer", "maximum": 10, "minimum": 1},
                "status": {"type": "string"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/domain.FieldError"}},
                "message": {"type": "string"}
            }
        },
        "helpers.CreatedResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}
            }
        },
        "helpers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "helpers.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "RSCOE E-Club E-Summit API",
	Description:      "Speakers, events, ticket orders and past-edition highlights for the E-Summit website.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
