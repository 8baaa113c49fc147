// Package docs registers the OpenAPI document served under /swagger/.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "data contains status and template count", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/templates": {
            "get": {
                "description": "Returns every registered template as id, display name and raw subject, in catalog order.",
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "List email templates",
                "responses": {
                    "200": {"description": "data contains the catalog", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/templates/{templateID}": {
            "get": {
                "description": "Returns the raw subject and body of a template with its placeholder names.",
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Get an email template",
                "parameters": [
                    {"type": "string", "example": "applicationReceived", "description": "Template ID", "name": "templateID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "data contains the template", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/templates/{templateID}/preview": {
            "get": {
                "description": "Renders the template using query parameters as variables. Placeholders without a value are left as {name} and listed in unresolved.",
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Preview an email template",
                "parameters": [
                    {"type": "string", "example": "applicationReceived", "description": "Template ID", "name": "templateID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "data contains the rendered subject and body", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "post": {
                "description": "Renders the template with the variables in the request body. Placeholders without a value are left as {name} and listed in unresolved.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Preview an email template",
                "parameters": [
                    {"type": "string", "example": "applicationReceived", "description": "Template ID", "name": "templateID", "in": "path", "required": true},
                    {"description": "Variables keyed by placeholder name", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.PreviewRequest"}}
                ],
                "responses": {
                    "200": {"description": "data contains the rendered subject and body", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/emails": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the delivery log, newest first.",
                "produces": ["application/json"],
                "tags": ["emails"],
                "summary": "List email deliveries",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 20, max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "data contains items and pagination", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Renders the template with the given variables and sends it to one recipient. Unless allowIncomplete is set, a render with unresolved placeholders is rejected.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["emails"],
                "summary": "Send a template email",
                "parameters": [
                    {"description": "Template, recipient and variables", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.SendEmailRequest"}}
                ],
                "responses": {
                    "201": {"description": "data contains the delivery record", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "422": {"description": "error.code: unprocessable", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/emails/{deliveryID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["emails"],
                "summary": "Get an email delivery",
                "parameters": [
                    {"type": "string", "description": "Delivery ID", "name": "deliveryID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "data contains the delivery record", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.PreviewRequest": {
            "type": "object",
            "properties": {
                "variables": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "controllers.SendEmailRequest": {
            "type": "object",
            "properties": {
                "templateId": {"type": "string"},
                "to": {"type": "string"},
                "variables": {"type": "object", "additionalProperties": {"type": "string"}},
                "allowIncomplete": {"type": "boolean"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and a service JWT.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Recruitment Email Templates API",
	Description:      "Template catalog, preview and delivery for recruitment notifications.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
