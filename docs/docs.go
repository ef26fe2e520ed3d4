// Package docs registers the OpenAPI description served under /swagger.
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
        "/holidays/list/{countryId}/{year}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["holidays"],
                "summary": "Holidays of a country in a year, ordered by date",
                "parameters": [
                    {"type": "integer", "name": "countryId", "in": "path", "required": true},
                    {"type": "integer", "name": "year", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/holidays/verify/{countryId}/{year}/{month}/{day}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["holidays"],
                "summary": "Whether a date is a holiday",
                "parameters": [
                    {"type": "integer", "name": "countryId", "in": "path", "required": true},
                    {"type": "integer", "name": "year", "in": "path", "required": true},
                    {"type": "integer", "name": "month", "in": "path", "required": true},
                    {"type": "integer", "name": "day", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/holidays/date/{countryId}/{date}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["holidays"],
                "summary": "The holiday falling on an ISO date, if any",
                "parameters": [
                    {"type": "integer", "name": "countryId", "in": "path", "required": true},
                    {"type": "string", "name": "date", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/countries": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "All countries, by name",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/countries/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Accent-insensitive country search",
                "parameters": [
                    {"type": "string", "name": "name", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/countries/detail/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "One country",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/types": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "The four holiday rule types",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "mess": {"type": "string"},
                "data": {}
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
	Title:            "Festivos API",
	Description:      "Resolves the public holidays of a country for any year.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
