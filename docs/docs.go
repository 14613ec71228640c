// Package docs is generated by swag from the handler annotations.
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
                "tags": ["session"],
                "summary": "Home",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.homeResponse"}}
                }
            }
        },
        "/login": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Login screen",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.viewResponse"}},
                    "302": {"description": "Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginForm"}}
                ],
                "responses": {
                    "303": {"description": "See Other"},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/logout": {
            "post": {
                "tags": ["session"],
                "summary": "Log out",
                "responses": {"303": {"description": "See Other"}}
            }
        },
        "/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Session"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "parameters": [
                    {"type": "string", "description": "Role filter", "name": "role", "in": "query"},
                    {"type": "boolean", "description": "Active filter", "name": "active", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.User"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create user",
                "parameters": [
                    {"type": "string", "description": "Deduplicates form resubmission", "name": "Idempotency-Key", "in": "header"},
                    {"description": "User", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createUserForm"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.User"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/statistics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "User statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.UserStatistics"}}
                }
            }
        },
        "/property/room-types": {
            "get": {
                "produces": ["application/json"],
                "tags": ["room-types"],
                "summary": "List room types",
                "parameters": [
                    {"type": "boolean", "description": "Active filter", "name": "active", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.RoomType"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["room-types"],
                "summary": "Create room type",
                "parameters": [
                    {"description": "Room type", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.roomTypeForm"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.RoomType"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/property/rooms/bulk-create": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["property"],
                "summary": "Create rooms in bulk",
                "parameters": [
                    {"description": "Rooms", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.bulkCreateRoomsForm"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.BulkOperationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/financial/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["financial"],
                "summary": "Financial dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.FinancialDashboard"}}
                }
            }
        },
        "/financial/revenue": {
            "get": {
                "produces": ["application/json"],
                "tags": ["financial"],
                "summary": "Revenue report",
                "parameters": [
                    {"type": "string", "description": "TODAY, WEEK, MONTH, YEAR or CUSTOM", "name": "period", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD, with CUSTOM", "name": "startDate", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD, with CUSTOM", "name": "endDate", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.RevenueReport"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "domain.BulkOperationResponse": {
            "type": "object",
            "properties": {
                "allSuccessful": {"type": "boolean"},
                "errorMessages": {"type": "array", "items": {"type": "string"}},
                "failureCount": {"type": "integer"},
                "successCount": {"type": "integer"},
                "successMessages": {"type": "array", "items": {"type": "string"}},
                "totalCount": {"type": "integer"}
            }
        },
        "domain.FinancialDashboard": {
            "type": "object",
            "properties": {
                "todayRevenue": {"type": "number"},
                "todayExpenses": {"type": "number"},
                "todayOccupancyRate": {"type": "number"},
                "monthToDateRevenue": {"type": "number"},
                "yearToDateRevenue": {"type": "number"}
            }
        },
        "domain.QuickStats": {
            "type": "object",
            "properties": {
                "generatedAt": {"type": "string"},
                "monthRevenue": {"type": "number"},
                "todayRevenue": {"type": "number"},
                "yearRevenue": {"type": "number"}
            }
        },
        "domain.RevenueReport": {
            "type": "object",
            "properties": {
                "endDate": {"type": "string"},
                "period": {"type": "string"},
                "startDate": {"type": "string"},
                "totalRevenue": {"type": "number"}
            }
        },
        "domain.RoomType": {
            "type": "object",
            "properties": {
                "active": {"type": "boolean"},
                "basePrice": {"type": "number"},
                "id": {"type": "integer"},
                "maxOccupancy": {"type": "integer"},
                "typeName": {"type": "string"}
            }
        },
        "domain.Session": {
            "type": "object",
            "properties": {
                "currentUser": {"$ref": "#/definitions/domain.UserIdentity"},
                "isAuthenticated": {"type": "boolean"},
                "isLoading": {"type": "boolean"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "active": {"type": "boolean"},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "role": {"type": "string"},
                "surname": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "domain.UserIdentity": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "surname": {"type": "string"},
                "userId": {"type": "integer"},
                "userType": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "domain.UserStatistics": {
            "type": "object",
            "properties": {
                "activeUsers": {"type": "integer"},
                "inactiveUsers": {"type": "integer"},
                "totalUsers": {"type": "integer"}
            }
        },
        "handler.bulkCreateRoomsForm": {
            "type": "object",
            "required": ["roomNumbers"],
            "properties": {
                "floor": {"type": "integer"},
                "roomNumbers": {"type": "array", "items": {"type": "string"}},
                "roomTypeId": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "handler.createUserForm": {
            "type": "object",
            "required": ["email", "name", "password", "role", "surname", "username"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"},
                "phone": {"type": "string"},
                "role": {"type": "string"},
                "surname": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handler.homeResponse": {
            "type": "object",
            "properties": {
                "quickStats": {"$ref": "#/definitions/domain.QuickStats"},
                "statsError": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.UserIdentity"}
            }
        },
        "handler.loginForm": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handler.roomTypeForm": {
            "type": "object",
            "required": ["typeName"],
            "properties": {
                "basePrice": {"type": "number"},
                "maxOccupancy": {"type": "integer"},
                "typeName": {"type": "string"}
            }
        },
        "handler.viewResponse": {
            "type": "object",
            "properties": {
                "view": {"type": "string"}
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
	Title:            "Hotel Console API",
	Description:      "Backend for the hotel property-management admin console.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
