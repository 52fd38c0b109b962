// Package docs holds the swagger document served under /swagger/.
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a user",
                "operationId": "RegisterUser",
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange credentials for tokens",
                "operationId": "Login",
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Token"}},
                    "400": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/login-form": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Form login returning an access token",
                "operationId": "LoginForm",
                "parameters": [
                    {"in": "formData", "name": "username", "type": "string", "required": true},
                    {"in": "formData", "name": "password", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Token"}},
                    "400": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/refresh": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Issue a new access token from a refresh token",
                "operationId": "RefreshToken",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Token"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List every order (admin only)",
                "operationId": "ListAllOrders",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Order"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Create an empty order",
                "operationId": "CreateOrder",
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Order"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders/{orderId}": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get an order",
                "operationId": "GetOrder",
                "parameters": [{"$ref": "#/parameters/orderId"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Order"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders/{orderId}/cancel": {
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Cancel an order",
                "operationId": "CancelOrder",
                "parameters": [{"$ref": "#/parameters/orderId"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Order"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "Order already finalized", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders/{orderId}/finalize": {
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Finalize an order",
                "operationId": "FinalizeOrder",
                "parameters": [{"$ref": "#/parameters/orderId"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Order"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "Order already cancelled", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders/{orderId}/items": {
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Add an item to an order",
                "operationId": "AddOrderItem",
                "parameters": [
                    {"$ref": "#/parameters/orderId"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/AddItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/AddItemResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders/items/{itemId}": {
            "delete": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Remove an item from its order",
                "operationId": "RemoveOrderItem",
                "parameters": [
                    {"in": "path", "name": "itemId", "type": "string", "format": "uuid", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Order"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/users/{userId}/orders": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List the orders of a user",
                "operationId": "ListUserOrders",
                "parameters": [
                    {"in": "path", "name": "userId", "type": "string", "format": "uuid", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Order"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "parameters": {
        "orderId": {"in": "path", "name": "orderId", "type": "string", "format": "uuid", "required": true}
    },
    "definitions": {
        "Error": {
            "type": "object",
            "required": ["code", "message"],
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "RegisterUserRequest": {
            "type": "object",
            "required": ["name", "email", "secret"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "secret": {"type": "string"},
                "active": {"type": "boolean"},
                "admin": {"type": "boolean"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "secret"],
            "properties": {
                "email": {"type": "string"},
                "secret": {"type": "string"}
            }
        },
        "Token": {
            "type": "object",
            "required": ["access_token", "token_type"],
            "properties": {
                "access_token": {"type": "string"},
                "refresh_token": {"type": "string"},
                "token_type": {"type": "string"}
            }
        },
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "active": {"type": "boolean"},
                "admin": {"type": "boolean"}
            }
        },
        "CreateOrderRequest": {
            "type": "object",
            "required": ["owner_id"],
            "properties": {
                "owner_id": {"type": "string", "format": "uuid"}
            }
        },
        "AddItemRequest": {
            "type": "object",
            "required": ["quantity", "flavor", "size", "unit_price"],
            "properties": {
                "quantity": {"type": "integer", "minimum": 1},
                "flavor": {"type": "string"},
                "size": {"type": "string"},
                "unit_price": {"type": "string", "example": "3.50"}
            }
        },
        "Item": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "order_id": {"type": "string", "format": "uuid"},
                "quantity": {"type": "integer"},
                "unit_price": {"type": "string"},
                "flavor": {"type": "string"},
                "size": {"type": "string"}
            }
        },
        "Order": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "owner_id": {"type": "string", "format": "uuid"},
                "status": {"type": "string", "enum": ["PENDING", "CANCELLED", "FINALIZED"]},
                "total_price": {"type": "string"},
                "item_count": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/Item"}}
            }
        },
        "AddItemResponse": {
            "type": "object",
            "properties": {
                "item": {"$ref": "#/definitions/Item"},
                "total_price": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "orderdesk API",
	Description:      "Orders with line items, owned by authenticated users.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
