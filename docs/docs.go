// Package docs registers the OpenAPI document served at /swagger/.
// The document mirrors the controller annotations; regenerate it with
// `go generate ./cmd/server` after changing them.
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
		"/api/admin/events": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Admin view over all events regardless of status and visibility.",
				"produces": [
					"application/json"
				],
				"tags": [
					"admin"
				],
				"summary": "List every event",
				"parameters": [
					{
						"type": "integer",
						"description": "Zero-based page (default 0)",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size (default 10, max 100)",
						"name": "size",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Sort field (default event_date)",
						"name": "sort_by",
						"in": "query"
					},
					{
						"type": "string",
						"description": "asc or desc (default asc)",
						"name": "sort_dir",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "data contains items and pagination",
						"schema": {
							"$ref": "#/definitions/controllers.EventPageSuccessResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"403": {
						"description": "error.code: forbidden",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/auth/login": {
			"post": {
				"description": "Authenticate with username and password. Returns a JWT carrying the user id, username and role.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Log in",
				"parameters": [
					{
						"description": "Login credentials",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/controllers.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "data contains token, token_type and user",
						"schema": {
							"$ref": "#/definitions/controllers.AuthSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"429": {
						"description": "error.code: too_many_requests",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/auth/me": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Current user profile",
				"responses": {
					"200": {
						"description": "data contains the user",
						"schema": {
							"$ref": "#/definitions/controllers.UserSuccessResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/auth/signup": {
			"post": {
				"description": "Create a PLAYER or ORGANIZER account. Role defaults to PLAYER. Returns a bearer token and the profile.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Sign up a new user",
				"parameters": [
					{
						"description": "Sign-up data",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/controllers.SignUpRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "data contains token, token_type and user",
						"schema": {
							"$ref": "#/definitions/controllers.AuthSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request (validation or duplicate username/email/phone)",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"403": {
						"description": "error.code: forbidden (ADMIN role)",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"429": {
						"description": "error.code: too_many_requests",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/events/code/{eventCode}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "Get an event by its code",
				"parameters": [
					{
						"type": "string",
						"description": "Event code, e.g. EVT-20260601-0001",
						"name": "eventCode",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "data contains the event",
						"schema": {
							"$ref": "#/definitions/controllers.EventSuccessResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/events/game/{gameName}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "Open events for a game",
				"parameters": [
					{
						"type": "string",
						"description": "Game name (case-insensitive)",
						"name": "gameName",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Zero-based page (default 0)",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size (default 10, max 100)",
						"name": "size",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Sort field (default event_date)",
						"name": "sort_by",
						"in": "query"
					},
					{
						"type": "string",
						"description": "asc or desc (default asc)",
						"name": "sort_dir",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "data contains items and pagination",
						"schema": {
							"$ref": "#/definitions/controllers.EventPageSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/events/public": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "Browse open public events",
				"parameters": [
					{
						"type": "integer",
						"description": "Zero-based page (default 0)",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size (default 10, max 100)",
						"name": "size",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Sort field (default event_date)",
						"name": "sort_by",
						"in": "query"
					},
					{
						"type": "string",
						"description": "asc or desc (default asc)",
						"name": "sort_dir",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "data contains items and pagination",
						"schema": {
							"$ref": "#/definitions/controllers.EventPageSuccessResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/events/search": {
			"get": {
				"description": "Case-insensitive match on name, game name or description.",
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "Search open public events",
				"parameters": [
					{
						"type": "string",
						"description": "Search keyword",
						"name": "keyword",
						"in": "query",
						"required": true
					},
					{
						"type": "integer",
						"description": "Zero-based page (default 0)",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size (default 10, max 100)",
						"name": "size",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Sort field (default event_date)",
						"name": "sort_by",
						"in": "query"
					},
					{
						"type": "string",
						"description": "asc or desc (default asc)",
						"name": "sort_dir",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "data contains items and pagination",
						"schema": {
							"$ref": "#/definitions/controllers.EventPageSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request (missing keyword)",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/events/upcoming": {
			"get": {
				"description": "Events with an open registration window dated today or later, soonest first.",
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "Upcoming events open for registration",
				"parameters": [
					{
						"type": "integer",
						"description": "Zero-based page (default 0)",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size (default 10, max 100)",
						"name": "size",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "data contains items and pagination",
						"schema": {
							"$ref": "#/definitions/controllers.EventPageSuccessResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/events/{eventID}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "Get an event by ID",
				"parameters": [
					{
						"type": "string",
						"description": "Event ID (UUID)",
						"name": "eventID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "data contains the event",
						"schema": {
							"$ref": "#/definitions/controllers.EventSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/events/{eventID}/is-registered": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Reports whether the caller holds a PENDING or CONFIRMED registration for the event.",
				"produces": [
					"application/json"
				],
				"tags": [
					"player"
				],
				"summary": "Check registration for an event",
				"parameters": [
					{
						"type": "string",
						"description": "Event ID (UUID)",
						"name": "eventID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/controllers.RegistrationStatusSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/events/{eventID}/register": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Free events are confirmed immediately. Paid events need a transaction_id and stay PENDING until the organizer confirms payment.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"player"
				],
				"summary": "Register for an event",
				"parameters": [
					{
						"type": "string",
						"description": "Event ID (UUID)",
						"name": "eventID",
						"in": "path",
						"required": true
					},
					{
						"description": "Registration details",
						"name": "body",
						"in": "body",
						"required": false,
						"schema": {
							"$ref": "#/definitions/controllers.RegisterRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "data contains the registration",
						"schema": {
							"$ref": "#/definitions/controllers.RegistrationSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"403": {
						"description": "error.code: forbidden or registration_closed",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"409": {
						"description": "error.code: event_full or duplicate_registration",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/organizer/events": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Every event organized by the caller, in any status.",
				"produces": [
					"application/json"
				],
				"tags": [
					"organizer"
				],
				"summary": "List the caller's events",
				"parameters": [
					{
						"type": "integer",
						"description": "Zero-based page (default 0)",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size (default 10, max 100)",
						"name": "size",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Sort field (default event_date)",
						"name": "sort_by",
						"in": "query"
					},
					{
						"type": "string",
						"description": "asc or desc (default asc)",
						"name": "sort_dir",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "data contains items and pagination",
						"schema": {
							"$ref": "#/definitions/controllers.EventPageSuccessResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"403": {
						"description": "error.code: forbidden",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Creates a DRAFT event owned by the caller. event_code, status and slots_filled are server-generated.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"organizer"
				],
				"summary": "Create a new event",
				"parameters": [
					{
						"description": "Event data",
						"name": "event",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/controllers.CreateEventRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "data contains the created event",
						"schema": {
							"$ref": "#/definitions/controllers.EventSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"403": {
						"description": "error.code: forbidden",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/organizer/events/{eventID}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "Get an event by ID",
				"parameters": [
					{
						"type": "string",
						"description": "Event ID (UUID)",
						"name": "eventID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "data contains the event",
						"schema": {
							"$ref": "#/definitions/controllers.EventSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Partially updates an event. Only the organizer who owns it or an admin may update. Omitted fields are unchanged; status and slots cannot be set.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"organizer"
				],
				"summary": "Update an event",
				"parameters": [
					{
						"type": "string",
						"description": "Event ID (UUID)",
						"name": "eventID",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to update (all optional)",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/controllers.UpdateEventRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "data contains the updated event",
						"schema": {
							"$ref": "#/definitions/controllers.EventSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"403": {
						"description": "error.code: forbidden",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Deletes an event that has no filled slots. Events with registrations must be cancelled instead.",
				"produces": [
					"application/json"
				],
				"tags": [
					"organizer"
				],
				"summary": "Delete an event",
				"parameters": [
					{
						"type": "string",
						"description": "Event ID (UUID)",
						"name": "eventID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "data.message confirms the deletion",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request (event has registrations)",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"403": {
						"description": "error.code: forbidden",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/organizer/events/{eventID}/cancel": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Cancels a non-terminal event and stores the reason in remarks. Registrants holding a slot are notified by email.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"organizer"
				],
				"summary": "Cancel an event",
				"parameters": [
					{
						"type": "string",
						"description": "Event ID (UUID)",
						"name": "eventID",
						"in": "path",
						"required": true
					},
					{
						"description": "Cancellation reason",
						"name": "body",
						"in": "body",
						"required": false,
						"schema": {
							"$ref": "#/definitions/controllers.CancelEventRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "data contains the cancelled event",
						"schema": {
							"$ref": "#/definitions/controllers.EventSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"403": {
						"description": "error.code: forbidden",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/organizer/events/{eventID}/publish": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Sets the status from the registration window: UPCOMING before it opens, REGISTRATION_OPEN inside it, REGISTRATION_CLOSED after it.",
				"produces": [
					"application/json"
				],
				"tags": [
					"organizer"
				],
				"summary": "Publish an event",
				"parameters": [
					{
						"type": "string",
						"description": "Event ID (UUID)",
						"name": "eventID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "data contains the published event",
						"schema": {
							"$ref": "#/definitions/controllers.EventSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request (status cannot be published)",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"403": {
						"description": "error.code: forbidden",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/organizer/events/{eventID}/registrations": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"organizer"
				],
				"summary": "List registrations for an event",
				"parameters": [
					{
						"type": "string",
						"description": "Event ID (UUID)",
						"name": "eventID",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Zero-based page (default 0)",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size (default 10, max 100)",
						"name": "size",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Sort field (default registered_at)",
						"name": "sort_by",
						"in": "query"
					},
					{
						"type": "string",
						"description": "asc or desc (default desc)",
						"name": "sort_dir",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "data contains items and pagination",
						"schema": {
							"$ref": "#/definitions/controllers.RegistrationPageSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"403": {
						"description": "error.code: forbidden",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/organizer/events/{eventID}/registrations/confirmed": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"organizer"
				],
				"summary": "List confirmed registrations for an event",
				"parameters": [
					{
						"type": "string",
						"description": "Event ID (UUID)",
						"name": "eventID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "data contains the confirmed registrations",
						"schema": {
							"$ref": "#/definitions/controllers.RegistrationListSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"403": {
						"description": "error.code: forbidden",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/registrations/me": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"player"
				],
				"summary": "List my registrations",
				"parameters": [
					{
						"type": "integer",
						"description": "Zero-based page (default 0)",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size (default 10, max 100)",
						"name": "size",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Sort field (default registered_at)",
						"name": "sort_by",
						"in": "query"
					},
					{
						"type": "string",
						"description": "asc or desc (default desc)",
						"name": "sort_dir",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "data contains items and pagination",
						"schema": {
							"$ref": "#/definitions/controllers.RegistrationPageSuccessResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/registrations/{registrationID}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Visible to the registrant, the event's organizer and admins.",
				"produces": [
					"application/json"
				],
				"tags": [
					"registrations"
				],
				"summary": "Get a registration",
				"parameters": [
					{
						"type": "string",
						"description": "Registration ID (UUID)",
						"name": "registrationID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "data contains the registration",
						"schema": {
							"$ref": "#/definitions/controllers.RegistrationSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"403": {
						"description": "error.code: forbidden",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Cancels the caller's own registration and frees its slot.",
				"produces": [
					"application/json"
				],
				"tags": [
					"player"
				],
				"summary": "Cancel my registration",
				"parameters": [
					{
						"type": "string",
						"description": "Registration ID (UUID)",
						"name": "registrationID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "data.message confirms the cancellation",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request (already cancelled or rejected)",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"403": {
						"description": "error.code: forbidden",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/registrations/{registrationID}/confirm": {
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Confirms a PENDING registration and marks payment verified for paid events. The player is notified by email.",
				"produces": [
					"application/json"
				],
				"tags": [
					"organizer"
				],
				"summary": "Confirm a pending registration",
				"parameters": [
					{
						"type": "string",
						"description": "Registration ID (UUID)",
						"name": "registrationID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "data contains the confirmed registration",
						"schema": {
							"$ref": "#/definitions/controllers.RegistrationSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request (not pending)",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"403": {
						"description": "error.code: forbidden",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/api/registrations/{registrationID}/reject": {
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Rejects a PENDING or CONFIRMED registration, frees its slot and notifies the player.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"organizer"
				],
				"summary": "Reject a registration",
				"parameters": [
					{
						"type": "string",
						"description": "Registration ID (UUID)",
						"name": "registrationID",
						"in": "path",
						"required": true
					},
					{
						"description": "Rejection reason",
						"name": "body",
						"in": "body",
						"required": false,
						"schema": {
							"$ref": "#/definitions/controllers.RejectRegistrationRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "data contains the rejected registration",
						"schema": {
							"$ref": "#/definitions/controllers.RegistrationSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"401": {
						"description": "error.code: unauthorized",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"403": {
						"description": "error.code: forbidden",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/healthz": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Liveness and database check",
				"responses": {
					"200": {
						"description": "data.status is ok",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"503": {
						"description": "data.database is unreachable",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"controllers.AuthSuccessResponse": {
			"type": "object",
			"properties": {
				"data": {
					"$ref": "#/definitions/domain.AuthResult"
				},
				"error": {
					"$ref": "#/definitions/helpers.APIError"
				}
			}
		},
		"controllers.CancelEventRequest": {
			"type": "object",
			"properties": {
				"reason": {
					"type": "string",
					"maxLength": 1000
				}
			}
		},
		"controllers.CreateEventRequest": {
			"type": "object",
			"required": [
				"event_name",
				"game_name",
				"event_date",
				"event_start_time",
				"event_end_time",
				"registration_open_date",
				"registration_close_date",
				"participation_type",
				"team_size",
				"max_participants",
				"min_participants"
			],
			"properties": {
				"event_name": {
					"type": "string",
					"minLength": 3,
					"maxLength": 200
				},
				"game_name": {
					"type": "string",
					"maxLength": 100
				},
				"description": {
					"type": "string",
					"maxLength": 5000
				},
				"event_date": {
					"type": "string"
				},
				"event_start_time": {
					"type": "string"
				},
				"event_end_time": {
					"type": "string"
				},
				"registration_open_date": {
					"type": "string"
				},
				"registration_close_date": {
					"type": "string"
				},
				"participation_type": {
					"type": "string",
					"enum": [
						"SOLO",
						"DUO",
						"SQUAD"
					]
				},
				"team_size": {
					"type": "integer",
					"minimum": 1,
					"maximum": 100
				},
				"max_participants": {
					"type": "integer",
					"minimum": 2,
					"maximum": 1000
				},
				"min_participants": {
					"type": "integer",
					"minimum": 2
				},
				"allowed_ranks": {
					"type": "string",
					"maxLength": 200
				},
				"platform": {
					"type": "string",
					"maxLength": 100
				},
				"is_paid": {
					"type": "boolean"
				},
				"entry_fee": {
					"type": "number",
					"minimum": 0
				},
				"prize_pool": {
					"type": "number",
					"minimum": 0
				},
				"prize_distribution": {
					"type": "string",
					"maxLength": 5000
				},
				"refund_policy": {
					"type": "string",
					"maxLength": 2000
				},
				"map": {
					"type": "string",
					"maxLength": 100
				},
				"mode": {
					"type": "string",
					"maxLength": 100
				},
				"server_region": {
					"type": "string",
					"maxLength": 100
				},
				"room_id": {
					"type": "string",
					"maxLength": 100
				},
				"room_password": {
					"type": "string",
					"maxLength": 100
				},
				"rules": {
					"type": "string",
					"maxLength": 10000
				},
				"contact": {
					"type": "string",
					"maxLength": 200
				},
				"thumbnail_url": {
					"type": "string",
					"maxLength": 500
				},
				"live_stream_link": {
					"type": "string",
					"maxLength": 500
				},
				"remarks": {
					"type": "string",
					"maxLength": 1000
				},
				"visibility": {
					"type": "string",
					"enum": [
						"PUBLIC",
						"PRIVATE"
					]
				}
			}
		},
		"controllers.EventPageSuccessResponse": {
			"type": "object",
			"properties": {
				"data": {
					"$ref": "#/definitions/helpers.PagedResponse-domain_EventView"
				},
				"error": {
					"$ref": "#/definitions/helpers.APIError"
				}
			}
		},
		"controllers.EventSuccessResponse": {
			"type": "object",
			"properties": {
				"data": {
					"$ref": "#/definitions/domain.EventView"
				},
				"error": {
					"$ref": "#/definitions/helpers.APIError"
				}
			}
		},
		"controllers.LoginRequest": {
			"type": "object",
			"required": [
				"username",
				"password"
			],
			"properties": {
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"controllers.RegisterRequest": {
			"type": "object",
			"properties": {
				"team_name": {
					"type": "string",
					"maxLength": 100
				},
				"additional_notes": {
					"type": "string",
					"maxLength": 1000
				},
				"transaction_id": {
					"type": "string",
					"maxLength": 100
				}
			}
		},
		"controllers.RegistrationListSuccessResponse": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.EventRegistration"
					}
				},
				"error": {
					"$ref": "#/definitions/helpers.APIError"
				}
			}
		},
		"controllers.RegistrationPageSuccessResponse": {
			"type": "object",
			"properties": {
				"data": {
					"$ref": "#/definitions/helpers.PagedResponse-domain_EventRegistration"
				},
				"error": {
					"$ref": "#/definitions/helpers.APIError"
				}
			}
		},
		"controllers.RegistrationStatusResponse": {
			"type": "object",
			"properties": {
				"event_id": {
					"type": "string"
				},
				"registered": {
					"type": "boolean"
				}
			}
		},
		"controllers.RegistrationStatusSuccessResponse": {
			"type": "object",
			"properties": {
				"data": {
					"$ref": "#/definitions/controllers.RegistrationStatusResponse"
				},
				"error": {
					"$ref": "#/definitions/helpers.APIError"
				}
			}
		},
		"controllers.RegistrationSuccessResponse": {
			"type": "object",
			"properties": {
				"data": {
					"$ref": "#/definitions/domain.EventRegistration"
				},
				"error": {
					"$ref": "#/definitions/helpers.APIError"
				}
			}
		},
		"controllers.RejectRegistrationRequest": {
			"type": "object",
			"properties": {
				"reason": {
					"type": "string",
					"maxLength": 500
				}
			}
		},
		"controllers.SignUpRequest": {
			"type": "object",
			"required": [
				"username",
				"email",
				"phone_number",
				"password"
			],
			"properties": {
				"username": {
					"type": "string",
					"minLength": 3,
					"maxLength": 50
				},
				"email": {
					"type": "string",
					"maxLength": 100
				},
				"phone_number": {
					"type": "string",
					"minLength": 7,
					"maxLength": 20
				},
				"password": {
					"type": "string",
					"minLength": 8,
					"maxLength": 72
				},
				"role": {
					"type": "string",
					"enum": [
						"PLAYER",
						"ORGANIZER"
					],
					"description": "defaults to PLAYER"
				},
				"game_id": {
					"type": "string",
					"maxLength": 100
				},
				"in_game_name": {
					"type": "string",
					"maxLength": 100
				}
			}
		},
		"controllers.UpdateEventRequest": {
			"type": "object",
			"properties": {
				"event_name": {
					"type": "string",
					"minLength": 3,
					"maxLength": 200
				},
				"game_name": {
					"type": "string",
					"minLength": 1,
					"maxLength": 100
				},
				"description": {
					"type": "string",
					"maxLength": 5000
				},
				"event_date": {
					"type": "string"
				},
				"event_start_time": {
					"type": "string"
				},
				"event_end_time": {
					"type": "string"
				},
				"registration_open_date": {
					"type": "string",
					"format": "date-time"
				},
				"registration_close_date": {
					"type": "string",
					"format": "date-time"
				},
				"participation_type": {
					"type": "string",
					"enum": [
						"SOLO",
						"DUO",
						"SQUAD"
					]
				},
				"team_size": {
					"type": "integer",
					"minimum": 1,
					"maximum": 100
				},
				"max_participants": {
					"type": "integer",
					"minimum": 2,
					"maximum": 1000
				},
				"min_participants": {
					"type": "integer",
					"minimum": 2
				},
				"allowed_ranks": {
					"type": "string",
					"maxLength": 200
				},
				"platform": {
					"type": "string",
					"maxLength": 100
				},
				"is_paid": {
					"type": "boolean"
				},
				"entry_fee": {
					"type": "number",
					"minimum": 0
				},
				"prize_pool": {
					"type": "number",
					"minimum": 0
				},
				"prize_distribution": {
					"type": "string",
					"maxLength": 5000
				},
				"refund_policy": {
					"type": "string",
					"maxLength": 2000
				},
				"map": {
					"type": "string",
					"maxLength": 100
				},
				"mode": {
					"type": "string",
					"maxLength": 100
				},
				"server_region": {
					"type": "string",
					"maxLength": 100
				},
				"room_id": {
					"type": "string",
					"maxLength": 100
				},
				"room_password": {
					"type": "string",
					"maxLength": 100
				},
				"rules": {
					"type": "string",
					"maxLength": 10000
				},
				"contact": {
					"type": "string",
					"maxLength": 200
				},
				"thumbnail_url": {
					"type": "string",
					"maxLength": 500
				},
				"live_stream_link": {
					"type": "string",
					"maxLength": 500
				},
				"remarks": {
					"type": "string",
					"maxLength": 1000
				},
				"visibility": {
					"type": "string",
					"enum": [
						"PUBLIC",
						"PRIVATE"
					]
				}
			}
		},
		"controllers.UserSuccessResponse": {
			"type": "object",
			"properties": {
				"data": {
					"$ref": "#/definitions/domain.User"
				},
				"error": {
					"$ref": "#/definitions/helpers.APIError"
				}
			}
		},
		"domain.AuthResult": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"token_type": {
					"type": "string"
				},
				"user": {
					"$ref": "#/definitions/domain.User"
				}
			}
		},
		"domain.EventRegistration": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"event_id": {
					"type": "string"
				},
				"event_name": {
					"type": "string"
				},
				"user_id": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"user_email": {
					"type": "string"
				},
				"status": {
					"$ref": "#/definitions/domain.RegistrationStatus"
				},
				"team_name": {
					"type": "string"
				},
				"additional_notes": {
					"type": "string"
				},
				"transaction_id": {
					"type": "string"
				},
				"amount_paid": {
					"type": "number"
				},
				"payment_verified": {
					"type": "boolean"
				},
				"registered_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				},
				"cancelled_at": {
					"type": "string"
				},
				"cancellation_reason": {
					"type": "string"
				}
			}
		},
		"domain.EventStatus": {
			"type": "string",
			"enum": [
				"DRAFT",
				"UPCOMING",
				"REGISTRATION_OPEN",
				"REGISTRATION_CLOSED",
				"ONGOING",
				"COMPLETED",
				"CANCELLED"
			],
			"x-enum-varnames": [
				"StatusDraft",
				"StatusUpcoming",
				"StatusRegistrationOpen",
				"StatusRegistrationClosed",
				"StatusOngoing",
				"StatusCompleted",
				"StatusCancelled"
			]
		},
		"domain.EventView": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"event_code": {
					"type": "string"
				},
				"event_name": {
					"type": "string"
				},
				"game_name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"event_date": {
					"type": "string"
				},
				"event_start_time": {
					"type": "string"
				},
				"event_end_time": {
					"type": "string"
				},
				"registration_open_date": {
					"type": "string"
				},
				"registration_close_date": {
					"type": "string"
				},
				"participation_type": {
					"$ref": "#/definitions/domain.ParticipationType"
				},
				"team_size": {
					"type": "integer"
				},
				"max_participants": {
					"type": "integer"
				},
				"min_participants": {
					"type": "integer"
				},
				"allowed_ranks": {
					"type": "string"
				},
				"platform": {
					"type": "string"
				},
				"is_paid": {
					"type": "boolean"
				},
				"entry_fee": {
					"type": "number"
				},
				"prize_pool": {
					"type": "number"
				},
				"prize_distribution": {
					"type": "string"
				},
				"refund_policy": {
					"type": "string"
				},
				"map": {
					"type": "string"
				},
				"mode": {
					"type": "string"
				},
				"server_region": {
					"type": "string"
				},
				"room_id": {
					"type": "string"
				},
				"room_password": {
					"type": "string"
				},
				"rules": {
					"type": "string"
				},
				"organizer_id": {
					"type": "string"
				},
				"organizer_name": {
					"type": "string"
				},
				"contact": {
					"type": "string"
				},
				"slots_filled": {
					"type": "integer"
				},
				"status": {
					"$ref": "#/definitions/domain.EventStatus"
				},
				"thumbnail_url": {
					"type": "string"
				},
				"live_stream_link": {
					"type": "string"
				},
				"remarks": {
					"type": "string"
				},
				"visibility": {
					"$ref": "#/definitions/domain.Visibility"
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				},
				"slots_available": {
					"type": "integer"
				},
				"is_registration_open": {
					"type": "boolean"
				}
			}
		},
		"domain.ParticipationType": {
			"type": "string",
			"enum": [
				"SOLO",
				"DUO",
				"SQUAD"
			],
			"x-enum-varnames": [
				"ParticipationSolo",
				"ParticipationDuo",
				"ParticipationSquad"
			]
		},
		"domain.RegistrationStatus": {
			"type": "string",
			"enum": [
				"PENDING",
				"CONFIRMED",
				"REJECTED",
				"CANCELLED"
			],
			"x-enum-varnames": [
				"RegistrationPending",
				"RegistrationConfirmed",
				"RegistrationRejected",
				"RegistrationCancelled"
			]
		},
		"domain.Role": {
			"type": "string",
			"enum": [
				"PLAYER",
				"ORGANIZER",
				"ADMIN"
			],
			"x-enum-varnames": [
				"RolePlayer",
				"RoleOrganizer",
				"RoleAdmin"
			]
		},
		"domain.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"phone_number": {
					"type": "string"
				},
				"role": {
					"$ref": "#/definitions/domain.Role"
				},
				"enabled": {
					"type": "boolean"
				},
				"game_id": {
					"type": "string"
				},
				"in_game_name": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				}
			}
		},
		"domain.Visibility": {
			"type": "string",
			"enum": [
				"PUBLIC",
				"PRIVATE"
			],
			"x-enum-varnames": [
				"VisibilityPublic",
				"VisibilityPrivate"
			]
		},
		"helpers.APIError": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"fields": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		},
		"helpers.APIResponse": {
			"type": "object",
			"properties": {
				"data": {},
				"error": {
					"$ref": "#/definitions/helpers.APIError"
				}
			}
		},
		"helpers.PagedResponse-domain_EventRegistration": {
			"type": "object",
			"properties": {
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.EventRegistration"
					}
				},
				"pagination": {
					"$ref": "#/definitions/helpers.PaginationMeta"
				}
			}
		},
		"helpers.PagedResponse-domain_EventView": {
			"type": "object",
			"properties": {
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.EventView"
					}
				},
				"pagination": {
					"$ref": "#/definitions/helpers.PaginationMeta"
				}
			}
		},
		"helpers.PaginationMeta": {
			"type": "object",
			"properties": {
				"page": {
					"type": "integer"
				},
				"size": {
					"type": "integer"
				},
				"total": {
					"type": "integer"
				},
				"total_pages": {
					"type": "integer"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Bearer token from /api/auth/login, e.g. \"Bearer eyJ...\"",
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
	Title:            "PlayerOne API",
	Description:      "Esports tournament registration: events, capacity-limited registrations and organizer review.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
