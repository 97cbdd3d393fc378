package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Poolboard API",
        "description": "Pool schedule viewer and admin editor backend",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Facilities", "description": "Facility documents and raw saves"},
        {"name": "Schedule", "description": "Point-in-time and day-level schedule queries"},
        {"name": "Availability", "description": "Upcoming availability windows"},
        {"name": "Filters", "description": "Stateless filter evaluation"},
        {"name": "Editor", "description": "Pending-copy editing workflow"},
        {"name": "Exports", "description": "Printable day-schedule downloads"},
        {"name": "System", "description": "Runtime statistics"}
    ],
    "paths": {
        "/facilities": {
            "get": {
                "tags": ["Facilities"],
                "summary": "List available facilities",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/facility/{slug}": {
            "get": {
                "tags": ["Facilities"],
                "summary": "Get a facility schedule document",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ScheduleDocument"}}
                }
            }
        },
        "/save-facility/{slug}": {
            "post": {
                "tags": ["Facilities"],
                "summary": "Save a facility schedule document",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ScheduleDocument"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Invalid document"}
                }
            }
        },
        "/facility/{slug}/schedule/{date}": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Schedule entries for a date",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"},
                    {"name": "date", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/facility/{slug}/dates": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Dates that have schedule entries",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/facility/{slug}/lane-status": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Activity occupying a lane at an instant",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"},
                    {"name": "date", "in": "query", "required": true, "type": "string"},
                    {"name": "section", "in": "query", "required": true, "type": "string"},
                    {"name": "lane", "in": "query", "required": true, "type": "string"},
                    {"name": "time", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/facility/{slug}/lane-schedule": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Full-day schedule for one lane",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"},
                    {"name": "date", "in": "query", "required": true, "type": "string"},
                    {"name": "section", "in": "query", "required": true, "type": "string"},
                    {"name": "lane", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/facility/{slug}/activities-at": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Activities running at an instant",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"},
                    {"name": "date", "in": "query", "required": true, "type": "string"},
                    {"name": "time", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/facility/{slug}/hours": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Opening hours for a date",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"},
                    {"name": "date", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/facility/{slug}/open": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Whether the pool is open at an instant",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"},
                    {"name": "date", "in": "query", "required": true, "type": "string"},
                    {"name": "time", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/facility/{slug}/availability/{activity}": {
            "get": {
                "tags": ["Availability"],
                "summary": "Upcoming availability windows for an activity",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"},
                    {"name": "activity", "in": "path", "required": true, "type": "string"},
                    {"name": "days", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/filters/evaluate": {
            "post": {
                "tags": ["Filters"],
                "summary": "Evaluate a filter selection sequence",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FilterEvaluateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/facility/{slug}/pending": {
            "get": {
                "tags": ["Editor"],
                "summary": "Pending (unsaved) schedules for a facility",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/facility/{slug}/entries": {
            "post": {
                "tags": ["Editor"],
                "summary": "Add a schedule entry to the pending copy",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EntryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Validation error"}
                }
            }
        },
        "/facility/{slug}/entries/{date}/{index}": {
            "put": {
                "tags": ["Editor"],
                "summary": "Replace a pending schedule entry",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"},
                    {"name": "date", "in": "path", "required": true, "type": "string"},
                    {"name": "index", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EntryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Entry not found"}
                }
            },
            "delete": {
                "tags": ["Editor"],
                "summary": "Delete a pending schedule entry",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"},
                    {"name": "date", "in": "path", "required": true, "type": "string"},
                    {"name": "index", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Entry not found"}
                }
            }
        },
        "/facility/{slug}/days/{date}": {
            "delete": {
                "tags": ["Editor"],
                "summary": "Remove all pending entries for a date",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"},
                    {"name": "date", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Cleared"},
                    "404": {"description": "Nothing to clear"}
                }
            }
        },
        "/facility/{slug}/import": {
            "post": {
                "tags": ["Editor"],
                "summary": "Import schedules into the pending copy",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ScheduleDocument"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Invalid import file"}
                }
            }
        },
        "/facility/{slug}/save": {
            "post": {
                "tags": ["Editor"],
                "summary": "Commit the pending copy to disk",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/facility/{slug}/discard": {
            "post": {
                "tags": ["Editor"],
                "summary": "Discard the pending copy",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/facility/{slug}/export": {
            "get": {
                "tags": ["Editor"],
                "summary": "Download the document with pending schedules applied",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ScheduleDocument"}}
                }
            }
        },
        "/facility/{slug}/export/{date}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export one day of the schedule",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"},
                    {"name": "date", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/stats": {
            "get": {
                "tags": ["System"],
                "summary": "Aggregated runtime statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "ScheduleDocument": {
            "type": "object",
            "properties": {
                "facilityInfo": {"type": "object"},
                "activities": {"type": "array", "items": {"type": "object"}},
                "activityCategories": {"type": "array", "items": {"type": "object"}},
                "poolLayout": {"type": "object"},
                "schedules": {"type": "object"}
            }
        },
        "EntryRequest": {
            "type": "object",
            "required": ["date", "section", "lanes", "start", "end", "activity"],
            "properties": {
                "date": {"type": "string"},
                "section": {"type": "string"},
                "lanes": {"type": "array", "items": {"type": "string"}},
                "start": {"type": "string"},
                "end": {"type": "string"},
                "activity": {"type": "string"}
            }
        },
        "FilterEvaluateRequest": {
            "type": "object",
            "properties": {
                "facility": {"type": "string"},
                "date": {"type": "string"},
                "toggles": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "type": {"type": "string", "enum": ["activity", "category", "quick", "clear"]},
                            "id": {"type": "string"}
                        }
                    }
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
