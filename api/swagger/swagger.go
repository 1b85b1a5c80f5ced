package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "CSM Aviation API",
        "description": "Website backend: public forms, site content and emailed approval links.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http",
        "https"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {
            "name": "Approvals",
            "description": "Signed approve/reject links emailed to reviewers"
        },
        {
            "name": "Vendors",
            "description": "Charter operator onboarding"
        },
        {
            "name": "Testimonials",
            "description": "Customer testimonials"
        },
        {
            "name": "Forms",
            "description": "Public website forms"
        },
        {
            "name": "Site",
            "description": "Website content"
        },
        {
            "name": "Admin",
            "description": "Back-office endpoints"
        },
        {
            "name": "Authentication",
            "description": "Admin sessions"
        },
        {
            "name": "Files",
            "description": "Signed downloads"
        },
        {
            "name": "Ops",
            "description": "Probes"
        }
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": [
                    "Ops"
                ],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "tags": [
                    "Ops"
                ],
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "Ready"
                    },
                    "503": {
                        "description": "A dependency is down"
                    }
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Authenticate admin",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Logout current session",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Current admin",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/contact": {
            "post": {
                "tags": [
                    "Forms"
                ],
                "summary": "Submit the contact form",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ContactRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/trip-request": {
            "post": {
                "tags": [
                    "Forms"
                ],
                "summary": "Request a charter quote",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/TripRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/subscribe": {
            "post": {
                "tags": [
                    "Forms"
                ],
                "summary": "Subscribe to the newsletter",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SubscribeRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/survey": {
            "post": {
                "tags": [
                    "Forms"
                ],
                "summary": "Submit the customer survey",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SurveyRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "get": {
                "tags": [
                    "Forms"
                ],
                "summary": "List survey responses",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/survey/export": {
            "get": {
                "tags": [
                    "Forms"
                ],
                "summary": "Download survey responses as CSV",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "text/csv"
                ],
                "responses": {
                    "200": {
                        "description": "CSV file",
                        "schema": {
                            "type": "file"
                        }
                    }
                }
            }
        },
        "/api/vendor-form/submit": {
            "post": {
                "tags": [
                    "Vendors"
                ],
                "summary": "Submit a vendor registration",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/VendorRegistrationRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/vendor-form/upload-document": {
            "post": {
                "tags": [
                    "Vendors"
                ],
                "summary": "Upload a vendor document",
                "consumes": [
                    "multipart/form-data"
                ],
                "parameters": [
                    {
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "type": "file"
                    },
                    {
                        "name": "vendorName",
                        "in": "formData",
                        "type": "string"
                    },
                    {
                        "name": "fieldName",
                        "in": "formData",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "413": {
                        "description": "Payload Too Large",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/vendor-form/approve/{token}": {
            "get": {
                "tags": [
                    "Approvals"
                ],
                "summary": "Approve a vendor from an emailed link",
                "produces": [
                    "text/html"
                ],
                "parameters": [
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Confirmation page"
                    },
                    "400": {
                        "description": "Link invalid, expired or used for the wrong action"
                    },
                    "404": {
                        "description": "Submission not found"
                    },
                    "409": {
                        "description": "Already processed"
                    },
                    "500": {
                        "description": "Error page"
                    }
                }
            }
        },
        "/api/vendor-form/reject-form/{token}": {
            "get": {
                "tags": [
                    "Approvals"
                ],
                "summary": "Show the vendor rejection form",
                "produces": [
                    "text/html"
                ],
                "parameters": [
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Confirmation page"
                    },
                    "400": {
                        "description": "Link invalid, expired or used for the wrong action"
                    },
                    "404": {
                        "description": "Submission not found"
                    },
                    "409": {
                        "description": "Already processed"
                    },
                    "500": {
                        "description": "Error page"
                    }
                }
            }
        },
        "/api/vendor-form/reject/{token}": {
            "post": {
                "tags": [
                    "Approvals"
                ],
                "summary": "Reject a vendor with a reason",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "text/html"
                ],
                "parameters": [
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "reason",
                        "in": "formData",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Confirmation page"
                    },
                    "400": {
                        "description": "Link invalid, expired or used for the wrong action"
                    },
                    "404": {
                        "description": "Submission not found"
                    },
                    "409": {
                        "description": "Already processed"
                    },
                    "422": {
                        "description": "Rejection form re-rendered with an error"
                    },
                    "500": {
                        "description": "Error page"
                    }
                }
            }
        },
        "/api/testimonials": {
            "get": {
                "tags": [
                    "Testimonials"
                ],
                "summary": "List published testimonials",
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Testimonials"
                ],
                "summary": "Submit a testimonial for review",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/TestimonialRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/testimonials/approve/{token}": {
            "get": {
                "tags": [
                    "Approvals"
                ],
                "summary": "Publish a testimonial from an emailed link",
                "produces": [
                    "text/html"
                ],
                "parameters": [
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Confirmation page"
                    },
                    "400": {
                        "description": "Link invalid, expired or used for the wrong action"
                    },
                    "404": {
                        "description": "Submission not found"
                    },
                    "409": {
                        "description": "Already processed"
                    },
                    "500": {
                        "description": "Error page"
                    }
                }
            }
        },
        "/api/testimonials/reject/{token}": {
            "get": {
                "tags": [
                    "Approvals"
                ],
                "summary": "Reject a testimonial from an emailed link",
                "produces": [
                    "text/html"
                ],
                "parameters": [
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Confirmation page"
                    },
                    "400": {
                        "description": "Link invalid, expired or used for the wrong action"
                    },
                    "404": {
                        "description": "Submission not found"
                    },
                    "409": {
                        "description": "Already processed"
                    },
                    "500": {
                        "description": "Error page"
                    }
                }
            }
        },
        "/api/config": {
            "get": {
                "tags": [
                    "Site"
                ],
                "summary": "Site configuration",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/update-header": {
            "put": {
                "tags": [
                    "Site"
                ],
                "summary": "Update the header color",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateHeaderRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/update-home-video": {
            "post": {
                "tags": [
                    "Site"
                ],
                "summary": "Replace a site video",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "parameters": [
                    {
                        "name": "video",
                        "in": "formData",
                        "required": true,
                        "type": "file"
                    },
                    {
                        "name": "key",
                        "in": "formData",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "413": {
                        "description": "Payload Too Large",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/seo/{page}": {
            "get": {
                "tags": [
                    "Site"
                ],
                "summary": "SEO metadata for a page",
                "parameters": [
                    {
                        "name": "page",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/fleet": {
            "get": {
                "tags": [
                    "Site"
                ],
                "summary": "Charter fleet",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/admin/submissions": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "List submissions",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "kind",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "VENDOR",
                            "TESTIMONIAL"
                        ]
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "PENDING",
                            "APPROVED",
                            "REJECTED"
                        ]
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/admin/metrics": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Workflow counters",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/files/{token}": {
            "get": {
                "tags": [
                    "Files"
                ],
                "summary": "Download a stored object through a signed link (local storage only)",
                "parameters": [
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/octet-stream"
                ],
                "responses": {
                    "200": {
                        "description": "File",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "username",
                "password"
            ]
        },
        "ContactRequest": {
            "type": "object",
            "properties": {
                "firstName": {
                    "type": "string"
                },
                "lastName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            },
            "required": [
                "firstName",
                "lastName",
                "email",
                "message"
            ]
        },
        "TripRequest": {
            "type": "object",
            "properties": {
                "firstName": {
                    "type": "string"
                },
                "lastName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "aircraftType": {
                    "type": "string"
                },
                "tripType": {
                    "type": "string"
                },
                "departureLocation": {
                    "type": "string"
                },
                "startDate": {
                    "type": "string"
                },
                "departureTime": {
                    "type": "string"
                },
                "destinationLocation": {
                    "type": "string"
                },
                "returnDate": {
                    "type": "string"
                },
                "returnTime": {
                    "type": "string"
                },
                "tripDetails": {
                    "type": "string"
                }
            },
            "required": [
                "firstName",
                "lastName",
                "email",
                "phone",
                "tripType",
                "departureLocation",
                "startDate",
                "destinationLocation"
            ]
        },
        "SurveyRequest": {
            "type": "object",
            "properties": {
                "bookingEfficiency": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 5
                },
                "fboLocating": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 5
                },
                "fboStaffCourtesy": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 5
                },
                "aircraftCleanliness": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 5
                },
                "cabinComfort": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 5
                },
                "crewProfessionalism": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 5
                },
                "overallSatisfaction": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 5
                },
                "willRecommend": {
                    "type": "string",
                    "enum": [
                        "Yes",
                        "No"
                    ]
                },
                "email": {
                    "type": "string"
                },
                "comments": {
                    "type": "string"
                }
            },
            "required": [
                "willRecommend"
            ]
        },
        "SubscribeRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                }
            },
            "required": [
                "email"
            ]
        },
        "VendorRegistrationRequest": {
            "type": "object",
            "properties": {
                "companyName": {
                    "type": "string"
                },
                "contactName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "certificateNumber": {
                    "type": "string"
                },
                "aircraftTypes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "fleetSize": {
                    "type": "integer"
                },
                "insuranceExpiry": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "documents": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            },
            "required": [
                "companyName",
                "contactName",
                "email"
            ]
        },
        "TestimonialRequest": {
            "type": "object",
            "properties": {
                "fullName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "company": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "rating": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 5
                },
                "message": {
                    "type": "string"
                }
            },
            "required": [
                "fullName",
                "rating",
                "message"
            ]
        },
        "UpdateHeaderRequest": {
            "type": "object",
            "properties": {
                "header_color": {
                    "type": "string"
                }
            },
            "required": [
                "header_color"
            ]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total_count": {
                    "type": "integer"
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "message": {
                    "type": "string"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "pagination": {
                    "$ref": "#/definitions/Pagination"
                },
                "meta": {
                    "type": "object"
                }
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
