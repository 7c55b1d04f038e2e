// Package docs регистрирует описание API для /swagger.
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
                "tags": ["jobs"],
                "summary": "Published jobs, newest first",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.JobListPage"}},
                    "404": {"description": "Page out of range", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Filter published jobs",
                "parameters": [
                    {"type": "string", "description": "City", "name": "city", "in": "query"},
                    {"type": "string", "description": "Category", "name": "category", "in": "query"},
                    {"type": "string", "description": "Job type", "name": "job_type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SearchResults"}}
                }
            }
        },
        "/job/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Published job detail",
                "parameters": [
                    {"type": "integer", "description": "Job ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.JobResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"type": "string", "description": "seeker, company or admin", "name": "user_type", "in": "formData", "required": true},
                    {"type": "string", "description": "Email", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "303": {"description": "Redirect to the role dashboard"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/register": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a job seeker or a company",
                "parameters": [
                    {"type": "string", "description": "seeker or company", "name": "user_type", "in": "formData", "required": true},
                    {"type": "string", "description": "Email", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "description": "Phone", "name": "phone", "in": "formData", "required": true},
                    {"type": "string", "description": "City", "name": "city", "in": "formData", "required": true},
                    {"type": "string", "description": "Full name (seeker)", "name": "full_name", "in": "formData"},
                    {"type": "string", "description": "Company name (company)", "name": "company_name", "in": "formData"},
                    {"type": "string", "description": "Company description", "name": "description", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.RegisterResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/seeker/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["seeker"],
                "summary": "Seeker profile and own applications",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SeekerDashboard"}}
                }
            }
        },
        "/seeker/apply/{job_id}": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["seeker"],
                "summary": "Apply for a published job",
                "parameters": [
                    {"type": "integer", "description": "Job ID", "name": "job_id", "in": "path", "required": true},
                    {"type": "string", "description": "Cover letter", "name": "cover_letter", "in": "formData"},
                    {"type": "file", "description": "Resume", "name": "cv_file", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ActionResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "409": {"description": "Already applied", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/uploads/{filename}": {
            "get": {
                "produces": ["application/octet-stream"],
                "tags": ["resumes"],
                "summary": "Download a resume",
                "parameters": [
                    {"type": "string", "description": "Stored file name", "name": "filename", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/company/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["company"],
                "summary": "Company profile and its jobs with applicant counts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CompanyDashboard"}}
                }
            }
        },
        "/company/add-job": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["company"],
                "summary": "Post a new job",
                "parameters": [
                    {"type": "string", "description": "Category", "name": "category_name", "in": "formData", "required": true},
                    {"type": "string", "description": "Title", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "description": "Description", "name": "description", "in": "formData", "required": true},
                    {"type": "string", "description": "City", "name": "city", "in": "formData", "required": true},
                    {"type": "string", "description": "Job type", "name": "job_type", "in": "formData", "required": true},
                    {"type": "string", "description": "Salary", "name": "salary", "in": "formData"},
                    {"type": "string", "description": "Requirements", "name": "requirements", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.JobResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/company/job/{job_id}/applicants": {
            "get": {
                "produces": ["application/json"],
                "tags": ["company"],
                "summary": "Applications to one of the company's jobs",
                "parameters": [
                    {"type": "integer", "description": "Job ID", "name": "job_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.JobApplicants"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/company/application/{app_id}/status": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["company"],
                "summary": "Accept or reject an application",
                "parameters": [
                    {"type": "integer", "description": "Application ID", "name": "app_id", "in": "path", "required": true},
                    {"type": "string", "description": "Pending, Accepted or Rejected", "name": "status", "in": "formData", "required": true},
                    {"type": "string", "description": "Internal notes", "name": "notes", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ActionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/admin/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "All companies, jobs and seekers with status counters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AdminDashboard"}}
                }
            }
        },
        "/admin/company/{company_id}/status": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Approve or reject a company",
                "parameters": [
                    {"type": "integer", "description": "Company ID", "name": "company_id", "in": "path", "required": true},
                    {"type": "string", "description": "Pending, Approved or Rejected", "name": "status", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ActionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/admin/job/{job_id}/status": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Moderate a job",
                "parameters": [
                    {"type": "integer", "description": "Job ID", "name": "job_id", "in": "path", "required": true},
                    {"type": "string", "description": "Pending, Published, Rejected or Hidden", "name": "status", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ActionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Liveness and database check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "apperrors.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "domain": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {}
                    }
                }
            }
        },
        "dto.ActionResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"}
            }
        },
        "dto.RegisterResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "role": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "redirect": {"type": "string"}
            }
        },
        "dto.JobResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "company_id": {"type": "integer"},
                "company_name": {"type": "string"},
                "category_name": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "city": {"type": "string"},
                "job_type": {"type": "string"},
                "salary": {"type": "string"},
                "requirements": {"type": "string"},
                "status": {"type": "string"},
                "posted_at": {"type": "string"}
            }
        },
        "dto.JobListPage": {
            "type": "object",
            "properties": {
                "jobs": {"type": "array", "items": {"$ref": "#/definitions/dto.JobResponse"}},
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total": {"type": "integer"},
                "total_pages": {"type": "integer"},
                "has_prev": {"type": "boolean"},
                "has_next": {"type": "boolean"},
                "cities": {"type": "array", "items": {"type": "string"}},
                "categories": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.SearchResults": {
            "type": "object",
            "properties": {
                "filters": {"type": "object"},
                "jobs": {"type": "array", "items": {"$ref": "#/definitions/dto.JobResponse"}}
            }
        },
        "dto.SeekerDashboard": {
            "type": "object",
            "properties": {
                "seeker": {"type": "object"},
                "applications": {"type": "array", "items": {"type": "object"}}
            }
        },
        "dto.CompanyDashboard": {
            "type": "object",
            "properties": {
                "company": {"type": "object"},
                "jobs": {"type": "array", "items": {"type": "object"}}
            }
        },
        "dto.JobApplicants": {
            "type": "object",
            "properties": {
                "job": {"$ref": "#/definitions/dto.JobResponse"},
                "applications": {"type": "array", "items": {"type": "object"}}
            }
        },
        "dto.AdminDashboard": {
            "type": "object",
            "properties": {
                "companies": {"type": "array", "items": {"type": "object"}},
                "jobs": {"type": "array", "items": {"$ref": "#/definitions/dto.JobResponse"}},
                "seekers": {"type": "array", "items": {"type": "object"}},
                "counts": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Recruitment API",
	Description:      "Job board: seekers apply, companies post jobs and review applicants, administrators moderate.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
