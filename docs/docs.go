// Package docs registers the API's Swagger 2 document with swag.
// It is maintained by hand in the layout swag init emits; keep it in step
// with the handler annotations.
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
        "/analytics/dashboard": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.Dashboard"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Current month overview",
                "tags": [
                    "analytics"
                ]
            }
        },
        "/analytics/months/{year}/{month}": {
            "get": {
                "parameters": [
                    {
                        "description": "Year",
                        "in": "path",
                        "name": "year",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Month 1-12",
                        "in": "path",
                        "name": "month",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.MonthSummary"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Aggregate one calendar month",
                "tags": [
                    "analytics"
                ]
            }
        },
        "/analytics/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.Stats"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "All-time headline figures",
                "tags": [
                    "analytics"
                ]
            }
        },
        "/analytics/trend": {
            "get": {
                "parameters": [
                    {
                        "description": "Window length, 1-12",
                        "in": "query",
                        "maximum": 12,
                        "minimum": 1,
                        "name": "months",
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.TrendResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Monthly spending trend",
                "tags": [
                    "analytics"
                ]
            }
        },
        "/budgets": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.BudgetListResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List budget limits",
                "tags": [
                    "budgets"
                ]
            }
        },
        "/budgets/status/{year}/{month}": {
            "get": {
                "parameters": [
                    {
                        "description": "Year",
                        "in": "path",
                        "name": "year",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Month 1-12",
                        "in": "path",
                        "name": "month",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.BudgetOverview"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Compare a month's spending with the budget limits",
                "tags": [
                    "budgets"
                ]
            }
        },
        "/budgets/{category}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Category (URL-encoded)",
                        "in": "path",
                        "name": "category",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Remove a category's limit",
                "tags": [
                    "budgets"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Category (URL-encoded)",
                        "in": "path",
                        "name": "category",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Request body",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SetBudgetRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.BudgetListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Set one category's monthly limit",
                "tags": [
                    "budgets"
                ]
            }
        },
        "/chat": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.ChatRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.ChatReply"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Ask the assistant about your finances",
                "tags": [
                    "chat"
                ]
            }
        },
        "/expenses": {
            "get": {
                "parameters": [
                    {
                        "description": "Year (with month)",
                        "in": "query",
                        "name": "year",
                        "type": "integer"
                    },
                    {
                        "description": "Month 1-12 (with year)",
                        "in": "query",
                        "name": "month",
                        "type": "integer"
                    },
                    {
                        "description": "Maximum number of expenses",
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ExpenseListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List expenses, newest first",
                "tags": [
                    "expenses"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CreateExpenseRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.ExpenseResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Log a one-time expense",
                "tags": [
                    "expenses"
                ]
            }
        },
        "/expenses/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Expense ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Delete an expense",
                "tags": [
                    "expenses"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Expense ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Request body",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.UpdateExpenseRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ExpenseResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Edit an expense's amount, category and note",
                "tags": [
                    "expenses"
                ]
            }
        },
        "/incomes": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.IncomeListResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List recorded monthly income",
                "tags": [
                    "incomes"
                ]
            }
        },
        "/incomes/{year}/{month}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Year",
                        "in": "path",
                        "name": "year",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Month 1-12",
                        "in": "path",
                        "name": "month",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Remove a month's income",
                "tags": [
                    "incomes"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Year",
                        "in": "path",
                        "name": "year",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Month 1-12",
                        "in": "path",
                        "name": "month",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Request body",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SetIncomeRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.IncomeResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Record the income for a month",
                "tags": [
                    "incomes"
                ]
            }
        },
        "/onboarding/analyze": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.AnalyzeOccupationRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.AnalyzeOccupationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Suggest categories and tips for an occupation",
                "tags": [
                    "onboarding"
                ]
            }
        },
        "/onboarding/preset/{role}": {
            "post": {
                "parameters": [
                    {
                        "description": "student or professional",
                        "in": "path",
                        "name": "role",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ProfileResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Complete onboarding with a standard role preset",
                "tags": [
                    "onboarding"
                ]
            }
        },
        "/profile": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ProfileResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get the current user's profile",
                "tags": [
                    "profile"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SaveProfileRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ProfileResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Save the current user's profile",
                "tags": [
                    "profile"
                ]
            }
        },
        "/recurring": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.RecurringListResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List recurring expenses",
                "tags": [
                    "recurring"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CreateRecurringRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.RecurringResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a recurring expense",
                "tags": [
                    "recurring"
                ]
            }
        },
        "/recurring/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Recurring expense ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Delete a recurring expense",
                "tags": [
                    "recurring"
                ]
            }
        },
        "/reports/{year}/{month}": {
            "get": {
                "parameters": [
                    {
                        "description": "Year",
                        "in": "path",
                        "name": "year",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Month 1-12",
                        "in": "path",
                        "name": "month",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "json (default) or xlsx",
                        "in": "query",
                        "name": "format",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json",
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.MonthlyReport"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Preview or download a monthly report",
                "tags": [
                    "reports"
                ]
            },
            "post": {
                "parameters": [
                    {
                        "description": "Year",
                        "in": "path",
                        "name": "year",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Month 1-12",
                        "in": "path",
                        "name": "month",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "json (default) or xlsx",
                        "in": "query",
                        "name": "format",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/service.ReportExport"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Export a monthly report to object storage",
                "tags": [
                    "reports"
                ]
            }
        }
    },
    "definitions": {
        "aggregation.BudgetStatus": {
            "properties": {
                "category": {
                    "type": "string"
                },
                "limit": {
                    "example": "0",
                    "type": "string"
                },
                "percentage": {
                    "example": "0",
                    "type": "string"
                },
                "spent": {
                    "example": "0",
                    "type": "string"
                },
                "status": {
                    "enum": [
                        "safe",
                        "warning",
                        "exceeded"
                    ],
                    "type": "string"
                }
            },
            "type": "object"
        },
        "aggregation.CategoryAmount": {
            "properties": {
                "amount": {
                    "example": "0",
                    "type": "string"
                },
                "category": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "aggregation.DayPoint": {
            "properties": {
                "date": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "amount": {
                    "example": "0",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "aggregation.DayTotals": {
            "properties": {
                "categories": {
                    "items": {
                        "$ref": "#/definitions/aggregation.CategoryAmount"
                    },
                    "type": "array"
                },
                "date": {
                    "type": "string"
                },
                "total": {
                    "example": "0",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "aggregation.MonthlyAggregate": {
            "properties": {
                "combinedTotal": {
                    "example": "0",
                    "type": "string"
                },
                "month": {
                    "type": "integer"
                },
                "oneTimeTotal": {
                    "example": "0",
                    "type": "string"
                },
                "perCategory": {
                    "additionalProperties": {
                        "example": "0",
                        "type": "string"
                    },
                    "type": "object"
                },
                "recurringTotal": {
                    "example": "0",
                    "type": "string"
                },
                "transactionCount": {
                    "type": "integer"
                },
                "year": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "aggregation.RecurringLine": {
            "properties": {
                "amount": {
                    "example": "0",
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "frequency": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "monthlyAmount": {
                    "example": "0",
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "aggregation.SeriesPoint": {
            "properties": {
                "aggregate": {
                    "$ref": "#/definitions/aggregation.MonthlyAggregate"
                },
                "income": {
                    "example": "0",
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "recurringSuppressed": {
                    "type": "boolean"
                }
            },
            "type": "object"
        },
        "ai.OccupationAnalysis": {
            "properties": {
                "categories": {
                    "items": {
                        "$ref": "#/definitions/ai.SuggestedCategory"
                    },
                    "type": "array"
                },
                "confidence": {
                    "type": "integer"
                },
                "financialTips": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "incomePattern": {
                    "type": "string"
                },
                "occupation": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "ai.SuggestedCategory": {
            "properties": {
                "description": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.Expense": {
            "properties": {
                "amount": {
                    "example": "0",
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.Occupation": {
            "properties": {
                "confidence": {
                    "type": "integer"
                },
                "incomePattern": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "type": {
                    "enum": [
                        "student",
                        "professional",
                        "custom"
                    ],
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.ProfileCategory": {
            "properties": {
                "budget": {
                    "example": "0",
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.AnalyzeOccupationRequest": {
            "properties": {
                "apply": {
                    "type": "boolean"
                },
                "occupation": {
                    "type": "string"
                }
            },
            "required": [
                "occupation"
            ],
            "type": "object"
        },
        "handler.AnalyzeOccupationResponse": {
            "properties": {
                "analysis": {
                    "$ref": "#/definitions/ai.OccupationAnalysis"
                },
                "profile": {
                    "$ref": "#/definitions/handler.ProfileResponse"
                }
            },
            "type": "object"
        },
        "handler.BudgetLimitResponse": {
            "properties": {
                "category": {
                    "type": "string"
                },
                "limit": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.BudgetListResponse": {
            "properties": {
                "data": {
                    "items": {
                        "$ref": "#/definitions/handler.BudgetLimitResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "handler.ChatRequest": {
            "properties": {
                "message": {
                    "type": "string"
                }
            },
            "required": [
                "message"
            ],
            "type": "object"
        },
        "handler.CreateExpenseRequest": {
            "properties": {
                "amount": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                }
            },
            "required": [
                "amount"
            ],
            "type": "object"
        },
        "handler.CreateRecurringRequest": {
            "properties": {
                "amount": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "endDate": {
                    "type": "string"
                },
                "frequency": {
                    "enum": [
                        "weekly",
                        "monthly",
                        "yearly"
                    ],
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "startDate": {
                    "type": "string"
                }
            },
            "required": [
                "amount",
                "frequency",
                "name",
                "startDate"
            ],
            "type": "object"
        },
        "handler.ExpenseListResponse": {
            "properties": {
                "data": {
                    "items": {
                        "$ref": "#/definitions/handler.ExpenseResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "handler.ExpenseResponse": {
            "properties": {
                "amount": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.IncomeListResponse": {
            "properties": {
                "data": {
                    "items": {
                        "$ref": "#/definitions/handler.IncomeResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "handler.IncomeResponse": {
            "properties": {
                "amount": {
                    "type": "string"
                },
                "key": {
                    "type": "string"
                },
                "month": {
                    "type": "integer"
                },
                "updatedAt": {
                    "type": "string"
                },
                "year": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "handler.ProblemDetails": {
            "properties": {
                "detail": {
                    "type": "string"
                },
                "errors": {
                    "items": {
                        "$ref": "#/definitions/handler.ValidationError"
                    },
                    "type": "array"
                },
                "instance": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.ProfileResponse": {
            "properties": {
                "categories": {
                    "items": {
                        "$ref": "#/definitions/domain.ProfileCategory"
                    },
                    "type": "array"
                },
                "createdAt": {
                    "type": "string"
                },
                "displayName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "financialTips": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "id": {
                    "type": "string"
                },
                "occupation": {
                    "$ref": "#/definitions/domain.Occupation"
                },
                "onboardingCompleted": {
                    "type": "boolean"
                },
                "updatedAt": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.RecurringListResponse": {
            "properties": {
                "data": {
                    "items": {
                        "$ref": "#/definitions/handler.RecurringResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "handler.RecurringResponse": {
            "properties": {
                "amount": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "endDate": {
                    "type": "string"
                },
                "frequency": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "monthlyEquivalent": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "nextDate": {
                    "type": "string"
                },
                "startDate": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handler.SaveProfileRequest": {
            "properties": {
                "categories": {
                    "items": {
                        "$ref": "#/definitions/domain.ProfileCategory"
                    },
                    "type": "array"
                },
                "displayName": {
                    "type": "string"
                },
                "financialTips": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "occupation": {
                    "$ref": "#/definitions/domain.Occupation"
                },
                "onboardingCompleted": {
                    "type": "boolean"
                }
            },
            "type": "object"
        },
        "handler.SetBudgetRequest": {
            "properties": {
                "limit": {
                    "type": "string"
                }
            },
            "required": [
                "limit"
            ],
            "type": "object"
        },
        "handler.SetIncomeRequest": {
            "properties": {
                "amount": {
                    "type": "string"
                }
            },
            "required": [
                "amount"
            ],
            "type": "object"
        },
        "handler.TrendResponse": {
            "properties": {
                "data": {
                    "items": {
                        "$ref": "#/definitions/aggregation.SeriesPoint"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "handler.UpdateExpenseRequest": {
            "properties": {
                "amount": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                }
            },
            "required": [
                "amount"
            ],
            "type": "object"
        },
        "handler.ValidationError": {
            "properties": {
                "field": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "service.BudgetOverview": {
            "properties": {
                "month": {
                    "type": "integer"
                },
                "statuses": {
                    "items": {
                        "$ref": "#/definitions/aggregation.BudgetStatus"
                    },
                    "type": "array"
                },
                "totalLimit": {
                    "example": "0",
                    "type": "string"
                },
                "totalSpent": {
                    "example": "0",
                    "type": "string"
                },
                "year": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "service.ChatReply": {
            "properties": {
                "degraded": {
                    "type": "boolean"
                },
                "response": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "service.Dashboard": {
            "properties": {
                "categories": {
                    "items": {
                        "$ref": "#/definitions/aggregation.CategoryAmount"
                    },
                    "type": "array"
                },
                "income": {
                    "example": "0",
                    "type": "string"
                },
                "lastSevenDays": {
                    "items": {
                        "$ref": "#/definitions/aggregation.DayPoint"
                    },
                    "type": "array"
                },
                "month": {
                    "$ref": "#/definitions/aggregation.MonthlyAggregate"
                },
                "previousMonthTotal": {
                    "example": "0",
                    "type": "string"
                },
                "remaining": {
                    "example": "0",
                    "type": "string"
                },
                "today": {
                    "$ref": "#/definitions/aggregation.DayTotals"
                }
            },
            "type": "object"
        },
        "service.MonthSummary": {
            "properties": {
                "combinedTotal": {
                    "example": "0",
                    "type": "string"
                },
                "month": {
                    "type": "integer"
                },
                "oneTimeTotal": {
                    "example": "0",
                    "type": "string"
                },
                "perCategory": {
                    "additionalProperties": {
                        "example": "0",
                        "type": "string"
                    },
                    "type": "object"
                },
                "recurring": {
                    "items": {
                        "$ref": "#/definitions/aggregation.RecurringLine"
                    },
                    "type": "array"
                },
                "recurringTotal": {
                    "example": "0",
                    "type": "string"
                },
                "transactionCount": {
                    "type": "integer"
                },
                "year": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "service.MonthlyReport": {
            "properties": {
                "budgets": {
                    "items": {
                        "$ref": "#/definitions/aggregation.BudgetStatus"
                    },
                    "type": "array"
                },
                "categories": {
                    "items": {
                        "$ref": "#/definitions/aggregation.CategoryAmount"
                    },
                    "type": "array"
                },
                "expenses": {
                    "items": {
                        "$ref": "#/definitions/domain.Expense"
                    },
                    "type": "array"
                },
                "final": {
                    "type": "boolean"
                },
                "generatedAt": {
                    "type": "string"
                },
                "income": {
                    "example": "0",
                    "type": "string"
                },
                "month": {
                    "type": "integer"
                },
                "recurring": {
                    "items": {
                        "$ref": "#/definitions/aggregation.RecurringLine"
                    },
                    "type": "array"
                },
                "remaining": {
                    "example": "0",
                    "type": "string"
                },
                "summary": {
                    "$ref": "#/definitions/aggregation.MonthlyAggregate"
                },
                "year": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "service.ReportExport": {
            "properties": {
                "expiresAt": {
                    "type": "string"
                },
                "key": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "service.Stats": {
            "properties": {
                "allTimeOneTime": {
                    "example": "0",
                    "type": "string"
                },
                "averageDaily": {
                    "example": "0",
                    "type": "string"
                },
                "categoryCount": {
                    "type": "integer"
                },
                "holisticTotal": {
                    "example": "0",
                    "type": "string"
                },
                "monthRecurring": {
                    "example": "0",
                    "type": "string"
                },
                "transactionCount": {
                    "type": "integer"
                }
            },
            "type": "object"
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Auth0 access token, as \"Bearer {token}\"",
            "in": "header",
            "name": "Authorization",
            "type": "apiKey"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "CoinTrack API",
	Description:      "Personal finance tracking: expenses, recurring commitments, budgets, income and monthly analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
