package handler

import (
	"encoding/json"
	"net/http"
	"testing"
)

const sampleSwagger2 = `{
  "swagger": "2.0",
  "info": {"title": "CoinTrack API", "version": "1.0"},
  "paths": {
    "/budgets/{category}": {
      "put": {
        "consumes": ["application/json"],
        "produces": ["application/json"],
        "summary": "Set a limit",
        "parameters": [
          {"type": "string", "name": "category", "in": "path", "required": true},
          {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SetBudgetRequest"}}
        ],
        "responses": {
          "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.BudgetListResponse"}},
          "204": {"description": "No Content"}
        }
      }
    }
  },
  "definitions": {
    "handler.SetBudgetRequest": {"type": "object", "properties": {"limit": {"type": "string"}}},
    "handler.BudgetListResponse": {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/handler.SetBudgetRequest"}}}}
  },
  "securityDefinitions": {"BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}}
}`

func TestConvertToOpenAPI3(t *testing.T) {
	servers := []Server{{URL: "http://localhost:8080/api/v1", Description: "Local"}}
	spec, err := convertToOpenAPI3([]byte(sampleSwagger2), servers)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if spec.OpenAPI != "3.0.3" || len(spec.Servers) != 1 {
		t.Errorf("Unexpected header %s %+v", spec.OpenAPI, spec.Servers)
	}

	put := spec.Paths["/budgets/{category}"].(map[string]interface{})["put"].(map[string]interface{})

	if _, ok := put["consumes"]; ok {
		t.Errorf("Expected consumes to be dropped")
	}

	params := put["parameters"].([]interface{})
	if len(params) != 1 {
		t.Fatalf("Expected body parameter to be moved out, got %d parameters", len(params))
	}
	schema := params[0].(map[string]interface{})["schema"].(map[string]interface{})
	if schema["type"] != "string" {
		t.Errorf("Expected path parameter schema type string, got %v", schema["type"])
	}

	body := put["requestBody"].(map[string]interface{})
	bodySchema := body["content"].(map[string]interface{})["application/json"].(map[string]interface{})["schema"].(map[string]interface{})
	if bodySchema["$ref"] != "#/components/schemas/handler.SetBudgetRequest" {
		t.Errorf("Unexpected body ref %v", bodySchema["$ref"])
	}

	responses := put["responses"].(map[string]interface{})
	if _, ok := responses["204"].(map[string]interface{})["content"]; ok {
		t.Errorf("Expected no content for 204")
	}
	okSchema := responses["200"].(map[string]interface{})["content"].(map[string]interface{})["application/json"].(map[string]interface{})["schema"].(map[string]interface{})
	if okSchema["$ref"] != "#/components/schemas/handler.BudgetListResponse" {
		t.Errorf("Unexpected response ref %v", okSchema["$ref"])
	}

	raw, err := json.Marshal(spec.Components["schemas"])
	if err != nil {
		t.Fatalf("Failed to marshal schemas: %v", err)
	}
	var schemas map[string]map[string]interface{}
	if err := json.Unmarshal(raw, &schemas); err != nil {
		t.Fatalf("Failed to unmarshal schemas: %v", err)
	}
	items := schemas["handler.BudgetListResponse"]["properties"].(map[string]interface{})["data"].(map[string]interface{})["items"].(map[string]interface{})
	if items["$ref"] != "#/components/schemas/handler.SetBudgetRequest" {
		t.Errorf("Expected nested refs rewritten, got %v", items["$ref"])
	}
}

func TestServeOpenAPI3Spec(t *testing.T) {
	h := NewOpenAPIHandler([]Server{{URL: "https://api.cointrack.app/api/v1", Description: "Production"}})
	c, rec := newAnonymousRequest(http.MethodGet, "/openapi.json")

	if err := h.ServeOpenAPI3Spec(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var spec OpenAPI3Spec
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("Failed to unmarshal spec: %v", err)
	}
	if _, ok := spec.Paths["/expenses"]; !ok {
		t.Errorf("Expected /expenses in the generated document")
	}
	if spec.Info["title"] != "CoinTrack API" {
		t.Errorf("Unexpected title %v", spec.Info["title"])
	}
}
