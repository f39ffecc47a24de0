package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cointrack/cointrack-backend/docs"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/swaggo/swag"
)

// OpenAPI3Spec represents an OpenAPI 3.0 document
type OpenAPI3Spec struct {
	OpenAPI    string                 `json:"openapi"`
	Info       map[string]interface{} `json:"info"`
	Servers    []Server               `json:"servers"`
	Paths      map[string]interface{} `json:"paths"`
	Components map[string]interface{} `json:"components,omitempty"`
}

// Server represents an OpenAPI 3.0 server entry
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// OpenAPIHandler serves the generated Swagger 2.0 document as OpenAPI 3.0
type OpenAPIHandler struct {
	servers []Server
}

// NewOpenAPIHandler creates a new OpenAPIHandler listing the given servers
func NewOpenAPIHandler(servers []Server) *OpenAPIHandler {
	return &OpenAPIHandler{servers: servers}
}

// ServeOpenAPI3Spec handles GET /openapi.json
func (h *OpenAPIHandler) ServeOpenAPI3Spec(c echo.Context) error {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		log.Error().Err(err).Msg("Failed to read swagger doc")
		return NewInternalError(c, "Failed to read API documentation")
	}

	spec, err := convertToOpenAPI3([]byte(doc), h.servers)
	if err != nil {
		log.Error().Err(err).Msg("Failed to convert swagger doc")
		return NewInternalError(c, "Failed to read API documentation")
	}

	return c.JSON(http.StatusOK, spec)
}

func convertToOpenAPI3(doc []byte, servers []Server) (*OpenAPI3Spec, error) {
	var swagger2 map[string]interface{}
	if err := json.Unmarshal(doc, &swagger2); err != nil {
		return nil, err
	}

	info, _ := swagger2["info"].(map[string]interface{})

	paths, _ := swagger2["paths"].(map[string]interface{})
	converted := make(map[string]interface{}, len(paths))
	for path, item := range paths {
		ops, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		convertedOps := make(map[string]interface{}, len(ops))
		for method, op := range ops {
			if opMap, ok := op.(map[string]interface{}); ok {
				convertedOps[method] = convertOperation(opMap)
			}
		}
		converted[path] = convertedOps
	}

	components := make(map[string]interface{})
	if secDefs, ok := swagger2["securityDefinitions"].(map[string]interface{}); ok {
		components["securitySchemes"] = secDefs
	}
	if definitions, ok := swagger2["definitions"].(map[string]interface{}); ok {
		components["schemas"] = transformRefs(definitions)
	}

	return &OpenAPI3Spec{
		OpenAPI:    "3.0.3",
		Info:       info,
		Servers:    servers,
		Paths:      converted,
		Components: components,
	}, nil
}

// convertOperation moves a body parameter into requestBody and wraps
// response schemas in a JSON content entry
func convertOperation(op map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(op))
	for key, value := range op {
		switch key {
		case "parameters":
			params, _ := value.([]interface{})
			var kept []interface{}
			for _, p := range params {
				param, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				if param["in"] == "body" {
					result["requestBody"] = map[string]interface{}{
						"required": param["required"],
						"content": map[string]interface{}{
							"application/json": map[string]interface{}{
								"schema": transformRefs(param["schema"]),
							},
						},
					}
					continue
				}
				kept = append(kept, transformParameter(param))
			}
			if len(kept) > 0 {
				result["parameters"] = kept
			}
		case "responses":
			responses, _ := value.(map[string]interface{})
			out := make(map[string]interface{}, len(responses))
			for code, r := range responses {
				resp, ok := r.(map[string]interface{})
				if !ok {
					continue
				}
				converted := map[string]interface{}{"description": resp["description"]}
				if schema, ok := resp["schema"]; ok {
					converted["content"] = map[string]interface{}{
						"application/json": map[string]interface{}{
							"schema": transformRefs(schema),
						},
					}
				}
				out[code] = converted
			}
			result["responses"] = out
		case "consumes", "produces":
		default:
			result[key] = transformRefs(value)
		}
	}
	return result
}

// transformRefs rewrites #/definitions/ references to #/components/schemas/
func transformRefs(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			if ref, ok := value.(string); ok && key == "$ref" {
				result[key] = strings.Replace(ref, "#/definitions/", "#/components/schemas/", 1)
				continue
			}
			result[key] = transformRefs(value)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = transformRefs(item)
		}
		return result
	default:
		return data
	}
}

// transformParameter converts a Swagger 2.0 path or query parameter to OpenAPI 3.0
func transformParameter(param map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{})
	for _, field := range []string{"name", "in", "description", "required"} {
		if val, ok := param[field]; ok {
			result[field] = val
		}
	}

	schema := make(map[string]interface{})
	for _, field := range []string{"type", "format", "enum", "default", "minimum", "maximum", "items"} {
		if val, ok := param[field]; ok {
			schema[field] = transformRefs(val)
		}
	}
	if len(schema) > 0 {
		result["schema"] = schema
	}

	return result
}
