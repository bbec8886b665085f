// Command swaggergen writes the OpenAPI 3.0 description of the subway
// favorites API to api/swagger.json and api/swagger.yaml.
//
// Usage:
//
//	go run ./tools/swaggergen [-out dir]
//
// Keep buildPaths and buildSchemas in step with internal/routes when the HTTP
// surface changes, then regenerate.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Lightweight OpenAPI 3.0 types
// ---------------------------------------------------------------------------

type OpenAPI struct {
	OpenAPI    string               `json:"openapi"              yaml:"openapi"`
	Info       Info                 `json:"info"                 yaml:"info"`
	Paths      map[string]*PathItem `json:"paths"                yaml:"paths"`
	Components Components           `json:"components"           yaml:"components"`
}

type Info struct {
	Title       string `json:"title"       yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Version     string `json:"version"     yaml:"version"`
}

type PathItem struct {
	Get    *Operation `json:"get,omitempty"    yaml:"get,omitempty"`
	Post   *Operation `json:"post,omitempty"   yaml:"post,omitempty"`
	Delete *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`
}

type Operation struct {
	Tags        []string              `json:"tags"                  yaml:"tags"`
	Summary     string                `json:"summary"               yaml:"summary"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	OperationID string                `json:"operationId"           yaml:"operationId"`
	Security    []map[string][]string `json:"security,omitempty"    yaml:"security,omitempty"`
	Parameters  []Parameter           `json:"parameters,omitempty"  yaml:"parameters,omitempty"`
	RequestBody *RequestBody          `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]Response   `json:"responses"             yaml:"responses"`
}

type Parameter struct {
	Name        string `json:"name"        yaml:"name"`
	In          string `json:"in"          yaml:"in"`
	Description string `json:"description" yaml:"description"`
	Required    bool   `json:"required"    yaml:"required"`
	Schema      Schema `json:"schema"      yaml:"schema"`
}

type RequestBody struct {
	Required    bool                 `json:"required"              yaml:"required"`
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	Content     map[string]MediaType `json:"content"               yaml:"content"`
}

type MediaType struct {
	Schema Schema `json:"schema" yaml:"schema"`
}

type Response struct {
	Description string               `json:"description"       yaml:"description"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

type Schema struct {
	Type                 string            `json:"type,omitempty"                 yaml:"type,omitempty"`
	Format               string            `json:"format,omitempty"               yaml:"format,omitempty"`
	Description          string            `json:"description,omitempty"          yaml:"description,omitempty"`
	Properties           map[string]Schema `json:"properties,omitempty"           yaml:"properties,omitempty"`
	Items                *Schema           `json:"items,omitempty"                yaml:"items,omitempty"`
	Required             []string          `json:"required,omitempty"             yaml:"required,omitempty"`
	Enum                 []string          `json:"enum,omitempty"                 yaml:"enum,omitempty"`
	Ref                  string            `json:"$ref,omitempty"                 yaml:"$ref,omitempty"`
	AdditionalProperties *Schema           `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
	OneOf                []Schema          `json:"oneOf,omitempty"                yaml:"oneOf,omitempty"`
	Example              any               `json:"example,omitempty"              yaml:"example,omitempty"`
}

type Components struct {
	Schemas         map[string]Schema         `json:"schemas"         yaml:"schemas"`
	SecuritySchemes map[string]SecurityScheme `json:"securitySchemes" yaml:"securitySchemes"`
}

type SecurityScheme struct {
	Type         string `json:"type"         yaml:"type"`
	Scheme       string `json:"scheme"       yaml:"scheme"`
	BearerFormat string `json:"bearerFormat" yaml:"bearerFormat"`
	Description  string `json:"description"  yaml:"description"`
}

// ---------------------------------------------------------------------------
// Spec builder
// ---------------------------------------------------------------------------

var bearerAuth = []map[string][]string{{"BearerAuth": {}}}

func buildSpec() OpenAPI {
	return OpenAPI{
		OpenAPI: "3.0.3",
		Info: Info{
			Title:       "Subway Favorites API",
			Description: "Members save source/target station pairs they travel often. Creation requires a path between the two stations.",
			Version:     "1.0.0",
		},
		Paths: buildPaths(),
		Components: Components{
			Schemas:         buildSchemas(),
			SecuritySchemes: buildSecuritySchemes(),
		},
	}
}

func buildPaths() map[string]*PathItem {
	unauthorized := jsonResponse("Missing or invalid bearer token", "ErrorResponse")
	internalErr := jsonResponse("Internal server error", "ErrorResponse")

	return map[string]*PathItem{
		"/favorites": {
			Get: &Operation{
				Tags:        []string{"Favorites"},
				Summary:     "List favorites",
				Description: "Returns the caller's favorites in creation order. Empty list when there are none.",
				OperationID: "listFavorites",
				Security:    bearerAuth,
				Responses: map[string]Response{
					"200": {
						Description: "Favorites of the caller",
						Content: map[string]MediaType{
							"application/json": {Schema: Schema{Type: "array", Items: ref("Favorite")}},
						},
					},
					"401": unauthorized,
					"406": jsonResponse("Accept header excludes application/json", "ErrorResponse"),
					"500": internalErr,
				},
			},
			Post: &Operation{
				Tags:        []string{"Favorites"},
				Summary:     "Create a favorite",
				Description: "Stores a source/target pair for the caller. Stations may be sent as integers or decimal strings.",
				OperationID: "createFavorite",
				Security:    bearerAuth,
				RequestBody: jsonBody("FavoriteRequest"),
				Responses: map[string]Response{
					"201": jsonResponse("Favorite created; Location points at the new resource", "CreateFavoriteResponse"),
					"400": jsonResponse("Missing field, same source and target, station not on any path, or stations not connected", "ErrorResponse"),
					"401": unauthorized,
					"415": jsonResponse("Body is not application/json", "ErrorResponse"),
					"429": {Description: "Rate limit exceeded"},
					"500": internalErr,
				},
			},
		},
		"/favorites/{favoriteID}": {
			Delete: &Operation{
				Tags:        []string{"Favorites"},
				Summary:     "Delete a favorite",
				Description: "Deletes one of the caller's favorites. Deleting an unknown or foreign id is rejected.",
				OperationID: "deleteFavorite",
				Security:    bearerAuth,
				Parameters:  []Parameter{favoriteIDParam()},
				Responses: map[string]Response{
					"204": {Description: "Favorite deleted"},
					"400": jsonResponse("Invalid id or favorite does not exist", "ErrorResponse"),
					"401": unauthorized,
					"500": internalErr,
				},
			},
		},
		"/login/github": {
			Post: &Operation{
				Tags:        []string{"Auth"},
				Summary:     "Log in with GitHub",
				Description: "Exchanges a GitHub authorization code for a member access token, creating the member on first login.",
				OperationID: "loginWithGitHub",
				RequestBody: jsonBody("LoginRequest"),
				Responses: map[string]Response{
					"200": jsonResponse("Access token issued", "LoginResponse"),
					"400": jsonResponse("Missing code or invalid body", "ErrorResponse"),
					"401": jsonResponse("GitHub rejected the code", "ErrorResponse"),
					"500": internalErr,
				},
			},
		},
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ref(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

func jsonBody(schema string) *RequestBody {
	return &RequestBody{
		Required: true,
		Content:  map[string]MediaType{"application/json": {Schema: *ref(schema)}},
	}
}

func jsonResponse(description, schema string) Response {
	return Response{
		Description: description,
		Content:     map[string]MediaType{"application/json": {Schema: *ref(schema)}},
	}
}

func favoriteIDParam() Parameter {
	return Parameter{
		Name:        "favoriteID",
		In:          "path",
		Description: "Numeric favorite id",
		Required:    true,
		Schema:      Schema{Type: "integer", Format: "int64"},
	}
}

func buildSecuritySchemes() map[string]SecurityScheme {
	return map[string]SecurityScheme{
		"BearerAuth": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
			Description:  "Token from /login/github or tools/tokengen; the 'sub' claim is the member id.",
		},
	}
}

func stationIDSchema(description string) Schema {
	return Schema{
		Description: description,
		OneOf:       []Schema{{Type: "integer", Format: "int64"}, {Type: "string", Example: "1"}},
	}
}

func buildSchemas() map[string]Schema {
	return map[string]Schema{
		"ErrorResponse": {
			Type: "object",
			Properties: map[string]Schema{
				"error": {Type: "string", Description: "Human-readable error message"},
			},
			Required: []string{"error"},
		},
		"FavoriteRequest": {
			Type: "object",
			Properties: map[string]Schema{
				"source": stationIDSchema("Departure station id"),
				"target": stationIDSchema("Arrival station id; must differ from source"),
			},
			Required: []string{"source", "target"},
		},
		"CreateFavoriteResponse": {
			Type: "object",
			Properties: map[string]Schema{
				"id": {Type: "integer", Format: "int64"},
			},
			Required: []string{"id"},
		},
		"Station": {
			Type: "object",
			Properties: map[string]Schema{
				"id":   {Type: "integer", Format: "int64"},
				"name": {Type: "string", Example: "Gangnam"},
			},
			Required: []string{"id", "name"},
		},
		"Favorite": {
			Type: "object",
			Properties: map[string]Schema{
				"id":         {Type: "integer", Format: "int64"},
				"member_id":  {Type: "string"},
				"source":     *ref("Station"),
				"target":     *ref("Station"),
				"created_at": {Type: "string", Format: "date-time"},
			},
			Required: []string{"id", "member_id", "source", "target", "created_at"},
		},
		"LoginRequest": {
			Type: "object",
			Properties: map[string]Schema{
				"code": {Type: "string", Description: "GitHub OAuth authorization code"},
			},
			Required: []string{"code"},
		},
		"LoginResponse": {
			Type: "object",
			Properties: map[string]Schema{
				"access_token": {Type: "string", Description: "Bearer token for the favorites endpoints"},
			},
			Required: []string{"access_token"},
		},
	}
}

// ---------------------------------------------------------------------------
// File writers
// ---------------------------------------------------------------------------

func writeJSON(spec OpenAPI, path string) error {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func writeYAML(spec OpenAPI, path string) error {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("marshal YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// generate writes both files into outDir and returns their paths.
func generate(outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", outDir, err)
	}

	spec := buildSpec()
	jsonPath := filepath.Join(outDir, "swagger.json")
	if err := writeJSON(spec, jsonPath); err != nil {
		return nil, err
	}
	yamlPath := filepath.Join(outDir, "swagger.yaml")
	if err := writeYAML(spec, yamlPath); err != nil {
		return nil, err
	}
	return []string{jsonPath, yamlPath}, nil
}

func main() {
	_, src, _, _ := runtime.Caller(0)
	outDir := flag.String("out", filepath.Join(filepath.Dir(src), "..", "..", "api"), "output directory")
	flag.Parse()

	paths, err := generate(*outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "swaggergen: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Swagger specs generated:\n  %s\n  %s\n", paths[0], paths[1])
}
