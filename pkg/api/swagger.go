package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/swaggo/swag"
	"gopkg.in/yaml.v3"
)

// SwaggerInstance is the name the generated docs package registers under.
const SwaggerInstance = "swagger"

// GetSwaggerSpec returns the registered OpenAPI document as JSON.
func GetSwaggerSpec(instance string) ([]byte, error) {
	doc, err := swag.ReadDoc(instance)
	if err != nil {
		return nil, err
	}
	return []byte(doc), nil
}

// GetSwaggerSpecAsYAML returns the registered OpenAPI document converted to YAML.
func GetSwaggerSpecAsYAML(instance string) ([]byte, error) {
	doc, err := GetSwaggerSpec(instance)
	if err != nil {
		return nil, err
	}
	var spec interface{}
	if err := json.Unmarshal(doc, &spec); err != nil {
		return nil, err
	}
	return yaml.Marshal(spec)
}

// SwaggerHandler serves the OpenAPI document. JSON by default, YAML when asked for.
func SwaggerHandler(instance string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Accept"), "yaml") || r.URL.Query().Get("format") == "yaml" {
			body, err := GetSwaggerSpecAsYAML(instance)
			if err != nil {
				Error(w, http.StatusInternalServerError, "Failed to render API docs")
				return
			}
			w.Header().Set("Content-Type", "application/yaml")
			w.Write(body)
			return
		}

		body, err := GetSwaggerSpec(instance)
		if err != nil {
			Error(w, http.StatusInternalServerError, "Failed to render API docs")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}
}

// SwaggerUIHandler serves Swagger UI pointed at specURL.
func SwaggerUIHandler(specURL string) http.HandlerFunc {
	page := `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Logistic Intel API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.9.0/swagger-ui.css">
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5.9.0/swagger-ui-bundle.js"></script>
    <script>
        window.onload = function() {
            window.ui = SwaggerUIBundle({
                url: "` + specURL + `",
                dom_id: '#swagger-ui',
                deepLinking: true
            });
        };
    </script>
</body>
</html>`
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}
}
