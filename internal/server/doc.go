package server

import (
	_ "embed"
	"io"
	"net/http"
)

//go:embed openapi.json
var openAPISpec []byte

const docPage = `<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="utf-8">
  <title>API Gestion - documentation</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({ url: "/api/doc.json", dom_id: "#swagger-ui" });
  </script>
</body>
</html>`

// DocHandler serves the Swagger UI page.
func DocHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, docPage)
}

// DocJSONHandler serves the raw OpenAPI document.
func DocJSONHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(openAPISpec)
}
