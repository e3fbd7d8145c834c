package api

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
)

// adminTag marks operations that are only registered with AdminRoutes
const adminTag = "admin"

// RegisterDocsRoutes serves the API documentation next to the API itself:
//
//	GET /             redirect to /docs
//	GET /docs         Swagger UI
//	GET /docs/openapi the OpenAPI document as JSON
//
// Admin operations are left out of the published document unless adminRoutes
// is set, so the docs list exactly what the router serves.
func RegisterDocsRoutes(mux *http.ServeMux, doc *openapi3.T, adminRoutes bool) error {
	published := doc
	if !adminRoutes {
		published = withoutAdminOperations(doc)
	}

	body, err := published.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode OpenAPI document: %w", err)
	}
	sum := sha256.Sum256(body)
	etag := `"` + hex.EncodeToString(sum[:8]) + `"`

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs", http.StatusMovedPermanently)
	})
	mux.HandleFunc("GET /docs", handleSwaggerUI)
	mux.HandleFunc("GET /docs/openapi", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("ETag", etag)
		http.ServeContent(w, r, "openapi.json", time.Time{}, bytes.NewReader(body))
	})
	return nil
}

// withoutAdminOperations returns a copy of doc without operations tagged admin.
// doc itself is left untouched since request validation shares it.
func withoutAdminOperations(doc *openapi3.T) *openapi3.T {
	pruned := *doc
	pruned.Paths = openapi3.NewPaths()
	pruned.Paths.Extensions = doc.Paths.Extensions

	for path, item := range doc.Paths.Map() {
		kept := *item
		for method, op := range item.Operations() {
			if slices.Contains(op.Tags, adminTag) {
				kept.SetOperation(method, nil)
			}
		}
		if len(kept.Operations()) > 0 {
			pruned.Paths.Set(path, &kept)
		}
	}
	return &pruned
}

func handleSwaggerUI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(swaggerUIHTML)) //nolint:errcheck // Nothing useful to do if write fails
}

// swaggerUIHTML stamps a fresh Idempotency-Key on signup and transfer calls
// made from "Try it out", unless the caller filled one in.
const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Minibank API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body style="margin: 0">
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    const idempotentPaths = ['/signup', '/transfer'];
    window.onload = () => {
      SwaggerUIBundle({
        url: '/docs/openapi',
        dom_id: '#swagger-ui',
        deepLinking: true,
        displayRequestDuration: true,
        requestInterceptor: (req) => {
          const path = new URL(req.url, window.location.origin).pathname;
          if (req.method === 'POST' && idempotentPaths.includes(path) && !req.headers['Idempotency-Key']) {
            req.headers['Idempotency-Key'] = crypto.randomUUID();
          }
          return req;
        },
      });
    };
  </script>
</body>
</html>`
