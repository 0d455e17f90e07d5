package handlers

import "net/http"

// The real dashboard front-end is deployed separately and consumes the
// JSON API; this shell only keeps the root route from 404ing.
const indexHTML = `<!DOCTYPE html>
<html>
<head><title>Music API Dashboard</title></head>
<body>
<h1>Music API Dashboard</h1>
<p>The dashboard UI is served by the front-end deployment. This service exposes the JSON API under /api.</p>
</body>
</html>
`

// Index handles GET /
func Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(indexHTML))
}
