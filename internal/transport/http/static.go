package http

import (
	"net/http"

	"github.com/TrulyNimz/PayPal-Gateway-Api/web"
)

// StaticHandler serves the embedded checkout client (index, success and
// cancel pages plus their assets).
func StaticHandler() http.Handler {
	return http.FileServer(http.FS(web.Files))
}
