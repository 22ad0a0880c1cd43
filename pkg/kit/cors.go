package kit

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS wraps h with the browser policy for the storefront client. An empty
// origin list allows any origin, which is what local development wants.
func CORS(origins []string, h http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Content-Type", "X-Session-ID"},
		AllowCredentials: true,
	}).Handler(h)
}
