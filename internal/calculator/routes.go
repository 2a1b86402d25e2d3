package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the JSON calculator endpoints onto the given router
// under the /calculator prefix.
func RegisterRoutes(r chi.Router) {
	r.Route("/calculator", func(r chi.Router) {
		r.Post("/{operation}", Operate)
	})
}
