package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RouterOptions configures the contact module routes.
type RouterOptions struct {
	// Submit handles the form endpoint. Required.
	Submit http.Handler
	// Services serves the service list. Defaults to ServicesHandler.
	Services http.Handler
}

// Router creates the contact module router. Mount it at /api/contact:
//
//	r := chi.NewRouter()
//	r.Mount("/api/contact", contact.Router(contact.RouterOptions{
//	    Submit: contact.NewHandler(limiter, dispatcher),
//	}))
//
// The form endpoint is registered for every method so that non-POST requests
// get the module's JSON 405 reply.
func Router(opts RouterOptions) chi.Router {
	if opts.Submit == nil {
		panic("contact.Router: nil submit handler")
	}
	if opts.Services == nil {
		opts.Services = ServicesHandler()
	}

	r := chi.NewRouter()
	r.Handle("/", opts.Submit)
	r.Get("/services", opts.Services.ServeHTTP)
	return r
}
