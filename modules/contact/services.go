package contact

import (
	"net/http"

	"github.com/devcodecare/site/handler"
)

// Service is the optional kind of work a visitor is asking about.
type Service string

const (
	ServiceWeb     Service = "web"
	ServiceMobile  Service = "mobile"
	ServiceSupport Service = "support"
	ServiceCloud   Service = "cloud"
	ServiceOther   Service = "other"
)

// ServiceOption pairs a service value with its display label.
type ServiceOption struct {
	Value Service `json:"value"`
	Label string  `json:"label"`
}

// ServiceOptions lists the selectable services in display order.
var ServiceOptions = []ServiceOption{
	{Value: ServiceWeb, Label: "Web Development"},
	{Value: ServiceMobile, Label: "Mobile App Development"},
	{Value: ServiceSupport, Label: "Maintenance & Support"},
	{Value: ServiceCloud, Label: "Cloud Solutions"},
	{Value: ServiceOther, Label: "Other"},
}

// ServiceValues returns the accepted service values as strings.
func ServiceValues() []string {
	values := make([]string, len(ServiceOptions))
	for i, o := range ServiceOptions {
		values[i] = string(o.Value)
	}
	return values
}

// Label returns the display label of s, or "" for unknown values.
func (s Service) Label() string {
	for _, o := range ServiceOptions {
		if o.Value == s {
			return o.Label
		}
	}
	return ""
}

// Valid reports whether s is one of ServiceOptions.
func (s Service) Valid() bool {
	return s.Label() != ""
}

type servicesResponse struct {
	Services []ServiceOption `json:"services"`
}

// ServicesHandler serves ServiceOptions so the client-side form can mirror
// the server's choices.
func ServicesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handler.Write(w, r, handler.JSON(servicesResponse{Services: ServiceOptions}), nil)
	}
}
