// Package server assembles the HTTP surface: routes, access gate, request
// logging and the API documentation endpoints.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/gestionpme/api-gestion/internal/auth"
	"github.com/gestionpme/api-gestion/internal/customer"
	"github.com/gestionpme/api-gestion/internal/material"
	"github.com/gestionpme/api-gestion/internal/sale"
	"github.com/gestionpme/api-gestion/internal/ticket"
	"github.com/gestionpme/api-gestion/internal/user"
)

// Deps groups everything the router needs.
type Deps struct {
	Gate       *auth.Gate
	JWTEnabled bool
	Users      *user.Handler
	Customers  *customer.Handler
	Materials  *material.Handler
	Sales      *sale.Handler
	Tickets    *ticket.Handler
	Logger     *zap.Logger
}

// New builds the /api router wrapped by the access gate and, when a logger
// is given, the request logger.
func New(d Deps) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/login", d.Users.Login).Methods(http.MethodPost)
	api.HandleFunc("/config/jwt", auth.ConfigHandler(d.JWTEnabled)).Methods(http.MethodGet)
	api.HandleFunc("/doc", DocHandler).Methods(http.MethodGet)
	api.HandleFunc("/doc.json", DocJSONHandler).Methods(http.MethodGet)

	api.HandleFunc("/utilisateur/ping", d.Users.Ping).Methods(http.MethodGet)
	api.HandleFunc("/material/ping", d.Materials.Ping).Methods(http.MethodGet)

	api.HandleFunc("/utilisateur", d.Users.List).Methods(http.MethodGet)
	api.HandleFunc("/utilisateur", d.Users.Create).Methods(http.MethodPost)
	api.HandleFunc("/utilisateur/{id:[0-9]+}", d.Users.Get).Methods(http.MethodGet)
	api.HandleFunc("/utilisateur/{id:[0-9]+}", d.Users.Update).Methods(http.MethodPut)
	api.HandleFunc("/utilisateur/{id:[0-9]+}", d.Users.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/client", d.Customers.List).Methods(http.MethodGet)
	api.HandleFunc("/client", d.Customers.Create).Methods(http.MethodPost)
	api.HandleFunc("/client/{id:[0-9]+}", d.Customers.Get).Methods(http.MethodGet)
	api.HandleFunc("/client/{id:[0-9]+}", d.Customers.Update).Methods(http.MethodPut)
	api.HandleFunc("/client/{id:[0-9]+}", d.Customers.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/material", d.Materials.List).Methods(http.MethodGet)
	api.HandleFunc("/material", d.Materials.Create).Methods(http.MethodPost)
	api.HandleFunc("/material/{id:[0-9]+}", d.Materials.Get).Methods(http.MethodGet)
	api.HandleFunc("/material/{id:[0-9]+}", d.Materials.Update).Methods(http.MethodPut)
	api.HandleFunc("/material/{id:[0-9]+}", d.Materials.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/sale", d.Sales.List).Methods(http.MethodGet)
	api.HandleFunc("/sale", d.Sales.Create).Methods(http.MethodPost)
	api.HandleFunc("/sale/{id:[0-9]+}", d.Sales.Get).Methods(http.MethodGet)
	api.HandleFunc("/sale/{id:[0-9]+}", d.Sales.Update).Methods(http.MethodPut)
	api.HandleFunc("/sale/{id:[0-9]+}", d.Sales.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/ticket", d.Tickets.List).Methods(http.MethodGet)
	api.HandleFunc("/ticket", d.Tickets.Create).Methods(http.MethodPost)
	api.HandleFunc("/ticket/{id:[0-9]+}", d.Tickets.Get).Methods(http.MethodGet)
	api.HandleFunc("/ticket/{id:[0-9]+}", d.Tickets.Update).Methods(http.MethodPut)
	api.HandleFunc("/ticket/{id:[0-9]+}", d.Tickets.Delete).Methods(http.MethodDelete)

	var h http.Handler = r
	h = d.Gate.Middleware(h)
	if d.Logger != nil {
		h = RequestLogger(d.Logger)(h)
	}
	return h
}
