package handlers

import (
	"github.com/gorilla/mux"

	"github.com/rombit/repair-tracker/internal/auth"
	"github.com/rombit/repair-tracker/internal/config"
	"github.com/rombit/repair-tracker/internal/db"
	"github.com/rombit/repair-tracker/internal/middleware"
)

// NewRouter wires every route. Token issuance and the root endpoint are
// open; everything else sits behind the bearer gate.
func NewRouter(store *db.Store, authService *auth.Service, cfg *config.Config) *mux.Router {
	tokens := NewTokenHandler(authService, cfg.MongoURI)
	clients := NewClientHandler(store.Clients, store.Devices, store.Repairs)
	devices := NewDeviceHandler(store.Clients, store.Devices, store.Repairs)
	repairs := NewRepairHandler(store.Clients, store.Devices, store.Repairs, store.Counters, cfg.CodePrefix)

	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Logging)

	r.HandleFunc("/", tokens.Root).Methods("GET")
	r.HandleFunc("/get-token", tokens.GetToken).Methods("GET")

	api := r.PathPrefix("/").Subrouter()
	api.Use(middleware.NewAuthMiddleware(authService).Authenticate)

	api.HandleFunc("/protected", tokens.Protected).Methods("GET")
	api.HandleFunc("/refresh-token", tokens.RefreshToken).Methods("GET")

	api.HandleFunc("/clients", clients.Create).Methods("POST")
	api.HandleFunc("/clients", clients.List).Methods("GET")
	api.HandleFunc("/clients/{id}", clients.Get).Methods("GET")
	api.HandleFunc("/clients/{id}", clients.Update).Methods("PUT")
	api.HandleFunc("/clients/{id}", clients.Delete).Methods("DELETE")
	api.HandleFunc("/clients-with-devices", clients.ListWithDevices).Methods("GET")
	api.HandleFunc("/clients-with-devices-and-jobs", clients.ListWithDevicesAndJobs).Methods("GET")
	api.HandleFunc("/client/{clientId}/devices-and-jobs", clients.DevicesAndJobs).Methods("GET")
	api.HandleFunc("/client-details/{id}", clients.Details).Methods("GET")

	api.HandleFunc("/devices", devices.Create).Methods("POST")
	api.HandleFunc("/devices", devices.List).Methods("GET")
	api.HandleFunc("/devices/{id}", devices.Get).Methods("GET")
	api.HandleFunc("/devices/{id}", devices.Update).Methods("PUT")
	api.HandleFunc("/devices/{id}", devices.Delete).Methods("DELETE")

	api.HandleFunc("/repairs", repairs.Create).Methods("POST")
	api.HandleFunc("/repairs", repairs.List).Methods("GET")
	api.HandleFunc("/repairs/{id}", repairs.Get).Methods("GET")
	api.HandleFunc("/repairs/{id}", repairs.Update).Methods("PUT")
	api.HandleFunc("/repairs/{id}", repairs.Delete).Methods("DELETE")
	api.HandleFunc("/repairs_status/{id}", repairs.UpdateStatus).Methods("PUT")
	api.HandleFunc("/repairs_get_infos/{jobId}", repairs.GetInfos).Methods("GET")
	api.HandleFunc("/repair-jobs", repairs.ListExpanded).Methods("GET")

	return r
}
