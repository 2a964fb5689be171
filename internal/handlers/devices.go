package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rombit/repair-tracker/internal/db"
	"github.com/rombit/repair-tracker/internal/models"
)

// DeviceHandler serves device CRUD and the device cascade delete.
type DeviceHandler struct {
	clients db.ClientCollection
	devices db.DeviceCollection
	repairs db.RepairCollection
}

// NewDeviceHandler creates a new device handler.
func NewDeviceHandler(clients db.ClientCollection, devices db.DeviceCollection, repairs db.RepairCollection) *DeviceHandler {
	return &DeviceHandler{
		clients: clients,
		devices: devices,
		repairs: repairs,
	}
}

// deviceRequest is the create/update body. The owning client is referenced
// by its hex identifier.
type deviceRequest struct {
	ClientID string `json:"clientId"`
	Type     string `json:"type"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Serial   string `json:"serial"`
}

// Create inserts a new device. The owning client must exist.
func (h *DeviceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req deviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	clientID, err := primitive.ObjectIDFromHex(req.ClientID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client ID format")
		return
	}
	if _, err := h.clients.FindClientByID(r.Context(), clientID); err != nil {
		respondError(w, http.StatusNotFound, "client not found")
		return
	}

	device := models.Device{
		ClientID: clientID,
		Type:     req.Type,
		Brand:    req.Brand,
		Model:    req.Model,
		Serial:   req.Serial,
	}
	id, err := h.devices.InsertDevice(r.Context(), device)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create device")
		return
	}
	device.ID = id
	respondJSON(w, http.StatusCreated, device)
}

// List returns all devices.
func (h *DeviceHandler) List(w http.ResponseWriter, r *http.Request) {
	devices, err := h.devices.FindDevices(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list devices")
		return
	}
	respondJSON(w, http.StatusOK, devices)
}

// Get returns one device by ID.
func (h *DeviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid device ID format")
		return
	}
	device, err := h.devices.FindDeviceByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "device not found")
		return
	}
	respondJSON(w, http.StatusOK, device)
}

// Update sets the device's mutable fields. An omitted clientId leaves the
// owner reference unchanged.
func (h *DeviceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid device ID format")
		return
	}
	var req deviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	device := models.Device{
		Type:   req.Type,
		Brand:  req.Brand,
		Model:  req.Model,
		Serial: req.Serial,
	}
	if req.ClientID != "" {
		clientID, err := primitive.ObjectIDFromHex(req.ClientID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid client ID format")
			return
		}
		device.ClientID = clientID
	}

	modified, err := h.devices.UpdateDevice(r.Context(), id, device)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update device")
		return
	}
	if modified == 0 {
		respondError(w, http.StatusNotFound, "device not found or data unchanged")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":       "device updated",
		"modifiedCount": modified,
	})
}

// Delete removes a device and every job referencing it. The existence check
// gates the cascade: when the device is absent no job is touched.
func (h *DeviceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid device ID format")
		return
	}

	devicesDeleted, err := h.devices.DeleteDevice(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete device")
		return
	}
	if devicesDeleted == 0 {
		respondError(w, http.StatusNotFound, "device not found")
		return
	}

	jobsDeleted, err := h.repairs.DeleteRepairsByDevice(r.Context(), []primitive.ObjectID{id})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete related jobs")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":             "device and related jobs deleted successfully",
		"deviceDeletionCount": devicesDeleted,
		"jobsDeletionCount":   jobsDeleted,
	})
}
