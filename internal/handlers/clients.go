package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rombit/repair-tracker/internal/db"
	"github.com/rombit/repair-tracker/internal/models"
)

// ClientHandler serves client CRUD plus the cross-collection client views
// and the cascading client delete.
type ClientHandler struct {
	clients db.ClientCollection
	devices db.DeviceCollection
	repairs db.RepairCollection
}

// NewClientHandler creates a new client handler.
func NewClientHandler(clients db.ClientCollection, devices db.DeviceCollection, repairs db.RepairCollection) *ClientHandler {
	return &ClientHandler{
		clients: clients,
		devices: devices,
		repairs: repairs,
	}
}

// Create inserts a new client.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	client.ID = primitive.NilObjectID

	id, err := h.clients.InsertClient(r.Context(), client)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create client")
		return
	}
	client.ID = id
	respondJSON(w, http.StatusCreated, client)
}

// List returns all clients.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.FindClients(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list clients")
		return
	}
	respondJSON(w, http.StatusOK, clients)
}

// Get returns one client by ID.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client ID format")
		return
	}
	client, err := h.clients.FindClientByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "client not found")
		return
	}
	respondJSON(w, http.StatusOK, client)
}

// Update sets the client's mutable fields.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client ID format")
		return
	}
	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	modified, err := h.clients.UpdateClient(r.Context(), id, client)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update client")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":       "client updated",
		"modifiedCount": modified,
	})
}

// Delete removes a client together with its devices and their jobs. Jobs go
// first, then devices, then the client, so a concurrent read never sees a
// device whose jobs still dangle.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client ID format")
		return
	}

	devices, err := h.devices.FindDevicesByClient(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list client devices")
		return
	}

	var jobsDeleted, devicesDeleted int64
	if len(devices) > 0 {
		deviceIDs := make([]primitive.ObjectID, len(devices))
		for i, device := range devices {
			deviceIDs[i] = device.ID
		}
		jobsDeleted, err = h.repairs.DeleteRepairsByDevice(r.Context(), deviceIDs)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to delete client jobs")
			return
		}
		devicesDeleted, err = h.devices.DeleteDevicesByID(r.Context(), deviceIDs)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to delete client devices")
			return
		}
	}

	clientsDeleted, err := h.clients.DeleteClient(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete client")
		return
	}
	if clientsDeleted == 0 {
		respondError(w, http.StatusNotFound, "client not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":        "client and related records deleted",
		"clientsDeleted": clientsDeleted,
		"devicesDeleted": devicesDeleted,
		"jobsDeleted":    jobsDeleted,
	})
}

// ListWithDevices returns every client with its devices attached.
func (h *ClientHandler) ListWithDevices(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.FindClients(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list clients")
		return
	}

	out := []models.ClientWithDevices{}
	for _, client := range clients {
		devices, err := h.devices.FindDevicesByClient(r.Context(), client.ID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to list devices")
			return
		}
		out = append(out, models.ClientWithDevices{Client: client, Devices: devices})
	}
	respondJSON(w, http.StatusOK, out)
}

// ListWithDevicesAndJobs returns every client with its devices and their
// open jobs. Completed jobs are filtered out, and devices left with no
// qualifying jobs are dropped from the view.
func (h *ClientHandler) ListWithDevicesAndJobs(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.FindClients(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list clients")
		return
	}

	out := []models.ClientWithDevicesAndJobs{}
	for _, client := range clients {
		devices, err := h.devices.FindDevicesByClient(r.Context(), client.ID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to list devices")
			return
		}
		withJobs := []models.DeviceWithJobs{}
		for _, device := range devices {
			jobs, err := h.repairs.FindRepairsByDevice(r.Context(), device.ID, models.StatusCompleted)
			if err != nil {
				respondError(w, http.StatusInternalServerError, "failed to list jobs")
				return
			}
			if len(jobs) > 0 {
				withJobs = append(withJobs, models.DeviceWithJobs{Device: device, Jobs: jobs})
			}
		}
		out = append(out, models.ClientWithDevicesAndJobs{Client: client, Devices: withJobs})
	}
	respondJSON(w, http.StatusOK, out)
}

// DevicesAndJobs returns one client with its devices and jobs.
// excludeStatus filters jobs by status; devices with no qualifying jobs are
// dropped unless includeWithoutJobs=true.
func (h *ClientHandler) DevicesAndJobs(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["clientId"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client ID format")
		return
	}
	excludeStatus := models.Status(r.URL.Query().Get("excludeStatus"))
	includeWithoutJobs := r.URL.Query().Get("includeWithoutJobs") == "true"

	client, err := h.clients.FindClientByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "client not found")
		return
	}

	devices, err := h.devices.FindDevicesByClient(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list devices")
		return
	}

	withJobs := []models.DeviceWithJobs{}
	for _, device := range devices {
		jobs, err := h.repairs.FindRepairsByDevice(r.Context(), device.ID, excludeStatus)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to list jobs")
			return
		}
		if len(jobs) > 0 || includeWithoutJobs {
			withJobs = append(withJobs, models.DeviceWithJobs{Device: device, Jobs: jobs})
		}
	}

	respondJSON(w, http.StatusOK, models.ClientWithDevicesAndJobs{Client: *client, Devices: withJobs})
}

// Details returns the flattened, sorted job rows for one client. ExitDate
// is only reported for jobs that reached the terminal stage.
func (h *ClientHandler) Details(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client ID format")
		return
	}
	client, err := h.clients.FindClientByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "client not found")
		return
	}

	devices, err := h.devices.FindDevicesByClient(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list devices")
		return
	}

	rows := []models.JobDetail{}
	for _, device := range devices {
		jobs, err := h.repairs.FindRepairsByDevice(r.Context(), device.ID, "")
		if err != nil {
			log.WithError(err).WithField("device_id", device.ID.Hex()).Error("failed to list jobs for device")
			respondError(w, http.StatusInternalServerError, "failed to list jobs")
			return
		}
		for _, job := range jobs {
			row := models.NewJobDetail(job, device, *client)
			if !job.Status.Terminal() {
				row.ExitDate = nil
			}
			rows = append(rows, row)
		}
	}

	models.SortJobDetails(rows)
	respondJSON(w, http.StatusOK, rows)
}
