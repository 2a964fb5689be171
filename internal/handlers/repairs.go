package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rombit/repair-tracker/internal/db"
	"github.com/rombit/repair-tracker/internal/models"
)

// newEntitySentinel marks a client or device reference that should be
// created rather than resolved during job submission.
const newEntitySentinel = "new"

// RepairHandler serves the repair-job lifecycle: creation with implicit
// client/device resolution and code minting, updates, status transitions,
// and the expanded job listings.
type RepairHandler struct {
	clients    db.ClientCollection
	devices    db.DeviceCollection
	repairs    db.RepairCollection
	counters   db.CounterCollection
	codePrefix string
}

// NewRepairHandler creates a new repair handler. codePrefix prefixes every
// minted job code.
func NewRepairHandler(clients db.ClientCollection, devices db.DeviceCollection, repairs db.RepairCollection, counters db.CounterCollection, codePrefix string) *RepairHandler {
	return &RepairHandler{
		clients:    clients,
		devices:    devices,
		repairs:    repairs,
		counters:   counters,
		codePrefix: codePrefix,
	}
}

type clientRef struct {
	ID          string `json:"_id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

type deviceRef struct {
	ID     string `json:"_id"`
	Type   string `json:"type"`
	Brand  string `json:"brand"`
	Model  string `json:"model"`
	Serial string `json:"serial"`
}

type jobFields struct {
	ExitDate       *time.Time            `json:"exitDate"`
	EmergencyLevel models.EmergencyLevel `json:"emergencyLevel"`
	Status         models.Status         `json:"status"`
	Issue          string                `json:"issue"`
	Notes          string                `json:"notes"`
}

type repairRequest struct {
	Client clientRef `json:"client"`
	Device deviceRef `json:"device"`
	Job    jobFields `json:"job"`
}

// Create inserts a new repair job. A client or device referenced as "new"
// (or with no identifier) is created from the supplied fields; the device's
// owner is stamped with the resolved client. The job code is minted from
// the sequence counter, and entryDate is set to now.
func (h *RepairHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req repairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !req.Job.Status.Valid() {
		respondError(w, http.StatusBadRequest, "invalid status")
		return
	}
	if !req.Job.EmergencyLevel.Valid() {
		respondError(w, http.StatusBadRequest, "invalid emergency level")
		return
	}

	var clientID primitive.ObjectID
	if req.Client.ID == "" || req.Client.ID == newEntitySentinel {
		id, err := h.clients.InsertClient(r.Context(), models.Client{
			FirstName:   req.Client.FirstName,
			LastName:    req.Client.LastName,
			PhoneNumber: req.Client.PhoneNumber,
			Email:       req.Client.Email,
		})
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to create client")
			return
		}
		clientID = id
	} else {
		id, err := primitive.ObjectIDFromHex(req.Client.ID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid client ID format")
			return
		}
		clientID = id
	}

	var deviceID primitive.ObjectID
	if req.Device.ID == "" || req.Device.ID == newEntitySentinel {
		id, err := h.devices.InsertDevice(r.Context(), models.Device{
			ClientID: clientID,
			Type:     req.Device.Type,
			Brand:    req.Device.Brand,
			Model:    req.Device.Model,
			Serial:   req.Device.Serial,
		})
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to create device")
			return
		}
		deviceID = id
	} else {
		id, err := primitive.ObjectIDFromHex(req.Device.ID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid device ID format")
			return
		}
		deviceID = id
	}

	seq, err := h.counters.NextSequence(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate job code")
		return
	}

	job := models.Repair{
		DeviceID:       deviceID,
		EntryDate:      time.Now(),
		ExitDate:       req.Job.ExitDate,
		EmergencyLevel: req.Job.EmergencyLevel,
		Status:         req.Job.Status,
		UniqueCode:     h.codePrefix + strconv.FormatInt(seq, 10),
		Issue:          req.Job.Issue,
		Notes:          req.Job.Notes,
	}
	id, err := h.repairs.InsertRepair(r.Context(), job)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to add repair job")
		return
	}
	job.ID = id

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "repair job added successfully",
		"job":     job,
	})
}

// List returns all repair jobs unexpanded.
func (h *RepairHandler) List(w http.ResponseWriter, r *http.Request) {
	repairs, err := h.repairs.FindRepairs(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list repair jobs")
		return
	}
	respondJSON(w, http.StatusOK, repairs)
}

// Get returns one repair job by ID.
func (h *RepairHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid job ID format")
		return
	}
	job, err := h.repairs.FindRepairByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "repair job not found")
		return
	}
	respondJSON(w, http.StatusOK, job)
}

// Update rewrites a job's mutable fields. Unlike Create, the referenced
// client and device must already exist. entryDate and uniqueCode are never
// modified.
func (h *RepairHandler) Update(w http.ResponseWriter, r *http.Request) {
	jobID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid job ID format")
		return
	}
	var req repairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !req.Job.Status.Valid() {
		respondError(w, http.StatusBadRequest, "invalid status")
		return
	}
	if !req.Job.EmergencyLevel.Valid() {
		respondError(w, http.StatusBadRequest, "invalid emergency level")
		return
	}

	clientID, err := primitive.ObjectIDFromHex(req.Client.ID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client ID format")
		return
	}
	deviceID, err := primitive.ObjectIDFromHex(req.Device.ID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid device ID format")
		return
	}
	if _, err := h.clients.FindClientByID(r.Context(), clientID); err != nil {
		respondError(w, http.StatusNotFound, "client not found")
		return
	}
	if _, err := h.devices.FindDeviceByID(r.Context(), deviceID); err != nil {
		respondError(w, http.StatusNotFound, "device not found")
		return
	}

	matched, err := h.repairs.UpdateRepair(r.Context(), jobID, bson.M{
		"deviceID":       deviceID,
		"emergencyLevel": req.Job.EmergencyLevel,
		"status":         req.Job.Status,
		"issue":          req.Job.Issue,
		"notes":          req.Job.Notes,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update repair job")
		return
	}
	if matched == 0 {
		respondError(w, http.StatusNotFound, "repair job not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "repair job updated successfully"})
}

type statusRequest struct {
	Status   models.Status `json:"status"`
	ExitDate *time.Time    `json:"exitDate"`
}

// UpdateStatus sets a job's status. An explicitly supplied exitDate always
// wins; otherwise reaching the terminal status stamps exitDate with now,
// and any other transition leaves it untouched.
func (h *RepairHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid job ID format")
		return
	}
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !req.Status.Valid() {
		respondError(w, http.StatusBadRequest, "invalid status")
		return
	}

	fields := bson.M{"status": req.Status}
	if req.ExitDate != nil {
		fields["exitDate"] = *req.ExitDate
	} else if req.Status.Terminal() {
		fields["exitDate"] = time.Now()
	}

	matched, err := h.repairs.UpdateRepair(r.Context(), id, fields)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update repair job status")
		return
	}
	if matched == 0 {
		respondError(w, http.StatusNotFound, "repair job not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "repair job status updated successfully"})
}

// Delete removes one repair job.
func (h *RepairHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid job ID format")
		return
	}
	deleted, err := h.repairs.DeleteRepair(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete repair job")
		return
	}
	if deleted == 0 {
		respondError(w, http.StatusNotFound, "repair job not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "repair job deleted",
		"deletedCount": deleted,
	})
}

// GetInfos returns one job expanded with its device and the device's
// client. For this single-resource read a broken reference chain is a 404,
// unlike the listing where such jobs are skipped.
func (h *RepairHandler) GetInfos(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["jobId"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid job ID format")
		return
	}
	job, err := h.repairs.FindRepairByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "repair job not found")
		return
	}
	device, err := h.devices.FindDeviceByID(r.Context(), job.DeviceID)
	if err != nil {
		log.WithField("job_id", job.ID.Hex()).Warn("device not found for job")
		respondError(w, http.StatusNotFound, "device not found for job")
		return
	}
	client, err := h.clients.FindClientByID(r.Context(), device.ClientID)
	if err != nil {
		log.WithField("device_id", device.ID.Hex()).Warn("client not found for device")
		respondError(w, http.StatusNotFound, "client not found for device")
		return
	}
	respondJSON(w, http.StatusOK, models.NewJobDetail(*job, *device, *client))
}

// ListExpanded returns every job flattened with its device and client,
// sorted canonically. A job whose device or client is missing is skipped
// and logged, never surfaced as an error.
func (h *RepairHandler) ListExpanded(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.repairs.FindRepairs(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list repair jobs")
		return
	}

	details := []models.JobDetail{}
	for _, job := range jobs {
		device, err := h.devices.FindDeviceByID(r.Context(), job.DeviceID)
		if err != nil {
			log.WithField("job_id", job.ID.Hex()).Warn("device not found for job, skipping")
			continue
		}
		client, err := h.clients.FindClientByID(r.Context(), device.ClientID)
		if err != nil {
			log.WithField("device_id", device.ID.Hex()).Warn("client not found for device, skipping")
			continue
		}
		details = append(details, models.NewJobDetail(job, *device, *client))
	}

	models.SortJobDetails(details)
	respondJSON(w, http.StatusOK, details)
}
