package models

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobDetail is a repair job flattened together with its device and the
// device's owning client, as returned by the expanded job listings.
type JobDetail struct {
	ID             primitive.ObjectID `json:"_id"`
	EntryDate      time.Time          `json:"entryDate"`
	ExitDate       *time.Time         `json:"exitDate"`
	EmergencyLevel EmergencyLevel     `json:"emergencyLevel"`
	Status         Status             `json:"status"`
	UniqueCode     string             `json:"uniqueCode"`
	Issue          string             `json:"issue"`
	Notes          string             `json:"notes"`

	DeviceID   primitive.ObjectID `json:"deviceID"`
	DeviceType string             `json:"deviceType"`
	Brand      string             `json:"brand"`
	Model      string             `json:"model"`
	Serial     string             `json:"serial"`

	ClientID        primitive.ObjectID `json:"clientID"`
	ClientName      string             `json:"clientName"`
	ClientFirstname string             `json:"clientFirstname"`
	ClientLastname  string             `json:"clientLastname"`
	ClientEmail     string             `json:"clientEmail"`
	ClientPhone     string             `json:"clientPhone"`
}

// NewJobDetail assembles the flattened record for one job, its device and
// the device's client.
func NewJobDetail(job Repair, device Device, client Client) JobDetail {
	return JobDetail{
		ID:              job.ID,
		EntryDate:       job.EntryDate,
		ExitDate:        job.ExitDate,
		EmergencyLevel:  job.EmergencyLevel,
		Status:          job.Status,
		UniqueCode:      job.UniqueCode,
		Issue:           job.Issue,
		Notes:           job.Notes,
		DeviceID:        device.ID,
		DeviceType:      device.Type,
		Brand:           device.Brand,
		Model:           device.Model,
		Serial:          device.Serial,
		ClientID:        client.ID,
		ClientName:      client.FullName(),
		ClientFirstname: client.FirstName,
		ClientLastname:  client.LastName,
		ClientEmail:     client.Email,
		ClientPhone:     client.PhoneNumber,
	}
}

// SortJobDetails applies the canonical listing order: earliest stage first,
// then higher emergency first when the tied stage is not terminal, then
// newest entry first.
func SortJobDetails(jobs []JobDetail) {
	sort.SliceStable(jobs, func(i, j int) bool {
		a, b := jobs[i], jobs[j]
		if a.Status.Rank() != b.Status.Rank() {
			return a.Status.Rank() < b.Status.Rank()
		}
		if !a.Status.Terminal() && a.EmergencyLevel.Rank() != b.EmergencyLevel.Rank() {
			return a.EmergencyLevel.Rank() > b.EmergencyLevel.Rank()
		}
		return a.EntryDate.After(b.EntryDate)
	})
}
