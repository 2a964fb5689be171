package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is a stage in the linear repair progression. The wire values are
// the legacy "status1".."status5" vocabulary; StatusCompleted is terminal.
type Status string

const (
	StatusReceived  Status = "status1"
	StatusDiagnosed Status = "status2"
	StatusInRepair  Status = "status3"
	StatusReady     Status = "status4"
	StatusCompleted Status = "status5"
)

var statusRank = map[Status]int{
	StatusReceived:  1,
	StatusDiagnosed: 2,
	StatusInRepair:  3,
	StatusReady:     4,
	StatusCompleted: 5,
}

// Valid reports whether s belongs to the closed status enumeration.
func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Rank returns the stage position for sorting, 0 for unknown statuses.
func (s Status) Rank() int {
	return statusRank[s]
}

// Terminal reports whether s is the completed stage.
func (s Status) Terminal() bool {
	return s == StatusCompleted
}

// EmergencyLevel is the ordered urgency enumeration: Low < Medium < High.
type EmergencyLevel string

const (
	EmergencyLow    EmergencyLevel = "Low"
	EmergencyMedium EmergencyLevel = "Medium"
	EmergencyHigh   EmergencyLevel = "High"
)

var emergencyRank = map[EmergencyLevel]int{
	EmergencyLow:    1,
	EmergencyMedium: 2,
	EmergencyHigh:   3,
}

// Valid reports whether e belongs to the closed emergency enumeration.
func (e EmergencyLevel) Valid() bool {
	_, ok := emergencyRank[e]
	return ok
}

// Rank returns the urgency position for sorting, 0 for unknown levels.
func (e EmergencyLevel) Rank() int {
	return emergencyRank[e]
}

// Repair is a unit of repair work against one device. EntryDate and
// UniqueCode are set at creation and never modified afterwards; ExitDate is
// nil until the job reaches the terminal status.
type Repair struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	DeviceID       primitive.ObjectID `bson:"deviceID" json:"deviceID"`
	EntryDate      time.Time          `bson:"entryDate" json:"entryDate"`
	ExitDate       *time.Time         `bson:"exitDate" json:"exitDate"`
	EmergencyLevel EmergencyLevel     `bson:"emergencyLevel" json:"emergencyLevel"`
	Status         Status             `bson:"status" json:"status"`
	UniqueCode     string             `bson:"uniqueCode" json:"uniqueCode"`
	Issue          string             `bson:"issue" json:"issue"`
	Notes          string             `bson:"notes" json:"notes"`
}
