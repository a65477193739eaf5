package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// AppointmentInput is the request body for create and update. Date is kept
// as text so a malformed value can be reported as a bad argument.
type AppointmentInput struct {
	PatientID string            `json:"patient_id" binding:"required"`
	DoctorID  string            `json:"doctor_id" binding:"required"`
	Date      string            `json:"date" binding:"required"`
	Status    AppointmentStatus `json:"status"`
	Notes     *string           `json:"notes"`
}

type Appointment struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PatientID string             `json:"patient_id" bson:"patient_id"`
	DoctorID  string             `json:"doctor_id" bson:"doctor_id"`
	Date      time.Time          `json:"date" bson:"date"`
	Status    AppointmentStatus  `json:"status" bson:"status"`
	Notes     *string            `json:"notes" bson:"notes"`
}
