package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VitalSigns struct {
	Temperature      *float64 `json:"temperature" bson:"temperature"`
	BloodPressure    *string  `json:"blood_pressure" bson:"blood_pressure"`
	HeartRate        *int     `json:"heart_rate" bson:"heart_rate"`
	RespiratoryRate  *int     `json:"respiratory_rate" bson:"respiratory_rate"`
	OxygenSaturation *float64 `json:"oxygen_saturation" bson:"oxygen_saturation"`
	GlucoseLevel     *float64 `json:"glucose_level" bson:"glucose_level"`
}

// MedicalRecord is embedded in PatientHistory and never edited once appended.
type MedicalRecord struct {
	Date              time.Time   `json:"date" bson:"date"`
	Diagnosis         *string     `json:"diagnosis" bson:"diagnosis"`
	Treatment         *string     `json:"treatment" bson:"treatment"`
	Medication        []string    `json:"medication" bson:"medication"`
	Notes             *string     `json:"notes" bson:"notes"`
	VitalSigns        *VitalSigns `json:"vital_signs" bson:"vital_signs"`
	AttendingDoctorID *string     `json:"attending_doctor_id" bson:"attending_doctor_id"`
}

type PatientHistoryInput struct {
	PatientID      string          `json:"patient_id" binding:"required"`
	MedicalRecords []MedicalRecord `json:"medical_records"`
}

type PatientHistory struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PatientID      string             `json:"patient_id" bson:"patient_id"`
	MedicalRecords []MedicalRecord    `json:"medical_records" bson:"medical_records"`
}
