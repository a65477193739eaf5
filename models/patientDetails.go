package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PatientDetailsInput struct {
	PatientID         string                 `json:"patient_id" bson:"-" binding:"required"`
	EmergencyContact  *string                `json:"emergency_contact" bson:"emergency_contact"`
	InsuranceInfo     map[string]interface{} `json:"insurance_info" bson:"insurance_info"`
	Allergies         []string               `json:"allergies" bson:"allergies"`
	CurrentMedication []string               `json:"current_medication" bson:"current_medication"`
}

type PatientDetails struct {
	ID                primitive.ObjectID     `json:"_id" bson:"_id,omitempty"`
	PatientID         string                 `json:"patient_id" bson:"patient_id"`
	EmergencyContact  *string                `json:"emergency_contact" bson:"emergency_contact"`
	InsuranceInfo     map[string]interface{} `json:"insurance_info" bson:"insurance_info"`
	Allergies         []string               `json:"allergies" bson:"allergies"`
	CurrentMedication []string               `json:"current_medication" bson:"current_medication"`
}

// Apply replaces every field except the owning patient id.
func (d *PatientDetails) Apply(in PatientDetailsInput) {
	d.EmergencyContact = in.EmergencyContact
	d.InsuranceInfo = in.InsuranceInfo
	d.Allergies = in.Allergies
	d.CurrentMedication = in.CurrentMedication
}
