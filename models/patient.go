package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PatientInput holds the client-writable patient fields.
type PatientInput struct {
	Name           string  `json:"name" bson:"name" binding:"required"`
	Age            int     `json:"age" bson:"age" binding:"gte=0"`
	Gender         string  `json:"gender" bson:"gender" binding:"required"`
	Contact        string  `json:"contact" bson:"contact" binding:"required"`
	Address        string  `json:"address" bson:"address" binding:"required"`
	BloodType      *string `json:"blood_type" bson:"blood_type"`
	MedicalHistory *string `json:"medical_history" bson:"medical_history"`
}

type Patient struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Age            int                `json:"age" bson:"age"`
	Gender         string             `json:"gender" bson:"gender"`
	Contact        string             `json:"contact" bson:"contact"`
	Address        string             `json:"address" bson:"address"`
	BloodType      *string            `json:"blood_type" bson:"blood_type"`
	MedicalHistory *string            `json:"medical_history" bson:"medical_history"`
	AdmissionDate  time.Time          `json:"admission_date" bson:"admission_date"`
}

// Apply copies the writable fields onto p. AdmissionDate is left untouched.
func (p *Patient) Apply(in PatientInput) {
	p.Name = in.Name
	p.Age = in.Age
	p.Gender = in.Gender
	p.Contact = in.Contact
	p.Address = in.Address
	p.BloodType = in.BloodType
	p.MedicalHistory = in.MedicalHistory
}
