package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorInput struct {
	Name           string                 `json:"name" bson:"name" binding:"required"`
	Specialization string                 `json:"specialization" bson:"specialization" binding:"required"`
	Contact        string                 `json:"contact" bson:"contact" binding:"required"`
	Email          string                 `json:"email" bson:"email" binding:"required"`
	Schedule       map[string]interface{} `json:"schedule" bson:"schedule"`
}

type Doctor struct {
	ID             primitive.ObjectID     `json:"_id" bson:"_id,omitempty"`
	Name           string                 `json:"name" bson:"name"`
	Specialization string                 `json:"specialization" bson:"specialization"`
	Contact        string                 `json:"contact" bson:"contact"`
	Email          string                 `json:"email" bson:"email"`
	Schedule       map[string]interface{} `json:"schedule" bson:"schedule"`
}

func (d *Doctor) Apply(in DoctorInput) {
	d.Name = in.Name
	d.Specialization = in.Specialization
	d.Contact = in.Contact
	d.Email = in.Email
	d.Schedule = in.Schedule
}
