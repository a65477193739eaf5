// Package store declares the document collections used by the services.
// Each repository operates on exactly one collection; lookups of a missing
// document return an error wrapping util.ErrNotFound.
package store

import (
	"context"
	"time"

	"HospitalHub/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// SearchLimit caps free-text search results.
	SearchLimit = 20
	// ListLimit caps unfiltered listings.
	ListLimit = 1000
)

type Patients interface {
	Insert(ctx context.Context, p *models.Patient) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Patient, error)
	List(ctx context.Context, limit int) ([]models.Patient, error)
	Replace(ctx context.Context, id primitive.ObjectID, in models.PatientInput) (*models.Patient, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	// Recent returns the most recently admitted patients, newest first.
	Recent(ctx context.Context, limit int) ([]models.Patient, error)
	// Search matches name, contact and address case-insensitively.
	Search(ctx context.Context, query string, limit int) ([]models.Patient, error)
}

type Doctors interface {
	Insert(ctx context.Context, d *models.Doctor) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error)
	List(ctx context.Context, limit int) ([]models.Doctor, error)
	Replace(ctx context.Context, id primitive.ObjectID, in models.DoctorInput) (*models.Doctor, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	// Search matches name, specialization and email case-insensitively.
	Search(ctx context.Context, query string, limit int) ([]models.Doctor, error)
}

type Appointments interface {
	Insert(ctx context.Context, a *models.Appointment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	List(ctx context.Context, limit int) ([]models.Appointment, error)
	Replace(ctx context.Context, id primitive.ObjectID, a *models.Appointment) (*models.Appointment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	ListByPatient(ctx context.Context, patientID string, limit int) ([]models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string, limit int) ([]models.Appointment, error)
	// ListBetween returns appointments dated in [from, to).
	ListBetween(ctx context.Context, from, to time.Time, limit int) ([]models.Appointment, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type PatientDetails interface {
	// Insert fails with util.ErrConflict when the patient already has details.
	Insert(ctx context.Context, d *models.PatientDetails) error
	FindByPatient(ctx context.Context, patientID string) (*models.PatientDetails, error)
	Replace(ctx context.Context, patientID string, in models.PatientDetailsInput) (*models.PatientDetails, error)
}

type PatientHistory interface {
	// Insert fails with util.ErrConflict when the patient already has a history.
	Insert(ctx context.Context, h *models.PatientHistory) error
	FindByPatient(ctx context.Context, patientID string) (*models.PatientHistory, error)
	// AppendRecord pushes rec onto the patient's history, creating the
	// history when none exists, and returns the whole document afterwards.
	AppendRecord(ctx context.Context, patientID string, rec models.MedicalRecord) (*models.PatientHistory, error)
}

type Staff interface {
	// Insert fails with util.ErrConflict when the username is taken.
	Insert(ctx context.Context, s *models.Staff) error
	FindByUsername(ctx context.Context, username string) (*models.Staff, error)
}

// Store bundles the repositories backed by one connection.
type Store struct {
	Patients       Patients
	Doctors        Doctors
	Appointments   Appointments
	PatientDetails PatientDetails
	PatientHistory PatientHistory
	Staff          Staff

	closer func(context.Context) error
}

func New(p Patients, d Doctors, a Appointments, pd PatientDetails, ph PatientHistory, s Staff, closer func(context.Context) error) *Store {
	return &Store{
		Patients:       p,
		Doctors:        d,
		Appointments:   a,
		PatientDetails: pd,
		PatientHistory: ph,
		Staff:          s,
		closer:         closer,
	}
}

func (s *Store) Close(ctx context.Context) error {
	if s.closer == nil {
		return nil
	}
	return s.closer(ctx)
}
