package services

import (
	"context"
	"time"

	"HospitalHub/models"
	"HospitalHub/store"
	"HospitalHub/util"

	"github.com/rs/zerolog/log"
)

// Accepted appointment date layouts. Layouts without a zone are read in
// server local time.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func ParseAppointmentDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, util.InvalidArgument("%s", util.INVALID_DATE_FORMAT)
}

type AppointmentService struct {
	appointments store.Appointments
	patients     store.Patients
	doctors      store.Doctors
}

func NewAppointmentService(appointments store.Appointments, patients store.Patients, doctors store.Doctors) *AppointmentService {
	return &AppointmentService{appointments: appointments, patients: patients, doctors: doctors}
}

/*
* Check both identifiers are well formed
* Check the status and the date
* Only then look up the patient and the doctor
 */
func (s *AppointmentService) build(ctx context.Context, in models.AppointmentInput) (*models.Appointment, error) {
	patientID, err := util.ParseID(in.PatientID, util.INVALID_PATIENT_ID)
	if err != nil {
		return nil, err
	}
	doctorID, err := util.ParseID(in.DoctorID, util.INVALID_DOCTOR_ID)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = models.StatusScheduled
	}
	if !status.Valid() {
		return nil, util.InvalidArgument(util.INVALID_STATUS, status)
	}
	date, err := ParseAppointmentDate(in.Date)
	if err != nil {
		return nil, err
	}

	if _, err := s.patients.FindByID(ctx, patientID); err != nil {
		log.Error().Err(err).Str("patient_id", in.PatientID).Msg("Error from patient lookup")
		return nil, err
	}
	if _, err := s.doctors.FindByID(ctx, doctorID); err != nil {
		log.Error().Err(err).Str("doctor_id", in.DoctorID).Msg("Error from doctor lookup")
		return nil, err
	}
	return &models.Appointment{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Date:      date,
		Status:    status,
		Notes:     in.Notes,
	}, nil
}

func (s *AppointmentService) Create(ctx context.Context, in models.AppointmentInput) (*models.Appointment, error) {
	a, err := s.build(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.appointments.Insert(ctx, a); err != nil {
		log.Error().Err(err).Msg("Error from appointment insert")
		return nil, err
	}
	return a, nil
}

func (s *AppointmentService) List(ctx context.Context) ([]models.Appointment, error) {
	return s.appointments.List(ctx, store.ListLimit)
}

func (s *AppointmentService) Get(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	id, err := util.ParseID(appointmentID, util.INVALID_APPOINTMENT_ID)
	if err != nil {
		return nil, err
	}
	return s.appointments.FindByID(ctx, id)
}

// Update replaces the appointment. Any status may follow any other.
func (s *AppointmentService) Update(ctx context.Context, appointmentID string, in models.AppointmentInput) (*models.Appointment, error) {
	id, err := util.ParseID(appointmentID, util.INVALID_APPOINTMENT_ID)
	if err != nil {
		return nil, err
	}
	a, err := s.build(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.appointments.Replace(ctx, id, a)
}

func (s *AppointmentService) Delete(ctx context.Context, appointmentID string) error {
	id, err := util.ParseID(appointmentID, util.INVALID_APPOINTMENT_ID)
	if err != nil {
		return err
	}
	return s.appointments.Delete(ctx, id)
}

func (s *AppointmentService) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	if !util.IsValidID(patientID) {
		return nil, util.InvalidArgument("%s", util.INVALID_PATIENT_ID)
	}
	return s.appointments.ListByPatient(ctx, patientID, store.ListLimit)
}

func (s *AppointmentService) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	if !util.IsValidID(doctorID) {
		return nil, util.InvalidArgument("%s", util.INVALID_DOCTOR_ID)
	}
	return s.appointments.ListByDoctor(ctx, doctorID, store.ListLimit)
}
