package services

import (
	"context"
	"time"

	"HospitalHub/models"
	"HospitalHub/store"
	"HospitalHub/util"

	"github.com/rs/zerolog/log"
)

type HistoryService struct {
	histories store.PatientHistory
	patients  store.Patients
	doctors   store.Doctors
	now       func() time.Time
}

func NewHistoryService(histories store.PatientHistory, patients store.Patients, doctors store.Doctors, now func() time.Time) *HistoryService {
	if now == nil {
		now = time.Now
	}
	return &HistoryService{histories: histories, patients: patients, doctors: doctors, now: now}
}

func (s *HistoryService) stamp(rec *models.MedicalRecord) {
	if rec.Date.IsZero() {
		rec.Date = s.now()
	}
}

// Create is the explicit one-time creation; a second call for the same
// patient fails with a conflict.
func (s *HistoryService) Create(ctx context.Context, in models.PatientHistoryInput) (*models.PatientHistory, error) {
	id, err := util.ParseID(in.PatientID, util.INVALID_PATIENT_ID)
	if err != nil {
		return nil, err
	}
	if _, err := s.patients.FindByID(ctx, id); err != nil {
		return nil, err
	}
	records := make([]models.MedicalRecord, len(in.MedicalRecords))
	for i, rec := range in.MedicalRecords {
		s.stamp(&rec)
		records[i] = rec
	}
	h := &models.PatientHistory{PatientID: in.PatientID, MedicalRecords: records}
	if err := s.histories.Insert(ctx, h); err != nil {
		log.Error().Err(err).Str("patient_id", in.PatientID).Msg("Error from patient history insert")
		return nil, err
	}
	return h, nil
}

func (s *HistoryService) Get(ctx context.Context, patientID string) (*models.PatientHistory, error) {
	if !util.IsValidID(patientID) {
		return nil, util.InvalidArgument("%s", util.INVALID_PATIENT_ID)
	}
	return s.histories.FindByPatient(ctx, patientID)
}

/*
* Reject a malformed patient id before any I/O
* A well formed attending doctor id must name an existing doctor
* Stamp the record with the current time when it has no date
* Append, creating the history on the first record, and return the full history
 */
func (s *HistoryService) AddRecord(ctx context.Context, patientID string, rec models.MedicalRecord) (*models.PatientHistory, error) {
	if !util.IsValidID(patientID) {
		return nil, util.InvalidArgument("%s", util.INVALID_PATIENT_ID)
	}
	if rec.AttendingDoctorID != nil && util.IsValidID(*rec.AttendingDoctorID) {
		doctorID, _ := util.ParseID(*rec.AttendingDoctorID, util.INVALID_DOCTOR_ID)
		if _, err := s.doctors.FindByID(ctx, doctorID); err != nil {
			log.Error().Err(err).Str("doctor_id", *rec.AttendingDoctorID).Msg("Error from attending doctor lookup")
			return nil, err
		}
	}
	s.stamp(&rec)

	h, err := s.histories.AppendRecord(ctx, patientID, rec)
	if err != nil {
		log.Error().Err(err).Str("patient_id", patientID).Msg("Error from append medical record")
		return nil, err
	}
	return h, nil
}
