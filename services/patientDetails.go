package services

import (
	"context"

	"HospitalHub/models"
	"HospitalHub/store"
	"HospitalHub/util"

	"github.com/rs/zerolog/log"
)

type DetailsService struct {
	details  store.PatientDetails
	patients store.Patients
}

func NewDetailsService(details store.PatientDetails, patients store.Patients) *DetailsService {
	return &DetailsService{details: details, patients: patients}
}

/*
* The patient must exist
* The insert itself rejects a second details document for the same patient
 */
func (s *DetailsService) Create(ctx context.Context, in models.PatientDetailsInput) (*models.PatientDetails, error) {
	id, err := util.ParseID(in.PatientID, util.INVALID_PATIENT_ID)
	if err != nil {
		return nil, err
	}
	if _, err := s.patients.FindByID(ctx, id); err != nil {
		return nil, err
	}
	d := &models.PatientDetails{PatientID: in.PatientID}
	d.Apply(in)
	if err := s.details.Insert(ctx, d); err != nil {
		log.Error().Err(err).Str("patient_id", in.PatientID).Msg("Error from patient details insert")
		return nil, err
	}
	return d, nil
}

func (s *DetailsService) Get(ctx context.Context, patientID string) (*models.PatientDetails, error) {
	if !util.IsValidID(patientID) {
		return nil, util.InvalidArgument("%s", util.INVALID_PATIENT_ID)
	}
	return s.details.FindByPatient(ctx, patientID)
}

// Update replaces the details of patientID; the patient_id in the body is ignored.
func (s *DetailsService) Update(ctx context.Context, patientID string, in models.PatientDetailsInput) (*models.PatientDetails, error) {
	if !util.IsValidID(patientID) {
		return nil, util.InvalidArgument("%s", util.INVALID_PATIENT_ID)
	}
	return s.details.Replace(ctx, patientID, in)
}
