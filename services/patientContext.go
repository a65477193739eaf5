package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"HospitalHub/ai"
	"HospitalHub/store"
	"HospitalHub/util"
)

const (
	RecentRecordsInContext = 3
	PatientNotInRecords    = "Patient not found in records."
)

// ContextService turns a patient's stored data into a short briefing for
// the assistant. It never fails.
type ContextService struct {
	patients  store.Patients
	histories store.PatientHistory
}

func NewContextService(patients store.Patients, histories store.PatientHistory) *ContextService {
	return &ContextService{patients: patients, histories: histories}
}

/*
* Unknown or malformed ids yield the fixed not-found sentence
* Core fields first, then blood type and history summary when present
* Then the last three appended records in append order
* Any lookup failure degrades to a note that information is limited
 */
func (s *ContextService) PatientContext(ctx context.Context, patientID string) string {
	return ai.Recover("patient.context", func() (string, error) {
		return s.build(ctx, patientID)
	}, func(err error) string {
		return fmt.Sprintf("Limited patient information available. Error: %v", err)
	})
}

func (s *ContextService) build(ctx context.Context, patientID string) (string, error) {
	if !util.IsValidID(patientID) {
		return PatientNotInRecords, nil
	}
	id, _ := util.ParseID(patientID, util.INVALID_PATIENT_ID)
	patient, err := s.patients.FindByID(ctx, id)
	if errors.Is(err, util.ErrNotFound) {
		return PatientNotInRecords, nil
	}
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Patient: %s, Age: %d, Gender: %s", patient.Name, patient.Age, patient.Gender)
	if patient.MedicalHistory != nil && *patient.MedicalHistory != "" {
		fmt.Fprintf(&b, "\nMedical History: %s", *patient.MedicalHistory)
	}
	if patient.BloodType != nil && *patient.BloodType != "" {
		fmt.Fprintf(&b, "\nBlood Type: %s", *patient.BloodType)
	}

	history, err := s.histories.FindByPatient(ctx, patientID)
	if errors.Is(err, util.ErrNotFound) {
		return b.String(), nil
	}
	if err != nil {
		return "", err
	}
	records := history.MedicalRecords
	if len(records) == 0 {
		return b.String(), nil
	}
	if len(records) > RecentRecordsInContext {
		records = records[len(records)-RecentRecordsInContext:]
	}
	b.WriteString("\nRecent medical records:")
	for _, rec := range records {
		date := "Unknown date"
		if !rec.Date.IsZero() {
			date = rec.Date.Format("2006-01-02 15:04:05")
		}
		diagnosis := "No diagnosis"
		if rec.Diagnosis != nil {
			diagnosis = *rec.Diagnosis
		}
		treatment := "No treatment"
		if rec.Treatment != nil {
			treatment = *rec.Treatment
		}
		fmt.Fprintf(&b, "\n- Date: %s, Diagnosis: %s, Treatment: %s", date, diagnosis, treatment)
	}
	return b.String(), nil
}
