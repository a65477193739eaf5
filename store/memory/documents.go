package memstore

import (
	"context"

	"HospitalHub/models"
	"HospitalHub/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type patientDetails struct{ *db }

func (r *patientDetails) find(patientID string) *models.PatientDetails {
	for _, d := range r.details {
		if d.PatientID == patientID {
			return d
		}
	}
	return nil
}

func (r *patientDetails) Insert(_ context.Context, d *models.PatientDetails) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.find(d.PatientID) != nil {
		return util.Conflict("%s", util.PATIENT_DETAILS_ALREADY_EXIST)
	}
	d.ID = primitive.NewObjectID()
	cp := *d
	r.details = append(r.details, &cp)
	return nil
}

func (r *patientDetails) FindByPatient(_ context.Context, patientID string) (*models.PatientDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := r.find(patientID)
	if d == nil {
		return nil, util.NotFound("%s", util.PATIENT_DETAILS_NOT_FOUND)
	}
	cp := *d
	return &cp, nil
}

func (r *patientDetails) Replace(_ context.Context, patientID string, in models.PatientDetailsInput) (*models.PatientDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := r.find(patientID)
	if d == nil {
		return nil, util.NotFound("%s", util.PATIENT_DETAILS_NOT_FOUND)
	}
	d.Apply(in)
	cp := *d
	return &cp, nil
}

type patientHistory struct{ *db }

func (r *patientHistory) find(patientID string) *models.PatientHistory {
	for _, h := range r.histories {
		if h.PatientID == patientID {
			return h
		}
	}
	return nil
}

func copyHistory(h *models.PatientHistory) *models.PatientHistory {
	cp := *h
	cp.MedicalRecords = append([]models.MedicalRecord{}, h.MedicalRecords...)
	return &cp
}

func (r *patientHistory) Insert(_ context.Context, h *models.PatientHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.find(h.PatientID) != nil {
		return util.Conflict("%s", util.PATIENT_HISTORY_ALREADY_EXIST)
	}
	h.ID = primitive.NewObjectID()
	if h.MedicalRecords == nil {
		h.MedicalRecords = []models.MedicalRecord{}
	}
	r.histories = append(r.histories, copyHistory(h))
	return nil
}

func (r *patientHistory) FindByPatient(_ context.Context, patientID string) (*models.PatientHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := r.find(patientID)
	if h == nil {
		return nil, util.NotFound("%s", util.PATIENT_HISTORY_NOT_FOUND)
	}
	return copyHistory(h), nil
}

func (r *patientHistory) AppendRecord(_ context.Context, patientID string, rec models.MedicalRecord) (*models.PatientHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := r.find(patientID)
	if h == nil {
		h = &models.PatientHistory{
			ID:             primitive.NewObjectID(),
			PatientID:      patientID,
			MedicalRecords: []models.MedicalRecord{},
		}
		r.histories = append(r.histories, h)
	}
	h.MedicalRecords = append(h.MedicalRecords, rec)
	return copyHistory(h), nil
}

type staff struct{ *db }

func (r *staff) Insert(_ context.Context, s *models.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.staff {
		if existing.Username == s.Username {
			return util.Conflict("%s", util.USERNAME_ALREADY_EXISTS)
		}
	}
	s.ID = primitive.NewObjectID()
	cp := *s
	r.staff = append(r.staff, &cp)
	return nil
}

func (r *staff) FindByUsername(_ context.Context, username string) (*models.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.staff {
		if s.Username == username {
			cp := *s
			return &cp, nil
		}
	}
	return nil, util.NotFound("%s", util.USER_NOT_FOUND)
}
