package services

import (
	"context"
	"strings"
	"time"

	"HospitalHub/cache"
	"HospitalHub/models"
	"HospitalHub/store"
	"HospitalHub/util"

	"github.com/rs/zerolog/log"
)

type PatientService struct {
	patients store.Patients
	cache    cache.Cache
	now      func() time.Time
}

func NewPatientService(patients store.Patients, c cache.Cache, now func() time.Time) *PatientService {
	if c == nil {
		c = cache.Noop{}
	}
	if now == nil {
		now = time.Now
	}
	return &PatientService{patients: patients, cache: c, now: now}
}

/*
* Admission date is assigned here and never taken from the request
* Insert and return the stored document
 */
func (s *PatientService) Create(ctx context.Context, in models.PatientInput) (*models.Patient, error) {
	p := &models.Patient{AdmissionDate: s.now()}
	p.Apply(in)
	if err := s.patients.Insert(ctx, p); err != nil {
		log.Error().Err(err).Msg("Error from patient insert")
		return nil, err
	}
	return p, nil
}

func (s *PatientService) List(ctx context.Context) ([]models.Patient, error) {
	return s.patients.List(ctx, store.ListLimit)
}

/*
* Validate the id before touching the store
* Serve from cache when present
* Otherwise read the store and cache the document
 */
func (s *PatientService) Get(ctx context.Context, patientID string) (*models.Patient, error) {
	id, err := util.ParseID(patientID, util.INVALID_PATIENT_ID)
	if err != nil {
		return nil, err
	}
	key := util.PatientKey + patientID

	var cached models.Patient
	if ok, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Error from cache get")
	} else if ok {
		return &cached, nil
	}

	p, err := s.patients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, p); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Error from cache set")
	}
	return p, nil
}

// Update replaces every writable field. The cached copy is dropped so the
// next read sees the new document.
func (s *PatientService) Update(ctx context.Context, patientID string, in models.PatientInput) (*models.Patient, error) {
	id, err := util.ParseID(patientID, util.INVALID_PATIENT_ID)
	if err != nil {
		return nil, err
	}
	p, err := s.patients.Replace(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.evict(ctx, patientID)
	return p, nil
}

// Delete removes the patient only. Details, history and appointments that
// reference it are left in place.
func (s *PatientService) Delete(ctx context.Context, patientID string) error {
	id, err := util.ParseID(patientID, util.INVALID_PATIENT_ID)
	if err != nil {
		return err
	}
	if err := s.patients.Delete(ctx, id); err != nil {
		return err
	}
	s.evict(ctx, patientID)
	return nil
}

func (s *PatientService) Search(ctx context.Context, query string) ([]models.Patient, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, util.InvalidArgument("%s", util.QUERY_NOT_PROVIDED)
	}
	return s.patients.Search(ctx, query, store.SearchLimit)
}

func (s *PatientService) evict(ctx context.Context, patientID string) {
	if err := s.cache.Delete(ctx, util.PatientKey+patientID); err != nil {
		log.Warn().Err(err).Str("patient_id", patientID).Msg("Error deleting patient cache")
	}
}
