package services

import (
	"context"
	"strings"

	"HospitalHub/models"
	"HospitalHub/store"
	"HospitalHub/util"

	"github.com/rs/zerolog/log"
)

type DoctorService struct {
	doctors store.Doctors
}

func NewDoctorService(doctors store.Doctors) *DoctorService {
	return &DoctorService{doctors: doctors}
}

func (s *DoctorService) Create(ctx context.Context, in models.DoctorInput) (*models.Doctor, error) {
	d := &models.Doctor{}
	d.Apply(in)
	if err := s.doctors.Insert(ctx, d); err != nil {
		log.Error().Err(err).Msg("Error from doctor insert")
		return nil, err
	}
	return d, nil
}

func (s *DoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	return s.doctors.List(ctx, store.ListLimit)
}

func (s *DoctorService) Get(ctx context.Context, doctorID string) (*models.Doctor, error) {
	id, err := util.ParseID(doctorID, util.INVALID_DOCTOR_ID)
	if err != nil {
		return nil, err
	}
	return s.doctors.FindByID(ctx, id)
}

func (s *DoctorService) Update(ctx context.Context, doctorID string, in models.DoctorInput) (*models.Doctor, error) {
	id, err := util.ParseID(doctorID, util.INVALID_DOCTOR_ID)
	if err != nil {
		return nil, err
	}
	return s.doctors.Replace(ctx, id, in)
}

func (s *DoctorService) Delete(ctx context.Context, doctorID string) error {
	id, err := util.ParseID(doctorID, util.INVALID_DOCTOR_ID)
	if err != nil {
		return err
	}
	return s.doctors.Delete(ctx, id)
}

func (s *DoctorService) Search(ctx context.Context, query string) ([]models.Doctor, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, util.InvalidArgument("%s", util.QUERY_NOT_PROVIDED)
	}
	return s.doctors.Search(ctx, query, store.SearchLimit)
}
