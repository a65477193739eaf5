package services

import (
	"context"
	"errors"
	"time"

	"HospitalHub/models"
	"HospitalHub/store"
	"HospitalHub/util"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	RecentPatientsLimit      = 5
	SummaryAppointmentsLimit = 100
)

// SummaryService composes views over several collections. The reads are
// independent and not transactional, so a result may mix states from
// slightly different moments.
type SummaryService struct {
	store *store.Store
	now   func() time.Time
}

func NewSummaryService(s *store.Store, now func() time.Time) *SummaryService {
	if now == nil {
		now = time.Now
	}
	return &SummaryService{store: s, now: now}
}

/*
* The patient must exist; everything else is optional
* Details and history are fetched alongside the appointments
* A missing details or history document becomes nil in the summary
 */
func (s *SummaryService) FullSummary(ctx context.Context, patientID string) (*models.FullSummary, error) {
	id, err := util.ParseID(patientID, util.INVALID_PATIENT_ID)
	if err != nil {
		return nil, err
	}
	patient, err := s.store.Patients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := &models.FullSummary{Patient: patient, Appointments: []models.Appointment{}}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := s.store.PatientDetails.FindByPatient(gctx, patientID)
		if errors.Is(err, util.ErrNotFound) {
			return nil
		}
		summary.Details = d
		return err
	})
	g.Go(func() error {
		h, err := s.store.PatientHistory.FindByPatient(gctx, patientID)
		if errors.Is(err, util.ErrNotFound) {
			return nil
		}
		summary.History = h
		return err
	})
	g.Go(func() error {
		appts, err := s.store.Appointments.ListByPatient(gctx, patientID, SummaryAppointmentsLimit)
		if err != nil {
			return err
		}
		summary.Appointments = appts
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("patient_id", patientID).Msg("Error composing full summary")
		return nil, err
	}
	return summary, nil
}

// DayBounds returns the start of the calendar day containing t and the
// start of the following day, both in t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

/*
* Six independent reads: three counts, the status grouping,
* the most recent admissions and today's appointments
* The figures are a point-in-time approximation, not a consistent snapshot
 */
func (s *SummaryService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	today, tomorrow := DayBounds(s.now())
	stats := &models.DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalPatients, err = s.store.Patients.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalDoctors, err = s.store.Doctors.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalAppointments, err = s.store.Appointments.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.AppointmentsByStatus, err = s.store.Appointments.CountByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.RecentPatients, err = s.store.Patients.Recent(gctx, RecentPatientsLimit)
		return err
	})
	g.Go(func() (err error) {
		stats.TodaysAppointments, err = s.store.Appointments.ListBetween(gctx, today, tomorrow, store.ListLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Error computing dashboard stats")
		return nil, err
	}
	return stats, nil
}
