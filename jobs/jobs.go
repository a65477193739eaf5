package jobs

import (
	"context"
	"time"

	"HospitalHub/services"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// DailySnapshotSpec runs every day at 00:05 server time.
const DailySnapshotSpec = "5 0 * * *"

/*
* Register the daily dashboard snapshot
* Start the scheduler and hand it back so shutdown can stop it
 */
func StartDailyScheduler(summary *services.SummaryService) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(DailySnapshotSpec, func() {
		log.Info().Msg("Running daily dashboard snapshot...")
		RunDailySnapshot(context.Background(), summary)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

// RunDailySnapshot logs the dashboard figures for the new day.
func RunDailySnapshot(ctx context.Context, summary *services.SummaryService) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	stats, err := summary.DashboardStats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error from DashboardStats in daily snapshot")
		return
	}
	evt := log.Info().
		Int64("total_patients", stats.TotalPatients).
		Int64("total_doctors", stats.TotalDoctors).
		Int64("total_appointments", stats.TotalAppointments).
		Int("todays_appointments", len(stats.TodaysAppointments))
	for status, n := range stats.AppointmentsByStatus {
		evt = evt.Int64("status_"+status, n)
	}
	evt.Msg("daily dashboard snapshot")
}
