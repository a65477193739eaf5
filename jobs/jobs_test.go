package jobs

import (
	"context"
	"testing"
	"time"

	"HospitalHub/models"
	"HospitalHub/services"
	memstore "HospitalHub/store/memory"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySnapshotSpec_Parses(t *testing.T) {
	sched, err := cron.ParseStandard(DailySnapshotSpec)
	require.NoError(t, err)
	next := sched.Next(time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC))
	assert.True(t, next.Equal(time.Date(2024, 2, 1, 0, 5, 0, 0, time.UTC)), next)
}

func TestStartDailyScheduler(t *testing.T) {
	st := memstore.New()
	require.NoError(t, st.Patients.Insert(context.Background(), &models.Patient{Name: "Ada"}))
	summary := services.NewSummaryService(st, nil)

	c, err := StartDailyScheduler(summary)
	require.NoError(t, err)
	defer c.Stop()
	assert.Len(t, c.Entries(), 1)

	RunDailySnapshot(context.Background(), summary)
}
