package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"HospitalHub/models"
	"HospitalHub/store"
	memstore "HospitalHub/store/memory"
	"HospitalHub/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ptr[T any](v T) *T { return &v }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func seedPatient(t *testing.T, st *store.Store, name string) *models.Patient {
	t.Helper()
	p := &models.Patient{Name: name, Age: 30, Gender: "F", Contact: "555", Address: "1 Main St"}
	require.NoError(t, st.Patients.Insert(context.Background(), p))
	return p
}

func seedDoctor(t *testing.T, st *store.Store, name string) *models.Doctor {
	t.Helper()
	d := &models.Doctor{Name: name, Specialization: "Cardiology", Contact: "555", Email: "doc@example.com"}
	require.NoError(t, st.Doctors.Insert(context.Background(), d))
	return d
}

// failingPatients fails every lookup with a store fault.
type failingPatients struct {
	store.Patients
	err error
}

func (f failingPatients) FindByID(context.Context, primitive.ObjectID) (*models.Patient, error) {
	return nil, f.err
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func TestPatientService_CreateAssignsAdmissionDate(t *testing.T) {
	st := memstore.New()
	now := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)
	svc := NewPatientService(st.Patients, nil, fixedClock(now))

	p, err := svc.Create(context.Background(), models.PatientInput{Name: "Ada", Age: 36, Gender: "F", Contact: "555", Address: "x"})
	require.NoError(t, err)
	assert.False(t, p.ID.IsZero())
	assert.True(t, now.Equal(p.AdmissionDate))
}

func TestPatientService_GetCachesAndUpdateEvicts(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	p := seedPatient(t, st, "Ada")
	key := util.PatientKey + p.ID.Hex()

	c := &mockCache{}
	c.On("Get", ctx, key, mock.Anything).Return(false, nil).Once()
	c.On("Set", ctx, key, mock.AnythingOfType("*models.Patient")).Return(nil).Once()
	c.On("Delete", ctx, key).Return(nil).Once()

	svc := NewPatientService(st.Patients, c, nil)
	got, err := svc.Get(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)

	_, err = svc.Update(ctx, p.ID.Hex(), models.PatientInput{Name: "Ada L", Gender: "F", Contact: "555", Address: "x"})
	require.NoError(t, err)
	c.AssertExpectations(t)
}

func TestPatientService_GetErrors(t *testing.T) {
	svc := NewPatientService(memstore.New().Patients, nil, nil)

	_, err := svc.Get(context.Background(), "not-an-id")
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
	assert.Equal(t, util.INVALID_PATIENT_ID, err.Error())

	_, err = svc.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestPatientService_SearchRequiresQuery(t *testing.T) {
	svc := NewPatientService(memstore.New().Patients, nil, nil)
	_, err := svc.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestParseAppointmentDate(t *testing.T) {
	for _, raw := range []string{
		"2024-03-10T14:30:00Z",
		"2024-03-10T14:30:00.123+02:00",
		"2024-03-10T14:30:00",
		"2024-03-10T14:30",
		"2024-03-10 14:30:00",
		"2024-03-10",
	} {
		_, err := ParseAppointmentDate(raw)
		assert.NoError(t, err, raw)
	}

	_, err := ParseAppointmentDate("10/03/2024")
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestAppointmentService_Create(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	p := seedPatient(t, st, "Ada")
	d := seedDoctor(t, st, "House")
	svc := NewAppointmentService(st.Appointments, st.Patients, st.Doctors)

	a, err := svc.Create(ctx, models.AppointmentInput{PatientID: p.ID.Hex(), DoctorID: d.ID.Hex(), Date: "2024-03-10T14:30:00"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusScheduled, a.Status)

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.Create(ctx, models.AppointmentInput{PatientID: p.ID.Hex(), DoctorID: d.ID.Hex(), Date: "2024-03-10", Status: "pending"})
		assert.ErrorIs(t, err, util.ErrInvalidArgument)
	})
	t.Run("malformed doctor id", func(t *testing.T) {
		_, err := svc.Create(ctx, models.AppointmentInput{PatientID: p.ID.Hex(), DoctorID: "bad", Date: "2024-03-10"})
		assert.ErrorIs(t, err, util.ErrInvalidArgument)
		assert.Equal(t, util.INVALID_DOCTOR_ID, err.Error())
	})
	t.Run("unknown patient", func(t *testing.T) {
		_, err := svc.Create(ctx, models.AppointmentInput{PatientID: primitive.NewObjectID().Hex(), DoctorID: d.ID.Hex(), Date: "2024-03-10"})
		assert.ErrorIs(t, err, util.ErrNotFound)
	})

	byPatient, err := svc.ListByPatient(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, byPatient, 1)
}

func TestAppointmentService_UpdateAllowsAnyTransition(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	p := seedPatient(t, st, "Ada")
	d := seedDoctor(t, st, "House")
	svc := NewAppointmentService(st.Appointments, st.Patients, st.Doctors)

	a, err := svc.Create(ctx, models.AppointmentInput{PatientID: p.ID.Hex(), DoctorID: d.ID.Hex(), Date: "2024-03-10", Status: models.StatusCancelled})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, a.ID.Hex(), models.AppointmentInput{PatientID: p.ID.Hex(), DoctorID: d.ID.Hex(), Date: "2024-03-11", Status: models.StatusScheduled})
	require.NoError(t, err)
	assert.Equal(t, a.ID, updated.ID)
	assert.Equal(t, models.StatusScheduled, updated.Status)
}

func TestDetailsService_CreateOncePerPatient(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	p := seedPatient(t, st, "Ada")
	svc := NewDetailsService(st.PatientDetails, st.Patients)

	in := models.PatientDetailsInput{PatientID: p.ID.Hex(), Allergies: []string{"penicillin"}}
	_, err := svc.Create(ctx, in)
	require.NoError(t, err)

	_, err = svc.Create(ctx, in)
	assert.ErrorIs(t, err, util.ErrConflict)
	assert.Equal(t, util.PATIENT_DETAILS_ALREADY_EXIST, err.Error())

	_, err = svc.Create(ctx, models.PatientDetailsInput{PatientID: primitive.NewObjectID().Hex()})
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestHistoryService_AddRecord(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	p := seedPatient(t, st, "Ada")
	d := seedDoctor(t, st, "House")
	now := time.Date(2024, 2, 2, 10, 0, 0, 0, time.UTC)
	svc := NewHistoryService(st.PatientHistory, st.Patients, st.Doctors, fixedClock(now))

	h, err := svc.AddRecord(ctx, p.ID.Hex(), models.MedicalRecord{Diagnosis: ptr("flu"), AttendingDoctorID: ptr(d.ID.Hex())})
	require.NoError(t, err)
	require.Len(t, h.MedicalRecords, 1)
	assert.True(t, now.Equal(h.MedicalRecords[0].Date))

	h, err = svc.AddRecord(ctx, p.ID.Hex(), models.MedicalRecord{Diagnosis: ptr("cold")})
	require.NoError(t, err)
	require.Len(t, h.MedicalRecords, 2)
	assert.Equal(t, "flu", *h.MedicalRecords[0].Diagnosis)
	assert.Equal(t, "cold", *h.MedicalRecords[1].Diagnosis)

	t.Run("malformed patient id", func(t *testing.T) {
		_, err := svc.AddRecord(ctx, "nope", models.MedicalRecord{})
		assert.ErrorIs(t, err, util.ErrInvalidArgument)
	})
	t.Run("unknown attending doctor", func(t *testing.T) {
		_, err := svc.AddRecord(ctx, p.ID.Hex(), models.MedicalRecord{AttendingDoctorID: ptr(primitive.NewObjectID().Hex())})
		assert.ErrorIs(t, err, util.ErrNotFound)
	})
	t.Run("malformed attending doctor id is kept as text", func(t *testing.T) {
		h, err := svc.AddRecord(ctx, p.ID.Hex(), models.MedicalRecord{AttendingDoctorID: ptr("dr-house")})
		require.NoError(t, err)
		assert.Equal(t, "dr-house", *h.MedicalRecords[len(h.MedicalRecords)-1].AttendingDoctorID)
	})
}

func TestHistoryService_CreateConflictsWithExisting(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	p := seedPatient(t, st, "Ada")
	svc := NewHistoryService(st.PatientHistory, st.Patients, st.Doctors, nil)

	h, err := svc.Create(ctx, models.PatientHistoryInput{PatientID: p.ID.Hex()})
	require.NoError(t, err)
	assert.NotNil(t, h.MedicalRecords)

	_, err = svc.Create(ctx, models.PatientHistoryInput{PatientID: p.ID.Hex()})
	assert.ErrorIs(t, err, util.ErrConflict)
}

func TestSummaryService_FullSummary(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	p := seedPatient(t, st, "Ada")
	svc := NewSummaryService(st, nil)

	got, err := svc.FullSummary(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.Patient.ID)
	assert.Nil(t, got.Details)
	assert.Nil(t, got.History)
	assert.NotNil(t, got.Appointments)
	assert.Empty(t, got.Appointments)

	_, err = st.PatientHistory.AppendRecord(ctx, p.ID.Hex(), models.MedicalRecord{Diagnosis: ptr("flu")})
	require.NoError(t, err)
	got, err = svc.FullSummary(ctx, p.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, got.History)
	assert.Len(t, got.History.MedicalRecords, 1)

	_, err = svc.FullSummary(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.Equal(t, util.PATIENT_NOT_FOUND, err.Error())
}

func TestSummaryService_FullSummaryCapsAppointments(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	p := seedPatient(t, st, "Ada")
	for i := 0; i < SummaryAppointmentsLimit+5; i++ {
		require.NoError(t, st.Appointments.Insert(ctx, &models.Appointment{PatientID: p.ID.Hex(), Status: models.StatusScheduled}))
	}

	got, err := NewSummaryService(st, nil).FullSummary(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, got.Appointments, SummaryAppointmentsLimit)
}

func TestDayBounds_MonthEnd(t *testing.T) {
	start, end := DayBounds(time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC))
	assert.True(t, start.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)), start)
	assert.True(t, end.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)), end)
}

func TestSummaryService_DashboardStats(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	p := seedPatient(t, st, "Ada")
	seedDoctor(t, st, "House")

	now := time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)
	for _, a := range []models.Appointment{
		{PatientID: p.ID.Hex(), Date: time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC), Status: models.StatusScheduled},
		{PatientID: p.ID.Hex(), Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Status: models.StatusScheduled},
		{PatientID: p.ID.Hex(), Date: time.Date(2024, 1, 30, 9, 0, 0, 0, time.UTC), Status: models.StatusCompleted},
	} {
		require.NoError(t, st.Appointments.Insert(ctx, &a))
	}

	stats, err := NewSummaryService(st, fixedClock(now)).DashboardStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalPatients)
	assert.EqualValues(t, 1, stats.TotalDoctors)
	assert.EqualValues(t, 3, stats.TotalAppointments)
	assert.Equal(t, map[string]int64{"scheduled": 2, "completed": 1}, stats.AppointmentsByStatus)
	require.Len(t, stats.TodaysAppointments, 1)
	assert.Equal(t, 9, stats.TodaysAppointments[0].Date.Hour())
	assert.Len(t, stats.RecentPatients, 1)
}

func TestSummaryService_RecentPatientsCapped(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		require.NoError(t, st.Patients.Insert(ctx, &models.Patient{Name: fmt.Sprint(i), AdmissionDate: base.AddDate(0, 0, i)}))
	}
	stats, err := NewSummaryService(st, nil).DashboardStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats.RecentPatients, RecentPatientsLimit)
	assert.Equal(t, "7", stats.RecentPatients[0].Name)
}

func TestContextService_PatientContext(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	p := &models.Patient{Name: "Ada", Age: 36, Gender: "F", BloodType: ptr("O+"), MedicalHistory: ptr("asthma")}
	require.NoError(t, st.Patients.Insert(ctx, p))

	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	for i := 1; i <= 5; i++ {
		_, err := st.PatientHistory.AppendRecord(ctx, p.ID.Hex(), models.MedicalRecord{
			Date:      base.AddDate(0, 0, i),
			Diagnosis: ptr(fmt.Sprintf("d%d", i)),
		})
		require.NoError(t, err)
	}

	got := NewContextService(st.Patients, st.PatientHistory).PatientContext(ctx, p.ID.Hex())
	want := "Patient: Ada, Age: 36, Gender: F" +
		"\nMedical History: asthma" +
		"\nBlood Type: O+" +
		"\nRecent medical records:" +
		"\n- Date: 2024-05-04 09:00:00, Diagnosis: d3, Treatment: No treatment" +
		"\n- Date: 2024-05-05 09:00:00, Diagnosis: d4, Treatment: No treatment" +
		"\n- Date: 2024-05-06 09:00:00, Diagnosis: d5, Treatment: No treatment"
	assert.Equal(t, want, got)
}

func TestContextService_KeepsAppendOrder(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	p := seedPatient(t, st, "Ada")

	// appended newest first, then an old record last
	dates := []time.Time{
		time.Date(2024, 5, 9, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 7, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		_, err := st.PatientHistory.AppendRecord(ctx, p.ID.Hex(), models.MedicalRecord{
			Date:      d,
			Diagnosis: ptr(fmt.Sprintf("d%d", i+1)),
			Treatment: ptr("rest"),
		})
		require.NoError(t, err)
	}

	got := NewContextService(st.Patients, st.PatientHistory).PatientContext(ctx, p.ID.Hex())
	want := "Patient: Ada, Age: 30, Gender: F" +
		"\nRecent medical records:" +
		"\n- Date: 2024-05-07 09:00:00, Diagnosis: d3, Treatment: rest" +
		"\n- Date: 2024-05-06 09:00:00, Diagnosis: d4, Treatment: rest" +
		"\n- Date: 2023-01-01 09:00:00, Diagnosis: d5, Treatment: rest"
	assert.Equal(t, want, got)
}

func TestContextService_NotFoundAndDegraded(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()

	svc := NewContextService(st.Patients, st.PatientHistory)
	assert.Equal(t, PatientNotInRecords, svc.PatientContext(ctx, primitive.NewObjectID().Hex()))
	assert.Equal(t, PatientNotInRecords, svc.PatientContext(ctx, "garbage"))

	broken := NewContextService(failingPatients{err: errors.New("connection refused")}, st.PatientHistory)
	got := broken.PatientContext(ctx, primitive.NewObjectID().Hex())
	assert.Equal(t, "Limited patient information available. Error: connection refused", got)
}

func TestContextService_NoHistory(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	p := seedPatient(t, st, "Ada")

	got := NewContextService(st.Patients, st.PatientHistory).PatientContext(ctx, p.ID.Hex())
	assert.Equal(t, "Patient: Ada, Age: 30, Gender: F", got)
}
