// Package memstore is an in-process store with the same semantics as the
// MongoDB implementation. One mutex guards every collection, so each
// repository call is atomic.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"HospitalHub/models"
	"HospitalHub/store"
	"HospitalHub/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type db struct {
	mu           sync.Mutex
	patients     []*models.Patient
	doctors      []*models.Doctor
	appointments []*models.Appointment
	details      []*models.PatientDetails
	histories    []*models.PatientHistory
	staff        []*models.Staff
}

func New() *store.Store {
	d := &db{}
	return store.New(
		&patients{d}, &doctors{d}, &appointments{d},
		&patientDetails{d}, &patientHistory{d}, &staff{d},
		nil,
	)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func capped[T any](in []T, n int) []T {
	if n > 0 && len(in) > n {
		return in[:n]
	}
	return in
}

type patients struct{ *db }

func (r *patients) Insert(_ context.Context, p *models.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = primitive.NewObjectID()
	cp := *p
	r.patients = append(r.patients, &cp)
	return nil
}

func (r *patients) find(id primitive.ObjectID) *models.Patient {
	for _, p := range r.patients {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *patients) FindByID(_ context.Context, id primitive.ObjectID) (*models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.find(id)
	if p == nil {
		return nil, util.NotFound("%s", util.PATIENT_NOT_FOUND)
	}
	cp := *p
	return &cp, nil
}

func (r *patients) List(_ context.Context, n int) ([]models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Patient{}
	for _, p := range r.patients {
		out = append(out, *p)
	}
	return capped(out, n), nil
}

func (r *patients) Replace(_ context.Context, id primitive.ObjectID, in models.PatientInput) (*models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.find(id)
	if p == nil {
		return nil, util.NotFound("%s", util.PATIENT_NOT_FOUND)
	}
	p.Apply(in)
	cp := *p
	return &cp, nil
}

func (r *patients) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.patients {
		if p.ID == id {
			r.patients = append(r.patients[:i], r.patients[i+1:]...)
			return nil
		}
	}
	return util.NotFound("%s", util.PATIENT_NOT_FOUND)
}

func (r *patients) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.patients)), nil
}

func (r *patients) Recent(ctx context.Context, n int) ([]models.Patient, error) {
	all, _ := r.List(ctx, 0)
	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].AdmissionDate.Equal(all[j].AdmissionDate) {
			return all[i].AdmissionDate.After(all[j].AdmissionDate)
		}
		return all[i].ID.Hex() > all[j].ID.Hex()
	})
	return capped(all, n), nil
}

func (r *patients) Search(_ context.Context, query string, n int) ([]models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Patient{}
	for _, p := range r.patients {
		if containsFold(p.Name, query) || containsFold(p.Contact, query) || containsFold(p.Address, query) {
			out = append(out, *p)
		}
	}
	return capped(out, n), nil
}

type doctors struct{ *db }

func (r *doctors) Insert(_ context.Context, d *models.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d.ID = primitive.NewObjectID()
	cp := *d
	r.doctors = append(r.doctors, &cp)
	return nil
}

func (r *doctors) find(id primitive.ObjectID) *models.Doctor {
	for _, d := range r.doctors {
		if d.ID == id {
			return d
		}
	}
	return nil
}

func (r *doctors) FindByID(_ context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := r.find(id)
	if d == nil {
		return nil, util.NotFound("%s", util.DOCTOR_NOT_FOUND)
	}
	cp := *d
	return &cp, nil
}

func (r *doctors) List(_ context.Context, n int) ([]models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Doctor{}
	for _, d := range r.doctors {
		out = append(out, *d)
	}
	return capped(out, n), nil
}

func (r *doctors) Replace(_ context.Context, id primitive.ObjectID, in models.DoctorInput) (*models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := r.find(id)
	if d == nil {
		return nil, util.NotFound("%s", util.DOCTOR_NOT_FOUND)
	}
	d.Apply(in)
	cp := *d
	return &cp, nil
}

func (r *doctors) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, d := range r.doctors {
		if d.ID == id {
			r.doctors = append(r.doctors[:i], r.doctors[i+1:]...)
			return nil
		}
	}
	return util.NotFound("%s", util.DOCTOR_NOT_FOUND)
}

func (r *doctors) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.doctors)), nil
}

func (r *doctors) Search(_ context.Context, query string, n int) ([]models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Doctor{}
	for _, d := range r.doctors {
		if containsFold(d.Name, query) || containsFold(d.Specialization, query) || containsFold(d.Email, query) {
			out = append(out, *d)
		}
	}
	return capped(out, n), nil
}

type appointments struct{ *db }

func (r *appointments) Insert(_ context.Context, a *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = primitive.NewObjectID()
	cp := *a
	r.appointments = append(r.appointments, &cp)
	return nil
}

func (r *appointments) find(id primitive.ObjectID) *models.Appointment {
	for _, a := range r.appointments {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (r *appointments) FindByID(_ context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.find(id)
	if a == nil {
		return nil, util.NotFound("%s", util.APPOINTMENT_NOT_FOUND)
	}
	cp := *a
	return &cp, nil
}

func (r *appointments) filter(n int, keep func(*models.Appointment) bool) []models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Appointment{}
	for _, a := range r.appointments {
		if keep(a) {
			out = append(out, *a)
		}
	}
	return capped(out, n)
}

func (r *appointments) List(_ context.Context, n int) ([]models.Appointment, error) {
	return r.filter(n, func(*models.Appointment) bool { return true }), nil
}

func (r *appointments) Replace(_ context.Context, id primitive.ObjectID, in *models.Appointment) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.find(id)
	if a == nil {
		return nil, util.NotFound("%s", util.APPOINTMENT_NOT_FOUND)
	}
	a.PatientID = in.PatientID
	a.DoctorID = in.DoctorID
	a.Date = in.Date
	a.Status = in.Status
	a.Notes = in.Notes
	cp := *a
	return &cp, nil
}

func (r *appointments) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.appointments {
		if a.ID == id {
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			return nil
		}
	}
	return util.NotFound("%s", util.APPOINTMENT_NOT_FOUND)
}

func (r *appointments) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.appointments)), nil
}

func (r *appointments) ListByPatient(_ context.Context, patientID string, n int) ([]models.Appointment, error) {
	return r.filter(n, func(a *models.Appointment) bool { return a.PatientID == patientID }), nil
}

func (r *appointments) ListByDoctor(_ context.Context, doctorID string, n int) ([]models.Appointment, error) {
	return r.filter(n, func(a *models.Appointment) bool { return a.DoctorID == doctorID }), nil
}

func (r *appointments) ListBetween(_ context.Context, from, to time.Time, n int) ([]models.Appointment, error) {
	return r.filter(n, func(a *models.Appointment) bool {
		return !a.Date.Before(from) && a.Date.Before(to)
	}), nil
}

func (r *appointments) CountByStatus(_ context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int64{}
	for _, a := range r.appointments {
		counts[string(a.Status)]++
	}
	return counts, nil
}
