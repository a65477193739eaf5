package models

import "time"

// FullSummary joins the documents kept for one patient. Details and History
// are nil when the patient has none; Appointments is never nil.
type FullSummary struct {
	Patient      *Patient        `json:"patient"`
	Details      *PatientDetails `json:"details"`
	History      *PatientHistory `json:"history"`
	Appointments []Appointment   `json:"appointments"`
}

type DashboardStats struct {
	TotalPatients        int64            `json:"total_patients"`
	TotalDoctors         int64            `json:"total_doctors"`
	TotalAppointments    int64            `json:"total_appointments"`
	AppointmentsByStatus map[string]int64 `json:"appointments_by_status"`
	RecentPatients       []Patient        `json:"recent_patients"`
	TodaysAppointments   []Appointment    `json:"todays_appointments"`
}

type AIQuery struct {
	Query     string  `json:"query" binding:"required"`
	PatientID *string `json:"patient_id"`
	Context   *string `json:"context"`
}

type AIResponse struct {
	Response  string    `json:"response"`
	Sources   []string  `json:"sources"`
	Timestamp time.Time `json:"timestamp"`
}
