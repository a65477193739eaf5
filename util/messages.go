package util

const (
	INTERNAL_SERVER_ERROR = "Internal server error"

	INVALID_PATIENT_ID     = "Invalid patient ID format"
	INVALID_DOCTOR_ID      = "Invalid doctor ID format"
	INVALID_APPOINTMENT_ID = "Invalid appointment ID format"
	INVALID_DATE_FORMAT    = "Invalid date format"
	INVALID_STATUS         = "Invalid appointment status %q: must be scheduled, completed or cancelled"
	QUERY_NOT_PROVIDED     = "query parameter is required"

	PATIENT_NOT_FOUND         = "Patient not found"
	DOCTOR_NOT_FOUND          = "Doctor not found"
	APPOINTMENT_NOT_FOUND     = "Appointment not found"
	PATIENT_DETAILS_NOT_FOUND = "Patient details not found"
	PATIENT_HISTORY_NOT_FOUND = "Patient history not found"

	PATIENT_DETAILS_ALREADY_EXIST = "Patient details already exist"
	PATIENT_HISTORY_ALREADY_EXIST = "Patient history already exists"
	USERNAME_ALREADY_EXISTS       = "Username already exists"

	INVALID_CREDENTIALS = "Invalid username or password"
	INVALID_TOKEN       = "Invalid token"
	USER_NOT_FOUND      = "User not found"
	MISSING_BEARER      = "Not authenticated"

	USER_REGISTERED = "User registered successfully"
)

const (
	PatientCollection        = "patients"
	PatientDetailsCollection = "patient_details"
	PatientHistoryCollection = "patient_history"
	DoctorCollection         = "doctors"
	AppointmentCollection    = "appointments"
	StaffCollection          = "staff"

	PatientKey = "PATIENT:"
)
