package routes

import (
	"time"

	"HospitalHub/ai"
	"HospitalHub/auth"
	"HospitalHub/cache"
	"HospitalHub/controllers"
	"HospitalHub/middleware"
	"HospitalHub/services"
	"HospitalHub/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Options struct {
	Cache        cache.Cache
	Model        ai.ChatModel
	Auth         *auth.Service
	AuthRequired bool
	CORSOrigins  []string
	Logger       zerolog.Logger
	Now          func() time.Time
}

/*
* Build every service on the one store
* Auth routes are public; /auth/me checks its own token
* Data routes sit behind the bearer check when AuthRequired is set
 */
func New(st *store.Store, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(opts.Logger), middleware.Recovery(opts.Logger))
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	patients := services.NewPatientService(st.Patients, opts.Cache, opts.Now)
	doctors := services.NewDoctorService(st.Doctors)
	appointments := services.NewAppointmentService(st.Appointments, st.Patients, st.Doctors)
	details := services.NewDetailsService(st.PatientDetails, st.Patients)
	histories := services.NewHistoryService(st.PatientHistory, st.Patients, st.Doctors, opts.Now)
	summary := services.NewSummaryService(st, opts.Now)
	contexts := services.NewContextService(st.Patients, st.PatientHistory)
	assistant := services.NewAssistantService(ai.NewAssistant(opts.Model), contexts)

	controllers.Auth(r, opts.Auth)

	var private gin.IRouter = r
	if opts.AuthRequired {
		private = r.Group("/", auth.RequireAuth(opts.Auth))
	}
	controllers.Patient(private, patients, summary)
	controllers.PatientDetails(private, details)
	controllers.PatientHistory(private, histories)
	controllers.Doctor(private, doctors)
	controllers.Appointment(private, appointments)
	controllers.Dashboard(private, summary)
	controllers.Search(private, patients, doctors)
	controllers.AI(private, assistant)
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
