package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/talent-api/internal/application/auth"
	"github.com/talent-api/internal/application/candidate"
	"github.com/talent-api/internal/application/employee"
	"github.com/talent-api/internal/application/otp"
	"github.com/talent-api/internal/application/trainer"
	"github.com/talent-api/internal/application/user"
	"github.com/talent-api/internal/config"
	jwtinfra "github.com/talent-api/internal/infrastructure/jwt"
	"github.com/talent-api/internal/infrastructure/smtp"
	"github.com/talent-api/internal/pkg/password"
	"github.com/talent-api/internal/transport/http/handler"
	appmiddleware "github.com/talent-api/internal/transport/http/middleware"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo      UserRepository
	UserTypeRepo  UserTypeRepository
	OTPRepo       OTPRepository
	EmployeeRepo  EmployeeRepository
	CandidateRepo CandidateRepository
	TrainerRepo   TrainerRepository
	ObjectStore   ObjectStore
	Mailer        smtp.Mailer
	JWTProvider   *jwtinfra.Provider
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10, applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	otpSvc := otp.NewService(deps.OTPRepo, deps.Mailer, cfg.OTPTTL)
	authSvc := auth.NewService(auth.ServiceDeps{
		UserRepo:     deps.UserRepo,
		UserTypeRepo: deps.UserTypeRepo,
		OTPService:   otpSvc,
		Hasher:       password.NewHasher(cfg.BcryptCost),
		JWTProvider:  deps.JWTProvider,
	})
	userSvc := user.NewService(deps.UserRepo, deps.UserTypeRepo)
	employeeSvc := employee.NewService(deps.EmployeeRepo)
	candidateSvc := candidate.NewService(deps.CandidateRepo, deps.ObjectStore)
	trainerSvc := trainer.NewService(deps.TrainerRepo)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc)
	employeeH := handler.NewEmployeeHandler(employeeSvc)
	candidateH := handler.NewCandidateHandler(candidateSvc)
	trainerH := handler.NewTrainerHandler(trainerSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/auth/signup", authH.SignUp)
		r.With(sensitiveRL.Limit).Post("/auth/signin", authH.SignIn)
		r.With(sensitiveRL.Limit).Post("/auth/otp/generate", authH.GenerateOTP)
		r.With(sensitiveRL.Limit).Post("/auth/otp/verify", authH.VerifyOTP)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/users", userH.List)
			r.Get("/users/{id}", userH.Get)
			r.Put("/users/{id}", userH.Update)
			r.Delete("/users/{id}", userH.Delete)
			r.Post("/users/{id}/onboarding/complete", userH.CompleteOnboardingStep)

			r.Get("/employees", employeeH.List)
			r.Post("/employees", employeeH.Create)
			r.Get("/employees/{id}", employeeH.Get)

			r.Get("/candidates", candidateH.List)
			r.Post("/candidates", candidateH.Create)
			r.Get("/candidates/{id}", candidateH.Get)
			r.Put("/candidates/{id}/resume", candidateH.UploadResume)
			r.Get("/candidates/{id}/resume", candidateH.ResumeURL)
			r.Get("/candidates/{id}/resume/file", candidateH.DownloadResume)
			r.Delete("/candidates/{id}/resume", candidateH.DeleteResume)

			r.Get("/trainers", trainerH.List)
			r.Post("/trainers", trainerH.Create)
			r.Get("/trainers/{id}", trainerH.Get)
		})
	})

	return r
}
