package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"volly/internal/service"
)

type Handler struct {
	auth service.AuthService
	rel  service.RelationshipService
	subs service.SubscriptionService
}

type RouterConfig struct {
	CORSOrigins []string
}

func NewRouter(auth service.AuthService, rel service.RelationshipService, subs service.SubscriptionService, cfg RouterConfig) http.Handler {
	h := &Handler{auth: auth, rel: rel, subs: subs}

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(httprate.LimitByIP(100, 1*time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   originsIfSet(cfg.CORSOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/company", func(r chi.Router) {
		r.Post("/signup", h.handleCompanySignup)
		r.Get("/login", h.handleCompanyLogin)

		r.Group(func(r chi.Router) {
			r.Use(BearerCompany(auth))
			r.Get("/pending", h.handleCompanyPending)
			r.Get("/active", h.handleCompanyActive)
			r.Put("/update", h.handleCompanyUpdate)
			r.Put("/approve", h.handleCompanyApprove)
			r.Put("/terminate", h.handleCompanyTerminate)
			r.Post("/send", h.handleCompanySend)
			r.Delete("/delete", h.handleCompanyDelete)
		})
	})

	r.Route("/volunteer", func(r chi.Router) {
		r.Post("/signup", h.handleVolunteerSignup)
		r.Get("/login", h.handleVolunteerLogin)

		r.Group(func(r chi.Router) {
			r.Use(BearerVolunteer(auth))
			r.Get("/opportunities", h.handleVolunteerOpportunities)
			r.Get("/pending", h.handleVolunteerPending)
			r.Get("/active", h.handleVolunteerActive)
			r.Put("/update", h.handleVolunteerUpdate)
			r.Put("/apply", h.handleVolunteerApply)
			r.Put("/leave", h.handleVolunteerLeave)
			r.Delete("/delete", h.handleVolunteerDelete)
		})
	})

	r.Post("/verify", h.handleVerify)

	return r
}

func originsIfSet(origins []string) []string {
	out := origins[:0]
	for _, o := range origins {
		if o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
