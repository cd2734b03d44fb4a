package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"

	"pharmacy/m/internal/auth"
	"pharmacy/m/internal/metrics"
	"pharmacy/m/internal/service"
)

// Options configures a Handler. Zero values are usable: no auth, any origin,
// the default logger and a private metrics registry.
type Options struct {
	Secret         string
	AuthEnabled    bool
	AllowedOrigins []string
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
}

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	db      *sqlx.DB
	svc     *service.Services
	tokens  *auth.Tokens
	metrics *metrics.Metrics
	logger  *slog.Logger
	opts    Options
}

// New constructs a Handler with one service per entity over db.
func New(db *sqlx.DB, opts Options) *Handler {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	return &Handler{
		db:      db,
		svc:     service.New(db),
		tokens:  auth.NewTokens(opts.Secret, 24*time.Hour),
		metrics: opts.Metrics,
		logger:  opts.Logger,
		opts:    opts,
	}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(h.metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{"Location"},
	}))

	r.Get("/health", h.health)
	r.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Group(func(protected chi.Router) {
			protected.Use(h.authMiddleware)
			protected.Post("/reset-password", h.resetPassword)
		})
	})

	r.Route("/api", func(api chi.Router) {
		if h.opts.AuthEnabled {
			api.Use(h.authMiddleware)
		}

		api.Route("/customers", func(r chi.Router) {
			r.Get("/", h.listCustomers)
			r.Post("/", h.createCustomer)
			r.Get("/{ssn}", h.getCustomer)
			r.Put("/{ssn}", h.updateCustomer)
			r.Delete("/{ssn}", h.deleteCustomer)
		})

		api.Route("/medicines", func(r chi.Router) {
			r.Get("/", h.listMedicines)
			r.Post("/", h.createMedicine)
			r.Get("/{drugName}/{batchNumber}", h.getMedicine)
			r.Put("/{drugName}/{batchNumber}", h.updateMedicine)
			r.Delete("/{drugName}/{batchNumber}", h.deleteMedicine)
		})

		api.Route("/prescriptions", func(r chi.Router) {
			r.Get("/", h.listPrescriptions)
			r.Post("/", h.createPrescription)
			r.Get("/{prescriptionID}", h.getPrescription)
			r.Put("/{prescriptionID}", h.updatePrescription)
			r.Delete("/{prescriptionID}", h.deletePrescription)
		})

		api.Route("/orders", func(r chi.Router) {
			r.Get("/", h.listOrders)
			r.Post("/", h.createOrder)
			r.Get("/{orderID}", h.getOrder)
			r.Put("/{orderID}", h.updateOrder)
			r.Delete("/{orderID}", h.deleteOrder)
		})

		api.Route("/ordereddrugs", func(r chi.Router) {
			r.Get("/", h.listOrderedDrugs)
			r.Post("/", h.createOrderedDrug)
			r.Get("/{orderID}", h.listOrderedDrugsByOrder)
			r.Get("/{orderID}/{drugName}/{batchNumber}", h.getOrderedDrug)
			r.Put("/{orderID}/{drugName}/{batchNumber}", h.updateOrderedDrug)
			r.Delete("/{orderID}/{drugName}/{batchNumber}", h.deleteOrderedDrug)
		})

		api.Route("/bills", func(r chi.Router) {
			r.Get("/", h.listBills)
			r.Post("/", h.createBill)
			r.Get("/{orderID}", h.getBill)
			r.Put("/{orderID}", h.updateBill)
			r.Delete("/{orderID}", h.deleteBill)
			r.Get("/{orderID}/invoice", h.billInvoice)
			r.Get("/{orderID}/{customerSSN}", h.getCustomerBill)
			r.Put("/{orderID}/{customerSSN}", h.updateCustomerBill)
			r.Delete("/{orderID}/{customerSSN}", h.deleteCustomerBill)
		})

		api.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.listNotifications)
			r.Post("/", h.createNotification)
			r.Get("/{id}", h.getNotification)
			r.Put("/{id}", h.updateNotification)
			r.Delete("/{id}", h.deleteNotification)
		})
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("health check failed", "error", err)
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
