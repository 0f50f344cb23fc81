package http

import (
	"net/http"

	"go-services-marketplace/internal/delivery/http/handler"
	"go-services-marketplace/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	serviceHandler  *handler.ServiceHandler
	workerHandler   *handler.WorkerHandler
	bookingHandler  *handler.BookingHandler
	locationHandler *handler.LocationHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	serviceHandler *handler.ServiceHandler,
	workerHandler *handler.WorkerHandler,
	bookingHandler *handler.BookingHandler,
	locationHandler *handler.LocationHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		serviceHandler:  serviceHandler,
		workerHandler:   workerHandler,
		bookingHandler:  bookingHandler,
		locationHandler: locationHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/customer", r.authHandler.RegisterCustomer).Methods(http.MethodPost)
	auth.HandleFunc("/register/worker", r.authHandler.RegisterWorker).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Catalog and worker discovery (public)
	api.HandleFunc("/services", r.serviceHandler.ListServices).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}/workers", r.serviceHandler.ListWorkers).Methods(http.MethodGet)
	api.HandleFunc("/workers/{id}", r.workerHandler.GetWorker).Methods(http.MethodGet)
	api.HandleFunc("/workers/{id}/reviews", r.workerHandler.GetWorkerReviews).Methods(http.MethodGet)

	// Location (public)
	api.HandleFunc("/location", r.locationHandler.Locate).Methods(http.MethodGet)

	// Booking routes (protected - customer only)
	bookings := api.PathPrefix("/bookings").Subrouter()
	bookings.Use(r.authMiddleware.Authenticate)
	bookings.Use(middleware.RequireCustomer)
	bookings.HandleFunc("", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	bookings.HandleFunc("/me", r.bookingHandler.GetMyBookings).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/workers/{id}/verify", r.workerHandler.VerifyWorker).Methods(http.MethodPatch)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
