package http

import (
	"net/http"

	"hospital-food-manager/internal/delivery/http/handler"
	"hospital-food-manager/internal/delivery/http/middleware"
	"hospital-food-manager/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	patientHandler    *handler.PatientHandler
	dietChartHandler  *handler.DietChartHandler
	staffHandler      *handler.StaffHandler
	taskHandler       *handler.TaskHandler
	deliveryHandler   *handler.DeliveryHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	dietChartHandler *handler.DietChartHandler,
	staffHandler *handler.StaffHandler,
	taskHandler *handler.TaskHandler,
	deliveryHandler *handler.DeliveryHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		patientHandler:    patientHandler,
		dietChartHandler:  dietChartHandler,
		staffHandler:      staffHandler,
		taskHandler:       taskHandler,
		deliveryHandler:   deliveryHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

// Setup registers every route and returns the router wrapped in the CORS
// and request logging middleware.
//
// Staff, tasks and deliveries have no delete route, and staff and
// deliveries have no update route; those requests end in 404/405.
func (r *Router) Setup() http.Handler {
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patients
	r.router.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	r.router.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/patients/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Diet charts
	r.router.HandleFunc("/diet-charts", r.dietChartHandler.List).Methods(http.MethodGet)
	r.router.HandleFunc("/diet-charts", r.dietChartHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/diet-charts/{id}", r.dietChartHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/diet-charts/{id}", r.dietChartHandler.Delete).Methods(http.MethodDelete)

	// Staff
	r.router.HandleFunc("/staff", r.staffHandler.List).Methods(http.MethodGet)
	r.router.HandleFunc("/staff", r.staffHandler.Create).Methods(http.MethodPost)

	// Tasks
	r.router.HandleFunc("/tasks", r.taskHandler.List).Methods(http.MethodGet)
	r.router.HandleFunc("/tasks", r.taskHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/tasks/{id}", r.taskHandler.Update).Methods(http.MethodPut)

	// Deliveries
	r.router.HandleFunc("/deliveries", r.deliveryHandler.List).Methods(http.MethodGet)
	r.router.HandleFunc("/deliveries", r.deliveryHandler.Create).Methods(http.MethodPost)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.MethodNotAllowed(w, "")
	})

	return r.loggingMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.OK(w, map[string]string{"status": "ok"})
}
