package server

import (
	"encoding/json"
	"net/http"

	"vehicle/finder/internal/domain"
	"vehicle/finder/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const maxBodyBytes = 64 << 10

// ControllerFactory opens a fresh form session for one request.
type ControllerFactory func(category domain.VehicleCategory) *service.Controller

type Server struct {
	router        chi.Router
	newController ControllerFactory
}

type findRequest struct {
	VehicleType string           `json:"vehicleType"`
	Form        domain.FormState `json:"form"`
}

type findResponse struct {
	Status       service.Status           `json:"status"`
	VehicleType  domain.VehicleCategory   `json:"vehicleType"`
	Results      []domain.RankedCandidate `json:"results"`
	TotalFound   *int64                   `json:"totalFound,omitempty"`
	Notification string                   `json:"notification,omitempty"`
}

func New(newController ControllerFactory) *Server {
	s := &Server{
		router:        chi.NewRouter(),
		newController: newController,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/catalog/{category}", s.handleCatalog)
		r.Post("/find", s.handleFind)
	})

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	category, err := domain.ParseVehicleCategory(chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, r, apiError{Code: "unknown_category", Message: err.Error(), Status: http.StatusNotFound})
		return
	}
	writeJSON(w, http.StatusOK, domain.CatalogFor(category))
}

func (s *Server) handleFind(w http.ResponseWriter, r *http.Request) {
	var req findRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, r, apiError{Code: "invalid_body", Message: "request body must be a JSON object", Status: http.StatusBadRequest})
		return
	}

	category, err := domain.ParseVehicleCategory(req.VehicleType)
	if err != nil {
		writeError(w, r, apiError{Code: "unknown_category", Message: err.Error(), Status: http.StatusBadRequest})
		return
	}

	// Each request is its own session, so a submission is never in flight here.
	ctrl := s.newController(category)
	ctrl.SetForm(req.Form.Effective())

	outcome, err := ctrl.Submit(r.Context())
	if err != nil {
		writeError(w, r, apiError{Code: "internal_error", Message: err.Error(), Status: http.StatusInternalServerError})
		return
	}

	if len(outcome.ValidationErrors) > 0 {
		writeError(w, r, apiError{
			Code:    "validation_failed",
			Message: "required fields are missing",
			Status:  http.StatusUnprocessableEntity,
			Details: outcome.ValidationErrors,
		})
		return
	}

	writeJSON(w, http.StatusOK, findResponse{
		Status:       outcome.Status,
		VehicleType:  category,
		Results:      outcome.Results,
		TotalFound:   outcome.TotalFound,
		Notification: outcome.Notification,
	})
}
