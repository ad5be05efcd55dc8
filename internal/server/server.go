//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/washpoint/staffops/internal/domain"
	"github.com/washpoint/staffops/internal/remote"
	"github.com/washpoint/staffops/internal/repository"
	"github.com/washpoint/staffops/internal/store"
)

// OrderStore is the slice of the state store the HTTP layer uses.
type OrderStore interface {
	FetchStaffOrders(ctx context.Context) error
	FetchTemporaryAssignments(ctx context.Context, officeID string) error
	FetchUserAcceptedOrders(ctx context.Context, userID string) error
	AcceptOrder(ctx context.Context, orderID, officeID string) error
	AcceptTemporaryAssignment(ctx context.Context, assignmentID, officeID string) error
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, notes string) error
	Available(now time.Time) []store.AvailableItem
	Accepted(officeID string) []domain.Order
	Completed() []domain.Order
	Order(orderID string) (domain.Order, bool)
	UserOrders(userID string) []domain.Order
	LastError() string
}

// StaffDirectory validates gateway logins and resolves their office scope.
type StaffDirectory interface {
	ValidateStaff(ctx context.Context, username, password string) (string, error)
}

// OfficeDirectory proxies the backend's reference entities.
type OfficeDirectory interface {
	ListOffices(ctx context.Context) ([]domain.Office, error)
	GetOffice(ctx context.Context, officeID string) (*domain.Office, error)
	ListOfficeStaff(ctx context.Context, officeID string) ([]domain.Staff, error)
}

// ReportStore reads the locally mirrored status history.
type ReportStore interface {
	GetByOrderID(ctx context.Context, orderID string) ([]*repository.HistoryEntry, error)
}

type Server struct {
	store   OrderStore
	staff   StaffDirectory
	offices OfficeDirectory
	reports ReportStore
	logger  *zap.Logger

	AuditManager *AuditManager
	server       *http.Server
}

func New(orderStore OrderStore, staff StaffDirectory, offices OfficeDirectory, reports ReportStore, auditManager *AuditManager, logger *zap.Logger) *Server {
	return &Server{
		store:        orderStore,
		staff:        staff,
		offices:      offices,
		reports:      reports,
		AuditManager: auditManager,
		logger:       logger,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.AuditManager.Shutdown(ctx)
	s.logger.Info("server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/views/available", s.handleAvailableView).Methods(http.MethodGet)
	router.HandleFunc("/views/accepted", s.handleAcceptedView).Methods(http.MethodGet)
	router.HandleFunc("/views/completed", s.handleCompletedView).Methods(http.MethodGet)

	router.HandleFunc("/orders/user/{userID}", s.handleUserOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders/{id}/accept", s.handleAcceptOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders/{id}/status", s.handleUpdateOrderStatus).Methods(http.MethodPost)
	router.HandleFunc("/orders/{id}/history", s.handleOrderHistory).Methods(http.MethodGet)

	router.HandleFunc("/assignments/{id}/accept", s.handleAcceptAssignment).Methods(http.MethodPost)
	router.HandleFunc("/refresh", s.handleRefresh).Methods(http.MethodPost)

	router.HandleFunc("/offices", s.handleListOffices).Methods(http.MethodGet)
	router.HandleFunc("/offices/{id}", s.handleGetOffice).Methods(http.MethodGet)
	router.HandleFunc("/offices/{id}/staff", s.handleListOfficeStaff).Methods(http.MethodGet)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return s.basicAuthMiddleware(s.auditMiddleware(router))
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondBackendError maps a failed store mutation onto the gateway's
// response: backend business errors keep their status and wording, anything
// else is a bad gateway.
func respondBackendError(w http.ResponseWriter, err error) {
	var apiErr *remote.APIError
	if errors.As(err, &apiErr) {
		respondError(w, apiErr.StatusCode, apiErr.Message)
		return
	}
	if errors.Is(err, remote.ErrUnauthorized) {
		respondError(w, http.StatusBadGateway, "platform session expired, gateway must sign in again")
		return
	}
	respondError(w, http.StatusBadGateway, "could not reach the laundry platform service")
}

type viewResponse struct {
	Items interface{} `json:"items"`
	Error string      `json:"error,omitempty"`
}

func (s *Server) handleAvailableView(w http.ResponseWriter, r *http.Request) {
	items := s.store.Available(time.Now())
	respondJSON(w, http.StatusOK, viewResponse{Items: items, Error: s.store.LastError()})
}

func (s *Server) handleAcceptedView(w http.ResponseWriter, r *http.Request) {
	officeID := officeIDFromContext(r.Context())
	orders := s.store.Accepted(officeID)
	respondJSON(w, http.StatusOK, viewResponse{Items: orders, Error: s.store.LastError()})
}

func (s *Server) handleCompletedView(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, viewResponse{Items: s.store.Completed(), Error: s.store.LastError()})
}

func (s *Server) handleAcceptOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	if orderID == "" {
		respondError(w, http.StatusBadRequest, "Missing order ID")
		return
	}

	var acceptRequest struct {
		OfficeID string `json:"office_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&acceptRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	officeID := acceptRequest.OfficeID
	if officeID == "" {
		officeID = officeIDFromContext(r.Context())
	}
	if officeID == "" {
		respondError(w, http.StatusBadRequest, "Missing office_id")
		return
	}

	if err := s.store.AcceptOrder(r.Context(), orderID, officeID); err != nil {
		respondBackendError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Order accepted into office queue",
		"id":      orderID,
	})
}

func (s *Server) handleAcceptAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID := mux.Vars(r)["id"]
	if assignmentID == "" {
		respondError(w, http.StatusBadRequest, "Missing assignment ID")
		return
	}

	var acceptRequest struct {
		OfficeID string `json:"office_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&acceptRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	officeID := acceptRequest.OfficeID
	if officeID == "" {
		officeID = officeIDFromContext(r.Context())
	}
	if officeID == "" {
		respondError(w, http.StatusBadRequest, "Missing office_id")
		return
	}

	if err := s.store.AcceptTemporaryAssignment(r.Context(), assignmentID, officeID); err != nil {
		respondBackendError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Assignment accepted",
		"id":      assignmentID,
	})
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	if orderID == "" {
		respondError(w, http.StatusBadRequest, "Missing order ID")
		return
	}

	var statusRequest struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&statusRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	requested := domain.OrderStatus(statusRequest.Status)
	if !requested.IsValid() {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Unknown status %q", statusRequest.Status))
		return
	}

	order, ok := s.store.Order(orderID)
	if !ok {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}
	if !domain.CanTransition(order.Status, requested) {
		respondError(w, http.StatusConflict,
			fmt.Sprintf("Illegal transition from %s to %s", order.Status, requested))
		return
	}

	if err := s.store.UpdateOrderStatus(r.Context(), orderID, requested, statusRequest.Notes); err != nil {
		respondBackendError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Order status updated",
	})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	officeID := officeIDFromContext(r.Context())

	if err := s.store.FetchStaffOrders(r.Context()); err != nil {
		respondBackendError(w, err)
		return
	}
	if officeID != "" {
		if err := s.store.FetchTemporaryAssignments(r.Context(), officeID); err != nil {
			respondBackendError(w, err)
			return
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Refreshed"})
}

func (s *Server) handleUserOrders(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	if userID == "" {
		respondError(w, http.StatusBadRequest, "Missing user ID")
		return
	}

	if err := s.store.FetchUserAcceptedOrders(r.Context(), userID); err != nil {
		respondBackendError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, viewResponse{Items: s.store.UserOrders(userID)})
}

func (s *Server) handleOrderHistory(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	if orderID == "" {
		respondError(w, http.StatusBadRequest, "Missing order ID")
		return
	}

	history, err := s.reports.GetByOrderID(r.Context(), orderID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, history)
}

func (s *Server) handleListOffices(w http.ResponseWriter, r *http.Request) {
	offices, err := s.offices.ListOffices(r.Context())
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, offices)
}

func (s *Server) handleGetOffice(w http.ResponseWriter, r *http.Request) {
	officeID := mux.Vars(r)["id"]
	if officeID == "" {
		respondError(w, http.StatusBadRequest, "Missing office ID")
		return
	}

	office, err := s.offices.GetOffice(r.Context(), officeID)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	if office == nil {
		respondError(w, http.StatusNotFound, "Office not found")
		return
	}
	respondJSON(w, http.StatusOK, office)
}

func (s *Server) handleListOfficeStaff(w http.ResponseWriter, r *http.Request) {
	officeID := mux.Vars(r)["id"]
	if officeID == "" {
		respondError(w, http.StatusBadRequest, "Missing office ID")
		return
	}

	staff, err := s.offices.ListOfficeStaff(r.Context(), officeID)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, staff)
}
