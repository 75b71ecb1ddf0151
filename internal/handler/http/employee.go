package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/employee"
	"github.com/alexialg05/tasty-operations-manager/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	ListPositions(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	employeeResponse, err := h.employeeService.CreateEmployee(r.Context(), createReq)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", employeeResponse)
}

// GetByID implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	employeeResponse, err := h.employeeService.GetEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employeeResponse)
}

// Search implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	searchReq := employee.SearchEmployeeRequest{
		Query: r.URL.Query().Get("q"),
	}
	if position := r.URL.Query().Get("position"); position != "" {
		searchReq.Position = &position
	}

	employees, err := h.employeeService.SearchEmployees(r.Context(), searchReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// ListPositions implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListPositions(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.employeeService.ListPositions(r.Context()))
}
