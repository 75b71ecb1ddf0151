package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/schedule"
	"github.com/alexialg05/tasty-operations-manager/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	ListForDay(w http.ResponseWriter, r *http.Request)
	WeekView(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	schedulingService schedule.SchedulingService
}

func NewScheduleHandler(schedulingService schedule.SchedulingService) ScheduleHandler {
	return &ScheduleHandlerImpl{schedulingService: schedulingService}
}

// Add implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	var createReq schedule.CreateScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Add schedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.EmployeeID = chi.URLParam(r, "employeeID")

	scheduleResponse, err := h.schedulingService.AddSchedule(r.Context(), createReq)
	if err != nil {
		slog.Error("Add schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift scheduled successfully", scheduleResponse)
}

// Remove implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	scheduleID := chi.URLParam(r, "scheduleID")

	if err := h.schedulingService.RemoveSchedule(r.Context(), employeeID, scheduleID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift removed successfully", nil)
}

// ListForEmployee implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	schedules, err := h.schedulingService.ListEmployeeSchedules(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, schedules)
}

// ListForDay implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListForDay(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	if day == "" {
		response.BadRequest(w, "Query parameter 'day' is required", nil)
		return
	}

	schedules, err := h.schedulingService.SchedulesForDay(r.Context(), day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, schedules)
}

// WeekView implements ScheduleHandler.
func (h *ScheduleHandlerImpl) WeekView(w http.ResponseWriter, r *http.Request) {
	viewReq := schedule.WeekViewRequest{
		Reference: r.URL.Query().Get("reference"),
	}
	if offset := r.URL.Query().Get("offset"); offset != "" {
		parsed, err := strconv.Atoi(offset)
		if err != nil {
			response.BadRequest(w, "Query parameter 'offset' must be an integer", nil)
			return
		}
		viewReq.WeekOffset = parsed
	}

	weekResponse, err := h.schedulingService.WeekView(r.Context(), viewReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, weekResponse)
}
