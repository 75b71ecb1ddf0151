package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/auth"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/sale"
	"github.com/alexialg05/tasty-operations-manager/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SalesHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type SalesHandlerImpl struct {
	salesService sale.SalesService
}

func NewSalesHandler(salesService sale.SalesService) SalesHandler {
	return &SalesHandlerImpl{salesService: salesService}
}

// Record implements SalesHandler.
func (h *SalesHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var recordReq sale.RecordSaleRequest

	if err := json.NewDecoder(r.Body).Decode(&recordReq); err != nil {
		slog.Error("Record sale decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cashierID, err := userIDFromClaims(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	recordReq.CashierID = cashierID

	saleResponse, err := h.salesService.RecordSale(r.Context(), recordReq)
	if err != nil {
		slog.Error("Record sale service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sale recorded successfully", saleResponse)
}

// GetByID implements SalesHandler.
func (h *SalesHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	saleID := chi.URLParam(r, "saleID")

	saleResponse, err := h.salesService.GetSale(r.Context(), saleID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, saleResponse)
}

// List implements SalesHandler.
func (h *SalesHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := sale.SaleFilter{
		Query:  r.URL.Query().Get("q"),
		Period: sale.Period(r.URL.Query().Get("period")),
	}

	sales, err := h.salesService.ListSales(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sales)
}
