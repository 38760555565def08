package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/shelfwatch/pkg/auth"
	"github.com/ghuser/shelfwatch/pkg/errhttp"
	"github.com/ghuser/shelfwatch/pkg/httpx"
	appsvcs "github.com/ghuser/shelfwatch/services/stock/application/services"
)

// ListStockResponse is returned by GET /stock.
type ListStockResponse struct {
	Items []StockItemResponse `json:"items"`
	Total int                 `json:"total"`
} // @name ListStockResponse

// GetStockHandler handles GET /stock and GET /stock/{id}.
type GetStockHandler struct {
	svc *appsvcs.Services
}

// NewGetStockHandler returns a GetStockHandler backed by the given services.
func NewGetStockHandler(svc *appsvcs.Services) *GetStockHandler {
	return &GetStockHandler{svc: svc}
}

// List returns the user's full stock with statuses derived at request time.
//
//	@Summary	List stock items
//	@Tags		stock
//	@Produce	json
//	@Success	200	{object}	ListStockResponse
//	@Router		/stock [get]
func (h *GetStockHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "identity required"})
		return
	}

	items, err := h.svc.Stock.List(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := toResponses(items, time.Now())
	httpx.JSON(w, http.StatusOK, ListStockResponse{Items: resp, Total: len(resp)})
}

// GetByID returns one stock item.
//
//	@Summary	Get stock item
//	@Tags		stock
//	@Produce	json
//	@Param		id	path		string	true	"Item ID"
//	@Success	200	{object}	StockItemResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/stock/{id} [get]
func (h *GetStockHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "identity required"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.svc.Stock.GetByID(r.Context(), userID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(item, time.Now()))
}
