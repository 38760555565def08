package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/shelfwatch/pkg/auth"
	"github.com/ghuser/shelfwatch/pkg/errhttp"
	"github.com/ghuser/shelfwatch/pkg/httpx"
	appsvcs "github.com/ghuser/shelfwatch/services/stock/application/services"
)

// DeleteStockHandler handles DELETE /stock/{id} requests.
type DeleteStockHandler struct {
	svc *appsvcs.Services
}

// NewDeleteStockHandler returns a DeleteStockHandler backed by the given services.
func NewDeleteStockHandler(svc *appsvcs.Services) *DeleteStockHandler {
	return &DeleteStockHandler{svc: svc}
}

// Execute hard-deletes a stock item.
//
//	@Summary	Delete stock item
//	@Tags		stock
//	@Param		id	path	string	true	"Item ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/stock/{id} [delete]
func (h *DeleteStockHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Stock.Delete(r.Context(), userID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
