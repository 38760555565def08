package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/shelfwatch/pkg/auth"
	"github.com/ghuser/shelfwatch/pkg/errhttp"
	"github.com/ghuser/shelfwatch/pkg/httpx"
	pkgvalidator "github.com/ghuser/shelfwatch/pkg/validator"
	appsvcs "github.com/ghuser/shelfwatch/services/stock/application/services"
)

// PutStockHandler handles PUT /stock/{id} requests.
type PutStockHandler struct {
	svc *appsvcs.Services
}

// NewPutStockHandler returns a PutStockHandler backed by the given services.
func NewPutStockHandler(svc *appsvcs.Services) *PutStockHandler {
	return &PutStockHandler{svc: svc}
}

// Execute updates an existing stock item in place. The identifier is immutable.
//
//	@Summary	Update stock item
//	@Tags		stock
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Item ID"
//	@Param		request	body		StockItemRequest	true	"New field values"
//	@Success	200		{object}	StockItemResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/stock/{id} [put]
func (h *PutStockHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[StockItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Stock.Update(r.Context(), userID, id, req.toParams())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(item, time.Now()))
}
