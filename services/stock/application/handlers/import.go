package handlers

import (
	"net/http"

	"github.com/ghuser/shelfwatch/pkg/auth"
	"github.com/ghuser/shelfwatch/pkg/errhttp"
	"github.com/ghuser/shelfwatch/pkg/httpx"
	pkgvalidator "github.com/ghuser/shelfwatch/pkg/validator"
	appsvcs "github.com/ghuser/shelfwatch/services/stock/application/services"
)

// ImportNamesRequest is the request body for POST /names/import.
// Text is one name per line; tab- or comma-separated extra fields are
// ignored beyond the first.
type ImportNamesRequest struct {
	Text string `json:"text" validate:"required" example:"Milk\nCheese,dairy\nEggs"`
} // @name ImportNamesRequest

// ImportNamesResponse reports reconciliation and commit counts.
type ImportNamesResponse struct {
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Upserted int `json:"upserted"`
} // @name ImportNamesResponse

// ImportNamesHandler handles POST /names/import requests.
type ImportNamesHandler struct {
	svc *appsvcs.Services
}

// NewImportNamesHandler returns an ImportNamesHandler backed by the given services.
func NewImportNamesHandler(svc *appsvcs.Services) *ImportNamesHandler {
	return &ImportNamesHandler{svc: svc}
}

// Execute reconciles the bulk text and commits the resulting upserts
// atomically. The commit is all-or-nothing: an error response means no
// name was written.
//
//	@Summary	Bulk import names
//	@Tags		names
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ImportNamesRequest	true	"Raw import text"
//	@Success	200		{object}	ImportNamesResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/names/import [post]
func (h *ImportNamesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "identity required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ImportNamesRequest](w, r)
	if !ok {
		return
	}

	res, err := h.svc.Import.Import(r.Context(), userID, req.Text)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ImportNamesResponse{
		Accepted: res.Accepted,
		Rejected: res.Rejected,
		Upserted: res.Upserted,
	})
}
