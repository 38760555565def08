package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shelfwatch/pkg/auth"
	"github.com/ghuser/shelfwatch/pkg/errhttp"
	"github.com/ghuser/shelfwatch/pkg/httpx"
	pkgvalidator "github.com/ghuser/shelfwatch/pkg/validator"
	appsvcs "github.com/ghuser/shelfwatch/services/stock/application/services"
)

// NamesResponse is returned by GET /names.
type NamesResponse struct {
	Names []string `json:"names"`
} // @name NamesResponse

// SaveNameRequest is the request body for POST /names.
type SaveNameRequest struct {
	Name string `json:"name" validate:"required,max=255" example:"Oat milk"`
} // @name SaveNameRequest

// SaveNameResponse is returned on successful curated-name save.
type SaveNameResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
} // @name SaveNameResponse

// NamesHandler serves the unified autocompletion list and curated-name
// maintenance.
type NamesHandler struct {
	svc *appsvcs.Services
}

// NewNamesHandler returns a NamesHandler backed by the given services.
func NewNamesHandler(svc *appsvcs.Services) *NamesHandler {
	return &NamesHandler{svc: svc}
}

// List returns the unified name candidates, sorted and deduplicated.
//
//	@Summary	Unified name list
//	@Tags		names
//	@Produce	json
//	@Success	200	{object}	NamesResponse
//	@Router		/names [get]
func (h *NamesHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "identity required"})
		return
	}

	names, err := h.svc.Names.UnifiedNames(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	httpx.JSON(w, http.StatusOK, NamesResponse{Names: names})
}

// Save upserts one curated name.
//
//	@Summary	Save curated name
//	@Tags		names
//	@Accept		json
//	@Produce	json
//	@Param		request	body		SaveNameRequest	true	"Name to save"
//	@Success	201		{object}	SaveNameResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/names [post]
func (h *NamesHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "identity required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[SaveNameRequest](w, r)
	if !ok {
		return
	}

	cn, err := h.svc.Names.Save(r.Context(), userID, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, SaveNameResponse{Key: cn.Key, Name: cn.Name})
}

// Delete removes one curated name by its normalized key.
//
//	@Summary	Delete curated name
//	@Tags		names
//	@Param		key	path	string	true	"Normalized name key"
//	@Success	204
//	@Router		/names/{key} [delete]
func (h *NamesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "identity required"})
		return
	}

	key := chi.URLParam(r, "key")
	if key == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing name key")
		return
	}

	if err := h.svc.Names.Delete(r.Context(), userID, key); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
