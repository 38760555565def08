package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/shelfwatch/pkg/auth"
	"github.com/ghuser/shelfwatch/pkg/errhttp"
	"github.com/ghuser/shelfwatch/pkg/httpx"
	pkgvalidator "github.com/ghuser/shelfwatch/pkg/validator"
	appsvcs "github.com/ghuser/shelfwatch/services/stock/application/services"
)

// SuggestionRequest is the request body for POST /suggestions.
// With an item_id the suggestion covers that item; without one it
// covers the whole urgent set.
type SuggestionRequest struct {
	ItemID string `json:"item_id,omitempty" validate:"omitempty,uuid4" example:"123e4567-e89b-12d3-a456-426614174000"`
} // @name SuggestionRequest

// SuggestionResponse carries the generated text.
type SuggestionResponse struct {
	Suggestion string `json:"suggestion"`
} // @name SuggestionResponse

// SuggestionsHandler handles POST /suggestions requests.
type SuggestionsHandler struct {
	svc *appsvcs.Services
}

// NewSuggestionsHandler returns a SuggestionsHandler backed by the given services.
func NewSuggestionsHandler(svc *appsvcs.Services) *SuggestionsHandler {
	return &SuggestionsHandler{svc: svc}
}

// Execute generates a consumption suggestion. At most one generation
// call runs per process at a time; a second request while one is in
// flight gets 409.
//
//	@Summary	Generate consumption suggestion
//	@Tags		suggestions
//	@Accept		json
//	@Produce	json
//	@Param		request	body		SuggestionRequest	true	"Suggestion scope"
//	@Success	200		{object}	SuggestionResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	502		{object}	ErrorResponse
//	@Router		/suggestions [post]
func (h *SuggestionsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "identity required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[SuggestionRequest](w, r)
	if !ok {
		return
	}

	var text string
	if req.ItemID != "" {
		itemID, parseErr := uuid.Parse(req.ItemID)
		if parseErr != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
			return
		}
		text, err = h.svc.Suggestion.ForItem(r.Context(), userID, itemID)
	} else {
		text, err = h.svc.Suggestion.ForUrgent(r.Context(), userID)
	}
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, SuggestionResponse{Suggestion: text})
}
