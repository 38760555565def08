package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shelfwatch/pkg/auth"
	"github.com/ghuser/shelfwatch/pkg/errhttp"
	"github.com/ghuser/shelfwatch/pkg/httpx"
	pkgvalidator "github.com/ghuser/shelfwatch/pkg/validator"
	appsvcs "github.com/ghuser/shelfwatch/services/stock/application/services"
)

// StockItemRequest is the request body for POST /stock and PUT /stock/{id}.
// Quantity and alarm threshold below 1 are coerced to their minimums by
// the domain, not rejected.
type StockItemRequest struct {
	Name               string `json:"name" validate:"required,max=255" example:"Milk"`
	Quantity           int    `json:"quantity" example:"2"`
	ExpirationDate     string `json:"expiration_date" validate:"required,datetime=2006-01-02" example:"2026-09-15"`
	AlarmThresholdDays int    `json:"alarm_threshold_days" example:"7"`
	Category           string `json:"category" example:"fridge"`
} // @name StockItemRequest

// StockItemResponse is the API representation of one stock item with
// its status derived at response time.
type StockItemResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Quantity           int       `json:"quantity"`
	ExpirationDate     string    `json:"expiration_date"`
	AlarmThresholdDays int       `json:"alarm_threshold_days"`
	Category           string    `json:"category"`
	Status             string    `json:"status"`
	DaysRemaining      int       `json:"days_remaining"`
	StatusMessage      string    `json:"status_message"`
	CreatedAt          time.Time `json:"created_at"`
} // @name StockItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"stock item not found"`
} // @name ErrorResponse

func (r *StockItemRequest) toParams() appsvcs.CreateParams {
	// Valid by the datetime tag; the zero time only reaches the domain
	// in the unvalidated-path tests.
	date, _ := time.Parse("2006-01-02", r.ExpirationDate)
	return appsvcs.CreateParams{
		Name:               r.Name,
		Quantity:           r.Quantity,
		ExpirationDate:     date,
		AlarmThresholdDays: r.AlarmThresholdDays,
		Category:           r.Category,
	}
}

// PostStockHandler handles POST /stock requests.
type PostStockHandler struct {
	svc *appsvcs.Services
}

// NewPostStockHandler returns a PostStockHandler backed by the given services.
func NewPostStockHandler(svc *appsvcs.Services) *PostStockHandler {
	return &PostStockHandler{svc: svc}
}

// Execute creates a new stock item.
//
//	@Summary		Create stock item
//	@Description	Creates a perishable stock item for the current user
//	@Tags			stock
//	@Accept			json
//	@Produce		json
//	@Param			request	body		StockItemRequest	true	"Stock item fields"
//	@Success		201		{object}	StockItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/stock [post]
func (h *PostStockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "identity required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[StockItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Stock.Create(r.Context(), userID, req.toParams())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(item, time.Now()))
}
