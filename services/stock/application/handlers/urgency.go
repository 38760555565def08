package handlers

import (
	"net/http"

	"github.com/ghuser/shelfwatch/pkg/auth"
	"github.com/ghuser/shelfwatch/pkg/errhttp"
	"github.com/ghuser/shelfwatch/pkg/httpx"
	appsvcs "github.com/ghuser/shelfwatch/services/stock/application/services"
)

// UrgencyResponse is returned by GET /stock/urgency.
type UrgencyResponse struct {
	Expired      []StockItemResponse `json:"expired"`
	Warning      []StockItemResponse `json:"warning"`
	AlertPending bool                `json:"alert_pending"`
} // @name UrgencyResponse

// UrgencyHandler handles the urgency report and alert acknowledgment.
type UrgencyHandler struct {
	svc *appsvcs.Services
}

// NewUrgencyHandler returns an UrgencyHandler backed by the given services.
func NewUrgencyHandler(svc *appsvcs.Services) *UrgencyHandler {
	return &UrgencyHandler{svc: svc}
}

// Report returns the expired/warning buckets and the alert-pending flag,
// recomputed from the latest snapshot at request time.
//
//	@Summary	Urgency report
//	@Tags		urgency
//	@Produce	json
//	@Success	200	{object}	UrgencyResponse
//	@Router		/stock/urgency [get]
func (h *UrgencyHandler) Report(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "identity required"})
		return
	}

	report, err := h.svc.Urgency.Report(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := UrgencyResponse{
		Expired:      make([]StockItemResponse, 0, len(report.Expired)),
		Warning:      make([]StockItemResponse, 0, len(report.Warning)),
		AlertPending: report.AlertPending,
	}
	for _, ci := range report.Expired {
		resp.Expired = append(resp.Expired, classifiedToResponse(ci))
	}
	for _, ci := range report.Warning {
		resp.Warning = append(resp.Warning, classifiedToResponse(ci))
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// Acknowledge clears the alert-pending flag.
//
//	@Summary	Acknowledge urgency alert
//	@Tags		urgency
//	@Success	204
//	@Router		/stock/urgency/ack [post]
func (h *UrgencyHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "identity required"})
		return
	}

	if err := h.svc.Urgency.Acknowledge(r.Context(), userID); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// classifiedToResponse reuses the classification already computed by
// the report instead of re-deriving it at a slightly later now.
func classifiedToResponse(ci appsvcs.ClassifiedItem) StockItemResponse {
	item := ci.Item
	c := ci.Classification
	return StockItemResponse{
		ID:                 item.ID,
		Name:               item.Name.String(),
		Quantity:           item.Quantity,
		ExpirationDate:     item.ExpirationDate.Format("2006-01-02"),
		AlarmThresholdDays: item.AlarmThresholdDays,
		Category:           item.Category.String(),
		Status:             string(c.Status),
		DaysRemaining:      c.DaysRemaining,
		StatusMessage:      c.Message,
		CreatedAt:          item.CreatedAt,
	}
}
