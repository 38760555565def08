package handlers

import (
	"time"

	"github.com/ghuser/shelfwatch/services/stock/domain/models"
	domainsvcs "github.com/ghuser/shelfwatch/services/stock/domain/services"
)

// toResponse maps a stock item to its API shape with the expiration
// status derived at now. Status is always recomputed, never read from
// storage.
func toResponse(item *models.StockItem, now time.Time) StockItemResponse {
	c := domainsvcs.Classify(item.ExpirationDate, item.AlarmThresholdDays, now)
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

func toResponses(items []*models.StockItem, now time.Time) []StockItemResponse {
	out := make([]StockItemResponse, len(items))
	for i, item := range items {
		out[i] = toResponse(item, now)
	}
	return out
}
