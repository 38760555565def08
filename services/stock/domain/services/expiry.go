// Package services contains stateless domain services for the stock
// bounded context. They enforce business rules that operate purely on
// domain types and have zero external dependencies beyond stdlib and
// the domain layer.
package services

import (
	"fmt"
	"math"
	"time"

	"github.com/ghuser/shelfwatch/services/stock/domain/models"
)

// Classification is the result of classifying one expiration date
// against an alarm threshold at a given moment.
type Classification struct {
	Status        models.ExpirationStatus
	DaysRemaining int // negative once expired
	Message       string
}

// Classify maps (expiration date, alarm threshold, now) to an
// expiration status. DaysRemaining is the ceiling of the distance from
// now to the date's midnight in whole days, so a remainder of 1.2 days
// reports 2 and an item dated today reports 0.
//
// Status is Expired when DaysRemaining < 0, Warning when
// 0 <= DaysRemaining <= thresholdDays, OK otherwise. Pure and
// deterministic given now; callers must re-evaluate on every read.
func Classify(expirationDate time.Time, thresholdDays int, now time.Time) Classification {
	if thresholdDays < 1 {
		thresholdDays = 1
	}

	midnight := models.DateOnly(expirationDate)
	days := int(math.Ceil(midnight.Sub(now).Hours() / 24))

	switch {
	case days < 0:
		return Classification{
			Status:        models.StatusExpired,
			DaysRemaining: days,
			Message:       fmt.Sprintf("expired %d day(s) ago", -days),
		}
	case days <= thresholdDays:
		msg := fmt.Sprintf("expires in %d day(s), alarm threshold %d day(s)", days, thresholdDays)
		if days == 0 {
			msg = fmt.Sprintf("expires today, alarm threshold %d day(s)", thresholdDays)
		}
		return Classification{
			Status:        models.StatusWarning,
			DaysRemaining: days,
			Message:       msg,
		}
	default:
		return Classification{
			Status:        models.StatusOK,
			DaysRemaining: days,
			Message:       fmt.Sprintf("%d day(s) remaining", days),
		}
	}
}
