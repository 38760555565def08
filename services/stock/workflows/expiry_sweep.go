package workflows

import (
	"context"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ghuser/shelfwatch/pkg/logger"
	appservices "github.com/ghuser/shelfwatch/services/stock/application/services"
	"github.com/ghuser/shelfwatch/services/stock/domain/repositories"
)

const (
	// TaskQueue is the Temporal task queue the stock worker polls.
	TaskQueue = "stock-expiry"

	// ExpirySweepWorkflowID is the fixed workflow ID for the nightly
	// sweep cron, so repeated worker starts do not stack schedules.
	ExpirySweepWorkflowID = "stock-expiry-sweep"

	// ExpirySweepCron runs the sweep every day at 06:00 UTC, before most
	// users open the app for the day.
	ExpirySweepCron = "0 6 * * *"
)

// SweepReport summarizes one expiry sweep run.
type SweepReport struct {
	Users  int `json:"users"`
	Urgent int `json:"urgent"`
	Failed int `json:"failed"`
}

// SweepActivities holds the dependencies for the expiry sweep activity.
type SweepActivities struct {
	items   repositories.StockItemRepository
	urgency *appservices.UrgencyService
	log     logger.Logger
}

func NewSweepActivities(items repositories.StockItemRepository, urgency *appservices.UrgencyService, log logger.Logger) *SweepActivities {
	return &SweepActivities{items: items, urgency: urgency, log: log}
}

// SweepAllUsers recomputes urgency for every user with stock. Items
// cross expiry boundaries overnight without any write happening, so the
// event-driven recompute alone would never raise their alerts; this
// sweep advances the alert gate for them.
//
// Per-user failures are logged and counted but do not abort the sweep.
func (a *SweepActivities) SweepAllUsers(ctx context.Context) (SweepReport, error) {
	ids, err := a.items.ListUserIDs(ctx)
	if err != nil {
		return SweepReport{}, err
	}

	report := SweepReport{Users: len(ids)}
	for _, id := range ids {
		ur, err := a.urgency.Report(ctx, id)
		if err != nil {
			report.Failed++
			a.log.ErrorContext(ctx, "expiry sweep failed for user", "user_id", id, "error", err)
			continue
		}
		if ur.Urgent() {
			report.Urgent++
		}
	}

	a.log.InfoContext(ctx, "expiry sweep completed",
		"users", report.Users, "urgent", report.Urgent, "failed", report.Failed)
	return report, nil
}

// ExpirySweepWorkflow runs the nightly urgency recompute across all
// users. One activity does the whole sweep; Temporal retries it on
// infrastructure failures.
func ExpirySweepWorkflow(ctx workflow.Context) (SweepReport, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: 30 * time.Second,
			MaximumAttempts: 3,
		},
	})

	var a *SweepActivities
	var report SweepReport
	if err := workflow.ExecuteActivity(ctx, a.SweepAllUsers).Get(ctx, &report); err != nil {
		return SweepReport{}, err
	}
	return report, nil
}
