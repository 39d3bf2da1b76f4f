// Package jobs runs the background tasks of the application: the
// reminder dispatch sweep and refresh token cleanup.
package jobs

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/tanvi/examtrack/internal/app/repositories"
	"github.com/tanvi/examtrack/internal/pkg/logger"
)

// sweepBatchSize caps how many due reminders a single sweep marks sent
const sweepBatchSize = 200

// Dispatcher periodically marks due reminders as sent and prunes
// expired refresh tokens
type Dispatcher struct {
	scheduler     *gocron.Scheduler
	reminderRepo  *repositories.ReminderRepository
	tokenRepo     *repositories.TokenRepository
	sweepInterval time.Duration
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(reminderRepo *repositories.ReminderRepository, tokenRepo *repositories.TokenRepository, sweepInterval time.Duration) *Dispatcher {
	return &Dispatcher{
		scheduler:     gocron.NewScheduler(time.Local),
		reminderRepo:  reminderRepo,
		tokenRepo:     tokenRepo,
		sweepInterval: sweepInterval,
	}
}

// Start begins running all scheduled tasks in the background
func (d *Dispatcher) Start() {
	d.scheduler.Every(d.sweepInterval).Do(d.sweepReminders)
	d.scheduler.Every(1).Hour().Do(d.cleanupTokens)
	d.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (d *Dispatcher) Stop() {
	d.scheduler.Stop()
}

// sweepReminders finds reminders whose instant has arrived and flags
// them as sent so the client can surface them
func (d *Dispatcher) sweepReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	due, err := d.reminderRepo.GetDueUnsent(ctx, time.Now(), sweepBatchSize)
	if err != nil {
		logger.Error().Err(err).Msg("Reminder sweep query failed")
		return
	}
	if len(due) == 0 {
		return
	}

	ids := make([]int64, 0, len(due))
	for _, reminder := range due {
		ids = append(ids, reminder.ID)
		logger.Info().
			Int64("reminderId", reminder.ID).
			Int64("userId", reminder.UserID).
			Str("type", string(reminder.ReminderType)).
			Str("priority", string(reminder.Priority)).
			Msg("Dispatching reminder")
	}

	if err := d.reminderRepo.MarkSent(ctx, ids); err != nil {
		logger.Error().Err(err).Int("count", len(ids)).Msg("Failed to mark reminders sent")
		return
	}

	logger.Info().Int("count", len(ids)).Msg("Reminder sweep completed")
}

// cleanupTokens deletes refresh tokens past their expiry
func (d *Dispatcher) cleanupTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := d.tokenRepo.DeleteExpiredTokens(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Token cleanup failed")
		return
	}
	if deleted > 0 {
		logger.Info().Int64("deleted", deleted).Msg("Expired refresh tokens removed")
	}
}
