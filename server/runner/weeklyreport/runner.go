// Package weeklyreport delivers the scheduled habits report to every
// reachable user.
package weeklyreport

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tasknest/tasknest/internal/profile"
	"github.com/tasknest/tasknest/plugin/telegram"
	"github.com/tasknest/tasknest/server/service/habits"
	"github.com/tasknest/tasknest/store"
)

const (
	// checkInterval is how often eligibility is re-evaluated. The report
	// cadence itself is reportPeriod; frequent checks just catch up users
	// who became due while the process was down.
	checkInterval = time.Hour

	// reportPeriod is the delivery cadence and the report window.
	reportPeriod = 7 * 24 * time.Hour

	// maxConcurrentUsers bounds parallel report builds; each one may hold
	// an outbound generation call open.
	maxConcurrentUsers = 4
)

type Runner struct {
	store    *store.Store
	habits   habits.Service
	sender   telegram.Sender
	useLLM   bool
	interval time.Duration
	clock    func() time.Time
}

// NewRunner creates the weekly report runner. The generation overlay is
// applied only when the profile both enables it for the weekly batch and
// carries a complete generation configuration.
func NewRunner(st *store.Store, habitsService habits.Service, sender telegram.Sender, p *profile.Profile) *Runner {
	return &Runner{
		store:    st,
		habits:   habitsService,
		sender:   sender,
		useLLM:   p.LLMWeekly && p.IsLLMConfigured(),
		interval: checkInterval,
		clock:    time.Now,
	}
}

// Run starts the background loop until the context is canceled.
func (r *Runner) Run(ctx context.Context) {
	r.RunOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.RunOnce(ctx)
		case <-ctx.Done():
			slog.Info("weekly report runner stopped")
			return
		}
	}
}

// RunOnce processes one delivery batch. Per-user failures are logged and
// skipped; the batch itself never fails.
func (r *Runner) RunOnce(ctx context.Context) {
	users, err := r.findDueUsers(ctx)
	if err != nil {
		slog.Error("failed to find users due for a report", "error", err)
		return
	}
	if len(users) == 0 {
		return
	}
	slog.Info("processing weekly reports", "count", len(users), "use_llm", r.useLLM)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentUsers)
	for _, user := range users {
		g.Go(func() error {
			if err := r.deliverReport(gctx, user); err != nil {
				slog.Error("weekly report delivery failed",
					"user_id", user.ID,
					"error", err)
			}
			// Always nil: one user's failure must not cancel the batch.
			return nil
		})
	}
	_ = g.Wait()
}

func (r *Runner) findDueUsers(ctx context.Context) ([]*store.User, error) {
	normal := store.Normal
	reachable := true
	dueBefore := r.clock().Add(-reportPeriod).Unix()
	return r.store.ListUsers(ctx, &store.FindUser{
		RowStatus:        &normal,
		HasTelegramChat:  &reachable,
		LastReportBefore: &dueBefore,
	})
}

func (r *Runner) deliverReport(ctx context.Context, user *store.User) error {
	report, err := r.habits.BuildReport(ctx, user.ID, habits.MinPeriodDays, r.useLLM)
	if err != nil {
		return err
	}

	if err := r.sender.SendMessage(ctx, user.TelegramChatID, report.ShortText); err != nil {
		return err
	}
	if err := r.sender.SendMessage(ctx, user.TelegramChatID, report.LongText); err != nil {
		return err
	}

	sentTs := r.clock().Unix()
	if err := r.store.UpdateUser(ctx, &store.UpdateUser{ID: user.ID, LastReportTs: &sentTs}); err != nil {
		// The report went out; a stale marker only means an earlier retry
		// next cycle.
		slog.Warn("failed to record report delivery time", "user_id", user.ID, "error", err)
	}

	slog.Info("weekly report delivered", "user_id", user.ID)
	return nil
}
