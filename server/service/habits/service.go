package habits

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	srverrors "github.com/tasknest/tasknest/server/internal/errors"
	"github.com/tasknest/tasknest/server/internal/observability"
	"github.com/tasknest/tasknest/server/timezone"
	"github.com/tasknest/tasknest/store"
)

// Service builds habits reports for users.
type Service interface {
	// BuildReport computes the report for the given period. days = 0 means
	// the default period; values outside [MinPeriodDays, MaxPeriodDays]
	// are a validation error, the only error this service surfaces for a
	// well-formed user. useLLM requests the generation overlay on top of
	// the always-computed rule-based baseline.
	BuildReport(ctx context.Context, userID int32, days int, useLLM bool) (*HabitsReport, error)
}

type service struct {
	store     *store.Store
	generator *GenerationClient
	logger    *slog.Logger
}

// NewService creates a habits report service.
func NewService(st *store.Store, generator *GenerationClient) Service {
	return &service{
		store:     st,
		generator: generator,
		logger:    slog.Default(),
	}
}

// ValidateDays normalizes and checks the period argument.
func ValidateDays(days int) (int, error) {
	if days == 0 {
		return DefaultPeriodDays, nil
	}
	if days < MinPeriodDays || days > MaxPeriodDays {
		return 0, srverrors.InvalidArgument(
			fmt.Sprintf("period must be between %d and %d days, got %d", MinPeriodDays, MaxPeriodDays, days))
	}
	return days, nil
}

func (s *service) BuildReport(ctx context.Context, userID int32, days int, useLLM bool) (*HabitsReport, error) {
	days, err := ValidateDays(days)
	if err != nil {
		return nil, err
	}

	user, err := s.store.GetUser(ctx, &store.FindUser{ID: &userID})
	if err != nil {
		return nil, srverrors.StoreUnavailable("failed to load user", err)
	}
	if user == nil {
		return nil, srverrors.UserNotFound(userID)
	}

	rc := observability.NewRequestContext(s.logger, userID, days)

	now := time.Now()
	start := now.AddDate(0, 0, -days)
	loc := timezone.LocationOrUTC(user.Timezone)
	t := textsFor(user.Language)

	tasks, createdCount, err := s.loadPeriodTasks(ctx, userID, start, now)
	if err != nil {
		return nil, err
	}

	stats := Aggregate(tasks, createdCount, loc, now, days)
	suggestions := buildSuggestions(stats, t)
	shortText, longText := buildRuleTexts(days, stats, suggestions, t)
	metrics := buildMetrics(stats, suggestions, days, start, now, t)

	if useLLM {
		shortText, longText = applyOverlay(ctx, s.generator, shortText, longText, metrics, user.Language, days)
	}

	rc.Info("habits report built",
		slog.Int("done_count", stats.DoneCount),
		slog.Bool("use_llm", useLLM),
		slog.Int64(observability.LogFieldDuration, rc.DurationMs()))

	return &HabitsReport{
		ShortText: shortText,
		LongText:  longText,
		Metrics:   metrics,
	}, nil
}

// loadPeriodTasks fetches the completed tasks of the window with their
// reminders, plus the count of tasks created in the window.
func (s *service) loadPeriodTasks(ctx context.Context, userID int32, start, now time.Time) ([]*TaskReminders, int, error) {
	startTs, nowTs := start.Unix(), now.Unix()

	createdCount, err := s.store.CountTasks(ctx, &store.FindTask{
		UserID:          &userID,
		CreatedTsAfter:  &startTs,
		CreatedTsBefore: &nowTs,
	})
	if err != nil {
		return nil, 0, srverrors.StoreUnavailable("failed to count tasks", err)
	}

	done := store.TaskStatusDone
	tasks, err := s.store.ListTasks(ctx, &store.FindTask{
		UserID:            &userID,
		Status:            &done,
		CompletedTsAfter:  &startTs,
		CompletedTsBefore: &nowTs,
	})
	if err != nil {
		return nil, 0, srverrors.StoreUnavailable("failed to list tasks", err)
	}

	taskIDs := make([]int32, 0, len(tasks))
	for _, task := range tasks {
		taskIDs = append(taskIDs, task.ID)
	}

	byTask := map[int32][]*store.Reminder{}
	if len(taskIDs) > 0 {
		reminders, err := s.store.ListReminders(ctx, &store.FindReminder{TaskIDs: taskIDs})
		if err != nil {
			return nil, 0, srverrors.StoreUnavailable("failed to list reminders", err)
		}
		for _, reminder := range reminders {
			byTask[reminder.TaskID] = append(byTask[reminder.TaskID], reminder)
		}
	}

	list := make([]*TaskReminders, 0, len(tasks))
	for _, task := range tasks {
		list = append(list, &TaskReminders{Task: task, Reminders: byTask[task.ID]})
	}
	return list, createdCount, nil
}
