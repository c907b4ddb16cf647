package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/moodscript/internal/analytics"
	errorvalues "github.com/limbo/moodscript/internal/error_values"
	"github.com/limbo/moodscript/internal/repository"
	"github.com/limbo/moodscript/pkg/entity"
	"github.com/limbo/moodscript/pkg/moods"
)

type AnalyticsService struct {
	users   repository.UsersRepositoryI
	entries repository.EntriesRepositoryI
	now     func() time.Time
}

func NewAnalyticsService(usersRepo repository.UsersRepositoryI, entriesRepo repository.EntriesRepositoryI) *AnalyticsService {
	return NewAnalyticsServiceWithClock(usersRepo, entriesRepo, time.Now)
}

func NewAnalyticsServiceWithClock(usersRepo repository.UsersRepositoryI, entriesRepo repository.EntriesRepositoryI, now func() time.Time) *AnalyticsService {
	if usersRepo == nil || entriesRepo == nil {
		log.Fatal("provided nil repository to analytics service")
	}
	return &AnalyticsService{
		users:   usersRepo,
		entries: entriesRepo,
		now:     now,
	}
}

func (as *AnalyticsService) GetAnalytics(ctx context.Context, uid uuid.UUID, period analytics.Period) (*AnalyticsResult, error) {
	if _, err := as.users.FindByID(ctx, uid); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	startDate := period.StartDate(as.now())
	list, err := as.entries.ListSince(ctx, uid, startDate)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	if list == nil {
		list = make([]entity.Entry, 0)
	}
	result := analytics.Aggregate(list, period)
	slog.Debug("analytics computed",
		slog.String("uid", uid.String()),
		slog.String("period", string(period)),
		slog.Int("entries", len(list)),
		slog.Int("days", len(result.Timeline)),
	)
	return &AnalyticsResult{
		Timeline: result.Timeline,
		Stats:    result.Stats,
		Trend:    moods.Trend(result.Stats.AverageScore),
		Entries:  list,
	}, nil
}
