package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// GenerateDailyQueue returns up to targetSize word ids to review on today:
// due words first (earliest due date first), then never-reviewed words
// (oldest first). The result never contains an id twice.
func (s *Service) GenerateDailyQueue(ctx context.Context, targetSize int, today time.Time) ([]uuid.UUID, error) {
	if targetSize <= 0 {
		return []uuid.UUID{}, nil
	}
	day := s.today(today)

	due, err := s.schedules.DueIDs(ctx, day, targetSize)
	if err != nil {
		return nil, fmt.Errorf("get due ids: %w", err)
	}

	queue := make([]uuid.UUID, 0, targetSize)
	seen := make(map[uuid.UUID]struct{}, targetSize)
	add := func(ids []uuid.UUID) {
		for _, id := range ids {
			if len(queue) == targetSize {
				return
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			queue = append(queue, id)
		}
	}

	add(due)
	dueCount := len(queue)

	if len(queue) < targetSize {
		fresh, err := s.words.NewIDs(ctx, targetSize-len(queue))
		if err != nil {
			return nil, fmt.Errorf("get new ids: %w", err)
		}
		add(fresh)
	}

	s.log.InfoContext(ctx, "daily queue generated",
		slog.Time("today", day),
		slog.Int("due_count", dueCount),
		slog.Int("new_count", len(queue)-dueCount),
		slog.Int("total", len(queue)),
	)

	return queue, nil
}
