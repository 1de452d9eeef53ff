package services

import (
	"context"

	"github.com/Sunilkumarmehta2002/swipemyhood/cache"
	"github.com/Sunilkumarmehta2002/swipemyhood/repository"
)

// UserStats backs the user dashboard.
type UserStats struct {
	TotalSwipes   int64 `json:"total_swipes"`
	TotalLikes    int64 `json:"total_likes"`
	TotalMatches  int64 `json:"total_matches"`
	TopMatchScore int   `json:"top_match_score"`
}

// PlatformStats backs the admin overview.
type PlatformStats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalSwipes   int64 `json:"total_swipes"`
	TotalMatches  int64 `json:"total_matches"`
	TotalOrders   int64 `json:"total_orders"`
	TotalMessages int64 `json:"total_messages"`
}

const platformStatsCacheKey = "stats:platform"

type StatsService struct {
	users    *repository.UserRepository
	swipes   *repository.SwipeRepository
	matches  *repository.MatchRepository
	orders   *repository.OrderRepository
	messages *repository.MessageRepository
	cache    *cache.Cache
}

func NewStatsService(
	users *repository.UserRepository,
	swipes *repository.SwipeRepository,
	matches *repository.MatchRepository,
	orders *repository.OrderRepository,
	messages *repository.MessageRepository,
	c *cache.Cache,
) *StatsService {
	return &StatsService{
		users:    users,
		swipes:   swipes,
		matches:  matches,
		orders:   orders,
		messages: messages,
		cache:    c,
	}
}

func (s *StatsService) User(ctx context.Context, userID string) (UserStats, error) {
	var stats UserStats
	var err error

	if stats.TotalSwipes, err = s.swipes.CountByUser(ctx, userID); err != nil {
		return stats, err
	}
	if stats.TotalLikes, err = s.swipes.CountLikesByUser(ctx, userID); err != nil {
		return stats, err
	}

	matches, err := s.matches.FindByUser(ctx, userID)
	if err != nil {
		return stats, err
	}
	stats.TotalMatches = int64(len(matches))
	for _, m := range matches {
		if m.Score > stats.TopMatchScore {
			stats.TopMatchScore = m.Score
		}
	}
	return stats, nil
}

func (s *StatsService) Platform(ctx context.Context) (PlatformStats, error) {
	var stats PlatformStats
	if s.cache.GetJSON(ctx, platformStatsCacheKey, &stats) {
		return stats, nil
	}

	var err error
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return stats, err
	}
	if stats.TotalSwipes, err = s.swipes.Count(ctx); err != nil {
		return stats, err
	}
	if stats.TotalMatches, err = s.matches.Count(ctx); err != nil {
		return stats, err
	}
	if stats.TotalOrders, err = s.orders.Count(ctx); err != nil {
		return stats, err
	}
	if stats.TotalMessages, err = s.messages.Count(ctx); err != nil {
		return stats, err
	}

	s.cache.SetJSON(ctx, platformStatsCacheKey, stats)
	return stats, nil
}
