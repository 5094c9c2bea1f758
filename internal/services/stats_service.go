package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"tasteTribeBack/internal/models"
)

const adminStatsCacheKey = "stats:admin"

type StatsStore interface {
	CountUsers(ctx context.Context) (int, error)
	CountReviews(ctx context.Context) (int, error)
	CountFavorites(ctx context.Context) (int, error)
	CountReviewsByEmail(ctx context.Context, email string) (int, error)
	CountFavoritesByEmail(ctx context.Context, email string) (int, error)
	ReviewsByMonth(ctx context.Context) ([]models.MonthlyCount, error)
	RatingDistribution(ctx context.Context) ([]models.RatingBucket, error)
	RatingDistributionByEmail(ctx context.Context, email string) ([]models.RatingBucket, error)
	RecentReviewsByEmail(ctx context.Context, email string, limit int) ([]models.Review, error)
}

// StatsService aggregates the dashboards. The admin view sits behind a
// short-TTL Redis cache; RDB may be nil, in which case every read hits
// the store. Cache failures only log, they never fail the request.
type StatsService struct {
	StatsRepo StatsStore
	RDB       *redis.Client
	CacheTTL  time.Duration
}

func (s *StatsService) GetAdminStats(ctx context.Context) (models.AdminStats, error) {
	if s.RDB != nil {
		if cached, err := s.RDB.Get(ctx, adminStatsCacheKey).Result(); err == nil {
			var stats models.AdminStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return stats, nil
			}
		}
	}

	var stats models.AdminStats
	var err error
	if stats.TotalUsers, err = s.StatsRepo.CountUsers(ctx); err != nil {
		return models.AdminStats{}, err
	}
	if stats.TotalReviews, err = s.StatsRepo.CountReviews(ctx); err != nil {
		return models.AdminStats{}, err
	}
	if stats.TotalFavorites, err = s.StatsRepo.CountFavorites(ctx); err != nil {
		return models.AdminStats{}, err
	}
	if stats.ReviewsByMonth, err = s.StatsRepo.ReviewsByMonth(ctx); err != nil {
		return models.AdminStats{}, err
	}
	if stats.RatingDistribution, err = s.StatsRepo.RatingDistribution(ctx); err != nil {
		return models.AdminStats{}, err
	}

	if s.RDB != nil {
		ttl := s.CacheTTL
		if ttl <= 0 {
			ttl = 30 * time.Second
		}
		payload, _ := json.Marshal(stats)
		if err := s.RDB.Set(ctx, adminStatsCacheKey, payload, ttl).Err(); err != nil {
			log.Printf("admin stats cache set: %v", err)
		}
	}
	return stats, nil
}

func (s *StatsService) GetUserStats(ctx context.Context, email string) (models.UserStats, error) {
	stats := models.UserStats{Email: email}
	var err error
	if stats.ReviewCount, err = s.StatsRepo.CountReviewsByEmail(ctx, email); err != nil {
		return models.UserStats{}, err
	}
	if stats.FavoriteCount, err = s.StatsRepo.CountFavoritesByEmail(ctx, email); err != nil {
		return models.UserStats{}, err
	}
	if stats.RecentReviews, err = s.StatsRepo.RecentReviewsByEmail(ctx, email, recentCount); err != nil {
		return models.UserStats{}, err
	}
	if stats.RatingDistribution, err = s.StatsRepo.RatingDistributionByEmail(ctx, email); err != nil {
		return models.UserStats{}, err
	}
	return stats, nil
}
