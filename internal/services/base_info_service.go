package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"coderrBack/internal/models"
	"coderrBack/internal/repositories"
)

const baseInfoCacheKey = "base_info"
const baseInfoCacheTTL = 60 * time.Second

type BaseInfoService struct {
	BaseInfoRepo *repositories.BaseInfoRepository
	Redis        *redis.Client
}

// GetBaseInfo returns the platform aggregates, served from a short-lived
// Redis cache when available. Cache failures fall through to the database.
func (s *BaseInfoService) GetBaseInfo(ctx context.Context) (models.BaseInfo, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, baseInfoCacheKey).Bytes()
		if err == nil {
			var info models.BaseInfo
			if err := json.Unmarshal(cached, &info); err == nil {
				return info, nil
			}
		}
	}

	info, err := s.BaseInfoRepo.GetBaseInfo(ctx)
	if err != nil {
		return models.BaseInfo{}, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(info); err == nil {
			s.Redis.Set(ctx, baseInfoCacheKey, payload, baseInfoCacheTTL)
		}
	}

	return info, nil
}
