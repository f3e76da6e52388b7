package repositories

import (
	"context"
	"database/sql"
	"math"

	"coderrBack/internal/models"
)

type BaseInfoRepository struct {
	DB *sql.DB
}

func (r *BaseInfoRepository) GetBaseInfo(ctx context.Context) (models.BaseInfo, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM reviews),
			(SELECT COALESCE(AVG(rating), 0) FROM reviews),
			(SELECT COUNT(*) FROM users WHERE role = 'business'),
			(SELECT COUNT(*) FROM offers)
	`
	var info models.BaseInfo
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&info.ReviewCount, &info.AverageRating, &info.BusinessProfileCount, &info.OfferCount,
	)
	if err != nil {
		return models.BaseInfo{}, err
	}
	info.AverageRating = math.Round(info.AverageRating*10) / 10
	return info, nil
}
