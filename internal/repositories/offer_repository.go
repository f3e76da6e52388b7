package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"coderrBack/internal/models"
)

type OfferRepository struct {
	DB *sql.DB
}

// CreateOfferWithDetails persists the offer row together with its full tier
// set in one transaction. The caller has already validated the tier batch.
func (r *OfferRepository) CreateOfferWithDetails(ctx context.Context, offer models.Offer, details []models.OfferDetail) (models.Offer, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Offer{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO offers (user_id, title, image, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`, offer.UserID, offer.Title, offer.Image, offer.Description).Scan(&offer.ID, &offer.CreatedAt, &offer.UpdatedAt)
	if err != nil {
		return models.Offer{}, err
	}

	for _, d := range details {
		var detailID int
		var features []byte
		features, err = json.Marshal(d.Features)
		if err != nil {
			return models.Offer{}, err
		}
		err = tx.QueryRowContext(ctx, `
			INSERT INTO offer_details (offer_id, title, revisions, delivery_time_in_days, price, features, offer_type)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, offer.ID, d.Title, d.Revisions, d.DeliveryTimeInDays, d.Price, features, d.OfferType).Scan(&detailID)
		if err != nil {
			return models.Offer{}, err
		}
		offer.Details = append(offer.Details, models.TierLink{ID: detailID, URL: fmt.Sprintf("/offerdetails/%d/", detailID)})
	}

	if err = tx.Commit(); err != nil {
		return models.Offer{}, err
	}
	return offer, nil
}

func (r *OfferRepository) GetOfferByID(ctx context.Context, id int) (models.Offer, error) {
	query := `
		SELECT o.id, o.user_id, o.title, o.image, o.description, o.created_at, o.updated_at,
		       u.first_name, u.last_name, u.username,
		       COALESCE(MIN(d.price), 0), COALESCE(MIN(d.delivery_time_in_days), 0)
		FROM offers o
		JOIN users u ON o.user_id = u.id
		LEFT JOIN offer_details d ON d.offer_id = o.id
		WHERE o.id = $1
		GROUP BY o.id, u.first_name, u.last_name, u.username
	`
	var o models.Offer
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.UserID, &o.Title, &o.Image, &o.Description, &o.CreatedAt, &o.UpdatedAt,
		&o.UserDetails.FirstName, &o.UserDetails.LastName, &o.UserDetails.Username,
		&o.MinPrice, &o.MinDelivery,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Offer{}, models.ErrOfferNotFound
	}
	if err != nil {
		return models.Offer{}, err
	}

	o.Details, err = r.getTierLinks(ctx, o.ID)
	if err != nil {
		return models.Offer{}, err
	}
	return o, nil
}

func (r *OfferRepository) getTierLinks(ctx context.Context, offerID int) ([]models.TierLink, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id FROM offer_details WHERE offer_id = $1 ORDER BY id`, offerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []models.TierLink{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		links = append(links, models.TierLink{ID: id, URL: fmt.Sprintf("/offerdetails/%d/", id)})
	}
	return links, rows.Err()
}

// GetOffers lists offers with filters applied against the aggregated tier
// values (min price, min delivery time).
func (r *OfferRepository) GetOffers(ctx context.Context, filter models.OfferFilterRequest) (models.OfferListResponse, error) {
	where := []string{}
	having := []string{}
	args := []interface{}{}

	if filter.CreatorID > 0 {
		args = append(args, filter.CreatorID)
		where = append(where, fmt.Sprintf("o.user_id = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, fmt.Sprintf("(o.title ILIKE $%d OR o.description ILIKE $%d)", len(args), len(args)))
	}
	if filter.MinPrice > 0 {
		args = append(args, filter.MinPrice)
		having = append(having, fmt.Sprintf("COALESCE(MIN(d.price), 0) >= $%d", len(args)))
	}
	if filter.MaxDeliveryTime > 0 {
		args = append(args, filter.MaxDeliveryTime)
		having = append(having, fmt.Sprintf("COALESCE(MIN(d.delivery_time_in_days), 0) <= $%d", len(args)))
	}

	base := `
		FROM offers o
		JOIN users u ON o.user_id = u.id
		LEFT JOIN offer_details d ON d.offer_id = o.id
	`
	if len(where) > 0 {
		base += " WHERE " + strings.Join(where, " AND ")
	}
	base += " GROUP BY o.id, u.first_name, u.last_name, u.username"
	if len(having) > 0 {
		base += " HAVING " + strings.Join(having, " AND ")
	}

	orderBy := " ORDER BY o.updated_at DESC"
	switch filter.Ordering {
	case "updated_at":
		orderBy = " ORDER BY o.updated_at ASC"
	case "-updated_at":
		orderBy = " ORDER BY o.updated_at DESC"
	case "min_price":
		orderBy = " ORDER BY COALESCE(MIN(d.price), 0) ASC"
	case "-min_price":
		orderBy = " ORDER BY COALESCE(MIN(d.price), 0) DESC"
	}

	countQuery := "SELECT COUNT(*) FROM (SELECT o.id " + base + ") matched"
	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return models.OfferListResponse{}, err
	}

	args = append(args, filter.PageSize)
	limitClause := fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, (filter.Page-1)*filter.PageSize)
	limitClause += fmt.Sprintf(" OFFSET $%d", len(args))

	query := `
		SELECT o.id, o.user_id, o.title, o.image, o.description, o.created_at, o.updated_at,
		       u.first_name, u.last_name, u.username,
		       COALESCE(MIN(d.price), 0), COALESCE(MIN(d.delivery_time_in_days), 0)
	` + base + orderBy + limitClause

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return models.OfferListResponse{}, err
	}
	defer rows.Close()

	offers := []models.Offer{}
	for rows.Next() {
		var o models.Offer
		err := rows.Scan(
			&o.ID, &o.UserID, &o.Title, &o.Image, &o.Description, &o.CreatedAt, &o.UpdatedAt,
			&o.UserDetails.FirstName, &o.UserDetails.LastName, &o.UserDetails.Username,
			&o.MinPrice, &o.MinDelivery,
		)
		if err != nil {
			return models.OfferListResponse{}, err
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return models.OfferListResponse{}, err
	}

	for i := range offers {
		offers[i].Details, err = r.getTierLinks(ctx, offers[i].ID)
		if err != nil {
			return models.OfferListResponse{}, err
		}
	}

	return models.OfferListResponse{Count: total, Results: offers}, nil
}

func (r *OfferRepository) GetOfferOwner(ctx context.Context, id int) (int, error) {
	var ownerID int
	err := r.DB.QueryRowContext(ctx, `SELECT user_id FROM offers WHERE id = $1`, id).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, models.ErrOfferNotFound
	}
	if err != nil {
		return 0, err
	}
	return ownerID, nil
}

// UpdateOfferWithDetails patches the offer scalars and reconciles the
// supplied tiers against existing rows by offer_type, all in one
// transaction. A supplied tier matching an existing type overwrites the
// fields it carries; an unmatched type becomes a new row and must then carry
// the full field set.
func (r *OfferRepository) UpdateOfferWithDetails(ctx context.Context, offerID int, patch models.OfferUpdateRequest) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	if patch.Title != nil {
		args = append(args, *patch.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	if patch.Image != nil {
		args = append(args, *patch.Image)
		sets = append(sets, fmt.Sprintf("image = $%d", len(args)))
	}
	args = append(args, offerID)
	query := fmt.Sprintf("UPDATE offers SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	var res sql.Result
	res, err = tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		err = models.ErrOfferNotFound
		return err
	}

	for i, in := range patch.Details {
		var existing models.OfferDetail
		var features []byte
		row := tx.QueryRowContext(ctx, `
			SELECT id, title, revisions, delivery_time_in_days, price, features, offer_type
			FROM offer_details
			WHERE offer_id = $1 AND offer_type = $2
			FOR UPDATE
		`, offerID, in.OfferType)
		scanErr := row.Scan(&existing.ID, &existing.Title, &existing.Revisions,
			&existing.DeliveryTimeInDays, &existing.Price, &features, &existing.OfferType)
		switch {
		case scanErr == nil:
			if err = json.Unmarshal(features, &existing.Features); err != nil {
				return err
			}
			in.ApplyTo(&existing)
			features, err = json.Marshal(existing.Features)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx, `
				UPDATE offer_details
				SET title = $1, revisions = $2, delivery_time_in_days = $3, price = $4, features = $5
				WHERE id = $6
			`, existing.Title, existing.Revisions, existing.DeliveryTimeInDays, existing.Price, features, existing.ID)
			if err != nil {
				return err
			}
		case errors.Is(scanErr, sql.ErrNoRows):
			// New tier for this type: the patch must carry the full field set.
			if in.Title == nil || in.Revisions == nil || in.DeliveryTimeInDays == nil || in.Price == nil || in.Features == nil {
				err = models.NewValidationError(fmt.Sprintf("details[%d]", i), "a new tier must include title, revisions, delivery_time_in_days, price and features")
				return err
			}
			features, err = json.Marshal(*in.Features)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO offer_details (offer_id, title, revisions, delivery_time_in_days, price, features, offer_type)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, offerID, *in.Title, *in.Revisions, *in.DeliveryTimeInDays, *in.Price, features, in.OfferType)
			if err != nil {
				return err
			}
		default:
			err = scanErr
			return err
		}
	}

	return tx.Commit()
}

func (r *OfferRepository) DeleteOffer(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrOfferNotFound
	}
	return nil
}

func (r *OfferRepository) GetOfferDetailByID(ctx context.Context, id int) (models.OfferDetail, error) {
	query := `
		SELECT id, offer_id, title, revisions, delivery_time_in_days, price, features, offer_type
		FROM offer_details
		WHERE id = $1
	`
	var d models.OfferDetail
	var features []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.OfferID, &d.Title, &d.Revisions, &d.DeliveryTimeInDays, &d.Price, &features, &d.OfferType,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.OfferDetail{}, models.ErrTierNotFound
	}
	if err != nil {
		return models.OfferDetail{}, err
	}
	if err := json.Unmarshal(features, &d.Features); err != nil {
		return models.OfferDetail{}, err
	}
	return d, nil
}

// GetOfferDetailWithOwner also resolves the business user owning the parent
// offer. Used when materializing an order snapshot.
func (r *OfferRepository) GetOfferDetailWithOwner(ctx context.Context, id int) (models.OfferDetail, int, error) {
	query := `
		SELECT d.id, d.offer_id, d.title, d.revisions, d.delivery_time_in_days, d.price, d.features, d.offer_type, o.user_id
		FROM offer_details d
		JOIN offers o ON d.offer_id = o.id
		WHERE d.id = $1
	`
	var d models.OfferDetail
	var features []byte
	var ownerID int
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.OfferID, &d.Title, &d.Revisions, &d.DeliveryTimeInDays, &d.Price, &features, &d.OfferType, &ownerID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.OfferDetail{}, 0, models.ErrTierNotFound
	}
	if err != nil {
		return models.OfferDetail{}, 0, err
	}
	if err := json.Unmarshal(features, &d.Features); err != nil {
		return models.OfferDetail{}, 0, err
	}
	return d, ownerID, nil
}

func (r *OfferRepository) UpdateOfferImage(ctx context.Context, id int, path string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE offers SET image = $1, updated_at = NOW() WHERE id = $2`, path, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrOfferNotFound
	}
	return nil
}
