package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"coderrBack/internal/models"
)

type OrderRepository struct {
	DB *sql.DB
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	features, err := json.Marshal(order.Features)
	if err != nil {
		return models.Order{}, err
	}

	query := `
		INSERT INTO orders (customer_user_id, business_user_id, title, revisions, delivery_time_in_days, price, features, offer_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err = r.DB.QueryRowContext(ctx, query,
		order.CustomerUserID, order.BusinessUserID, order.Title, order.Revisions,
		order.DeliveryTimeInDays, order.Price, features, order.OfferType, order.Status,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id int) (models.Order, error) {
	query := `
		SELECT id, customer_user_id, business_user_id, title, revisions, delivery_time_in_days, price, features, offer_type, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`
	var o models.Order
	var features []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.CustomerUserID, &o.BusinessUserID, &o.Title, &o.Revisions,
		&o.DeliveryTimeInDays, &o.Price, &features, &o.OfferType, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, models.ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	if err := json.Unmarshal(features, &o.Features); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

// GetOrdersForUser returns orders where the user is either party.
func (r *OrderRepository) GetOrdersForUser(ctx context.Context, userID int) ([]models.Order, error) {
	query := `
		SELECT id, customer_user_id, business_user_id, title, revisions, delivery_time_in_days, price, features, offer_type, status, created_at, updated_at
		FROM orders
		WHERE customer_user_id = $1 OR business_user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		var features []byte
		err := rows.Scan(&o.ID, &o.CustomerUserID, &o.BusinessUserID, &o.Title, &o.Revisions,
			&o.DeliveryTimeInDays, &o.Price, &features, &o.OfferType, &o.Status, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(features, &o.Features); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id int, status string) (models.Order, error) {
	res, err := r.DB.ExecContext(ctx, `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return models.Order{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Order{}, err
	}
	if affected == 0 {
		return models.Order{}, models.ErrOrderNotFound
	}
	return r.GetOrderByID(ctx, id)
}

func (r *OrderRepository) DeleteOrder(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) CountOrdersForBusiness(ctx context.Context, businessUserID int, status string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE business_user_id = $1 AND status = $2`,
		businessUserID, status,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
