package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/chatco/chatco-backend/internal/models"
)

// ListActivePlans returns the plans shown on the public plan selection
// page, ordered by sort_order.
func (s *Storage) ListActivePlans(ctx context.Context) ([]*models.PricingPlan, error) {
	const op = "repository.ListActivePlans"
	return s.listPlans(ctx, op, `WHERE is_active = TRUE`)
}

// ListPlans returns all plans including inactive ones, for the admin
// surface.
func (s *Storage) ListPlans(ctx context.Context) ([]*models.PricingPlan, error) {
	const op = "repository.ListPlans"
	return s.listPlans(ctx, op, ``)
}

func (s *Storage) listPlans(ctx context.Context, op, where string) ([]*models.PricingPlan, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, price, currency, billing_interval, features,
			      is_active, sort_order, created_at, updated_at
			  FROM pricing_plans ` + where + `
			  ORDER BY sort_order ASC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.PricingPlan
	for rows.Next() {
		var p models.PricingPlan
		var features []byte
		var currency sql.NullString
		if err = rows.Scan(&p.ID, &p.Name, &p.Price, &currency, &p.BillingInterval,
			&features, &p.IsActive, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if currency.Valid {
			p.Currency = currency.String
		}
		if len(features) > 0 {
			if err = json.Unmarshal(features, &p.Features); err != nil {
				return nil, fmt.Errorf("%s: malformed features for plan %d: %w", op, p.ID, err)
			}
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
