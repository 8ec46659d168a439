// Package services lists the pricing plans shown on the plan selection
// page.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chatco/chatco-backend/internal/lib/sl"
	"github.com/chatco/chatco-backend/internal/models"
)

const activePlansCacheKey = "plans:active"
const cacheTTL = time.Hour

// PlanRepository describes the plan storage used by this service.
type PlanRepository interface {
	// ListActivePlans returns active plans in display order.
	ListActivePlans(ctx context.Context) ([]*models.PricingPlan, error)
	// ListPlans returns every plan, active or not.
	ListPlans(ctx context.Context) ([]*models.PricingPlan, error)
}

// Cache describes the cache used for the public plan list.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
}

// PlanService implements the plan listings.
type PlanService struct {
	repo  PlanRepository
	cache Cache
	log   *slog.Logger
}

// NewPlanService creates a PlanService.
func NewPlanService(repo PlanRepository, cache Cache, log *slog.Logger) *PlanService {
	return &PlanService{repo: repo, cache: cache, log: log}
}

// ListActive returns the active plans for the public page, cached.
func (s *PlanService) ListActive(ctx context.Context) ([]*models.PricingPlan, error) {
	const op = "services.ListActive"

	var cached []*models.PricingPlan
	found, err := s.cache.Get(activePlansCacheKey, &cached)
	if err != nil {
		s.log.Warn("plan cache read failed", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	plans, err := s.repo.ListActivePlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(activePlansCacheKey, plans, cacheTTL); err != nil {
		s.log.Warn("failed to cache plans", sl.Err(err))
	}
	return plans, nil
}

// ListAll returns every plan. Admin only, never cached.
func (s *PlanService) ListAll(ctx context.Context) ([]*models.PricingPlan, error) {
	return s.repo.ListPlans(ctx)
}
