// Package services resolves keyed display content. Stored sections win,
// absent keys fall back to the built-in defaults, and json sections are
// parsed into item lists before they leave the service.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chatco/chatco-backend/internal/lib/sl"
	"github.com/chatco/chatco-backend/internal/models"
)

// ErrMalformedContent marks a stored json section whose content does
// not parse. Distinct from an absent key, which silently falls back.
var ErrMalformedContent = errors.New("malformed content section")

const cacheTTL = time.Hour

// ContentRepository describes the content storage used by this service.
type ContentRepository interface {
	// ListContentSections returns every section.
	ListContentSections(ctx context.Context) ([]*models.ContentSection, error)
	// GetContentSectionsByKeys returns the sections stored for keys.
	GetContentSectionsByKeys(ctx context.Context, keys []string) ([]*models.ContentSection, error)
	// UpdateContentSection replaces the content of one key.
	UpdateContentSection(ctx context.Context, key, content string) error
}

// Cache describes the cache used for resolved sections.
type Cache interface {
	// Get tries to read a cached value into result.
	Get(key string, result any) (bool, error)
	// Set stores a value with a TTL.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate removes a value.
	Invalidate(key string) error
}

// ContentService implements content resolution and admin edits.
type ContentService struct {
	repo  ContentRepository
	cache Cache
	log   *slog.Logger
}

// NewContentService creates a ContentService.
func NewContentService(repo ContentRepository, cache Cache, log *slog.Logger) *ContentService {
	return &ContentService{repo: repo, cache: cache, log: log}
}

// Resolve returns one resolved section per requested key, in request
// order. A key with neither a stored row nor a registered fallback is
// omitted from the result.
func (s *ContentService) Resolve(ctx context.Context, keys []string) ([]models.ResolvedSection, error) {
	const op = "services.Resolve"

	resolved := make(map[string]models.ResolvedSection, len(keys))
	var misses []string
	for _, key := range keys {
		var cached models.ResolvedSection
		found, err := s.cache.Get(cacheKey(key), &cached)
		if err != nil {
			s.log.Warn("content cache read failed", sl.Err(err))
		}
		if found {
			resolved[key] = cached
			continue
		}
		misses = append(misses, key)
	}

	if len(misses) > 0 {
		sections, err := s.repo.GetContentSectionsByKeys(ctx, misses)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		stored := make(map[string]*models.ContentSection, len(sections))
		for _, sec := range sections {
			stored[sec.SectionKey] = sec
		}

		for _, key := range misses {
			section, err := s.resolveOne(key, stored[key])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			if section == nil {
				continue
			}
			resolved[key] = *section
			if err := s.cache.Set(cacheKey(key), *section, cacheTTL); err != nil {
				s.log.Warn("failed to cache content section", slog.String("key", key), sl.Err(err))
			}
		}
	}

	result := make([]models.ResolvedSection, 0, len(keys))
	for _, key := range keys {
		if section, ok := resolved[key]; ok {
			result = append(result, section)
		}
	}
	return result, nil
}

// resolveOne turns a stored row, or its fallback, into a resolved
// section. Returns nil for a key that is unknown on both sides.
func (s *ContentService) resolveOne(key string, stored *models.ContentSection) (*models.ResolvedSection, error) {
	if stored != nil {
		section := &models.ResolvedSection{
			SectionKey:  key,
			SectionType: stored.SectionType,
		}
		if stored.SectionType == models.SectionTypeJSON {
			var items []string
			if err := json.Unmarshal([]byte(stored.SectionContent), &items); err != nil {
				return nil, fmt.Errorf("section %s: %w", key, ErrMalformedContent)
			}
			section.Items = items
		} else {
			section.Text = stored.SectionContent
		}
		return section, nil
	}

	fb, ok := fallbacks[key]
	if !ok {
		return nil, nil
	}
	return &models.ResolvedSection{
		SectionKey:  key,
		SectionType: fb.SectionType,
		Text:        fb.Text,
		Items:       fb.Items,
	}, nil
}

// ListAll returns every stored section raw. Admin only.
func (s *ContentService) ListAll(ctx context.Context) ([]*models.ContentSection, error) {
	return s.repo.ListContentSections(ctx)
}

// Update replaces the content of one key and invalidates its cache
// entry so the next public read sees the new value.
func (s *ContentService) Update(ctx context.Context, key, content string) error {
	if err := s.repo.UpdateContentSection(ctx, key, content); err != nil {
		return err
	}
	if err := s.cache.Invalidate(cacheKey(key)); err != nil {
		s.log.Warn("failed to invalidate content cache", slog.String("key", key), sl.Err(err))
	}
	s.log.Info("content section updated", slog.String("key", key))
	return nil
}

func cacheKey(key string) string {
	return "content:" + key
}
