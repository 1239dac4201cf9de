package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skillstream/lms-backend/internal/domain"
)

// CreateLayout adds a site content block. One row per type: a second
// create for the same type conflicts.
func (s *Service) CreateLayout(ctx context.Context, input LayoutInput) (domain.Layout, error) {
	layoutType := domain.NormalizeLayoutType(input.Type)
	if layoutType == "" {
		return domain.Layout{}, fmt.Errorf("%w: unknown layout type %q", domain.ErrInvalidInput, input.Type)
	}

	if _, err := s.layouts.GetByType(ctx, layoutType); err == nil {
		return domain.Layout{}, fmt.Errorf("%w: %s layout already exists", domain.ErrConflict, layoutType)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Layout{}, err
	}

	layout, err := s.layoutFromInput(ctx, layoutType, input, nil)
	if err != nil {
		return domain.Layout{}, err
	}
	now := s.nowFn()
	layout.LayoutID = uuid.New()
	layout.CreatedAt = now
	layout.UpdatedAt = now
	return s.layouts.Create(ctx, layout)
}

// EditLayout rewrites the block of the given type. A new banner image
// replaces the stored asset.
func (s *Service) EditLayout(ctx context.Context, input LayoutInput) (domain.Layout, error) {
	layoutType := domain.NormalizeLayoutType(input.Type)
	if layoutType == "" {
		return domain.Layout{}, fmt.Errorf("%w: unknown layout type %q", domain.ErrInvalidInput, input.Type)
	}

	existing, err := s.layouts.GetByType(ctx, layoutType)
	if err != nil {
		return domain.Layout{}, err
	}

	layout, err := s.layoutFromInput(ctx, layoutType, input, existing.Banner)
	if err != nil {
		return domain.Layout{}, err
	}
	layout.LayoutID = existing.LayoutID
	layout.CreatedAt = existing.CreatedAt
	layout.UpdatedAt = s.nowFn()
	return s.layouts.Update(ctx, layout)
}

// GetLayout serves one block by type for the public site.
func (s *Service) GetLayout(ctx context.Context, rawType string) (domain.Layout, error) {
	layoutType := domain.NormalizeLayoutType(rawType)
	if layoutType == "" {
		return domain.Layout{}, fmt.Errorf("%w: unknown layout type %q", domain.ErrInvalidInput, rawType)
	}
	return s.layouts.GetByType(ctx, layoutType)
}

// layoutFromInput builds the typed payload, uploading the banner image when
// a raw payload is supplied and destroying the previous asset it replaces.
func (s *Service) layoutFromInput(ctx context.Context, layoutType string, input LayoutInput, prev *domain.Banner) (domain.Layout, error) {
	layout := domain.Layout{Type: layoutType}
	switch layoutType {
	case domain.LayoutBanner:
		banner := domain.Banner{
			Title:    strings.TrimSpace(input.Title),
			Subtitle: strings.TrimSpace(input.Subtitle),
		}
		if prev != nil {
			banner.Image = prev.Image
		}
		if data := strings.TrimSpace(input.Image); data != "" {
			if prev != nil && prev.Image.PublicID != "" {
				if err := s.media.Destroy(ctx, prev.Image.PublicID); err != nil {
					return domain.Layout{}, fmt.Errorf("destroy old banner image: %w", err)
				}
			}
			asset, err := s.media.Upload(ctx, data, "layout")
			if err != nil {
				return domain.Layout{}, fmt.Errorf("upload banner image: %w", err)
			}
			banner.Image = domain.BannerImage{PublicID: asset.PublicID, URL: asset.URL}
		}
		layout.Banner = &banner
	case domain.LayoutFAQ:
		for _, item := range input.FAQ {
			if strings.TrimSpace(item.Question) == "" || strings.TrimSpace(item.Answer) == "" {
				return domain.Layout{}, fmt.Errorf("%w: faq entries need question and answer", domain.ErrInvalidInput)
			}
		}
		layout.FAQ = input.FAQ
	case domain.LayoutCategories:
		for _, c := range input.Categories {
			if strings.TrimSpace(c.Title) == "" {
				return domain.Layout{}, fmt.Errorf("%w: category title is required", domain.ErrInvalidInput)
			}
		}
		layout.Categories = input.Categories
	}
	return layout, nil
}
