package menu

import (
	"context"
	"strings"

	"dapuribu-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, opts ListOptions) ([]Menu, error)
	GetByID(ctx context.Context, id int64) (Menu, error)
	Create(ctx context.Context, input MenuInput) (Menu, error)
	Update(ctx context.Context, id int64, input MenuInput) error
	SetImage(ctx context.Context, id int64, imageURL string) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]Menu, error) {
	if opts.OrderBy != "category" {
		opts.OrderBy = "id"
	}
	return s.repo.List(ctx, opts)
}

func (s *service) GetByID(ctx context.Context, id int64) (Menu, error) {
	return s.repo.GetByID(ctx, id)
}

func validate(input *MenuInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return ErrNameRequired
	}
	if input.Price < 0 {
		return ErrInvalidPrice
	}

	// Empty optional fields become absent, not empty strings.
	if input.Description != nil && *input.Description == "" {
		input.Description = nil
	}
	if input.Category != nil && *input.Category == "" {
		input.Category = nil
	}
	if input.ImageURL != nil && *input.ImageURL == "" {
		input.ImageURL = nil
	}
	return nil
}

func (s *service) Create(ctx context.Context, input MenuInput) (Menu, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateMenu"),
	)

	if err := validate(&input); err != nil {
		log.Warn("invalid menu input", zap.Error(err))
		return Menu{}, err
	}

	return s.repo.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, id int64, input MenuInput) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateMenu"),
		zap.Int64("menu_id", id),
	)

	if err := validate(&input); err != nil {
		log.Warn("invalid menu input", zap.Error(err))
		return err
	}

	return s.repo.Update(ctx, id, input)
}

func (s *service) SetImage(ctx context.Context, id int64, imageURL string) error {
	return s.repo.UpdateImageURL(ctx, id, imageURL)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
