package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"
	"gorm.io/gorm"

	"github.com/pocketdiner/pocket-diner/internal/models"
	"github.com/pocketdiner/pocket-diner/internal/repo"
	"github.com/pocketdiner/pocket-diner/internal/service/search"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

// MenuService serves the catalog. ES is optional: when absent, search falls
// back to a LIKE query against the repo.
type MenuService struct {
	Repo  *repo.GormRepo
	ES    *elasticsearch.Client
	Index string
}

func (s *MenuService) Get(ctx context.Context, id string) (*models.MenuItem, error) {
	item, err := s.Repo.GetMenuItem(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("menu item %s: %w", id, ErrNotFound)
	}
	return item, err
}

func (s *MenuService) List(ctx context.Context, offset, limit int) (int64, []models.MenuItem, error) {
	return s.Repo.ListMenu(ctx, offset, limit)
}

func (s *MenuService) Search(ctx context.Context, query string, offset, limit int) (int64, []models.MenuItem, error) {
	if query == "" {
		return 0, nil, fmt.Errorf("query required: %w", ErrValidation)
	}
	if s.ES != nil {
		return search.Search(ctx, s.ES, s.Index, query, offset, limit)
	}
	return s.Repo.SearchMenu(ctx, query, offset, limit)
}

func (s *MenuService) Specials(ctx context.Context) ([]models.MenuItem, error) {
	return s.Repo.Specials(ctx)
}
