package docket

import (
	"context"
	"sort"
	"strings"

	"github.com/fixithub/universe/internal/domain"
)

// ListFilter narrows the docket listing. Empty fields match everything.
type ListFilter struct {
	Category string
	Query    string // case-insensitive substring over title/organization/description
}

type Service interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Docket, error)
	Get(ctx context.Context, docketID string) (*domain.Docket, error)
	Categories() []string
}

type docketStore interface {
	Get(ctx context.Context, docketID string) (*domain.Docket, error)
	Scan(ctx context.Context) ([]domain.Docket, error)
}

type service struct {
	repo docketStore
}

func NewService(repo docketStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]domain.Docket, error) {
	dockets, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := dockets[:0]
	q := strings.ToLower(filter.Query)
	for _, d := range dockets {
		if filter.Category != "" && d.Category != filter.Category {
			continue
		}
		if q != "" && !matchesQuery(&d, q) {
			continue
		}
		out = append(out, d)
	}
	// Most recently published first; published_date is YYYY-MM-DD so the
	// lexicographic order is the chronological one.
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].PublishedDate > out[b].PublishedDate
	})
	return out, nil
}

func (s *service) Get(ctx context.Context, docketID string) (*domain.Docket, error) {
	return s.repo.Get(ctx, docketID)
}

func (s *service) Categories() []string {
	return domain.DocketCategories
}

func matchesQuery(d *domain.Docket, q string) bool {
	return strings.Contains(strings.ToLower(d.Title), q) ||
		strings.Contains(strings.ToLower(d.Organization), q) ||
		strings.Contains(strings.ToLower(d.Description), q)
}
