package issue

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/fixithub/universe/internal/domain"
	"github.com/fixithub/universe/internal/pkg/id"
	"github.com/fixithub/universe/internal/pkg/validate"
)

const (
	recentIssuesLimit = 5
	photoURLTTL       = 15 * time.Minute
)

// ListFilter narrows the issue listing. Empty fields match everything.
type ListFilter struct {
	Category string
	Status   string
	Query    string // case-insensitive substring over title/description/location
}

type Service interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Issue, error)
	Get(ctx context.Context, issueID string) (*domain.Issue, error)
	Report(ctx context.Context, req domain.CreateIssueRequest, reporterID, reporterName string) (*domain.Issue, error)
	AttachPhoto(ctx context.Context, issueID, requesterID string, isAdmin bool, r io.Reader, filename, contentType string) (*domain.Issue, error)
	UpdateStatus(ctx context.Context, issueID, status string) (*domain.Issue, error)
	Stats(ctx context.Context) (*domain.AdminStats, error)
}

type issueStore interface {
	Put(ctx context.Context, i *domain.Issue) error
	Get(ctx context.Context, issueID string) (*domain.Issue, error)
	Scan(ctx context.Context) ([]domain.Issue, error)
	Update(ctx context.Context, issueID string, updates map[string]interface{}) error
}

type photoStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

type userCounter interface {
	CountUsers(ctx context.Context) int
}

type service struct {
	repo   issueStore
	photos photoStore
	users  userCounter
}

func NewService(repo issueStore, photos photoStore, users userCounter) Service {
	return &service{repo: repo, photos: photos, users: users}
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]domain.Issue, error) {
	issues, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := issues[:0]
	q := strings.ToLower(filter.Query)
	for _, i := range issues {
		if filter.Category != "" && i.Category != filter.Category {
			continue
		}
		if filter.Status != "" && i.Status != filter.Status {
			continue
		}
		if q != "" && !matchesQuery(&i, q) {
			continue
		}
		out = append(out, i)
	}
	sortNewestFirst(out)
	for idx := range out {
		s.presignPhoto(ctx, &out[idx])
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, issueID string) (*domain.Issue, error) {
	i, err := s.repo.Get(ctx, issueID)
	if err != nil {
		return nil, err
	}
	s.presignPhoto(ctx, i)
	return i, nil
}

// presignPhoto swaps a stored s3:// photo reference for a short-lived
// browser-fetchable URL. The bucket stays private. Failures leave the stored
// reference in place.
func (s *service) presignPhoto(ctx context.Context, i *domain.Issue) {
	key, ok := objectKey(i.PhotoURL)
	if !ok {
		return
	}
	url, err := s.photos.PresignedURL(ctx, key, photoURLTTL)
	if err != nil {
		slog.Warn("could not presign photo url", "issue_id", i.IssueID, "err", err)
		return
	}
	i.PhotoURL = url
}

func (s *service) Report(ctx context.Context, req domain.CreateIssueRequest, reporterID, reporterName string) (*domain.Issue, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrValidation)
	}
	cat, ok := lookupCategory(req.Category)
	if !ok {
		return nil, fmt.Errorf("unknown category %q: %w", req.Category, domain.ErrValidation)
	}
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}
	now := time.Now().UTC()
	i := &domain.Issue{
		IssueID:     id.New(),
		Title:       req.Title,
		Description: req.Description,
		Category:    cat.Value,
		Authority:   cat.Authority,
		Priority:    priority,
		Location:    req.Location,
		Status:      domain.IssueReported,
		ReportedBy:  reporterName,
		ReporterID:  reporterID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Put(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

// AttachPhoto uploads the report photo and records its URL on the issue.
// Only the original reporter or an admin may attach.
func (s *service) AttachPhoto(ctx context.Context, issueID, requesterID string, isAdmin bool, r io.Reader, filename, contentType string) (*domain.Issue, error) {
	i, err := s.repo.Get(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if i.ReporterID != requesterID && !isAdmin {
		return nil, fmt.Errorf("only the reporter can attach a photo: %w", domain.ErrForbidden)
	}
	key := fmt.Sprintf("issues/%s/%s", issueID, sanitizeFilename(filename))
	url, err := s.photos.Upload(ctx, key, r, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload photo: %w", err)
	}
	// Replacing an earlier photo: drop the superseded object best-effort.
	if oldKey, ok := objectKey(i.PhotoURL); ok && oldKey != key {
		if err := s.photos.Delete(ctx, oldKey); err != nil {
			slog.Warn("could not delete replaced photo", "issue_id", issueID, "key", oldKey, "err", err)
		}
	}
	if err := s.repo.Update(ctx, issueID, map[string]interface{}{"photo_url": url}); err != nil {
		return nil, err
	}
	i.PhotoURL = url
	return i, nil
}

func (s *service) UpdateStatus(ctx context.Context, issueID, status string) (*domain.Issue, error) {
	if !validStatus(status) {
		return nil, fmt.Errorf("unknown status %q: %w", status, domain.ErrValidation)
	}
	if _, err := s.repo.Get(ctx, issueID); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, issueID, map[string]interface{}{"status": status}); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, issueID)
}

// Stats aggregates the admin dashboard counters from a single scan.
func (s *service) Stats(ctx context.Context) (*domain.AdminStats, error) {
	issues, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	stats := &domain.AdminStats{
		TotalUsers: s.users.CountUsers(ctx),
	}
	for _, i := range issues {
		switch i.Status {
		case domain.IssueResolved:
			stats.ResolvedIssues++
		case domain.IssueUnderReview:
			stats.PendingReviews++
			stats.ActiveIssues++
		default:
			stats.ActiveIssues++
		}
	}
	sortNewestFirst(issues)
	if len(issues) > recentIssuesLimit {
		issues = issues[:recentIssuesLimit]
	}
	stats.RecentIssues = issues
	return stats, nil
}

func matchesQuery(i *domain.Issue, q string) bool {
	return strings.Contains(strings.ToLower(i.Title), q) ||
		strings.Contains(strings.ToLower(i.Description), q) ||
		strings.Contains(strings.ToLower(i.Location), q)
}

func sortNewestFirst(issues []domain.Issue) {
	sort.SliceStable(issues, func(a, b int) bool {
		return issues[a].CreatedAt.After(issues[b].CreatedAt)
	})
}

func lookupCategory(value string) (domain.IssueCategory, bool) {
	for _, c := range domain.IssueCategories {
		if c.Value == value {
			return c, true
		}
	}
	return domain.IssueCategory{}, false
}

func validStatus(status string) bool {
	switch status {
	case domain.IssueReported, domain.IssueUnderReview, domain.IssueInProgress, domain.IssueResolved:
		return true
	}
	return false
}

// objectKey extracts the bucket-relative key from a stored s3://bucket/key
// reference. Non-S3 URLs (or empty ones) report ok=false.
func objectKey(photoURL string) (string, bool) {
	rest, found := strings.CutPrefix(photoURL, "s3://")
	if !found {
		return "", false
	}
	_, key, found := strings.Cut(rest, "/")
	if !found || key == "" {
		return "", false
	}
	return key, true
}

func sanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}
