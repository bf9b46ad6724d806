package services

import (
	"context"

	"github.com/collegecupid/cupid-cli/internal/client/api"
	"github.com/collegecupid/cupid-cli/internal/client/models"
)

// PageSize is the backend's fixed feed page size. A page reporting exactly
// this many records is the heuristic for "more pages may exist".
const PageSize = 10

// Page is one transient feed page. Pages are never cached; revisiting a page
// refetches it.
type Page struct {
	Number  int
	Users   []models.UserSummary
	HasMore bool
}

// FeedService fetches paginated user summaries.
type FeedService interface {
	Page(ctx context.Context, n int) (Page, error)
}

type feedService struct {
	client api.Client
}

func NewFeedService(client api.Client) FeedService {
	return &feedService{client: client}
}

func (s *feedService) Page(ctx context.Context, n int) (Page, error) {
	if n < 0 {
		n = 0
	}

	users, totalCount, err := s.client.ProfilePage(ctx, n)
	if err != nil {
		return Page{}, err
	}

	return Page{
		Number:  n,
		Users:   users,
		HasMore: totalCount == PageSize,
	}, nil
}
