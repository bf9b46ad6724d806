package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegecupid/cupid-cli/internal/client/models"
)

type fakeFeedAPI struct {
	fakeAPI

	users      []models.UserSummary
	totalCount int
	pageErr    error

	requested []int
}

func (f *fakeFeedAPI) ProfilePage(ctx context.Context, page int) ([]models.UserSummary, int, error) {
	f.requested = append(f.requested, page)
	if f.pageErr != nil {
		return nil, 0, f.pageErr
	}
	return f.users, f.totalCount, nil
}

func summaries(n int) []models.UserSummary {
	users := make([]models.UserSummary, n)
	for i := range users {
		users[i] = models.UserSummary{Name: "user"}
	}
	return users
}

func TestPage_FullPageHasMore(t *testing.T) {
	api := &fakeFeedAPI{users: summaries(PageSize), totalCount: PageSize}
	svc := NewFeedService(api)

	page, err := svc.Page(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Number)
	assert.Len(t, page.Users, PageSize)
	assert.True(t, page.HasMore)
}

func TestPage_ShortPageIsLast(t *testing.T) {
	api := &fakeFeedAPI{users: summaries(7), totalCount: 7}
	svc := NewFeedService(api)

	page, err := svc.Page(context.Background(), 0)
	require.NoError(t, err)
	assert.False(t, page.HasMore)
}

func TestPage_EmptyPage(t *testing.T) {
	api := &fakeFeedAPI{totalCount: 0}
	svc := NewFeedService(api)

	page, err := svc.Page(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, page.Users)
	assert.False(t, page.HasMore)
}

func TestPage_NegativeClampsToZero(t *testing.T) {
	api := &fakeFeedAPI{totalCount: 0}
	svc := NewFeedService(api)

	page, err := svc.Page(context.Background(), -3)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Number)
	assert.Equal(t, []int{0}, api.requested)
}

func TestPage_Error(t *testing.T) {
	api := &fakeFeedAPI{pageErr: errors.New("boom")}
	svc := NewFeedService(api)

	_, err := svc.Page(context.Background(), 0)
	require.Error(t, err)
}
