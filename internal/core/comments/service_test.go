package comments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamlog/internal/core/identity"
	"teamlog/internal/core/posts"
)

// Mock implementations for testing

type mockCommentRepo struct {
	comments []*Comment
	nextID   int64
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *Comment) (int64, error) {
	m.nextID++
	comment.ID = m.nextID
	comment.CreatedAt = time.Unix(m.nextID, 0)
	stored := *comment
	m.comments = append(m.comments, &stored)
	return comment.ID, nil
}

func (m *mockCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*Comment, error) {
	var items []*Comment
	for _, c := range m.comments {
		if c.PostID == postID {
			clone := *c
			items = append(items, &clone)
		}
	}
	return items, nil
}

type mockPostGetter struct {
	posts map[int64]*posts.Post
}

func (m *mockPostGetter) Get(ctx context.Context, id int64) (*posts.Post, error) {
	if p, ok := m.posts[id]; ok {
		return p, nil
	}
	return nil, posts.ErrNotFound
}

type notifyCall struct {
	title    string
	detail   string
	kindPath string
	actorID  int64
	postID   int64
}

type mockNotifier struct {
	calls []notifyCall
}

func (m *mockNotifier) NotifyPost(actorID int64, title, detail string, postID int64, kindPath string) {
	m.calls = append(m.calls, notifyCall{
		actorID:  actorID,
		title:    title,
		detail:   detail,
		postID:   postID,
		kindPath: kindPath,
	})
}

func newFixture() (*mockCommentRepo, *mockPostGetter, *mockNotifier, Service) {
	repo := &mockCommentRepo{}
	postGetter := &mockPostGetter{posts: map[int64]*posts.Post{
		7: {ID: 7, Kind: posts.KindNippo, OwnerID: 1, Title: "daily", Status: posts.StatusDraft},
	}}
	notifier := &mockNotifier{}
	svc := NewService(repo, postGetter, notifier, nil)
	return repo, postGetter, notifier, svc
}

func authedCtx(userID int64) context.Context {
	return identity.WithUserID(context.Background(), userID)
}

func TestAddRequiresAuthentication(t *testing.T) {
	repo, _, _, svc := newFixture()

	_, err := svc.Add(context.Background(), 7, "nice work")

	assert.ErrorIs(t, err, identity.ErrUnauthorized)
	assert.Empty(t, repo.comments)
}

func TestAddRejectsEmptyBody(t *testing.T) {
	repo, _, notifier, svc := newFixture()

	_, err := svc.Add(authedCtx(2), 7, "")

	assert.True(t, IsEmptyBody(err))
	assert.Empty(t, repo.comments)
	assert.Empty(t, notifier.calls)
}

func TestAddToMissingPostIsNotFound(t *testing.T) {
	repo, _, _, svc := newFixture()

	_, err := svc.Add(authedCtx(2), 99, "hello")

	assert.True(t, posts.IsNotFound(err))
	assert.Empty(t, repo.comments)
}

func TestAddAppendsAndListsInCreationOrder(t *testing.T) {
	_, _, _, svc := newFixture()
	ctx := authedCtx(2)

	first, err := svc.Add(ctx, 7, "first")
	require.NoError(t, err)
	second, err := svc.Add(ctx, 7, "second")
	require.NoError(t, err)
	assert.Less(t, first, second)

	items, err := svc.ListByPost(ctx, 7)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Body)
	assert.Equal(t, "second", items[1].Body)
	assert.Equal(t, int64(2), items[0].AuthorID)
}

func TestAddAlwaysNotifies(t *testing.T) {
	// The target post is a draft; comments notify regardless.
	_, _, notifier, svc := newFixture()

	_, err := svc.Add(authedCtx(2), 7, "looks good")
	require.NoError(t, err)

	require.Len(t, notifier.calls, 1)
	call := notifier.calls[0]
	assert.Equal(t, "New comment", call.title)
	assert.Equal(t, "looks good", call.detail)
	assert.Equal(t, int64(7), call.postID)
	assert.Equal(t, "nippo", call.kindPath)
	assert.Equal(t, int64(2), call.actorID)
}
