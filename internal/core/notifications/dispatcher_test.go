package notifications

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamlog/internal/core/users"
)

type mockSink struct {
	mu   sync.Mutex
	sent []Notification
	err  error
}

func (m *mockSink) Send(ctx context.Context, n Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, n)
	return nil
}

func (m *mockSink) notifications() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Notification(nil), m.sent...)
}

type mockUserRepo struct {
	users map[int64]*users.User
}

func (m *mockUserRepo) Get(ctx context.Context, id int64) (*users.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, users.ErrNotFound
}

func newTestDispatcher(sink Sink) *Dispatcher {
	repo := &mockUserRepo{users: map[int64]*users.User{
		1: {ID: 1, Name: "Alice", SlackHandle: "alice"},
		2: {ID: 2, Name: "Bob"},
	}}
	return NewDispatcher(sink, repo, "https://team.example.com", nil)
}

func TestNotifyPostBuildsPayload(t *testing.T) {
	sink := &mockSink{}
	d := newTestDispatcher(sink)

	d.NotifyPost(1, "New post", "hello world", 42, "post")
	d.Wait()

	sent := sink.notifications()
	require.Len(t, sent, 1)
	assert.Equal(t, "@alice", sent[0].Actor)
	assert.Equal(t, "New post", sent[0].Title)
	assert.Equal(t, "hello world", sent[0].Body)
	assert.Equal(t, "https://team.example.com/post/show/42", sent[0].Link)
}

func TestNotifyPostFallsBackToDisplayName(t *testing.T) {
	sink := &mockSink{}
	d := newTestDispatcher(sink)

	d.NotifyPost(2, "New comment", "lgtm", 7, "nippo")
	d.Wait()

	sent := sink.notifications()
	require.Len(t, sent, 1)
	assert.Equal(t, "Bob", sent[0].Actor)
	assert.Equal(t, "https://team.example.com/nippo/show/7", sent[0].Link)
}

func TestNotifyPostUnknownActorStillDelivers(t *testing.T) {
	sink := &mockSink{}
	d := newTestDispatcher(sink)

	d.NotifyPost(99, "New post", "body", 1, "post")
	d.Wait()

	sent := sink.notifications()
	require.Len(t, sent, 1)
	assert.Equal(t, "user 99", sent[0].Actor)
}

func TestSinkFailureIsSwallowed(t *testing.T) {
	sink := &mockSink{err: errors.New("webhook down")}
	d := newTestDispatcher(sink)

	// Must not panic, block, or surface the error anywhere.
	d.NotifyPost(1, "New post", "body", 1, "post")
	d.Wait()

	assert.Empty(t, sink.notifications())
}

func TestNilSinkDisablesDelivery(t *testing.T) {
	d := newTestDispatcher(nil)

	d.NotifyPost(1, "New post", "body", 1, "post")
	d.Wait()
}
