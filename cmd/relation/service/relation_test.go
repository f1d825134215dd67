package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"FlowTube.com/cmd/dal/db"
	"FlowTube.com/cmd/model"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/store"
)

func setupStore(t *testing.T) {
	t.Helper()
	s, err := store.NewFileStore(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	db.Init(s)
	users := []*model.User{
		{Id: "u1", Username: "alice", Subscriptions: []string{}},
		{Id: "u2", Username: "bob", Subscriptions: []string{}},
		{Id: "u3", Username: "carol", Subscriptions: []string{"u2"}},
	}
	if err := db.SaveUsers(context.Background(), users); err != nil {
		t.Fatal(err)
	}
}

func TestSubscribeToggle(t *testing.T) {
	setupStore(t)
	ctx := context.Background()
	svc := NewRelationService(ctx)

	res, err := svc.Subscribe("u1", "u2")
	if err != nil || !res.Subscribed || res.Subscribers != 1 {
		t.Fatalf("subscribe: %+v %v", res, err)
	}
	res, err = svc.Subscribe("u1", "u2")
	if err != nil || res.Subscribed || res.Subscribers != 0 {
		t.Fatalf("unsubscribe: %+v %v", res, err)
	}

	users, _ := db.LoadUsers(ctx)
	if alice := db.FindUser(users, "u1"); len(alice.Subscriptions) != 0 {
		t.Fatalf("subscriptions not restored: %v", alice.Subscriptions)
	}
	notes, _ := db.LoadNotifications(ctx)
	if len(notes) != 1 || notes[0].Type != model.NotifySubscribe || notes[0].RecipientId != "u2" || notes[0].SenderId != "u1" {
		t.Fatalf("expected exactly one subscribe notification, got %+v", notes)
	}
}

func TestSubscribeErrors(t *testing.T) {
	setupStore(t)
	svc := NewRelationService(context.Background())

	if _, err := svc.Subscribe("u1", "u1"); !errors.Is(err, errno.RequestErr) {
		t.Fatalf("self subscribe: got %v", err)
	}
	if _, err := svc.Subscribe("u1", "ghost"); !errors.Is(err, errno.NotFoundErr) {
		t.Fatalf("missing channel: got %v", err)
	}
}

func TestListSubscriptionsAndSubscribers(t *testing.T) {
	setupStore(t)
	ctx := context.Background()
	if _, err := NewRelationService(ctx).Subscribe("u1", "u2"); err != nil {
		t.Fatal(err)
	}

	list := NewFollowingListService(ctx)
	subs, err := list.ListSubscriptions("u1")
	if err != nil || len(subs) != 1 || subs[0].Username != "bob" {
		t.Fatalf("ListSubscriptions: %+v %v", subs, err)
	}
	followers, err := list.ListSubscribers("u2")
	if err != nil || len(followers) != 2 {
		t.Fatalf("ListSubscribers: %+v %v", followers, err)
	}
	if _, err := list.ListSubscribers("ghost"); !errors.Is(err, errno.NotFoundErr) {
		t.Fatalf("missing user: got %v", err)
	}
}

// failingWrites reads through to the wrapped store and rejects every write.
type failingWrites struct {
	store.Store
}

func (failingWrites) Write(context.Context, store.Kind, []byte) error {
	return errors.New("disk full")
}

func TestSubscribeWriteFailure(t *testing.T) {
	setupStore(t)
	ctx := context.Background()
	backing := db.Store
	db.Init(failingWrites{backing})
	defer db.Init(backing)

	if _, err := NewRelationService(ctx).Subscribe("u1", "u2"); !errors.Is(err, errno.IOFailureErr) {
		t.Fatalf("got %v, want %v", err, errno.IOFailureErr)
	}

	db.Init(backing)
	users, err := db.LoadUsers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if alice := db.FindUser(users, "u1"); len(alice.Subscriptions) != 0 {
		t.Fatalf("subscription persisted after failed write: %v", alice.Subscriptions)
	}
	if bob := db.FindUser(users, "u2"); bob.Subscribers != 0 {
		t.Fatalf("subscriber count persisted after failed write: %d", bob.Subscribers)
	}
	if notes, _ := db.LoadNotifications(ctx); len(notes) != 0 {
		t.Fatalf("failed subscribe must not notify: %+v", notes)
	}
}
