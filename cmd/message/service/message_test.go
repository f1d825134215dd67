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
		{Id: "u1", Username: "alice", Password: "hash"},
		{Id: "u2", Username: "bob", Password: "hash"},
		{Id: "u3", Username: "carol", Password: "hash"},
	}
	if err := db.SaveUsers(context.Background(), users); err != nil {
		t.Fatal(err)
	}
}

func TestSendMessageNotifiesRecipient(t *testing.T) {
	setupStore(t)
	ctx := context.Background()

	m, err := NewMessageService(ctx).SendMessage("u1", "u2", "hey bob")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if m.Sender == nil || m.Sender.Username != "alice" || m.Recipient == nil || m.Recipient.Username != "bob" {
		t.Fatalf("message not hydrated: %+v", m)
	}
	notes, _ := db.LoadNotifications(ctx)
	if len(notes) != 1 || notes[0].Type != model.NotifyMessage || notes[0].RecipientId != "u2" || notes[0].Read {
		t.Fatalf("unexpected notifications %+v", notes)
	}
}

func TestSendMessageErrors(t *testing.T) {
	setupStore(t)
	svc := NewMessageService(context.Background())

	cases := []struct {
		name, from, to, text string
		want                 error
	}{
		{"empty", "u1", "u2", " ", errno.RequestErr},
		{"self", "u1", "u1", "hi", errno.RequestErr},
		{"unknown recipient", "u1", "ghost", "hi", errno.NotFoundErr},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.SendMessage(tc.from, tc.to, tc.text); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestConversationAndInbox(t *testing.T) {
	setupStore(t)
	ctx := context.Background()
	msgs := []*model.Message{
		{Id: "m1", SenderId: "u1", RecipientId: "u2", Text: "a", CreatedAt: "2024-01-01T00:00:00Z"},
		{Id: "m2", SenderId: "u2", RecipientId: "u1", Text: "b", CreatedAt: "2024-01-02T00:00:00Z"},
		{Id: "m3", SenderId: "u3", RecipientId: "u1", Text: "c", CreatedAt: "2024-01-03T00:00:00Z"},
		{Id: "m4", SenderId: "u2", RecipientId: "u3", Text: "d", CreatedAt: "2024-01-04T00:00:00Z"},
	}
	if err := db.SaveMessages(ctx, msgs); err != nil {
		t.Fatal(err)
	}
	svc := NewMessageService(ctx)

	conv, err := svc.ListConversation("u2", "u1")
	if err != nil || len(conv) != 2 || conv[0].Id != "m1" || conv[1].Id != "m2" {
		t.Fatalf("ListConversation: %+v %v", conv, err)
	}
	inbox, err := svc.ListInbox("u1")
	if err != nil || len(inbox) != 2 || inbox[0].Id != "m3" || inbox[1].Id != "m2" {
		t.Fatalf("ListInbox: %+v %v", inbox, err)
	}
}
