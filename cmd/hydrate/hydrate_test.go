package hydrate

import (
	"encoding/json"
	"reflect"
	"testing"

	"FlowTube.com/cmd/model"
)

func testUsers() []*model.User {
	return []*model.User{
		{Id: "u1", Username: "alice", Password: "$2a$10$secret", Subscriptions: []string{"u2"}},
		{Id: "u2", Username: "bob", Password: "$2a$10$other"},
	}
}

func TestVideoResolvesAuthorWithoutSecret(t *testing.T) {
	idx := Users(testUsers())
	v := &model.Video{Id: "v1", AuthorId: "u2", Title: "t"}

	view := Video(v, idx)
	if view.Author == nil || view.Author.Username != "bob" {
		t.Fatalf("Author = %+v, want bob", view.Author)
	}
	raw, err := json.Marshal(view)
	if err != nil {
		t.Fatal(err)
	}
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatal(err)
	}
	author := generic["author"].(map[string]any)
	if _, ok := author["password"]; ok {
		t.Fatalf("hydrated author leaks password: %s", raw)
	}
}

func TestOrphanedAuthorIsLeftUnresolved(t *testing.T) {
	idx := Users(testUsers())
	p := &model.Post{Id: "p1", AuthorId: "ghost", Comments: []*model.Comment{
		{Id: "c1", AuthorId: "ghost", Text: "hi"},
	}}

	view := Post(p, idx)
	if view.Author != nil {
		t.Fatalf("Author = %+v, want nil", view.Author)
	}
	if len(view.Comments) != 1 || view.Comments[0].Author != nil {
		t.Fatalf("comment author should be unresolved: %+v", view.Comments)
	}
	raw, _ := json.Marshal(view)
	var generic map[string]any
	_ = json.Unmarshal(raw, &generic)
	if _, ok := generic["author"]; ok {
		t.Fatalf("author field should be absent: %s", raw)
	}
}

func TestHydrationDoesNotMutateInputs(t *testing.T) {
	users := testUsers()
	idx := Users(users)
	v := &model.Video{Id: "v1", AuthorId: "u1", Comments: []*model.Comment{
		{Id: "c1", AuthorId: "u2", Text: "x", Replies: []*model.Comment{{Id: "r1", AuthorId: "u1"}}},
	}}
	before, _ := json.Marshal(v)

	view := Video(v, idx)
	view.Author.Subscriptions[0] = "changed"
	view.Comments[0].Replies[0].Text = "changed"

	after, _ := json.Marshal(v)
	if string(before) != string(after) {
		t.Fatalf("input record mutated:\n%s\n%s", before, after)
	}
	if users[0].Subscriptions[0] != "u2" {
		t.Fatalf("user snapshot mutated: %v", users[0].Subscriptions)
	}
	if again := idx.Lookup("u1"); !reflect.DeepEqual(again.Subscriptions, []string{"u2"}) {
		t.Fatalf("index mutated through a view: %v", again.Subscriptions)
	}
}

func TestReplyDepthIsBounded(t *testing.T) {
	idx := Users(testUsers())
	deep := []*model.Comment{{
		Id: "c1", AuthorId: "u1",
		Replies: []*model.Comment{{
			Id: "r1", AuthorId: "u2",
			Replies: []*model.Comment{{Id: "rr1", AuthorId: "u1"}},
		}},
	}}

	views := Comments(deep, idx)
	if len(views[0].Replies) != 1 {
		t.Fatalf("first reply level should be rendered")
	}
	if got := len(views[0].Replies[0].Replies); got != 0 {
		t.Fatalf("second reply level rendered %d items, want 0", got)
	}
	if views[0].Author.Username != "alice" || views[0].Replies[0].Author.Username != "bob" {
		t.Fatalf("authors not resolved recursively")
	}
}

func TestStickerFlag(t *testing.T) {
	idx := Users(testUsers())
	views := Comments([]*model.Comment{
		{Id: "c1", AuthorId: "u1", Text: "https://media.tenor.com/x.gif"},
		{Id: "c2", AuthorId: "u1", Text: "plain text"},
	}, idx)
	if !views[0].IsSticker || views[1].IsSticker {
		t.Fatalf("IsSticker = %v, %v", views[0].IsSticker, views[1].IsSticker)
	}
}

func TestMessageAndNotification(t *testing.T) {
	idx := Users(testUsers())
	m := Message(&model.Message{Id: "m1", SenderId: "u1", RecipientId: "u2", Text: "hey"}, idx)
	if m.Sender.Username != "alice" || m.Recipient.Username != "bob" {
		t.Fatalf("message not hydrated: %+v", m)
	}
	n := Notification(&model.Notification{Id: "n1", RecipientId: "u2", SenderId: "u1", Type: model.NotifyLike}, idx)
	if n.Sender == nil || n.Sender.Id != "u1" || n.Read {
		t.Fatalf("notification not hydrated: %+v", n)
	}
}
