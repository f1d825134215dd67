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

func setupStore(t *testing.T, users ...*model.User) {
	t.Helper()
	s, err := store.NewFileStore(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	db.Init(s)
	if err := db.SaveUsers(context.Background(), users); err != nil {
		t.Fatalf("SaveUsers: %v", err)
	}
}

func newUser(id string, subscriptions ...string) *model.User {
	return &model.User{Id: id, Username: id, DisplayName: id, Password: "hash", Subscriptions: subscriptions}
}

func TestCreateVideoNotifiesSubscribers(t *testing.T) {
	setupStore(t, newUser("alice", "bob"), newUser("bob"), newUser("carol", "bob"), newUser("dave"))
	ctx := context.Background()

	v, err := NewVideoUploadService(ctx).CreateVideo(&CreateVideoRequest{
		AuthorId: "bob", Title: "Kickflip", VideoUrl: "/uploads/k.mp4", Thumbnail: "/uploads/k.jpg",
	})
	if err != nil {
		t.Fatalf("CreateVideo: %v", err)
	}
	if v.Author == nil || v.Author.Id != "bob" || v.Type != model.ContentVideo {
		t.Fatalf("unexpected view %+v", v)
	}

	notes, _ := db.LoadNotifications(ctx)
	got := map[string]bool{}
	for _, n := range notes {
		if n.Type != model.NotifyNewVideo || n.ContentId != v.Id || n.SenderId != "bob" {
			t.Fatalf("unexpected notification %+v", n)
		}
		got[n.RecipientId] = true
	}
	if len(notes) != 2 || !got["alice"] || !got["carol"] {
		t.Fatalf("expected alice and carol notified, got %+v", got)
	}
}

func TestCreateContentErrors(t *testing.T) {
	setupStore(t, newUser("bob"))
	svc := NewVideoUploadService(context.Background())

	_, err := svc.CreateVideo(&CreateVideoRequest{AuthorId: "ghost", Title: "x", VideoUrl: "/v.mp4"})
	if !errors.Is(err, errno.NotFoundErr) {
		t.Fatalf("missing author: got %v", err)
	}
	_, err = svc.CreateVideo(&CreateVideoRequest{AuthorId: "bob", VideoUrl: "/v.mp4"})
	if !errors.Is(err, errno.RequestErr) {
		t.Fatalf("missing title: got %v", err)
	}
	_, err = svc.CreatePost(&CreatePostRequest{AuthorId: "bob"})
	if !errors.Is(err, errno.RequestErr) {
		t.Fatalf("empty post: got %v", err)
	}

	set, _ := db.LoadContent(context.Background(), model.ContentVideo)
	if len(set.Videos) != 0 {
		t.Fatalf("failed creates must not persist, got %d videos", len(set.Videos))
	}
}

func TestListAndFeed(t *testing.T) {
	setupStore(t, newUser("bob"))
	ctx := context.Background()
	up := NewVideoUploadService(ctx)

	for _, title := range []string{"one", "two"} {
		if _, err := up.CreateVideo(&CreateVideoRequest{AuthorId: "bob", Title: title, VideoUrl: "/v.mp4"}); err != nil {
			t.Fatal(err)
		}
	}
	post, err := up.CreatePost(&CreatePostRequest{AuthorId: "bob", Caption: "hello"})
	if err != nil {
		t.Fatal(err)
	}

	list := NewVideoListService(ctx)
	videos, err := list.ListContent(model.ContentVideo)
	if err != nil || len(videos) != 2 {
		t.Fatalf("ListContent: %v %d", err, len(videos))
	}
	got, err := list.GetContent(model.ContentPost, post.Id)
	if err != nil || got.Post == nil || got.Post.Caption != "hello" {
		t.Fatalf("GetContent: %v %+v", err, got)
	}
	if _, err := list.GetContent(model.ContentVideo, post.Id); !errors.Is(err, errno.NotFoundErr) {
		t.Fatalf("wrong type lookup: got %v", err)
	}
	byBob, _ := list.ListByAuthor(model.ContentVideo, "bob")
	byNobody, _ := list.ListByAuthor(model.ContentVideo, "nobody")
	if len(byBob) != 2 || len(byNobody) != 0 {
		t.Fatalf("ListByAuthor: %d %d", len(byBob), len(byNobody))
	}
	feed, err := list.Feed()
	if err != nil || len(feed) != 3 {
		t.Fatalf("Feed: %v %d", err, len(feed))
	}
}

func TestViewCountsOncePerUser(t *testing.T) {
	setupStore(t, newUser("alice"), newUser("bob"))
	ctx := context.Background()
	v, err := NewVideoUploadService(ctx).CreateVideo(&CreateVideoRequest{AuthorId: "bob", Title: "t", VideoUrl: "/v.mp4"})
	if err != nil {
		t.Fatal(err)
	}

	svc := NewVideoViewService(ctx)
	for i := 0; i < 2; i++ {
		if _, err := svc.ViewContent(v.Id, "alice", model.ContentVideo); err != nil {
			t.Fatalf("ViewContent: %v", err)
		}
	}
	got, err := svc.ViewContent(v.Id, "bob", model.ContentVideo)
	if err != nil {
		t.Fatal(err)
	}
	if got.Views != 2 {
		t.Fatalf("expected 2 views, got %d", got.Views)
	}
	users, _ := db.LoadUsers(ctx)
	if alice := db.FindUser(users, "alice"); len(alice.ViewedVideos) != 1 {
		t.Fatalf("viewedVideos must be a set: %v", alice.ViewedVideos)
	}

	if _, err := svc.ViewContent(v.Id, "alice", model.ContentPost); !errors.Is(err, errno.RequestErr) {
		t.Fatalf("post view: got %v", err)
	}
	if _, err := svc.ViewContent("missing", "alice", model.ContentVideo); !errors.Is(err, errno.NotFoundErr) {
		t.Fatalf("missing video: got %v", err)
	}
}

func TestDeleteContentOnlyByAuthor(t *testing.T) {
	setupStore(t, newUser("alice"), newUser("bob"))
	ctx := context.Background()
	p, err := NewVideoUploadService(ctx).CreatePost(&CreatePostRequest{AuthorId: "bob", Image: "/p.jpg"})
	if err != nil {
		t.Fatal(err)
	}

	svc := NewVideoDeleteService(ctx)
	if err := svc.DeleteContent(p.Id, model.ContentPost, "alice"); !errors.Is(err, errno.UnauthorizedErr) {
		t.Fatalf("non-author delete: got %v", err)
	}
	if err := svc.DeleteContent(p.Id, model.ContentPost, "bob"); err != nil {
		t.Fatalf("DeleteContent: %v", err)
	}
	if err := svc.DeleteContent(p.Id, model.ContentPost, "bob"); !errors.Is(err, errno.NotFoundErr) {
		t.Fatalf("second delete: got %v", err)
	}
}
