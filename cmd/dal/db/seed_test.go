package db

import (
	"context"
	"path/filepath"
	"testing"

	"FlowTube.com/cmd/model"
	"FlowTube.com/pkg/store"
	"FlowTube.com/pkg/utils"
)

func TestSeedOnlyOnce(t *testing.T) {
	s, err := store.NewFileStore(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatal(err)
	}
	Init(s)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := Seed(ctx); err != nil {
			t.Fatalf("Seed: %v", err)
		}
	}
	users, err := LoadUsers(ctx)
	if err != nil || len(users) != 2 {
		t.Fatalf("LoadUsers: %d %v", len(users), err)
	}
	alice, bob := FindUserByUsername(users, "alice"), FindUserByUsername(users, "bob")
	if !utils.Contains(alice.Subscriptions, bob.Id) || bob.Subscribers != 1 {
		t.Fatalf("seeded subscription missing: %+v %+v", alice, bob)
	}
	videos, err := LoadContent(ctx, model.ContentVideo)
	if err != nil || len(videos.Videos) != 1 || videos.Videos[0].AuthorId != bob.Id {
		t.Fatalf("seeded videos: %+v %v", videos, err)
	}
}
