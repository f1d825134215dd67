package db

import (
	"context"
	"time"

	"FlowTube.com/cmd/model"
	"FlowTube.com/pkg/constants"
	"FlowTube.com/pkg/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const seedPassword = "password"

// Seed fills an empty store with a small demo catalogue. It does nothing once any
// user exists.
func Seed(ctx context.Context) error {
	defer Lock()()

	users, err := LoadUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	hash, err := utils.Crypt(seedPassword)
	if err != nil {
		return err
	}
	now := time.Now().UTC().Format(constants.DataFormate)
	alice := &model.User{
		Id: uuid.NewString(), Username: "alice", DisplayName: "Alice",
		ProfileImage: "/static/avatars/alice.png", Password: hash, CreatedAt: now,
		Subscriptions: []string{}, LikedVideos: []string{}, LikedPosts: []string{}, ViewedVideos: []string{},
	}
	bob := &model.User{
		Id: uuid.NewString(), Username: "bob", DisplayName: "Bob",
		ProfileImage: "/static/avatars/bob.png", Password: hash, CreatedAt: now,
		Subscribers: 1, Subscriptions: []string{}, LikedVideos: []string{}, LikedPosts: []string{}, ViewedVideos: []string{},
		Bio: "Skate clips and street food",
	}
	alice.Subscriptions = append(alice.Subscriptions, bob.Id)

	videos := []*model.Video{{
		Id: uuid.NewString(), Title: "First kickflip", Description: "Finally landed it",
		Thumbnail: "/static/thumbs/kickflip.jpg", VideoUrl: "/static/videos/kickflip.mp4",
		Duration: "0:42", CreatedAt: now, AuthorId: bob.Id, Comments: []*model.Comment{},
	}}
	posts := []*model.Post{{
		Id: uuid.NewString(), Caption: "Night market haul", Image: "/static/posts/market.jpg",
		CreatedAt: now, AuthorId: bob.Id, Comments: []*model.Comment{},
	}}

	if err := SaveUsers(ctx, []*model.User{alice, bob}); err != nil {
		return err
	}
	if err := SaveContent(ctx, &ContentSet{Type: model.ContentVideo, Videos: videos}); err != nil {
		return err
	}
	if err := SaveContent(ctx, &ContentSet{Type: model.ContentPost, Posts: posts}); err != nil {
		return err
	}
	logrus.Infof("seeded demo data: users=%d videos=%d posts=%d", 2, len(videos), len(posts))
	return nil
}
