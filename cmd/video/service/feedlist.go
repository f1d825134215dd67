package service

import (
	"math/rand"

	"FlowTube.com/cmd/model"
)

// Feed is the flow feed: videos and posts mixed in random order.
func (s *VideoListService) Feed() ([]model.ContentView, error) {
	videos, err := s.ListContent(model.ContentVideo)
	if err != nil {
		return nil, err
	}
	posts, err := s.ListContent(model.ContentPost)
	if err != nil {
		return nil, err
	}
	feed := append(videos, posts...)
	rand.Shuffle(len(feed), func(i, j int) { feed[i], feed[j] = feed[j], feed[i] })
	return feed, nil
}
