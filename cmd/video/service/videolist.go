package service

import (
	"context"
	"sort"

	"FlowTube.com/cmd/dal/db"
	"FlowTube.com/cmd/hydrate"
	"FlowTube.com/cmd/model"
	"FlowTube.com/pkg/errno"
)

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

func (s *VideoListService) GetContent(t model.ContentType, id string) (model.ContentView, error) {
	set, idx, err := s.load(t)
	if err != nil {
		return model.ContentView{}, err
	}
	c, ok := set.Find(id)
	if !ok {
		return model.ContentView{}, errno.NotFoundErr.WithMessage("Content not found")
	}
	return hydrate.Content(c, idx), nil
}

// ListContent returns every item of type t, newest first.
func (s *VideoListService) ListContent(t model.ContentType) ([]model.ContentView, error) {
	return s.list(t, func(model.Content) bool { return true })
}

func (s *VideoListService) ListByAuthor(t model.ContentType, authorId string) ([]model.ContentView, error) {
	return s.list(t, func(c model.Content) bool { return c.AuthorId() == authorId })
}

func (s *VideoListService) list(t model.ContentType, keep func(model.Content) bool) ([]model.ContentView, error) {
	set, idx, err := s.load(t)
	if err != nil {
		return nil, err
	}
	all := set.All()
	res := make([]model.ContentView, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if keep(all[i]) {
			res = append(res, hydrate.Content(all[i], idx))
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return createdAt(res[i]) > createdAt(res[j]) })
	return res, nil
}

func (s *VideoListService) load(t model.ContentType) (*db.ContentSet, hydrate.Index, error) {
	set, err := db.LoadContent(s.ctx, t)
	if err != nil {
		return nil, nil, err
	}
	users, err := db.LoadUsers(s.ctx)
	if err != nil {
		return nil, nil, err
	}
	return set, hydrate.Users(users), nil
}

func createdAt(c model.ContentView) string {
	if c.Video != nil {
		return c.Video.CreatedAt
	}
	if c.Post != nil {
		return c.Post.CreatedAt
	}
	return ""
}
