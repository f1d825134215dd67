package db

import (
	"context"

	"FlowTube.com/cmd/model"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/store"
)

// ContentSet is the loaded content file of one content type.
type ContentSet struct {
	Type   model.ContentType
	Videos []*model.Video
	Posts  []*model.Post
}

func kindOf(t model.ContentType) (store.Kind, error) {
	switch t {
	case model.ContentVideo:
		return store.Videos, nil
	case model.ContentPost:
		return store.Posts, nil
	}
	return "", errno.RequestErr.WithMessage("Unknown content type " + string(t))
}

func LoadContent(ctx context.Context, t model.ContentType) (*ContentSet, error) {
	kind, err := kindOf(t)
	if err != nil {
		return nil, err
	}
	set := &ContentSet{Type: t}
	switch t {
	case model.ContentVideo:
		set.Videos, err = store.Load[*model.Video](ctx, Store, kind)
	case model.ContentPost:
		set.Posts, err = store.Load[*model.Post](ctx, Store, kind)
	}
	if err != nil {
		return nil, ioErr(err, "LoadContent")
	}
	return set, nil
}

func SaveContent(ctx context.Context, set *ContentSet) error {
	kind, err := kindOf(set.Type)
	if err != nil {
		return err
	}
	switch set.Type {
	case model.ContentVideo:
		err = store.Save(ctx, Store, kind, set.Videos)
	case model.ContentPost:
		err = store.Save(ctx, Store, kind, set.Posts)
	}
	if err != nil {
		return ioErr(err, "SaveContent")
	}
	return nil
}

func (s *ContentSet) Find(id string) (model.Content, bool) {
	switch s.Type {
	case model.ContentVideo:
		for _, v := range s.Videos {
			if v.Id == id {
				return model.VideoContent(v), true
			}
		}
	case model.ContentPost:
		for _, p := range s.Posts {
			if p.Id == id {
				return model.PostContent(p), true
			}
		}
	}
	return model.Content{}, false
}

func (s *ContentSet) All() []model.Content {
	switch s.Type {
	case model.ContentVideo:
		out := make([]model.Content, 0, len(s.Videos))
		for _, v := range s.Videos {
			out = append(out, model.VideoContent(v))
		}
		return out
	case model.ContentPost:
		out := make([]model.Content, 0, len(s.Posts))
		for _, p := range s.Posts {
			out = append(out, model.PostContent(p))
		}
		return out
	}
	return nil
}

// Append adds c to the set; c must be of the set's type.
func (s *ContentSet) Append(c model.Content) {
	switch s.Type {
	case model.ContentVideo:
		s.Videos = append(s.Videos, c.Video)
	case model.ContentPost:
		s.Posts = append(s.Posts, c.Post)
	}
}

func (s *ContentSet) Remove(id string) bool {
	switch s.Type {
	case model.ContentVideo:
		for i, v := range s.Videos {
			if v.Id == id {
				s.Videos = append(s.Videos[:i], s.Videos[i+1:]...)
				return true
			}
		}
	case model.ContentPost:
		for i, p := range s.Posts {
			if p.Id == id {
				s.Posts = append(s.Posts[:i], s.Posts[i+1:]...)
				return true
			}
		}
	}
	return false
}
