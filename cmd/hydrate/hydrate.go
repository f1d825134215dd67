// Package hydrate joins flat records with a snapshot of users into the read models
// handed to callers. Every function returns fresh values and leaves its inputs alone.
package hydrate

import (
	"FlowTube.com/cmd/model"
	"FlowTube.com/pkg/constants"
	"FlowTube.com/pkg/utils"
)

// Index is an id -> public user snapshot.
type Index map[string]*model.PublicUser

func Users(users []*model.User) Index {
	idx := make(Index, len(users))
	for _, u := range users {
		if u == nil {
			continue
		}
		idx[u.Id] = u.Public()
	}
	return idx
}

// Lookup returns a private copy of the user, or nil when the id is unknown.
func (idx Index) Lookup(id string) *model.PublicUser {
	u, ok := idx[id]
	if !ok {
		return nil
	}
	c := *u
	c.Subscriptions = cloneIds(u.Subscriptions)
	c.LikedVideos = cloneIds(u.LikedVideos)
	c.LikedPosts = cloneIds(u.LikedPosts)
	c.ViewedVideos = cloneIds(u.ViewedVideos)
	return &c
}

func Video(v *model.Video, idx Index) *model.VideoView {
	return &model.VideoView{
		Id:          v.Id,
		Type:        model.ContentVideo,
		Title:       v.Title,
		Description: v.Description,
		Thumbnail:   v.Thumbnail,
		VideoUrl:    v.VideoUrl,
		Duration:    v.Duration,
		Views:       v.Views,
		Likes:       v.Likes,
		Dislikes:    v.Dislikes,
		CreatedAt:   v.CreatedAt,
		AuthorId:    v.AuthorId,
		Author:      idx.Lookup(v.AuthorId),
		Comments:    Comments(v.Comments, idx),
	}
}

func Post(p *model.Post, idx Index) *model.PostView {
	return &model.PostView{
		Id:          p.Id,
		Type:        model.ContentPost,
		Title:       p.Title,
		Description: p.Description,
		Caption:     p.Caption,
		Image:       p.Image,
		Likes:       p.Likes,
		Dislikes:    p.Dislikes,
		CreatedAt:   p.CreatedAt,
		AuthorId:    p.AuthorId,
		Author:      idx.Lookup(p.AuthorId),
		Comments:    Comments(p.Comments, idx),
	}
}

func Content(c model.Content, idx Index) model.ContentView {
	switch c.Type {
	case model.ContentVideo:
		return model.ContentView{Video: Video(c.Video, idx)}
	case model.ContentPost:
		return model.ContentView{Post: Post(c.Post, idx)}
	}
	return model.ContentView{}
}

func Comments(cs []*model.Comment, idx Index) []*model.CommentView {
	return comments(cs, idx, 0)
}

// comments renders replies down to constants.MaxCommentDepth levels below the top.
func comments(cs []*model.Comment, idx Index, depth int) []*model.CommentView {
	out := make([]*model.CommentView, 0, len(cs))
	for _, c := range cs {
		if c == nil {
			continue
		}
		view := &model.CommentView{
			Id:        c.Id,
			AuthorId:  c.AuthorId,
			Author:    idx.Lookup(c.AuthorId),
			Text:      c.Text,
			IsSticker: utils.IsSticker(c.Text),
			CreatedAt: c.CreatedAt,
			Likes:     c.Likes,
			Replies:   []*model.CommentView{},
		}
		if depth < constants.MaxCommentDepth {
			view.Replies = comments(c.Replies, idx, depth+1)
		}
		out = append(out, view)
	}
	return out
}

func Message(m *model.Message, idx Index) *model.MessageView {
	return &model.MessageView{
		Id:          m.Id,
		SenderId:    m.SenderId,
		Sender:      idx.Lookup(m.SenderId),
		RecipientId: m.RecipientId,
		Recipient:   idx.Lookup(m.RecipientId),
		Text:        m.Text,
		CreatedAt:   m.CreatedAt,
	}
}

func Notification(n *model.Notification, idx Index) *model.NotificationView {
	return &model.NotificationView{
		Id:          n.Id,
		RecipientId: n.RecipientId,
		SenderId:    n.SenderId,
		Sender:      idx.Lookup(n.SenderId),
		Type:        n.Type,
		ContentId:   n.ContentId,
		ContentType: n.ContentType,
		Text:        n.Text,
		CreatedAt:   n.CreatedAt,
		Read:        n.Read,
	}
}

func cloneIds(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
