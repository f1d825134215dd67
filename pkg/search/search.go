package search

import (
	"context"
	"strings"

	"FlowTube.com/cmd/model"
)

// Document is the searchable projection of a video or post.
type Document struct {
	Id          string            `json:"id"`
	Type        model.ContentType `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Caption     string            `json:"caption"`
	CreatedAt   string            `json:"createdAt"`
}

// Hit identifies a matching content item.
type Hit struct {
	Id   string
	Type model.ContentType
}

type Searcher interface {
	Index(ctx context.Context, doc *Document) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, limit int) ([]Hit, error)
}

// Default is the configured search engine; nil means callers use Filter.
var Default Searcher

func DocumentOf(c model.Content) *Document {
	switch c.Type {
	case model.ContentVideo:
		v := c.Video
		return &Document{Id: v.Id, Type: c.Type, Title: v.Title, Description: v.Description, CreatedAt: v.CreatedAt}
	case model.ContentPost:
		p := c.Post
		return &Document{Id: p.Id, Type: c.Type, Title: p.Title, Description: p.Description, Caption: p.Caption, CreatedAt: p.CreatedAt}
	}
	return nil
}

// Filter keeps the items whose title, description or caption contains query,
// ignoring case. An empty query keeps nothing.
func Filter(items []model.ContentView, query string) []model.ContentView {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.ContentView, 0)
	if q == "" {
		return out
	}
	for _, it := range items {
		var fields []string
		switch {
		case it.Video != nil:
			fields = []string{it.Video.Title, it.Video.Description}
		case it.Post != nil:
			fields = []string{it.Post.Title, it.Post.Description, it.Post.Caption}
		}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
