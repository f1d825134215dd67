package model

type ContentType string

const (
	ContentVideo ContentType = "video"
	ContentPost  ContentType = "post"
)

type Video struct {
	Id          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Thumbnail   string     `json:"thumbnail"`
	VideoUrl    string     `json:"videoUrl"`
	Duration    string     `json:"duration"`
	Views       int64      `json:"views"`
	Likes       int64      `json:"likes"`
	Dislikes    int64      `json:"dislikes"`
	CreatedAt   string     `json:"createdAt"`
	AuthorId    string     `json:"authorId"`
	Comments    []*Comment `json:"comments"`
}

type Post struct {
	Id          string     `json:"id"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Caption     string     `json:"caption"`
	Image       string     `json:"image"`
	Likes       int64      `json:"likes"`
	Dislikes    int64      `json:"dislikes"`
	CreatedAt   string     `json:"createdAt"`
	AuthorId    string     `json:"authorId"`
	Comments    []*Comment `json:"comments"`
}

// Content is a video or a post. Exactly one of Video and Post is set, matching Type.
type Content struct {
	Type  ContentType
	Video *Video
	Post  *Post
}

func VideoContent(v *Video) Content { return Content{Type: ContentVideo, Video: v} }
func PostContent(p *Post) Content   { return Content{Type: ContentPost, Post: p} }

func (c Content) Id() string {
	switch c.Type {
	case ContentVideo:
		return c.Video.Id
	case ContentPost:
		return c.Post.Id
	}
	return ""
}

func (c Content) AuthorId() string {
	switch c.Type {
	case ContentVideo:
		return c.Video.AuthorId
	case ContentPost:
		return c.Post.AuthorId
	}
	return ""
}

// CommentsRef returns a pointer to the content's comment list so that callers can
// insert or remove comments in place.
func (c Content) CommentsRef() *[]*Comment {
	switch c.Type {
	case ContentVideo:
		return &c.Video.Comments
	case ContentPost:
		return &c.Post.Comments
	}
	return nil
}

func (c Content) LikesRef() *int64 {
	switch c.Type {
	case ContentVideo:
		return &c.Video.Likes
	case ContentPost:
		return &c.Post.Likes
	}
	return nil
}
