package model

// View models are read projections built by the hydrate package. They embed the
// resolved author and are never written back to the store.

type CommentView struct {
	Id        string         `json:"id"`
	AuthorId  string         `json:"authorId"`
	Author    *PublicUser    `json:"author,omitempty"`
	Text      string         `json:"text"`
	IsSticker bool           `json:"isSticker"`
	CreatedAt string         `json:"createdAt"`
	Likes     int64          `json:"likes"`
	Replies   []*CommentView `json:"replies"`
}

type VideoView struct {
	Id          string         `json:"id"`
	Type        ContentType    `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Thumbnail   string         `json:"thumbnail"`
	VideoUrl    string         `json:"videoUrl"`
	Duration    string         `json:"duration"`
	Views       int64          `json:"views"`
	Likes       int64          `json:"likes"`
	Dislikes    int64          `json:"dislikes"`
	CreatedAt   string         `json:"createdAt"`
	AuthorId    string         `json:"authorId"`
	Author      *PublicUser    `json:"author,omitempty"`
	Comments    []*CommentView `json:"comments"`
}

type PostView struct {
	Id          string         `json:"id"`
	Type        ContentType    `json:"type"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Caption     string         `json:"caption"`
	Image       string         `json:"image"`
	Likes       int64          `json:"likes"`
	Dislikes    int64          `json:"dislikes"`
	CreatedAt   string         `json:"createdAt"`
	AuthorId    string         `json:"authorId"`
	Author      *PublicUser    `json:"author,omitempty"`
	Comments    []*CommentView `json:"comments"`
}

// ContentView is a hydrated video or post; exactly one field is set.
type ContentView struct {
	Video *VideoView
	Post  *PostView
}

func (c ContentView) Value() any {
	if c.Video != nil {
		return c.Video
	}
	return c.Post
}

type MessageView struct {
	Id          string      `json:"id"`
	SenderId    string      `json:"senderId"`
	Sender      *PublicUser `json:"sender,omitempty"`
	RecipientId string      `json:"recipientId"`
	Recipient   *PublicUser `json:"recipient,omitempty"`
	Text        string      `json:"text"`
	CreatedAt   string      `json:"createdAt"`
}

type NotificationView struct {
	Id          string           `json:"id"`
	RecipientId string           `json:"recipientId"`
	SenderId    string           `json:"senderId"`
	Sender      *PublicUser      `json:"sender,omitempty"`
	Type        NotificationType `json:"type"`
	ContentId   string           `json:"contentId,omitempty"`
	ContentType ContentType      `json:"contentType,omitempty"`
	Text        string           `json:"text,omitempty"`
	CreatedAt   string           `json:"createdAt"`
	Read        bool             `json:"read"`
}
