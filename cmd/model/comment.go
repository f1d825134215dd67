package model

type Comment struct {
	Id        string     `json:"id"`
	AuthorId  string     `json:"authorId"`
	Text      string     `json:"text"`
	CreatedAt string     `json:"createdAt"`
	Likes     int64      `json:"likes"`
	Replies   []*Comment `json:"replies"`
}
