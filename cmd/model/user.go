package model

// User is the persisted identity record. Password holds a bcrypt hash and never
// leaves the storage layer; PublicUser is what callers get back.
type User struct {
	Id            string   `json:"id"`
	Username      string   `json:"username"`
	DisplayName   string   `json:"displayName"`
	ProfileImage  string   `json:"profileImage"`
	Subscribers   int64    `json:"subscribers"`
	Subscriptions []string `json:"subscriptions"`
	LikedVideos   []string `json:"likedVideos"`
	LikedPosts    []string `json:"likedPosts"`
	ViewedVideos  []string `json:"viewedVideos"`
	Bio           string   `json:"bio,omitempty"`
	Banner        string   `json:"banner,omitempty"`
	Password      string   `json:"password,omitempty"`
	CreatedAt     string   `json:"createdAt"`
}

type PublicUser struct {
	Id            string   `json:"id"`
	Username      string   `json:"username"`
	DisplayName   string   `json:"displayName"`
	ProfileImage  string   `json:"profileImage"`
	Subscribers   int64    `json:"subscribers"`
	Subscriptions []string `json:"subscriptions"`
	LikedVideos   []string `json:"likedVideos"`
	LikedPosts    []string `json:"likedPosts"`
	ViewedVideos  []string `json:"viewedVideos"`
	Bio           string   `json:"bio,omitempty"`
	Banner        string   `json:"banner,omitempty"`
	CreatedAt     string   `json:"createdAt"`
}

// Public returns a copy of u without the credential. Slices are copied so that the
// result can be modified freely.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		Id:            u.Id,
		Username:      u.Username,
		DisplayName:   u.DisplayName,
		ProfileImage:  u.ProfileImage,
		Subscribers:   u.Subscribers,
		Subscriptions: cloneIds(u.Subscriptions),
		LikedVideos:   cloneIds(u.LikedVideos),
		LikedPosts:    cloneIds(u.LikedPosts),
		ViewedVideos:  cloneIds(u.ViewedVideos),
		Bio:           u.Bio,
		Banner:        u.Banner,
		CreatedAt:     u.CreatedAt,
	}
}

func cloneIds(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
