package model

type NotificationType string

const (
	NotifyNewVideo  NotificationType = "new_video"
	NotifyNewPost   NotificationType = "new_post"
	NotifyLike      NotificationType = "like"
	NotifyComment   NotificationType = "comment"
	NotifyMention   NotificationType = "mention"
	NotifyReply     NotificationType = "reply"
	NotifySubscribe NotificationType = "subscribe"
	NotifyMessage   NotificationType = "message"
)

type Notification struct {
	Id          string           `json:"id"`
	RecipientId string           `json:"recipientId"`
	SenderId    string           `json:"senderId"`
	Type        NotificationType `json:"type"`
	ContentId   string           `json:"contentId,omitempty"`
	ContentType ContentType      `json:"contentType,omitempty"`
	Text        string           `json:"text,omitempty"`
	CreatedAt   string           `json:"createdAt"`
	Read        bool             `json:"read"`
}

// NotificationPayload carries the optional fields of a notification.
type NotificationPayload struct {
	ContentId   string
	ContentType ContentType
	Text        string
}
