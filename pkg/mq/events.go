package mq

// NotificationEvent mirrors a stored notification for downstream consumers.
type NotificationEvent struct {
	EventID     string `json:"event_id"`
	RecipientID string `json:"recipient_id"`
	SenderID    string `json:"sender_id"`
	Type        string `json:"type"`
	ContentID   string `json:"content_id,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Text        string `json:"text,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

const (
	NotificationExchange = "flowtube.notifications"
	NotificationQueue    = "flowtube.notifications.all"

	// Routing keys are notification.<type>; the catch-all queue binds every type.
	notificationKeyPrefix = "notification."
	notificationBindAll   = notificationKeyPrefix + "#"
)

// RoutingKey is the key an event is published under, so consumers can bind to a
// single notification type such as notification.mention.
func (e *NotificationEvent) RoutingKey() string {
	if e.Type == "" {
		return notificationKeyPrefix + "unknown"
	}
	return notificationKeyPrefix + e.Type
}
