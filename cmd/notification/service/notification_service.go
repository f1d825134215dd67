package service

import (
	"context"
	"time"

	"FlowTube.com/cmd/dal/db"
	"FlowTube.com/cmd/hydrate"
	"FlowTube.com/cmd/model"
	"FlowTube.com/pkg/constants"
	"FlowTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type NotificationService struct {
	ctx context.Context
}

func NewNotificationService(ctx context.Context) *NotificationService {
	return &NotificationService{ctx: ctx}
}

// Build creates an unread notification record.
func Build(recipientId, senderId string, typ model.NotificationType, payload model.NotificationPayload) *model.Notification {
	return &model.Notification{
		Id:          uuid.NewString(),
		RecipientId: recipientId,
		SenderId:    senderId,
		Type:        typ,
		ContentId:   payload.ContentId,
		ContentType: payload.ContentType,
		Text:        payload.Text,
		CreatedAt:   time.Now().UTC().Format(constants.DataFormate),
		Read:        false,
	}
}

func (s *NotificationService) Notify(recipientId, senderId string, typ model.NotificationType, payload model.NotificationPayload) (*model.Notification, error) {
	n := Build(recipientId, senderId, typ, payload)
	if err := s.Send([]*model.Notification{n}); err != nil {
		return nil, err
	}
	return n, nil
}

// NotifyMany sends one notification per distinct recipient, skipping the sender.
func (s *NotificationService) NotifyMany(recipientIds []string, senderId string, typ model.NotificationType, payload model.NotificationPayload) ([]*model.Notification, error) {
	seen := make(map[string]struct{}, len(recipientIds))
	notes := make([]*model.Notification, 0, len(recipientIds))
	for _, id := range recipientIds {
		if id == "" || id == senderId {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		notes = append(notes, Build(id, senderId, typ, payload))
	}
	if err := s.Send(notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Send prepends notes to the notification list in one write, newest first, then
// hands each one to the configured producer.
func (s *NotificationService) Send(notes []*model.Notification) error {
	if len(notes) == 0 {
		return nil
	}
	if err := s.store(notes); err != nil {
		return err
	}
	s.publish(notes)
	return nil
}

func (s *NotificationService) store(notes []*model.Notification) error {
	defer db.Lock()()

	existing, err := db.LoadNotifications(s.ctx)
	if err != nil {
		return errors.WithMessage(err, "Failed to load notifications")
	}
	merged := make([]*model.Notification, 0, len(notes)+len(existing))
	for i := len(notes) - 1; i >= 0; i-- {
		merged = append(merged, notes[i])
	}
	merged = append(merged, existing...)
	if err := db.SaveNotifications(s.ctx, merged); err != nil {
		return errors.WithMessage(err, "Failed to save notifications")
	}
	return nil
}

func (s *NotificationService) publish(notes []*model.Notification) {
	producer := mq.Default
	if producer == nil {
		return
	}
	for _, n := range notes {
		event := &mq.NotificationEvent{
			EventID:     n.Id,
			RecipientID: n.RecipientId,
			SenderID:    n.SenderId,
			Type:        string(n.Type),
			ContentID:   n.ContentId,
			ContentType: string(n.ContentType),
			Text:        n.Text,
			Timestamp:   time.Now().Unix(),
		}
		if err := producer.PublishNotificationEvent(s.ctx, event); err != nil {
			hlog.CtxWarnf(s.ctx, "Failed to publish notification %s: %v", n.Id, err)
		}
	}
}

func (s *NotificationService) List(recipientId string) ([]*model.NotificationView, error) {
	notes, err := db.LoadNotifications(s.ctx)
	if err != nil {
		return nil, err
	}
	users, err := db.LoadUsers(s.ctx)
	if err != nil {
		return nil, err
	}
	idx := hydrate.Users(users)
	views := make([]*model.NotificationView, 0)
	for _, n := range notes {
		if n.RecipientId == recipientId {
			views = append(views, hydrate.Notification(n, idx))
		}
	}
	return views, nil
}

func (s *NotificationService) UnreadCount(recipientId string) (int, error) {
	notes, err := db.LoadNotifications(s.ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range notes {
		if n.RecipientId == recipientId && !n.Read {
			count++
		}
	}
	return count, nil
}

// MarkAllRead flags every notification of recipientId as read and returns how many
// changed.
func (s *NotificationService) MarkAllRead(recipientId string) (int, error) {
	defer db.Lock()()

	notes, err := db.LoadNotifications(s.ctx)
	if err != nil {
		return 0, err
	}
	changed := 0
	for _, n := range notes {
		if n.RecipientId == recipientId && !n.Read {
			n.Read = true
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	if err := db.SaveNotifications(s.ctx, notes); err != nil {
		return 0, err
	}
	return changed, nil
}
