package service

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"FlowTube.com/cmd/dal/db"
	"FlowTube.com/cmd/hydrate"
	"FlowTube.com/cmd/model"
	notification "FlowTube.com/cmd/notification/service"
	"FlowTube.com/pkg/constants"
	"FlowTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type MessageService struct {
	ctx context.Context
}

func NewMessageService(ctx context.Context) *MessageService {
	return &MessageService{
		ctx: ctx,
	}
}

// SendMessage appends a direct message and notifies the recipient.
func (s *MessageService) SendMessage(senderId, recipientId, text string) (*model.MessageView, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errno.RequestErr.WithMessage("Message can not be empty")
	}
	if utf8.RuneCountInString(text) > constants.MaxMessageLength {
		return nil, errno.RequestErr.WithMessage("Message too long")
	}
	if senderId == recipientId {
		return nil, errno.RequestErr.WithMessage("Can not message yourself")
	}

	view, err := s.push(senderId, recipientId, text)
	if err != nil {
		return nil, err
	}
	payload := model.NotificationPayload{ContentId: view.Id, Text: text}
	if _, err := notification.NewNotificationService(s.ctx).Notify(recipientId, senderId, model.NotifyMessage, payload); err != nil {
		hlog.CtxErrorf(s.ctx, "notify message to %s: %v", recipientId, err)
	}
	return view, nil
}

func (s *MessageService) push(senderId, recipientId, text string) (*model.MessageView, error) {
	defer db.Lock()()

	users, err := db.LoadUsers(s.ctx)
	if err != nil {
		return nil, err
	}
	if db.FindUser(users, senderId) == nil || db.FindUser(users, recipientId) == nil {
		return nil, errno.NotFoundErr.WithMessage("User not found")
	}
	msgs, err := db.LoadMessages(s.ctx)
	if err != nil {
		return nil, err
	}
	msg := &model.Message{
		Id:          uuid.NewString(),
		SenderId:    senderId,
		RecipientId: recipientId,
		Text:        text,
		CreatedAt:   time.Now().UTC().Format(constants.DataFormate),
	}
	if err := db.SaveMessages(s.ctx, append(msgs, msg)); err != nil {
		return nil, errors.WithMessage(err, "dao.SaveMessages failed")
	}
	return hydrate.Message(msg, hydrate.Users(users)), nil
}

// ListConversation returns the messages exchanged between two users, oldest first.
func (s *MessageService) ListConversation(userA, userB string) ([]*model.MessageView, error) {
	msgs, idx, err := s.load()
	if err != nil {
		return nil, err
	}
	items := make([]*model.MessageView, 0)
	for _, m := range msgs {
		if (m.SenderId == userA && m.RecipientId == userB) || (m.SenderId == userB && m.RecipientId == userA) {
			items = append(items, hydrate.Message(m, idx))
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt < items[j].CreatedAt })
	return items, nil
}

// ListInbox returns the latest message of every conversation userId takes part in,
// newest conversation first.
func (s *MessageService) ListInbox(userId string) ([]*model.MessageView, error) {
	msgs, idx, err := s.load()
	if err != nil {
		return nil, err
	}
	latest := make(map[string]*model.Message)
	for _, m := range msgs {
		var peer string
		switch userId {
		case m.SenderId:
			peer = m.RecipientId
		case m.RecipientId:
			peer = m.SenderId
		default:
			continue
		}
		if cur, ok := latest[peer]; !ok || m.CreatedAt >= cur.CreatedAt {
			latest[peer] = m
		}
	}
	items := make([]*model.MessageView, 0, len(latest))
	for _, m := range latest {
		items = append(items, hydrate.Message(m, idx))
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt != items[j].CreatedAt {
			return items[i].CreatedAt > items[j].CreatedAt
		}
		return items[i].Id < items[j].Id
	})
	return items, nil
}

func (s *MessageService) load() ([]*model.Message, hydrate.Index, error) {
	msgs, err := db.LoadMessages(s.ctx)
	if err != nil {
		return nil, nil, err
	}
	users, err := db.LoadUsers(s.ctx)
	if err != nil {
		return nil, nil, err
	}
	return msgs, hydrate.Users(users), nil
}
