package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"FlowTube.com/cmd/dal/db"
	"FlowTube.com/cmd/hydrate"
	"FlowTube.com/cmd/model"
	notification "FlowTube.com/cmd/notification/service"
	"FlowTube.com/pkg/constants"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

func (service *CommentService) validateCommentContent(text string) error {
	if strings.TrimSpace(text) == "" {
		return errno.RequestErr.WithMessage("Comment content cannot be empty")
	}
	if utf8.RuneCountInString(text) > constants.MaxCommentLength {
		return errno.RequestErr.WithMessage("Comment too long, maximum 500 characters allowed")
	}
	return nil
}

// commentTarget carries what the notifications need once the write is done.
type commentTarget struct {
	ownerId  string
	mentions []string
	view     *model.CommentView
}

// AddComment puts a new top-level comment at the head of the content's comment list.
// The content owner gets a comment notification and every distinct @username in the
// text a mention notification; the author never notifies themselves.
func (service *CommentService) AddComment(contentId string, t model.ContentType, authorId, text string) (*model.CommentView, error) {
	if err := service.validateCommentContent(text); err != nil {
		return nil, err
	}
	target, err := service.insert(contentId, t, "", authorId, text)
	if err != nil {
		return nil, err
	}

	payload := model.NotificationPayload{ContentId: contentId, ContentType: t, Text: text}
	notifier := notification.NewNotificationService(service.ctx)
	if target.ownerId != authorId {
		if _, err := notifier.Notify(target.ownerId, authorId, model.NotifyComment, payload); err != nil {
			hlog.CtxErrorf(service.ctx, "notify owner of %s: %v", contentId, err)
		}
	}
	if _, err := notifier.NotifyMany(target.mentions, authorId, model.NotifyMention, payload); err != nil {
		hlog.CtxErrorf(service.ctx, "notify mentions on %s: %v", contentId, err)
	}
	return target.view, nil
}

// AddReply nests a reply under an existing top-level comment and notifies that
// comment's author.
func (service *CommentService) AddReply(contentId string, t model.ContentType, parentCommentId, authorId, text string) (*model.CommentView, error) {
	if err := service.validateCommentContent(text); err != nil {
		return nil, err
	}
	target, err := service.insert(contentId, t, parentCommentId, authorId, text)
	if err != nil {
		return nil, err
	}

	if target.ownerId != authorId {
		payload := model.NotificationPayload{ContentId: contentId, ContentType: t, Text: text}
		if _, err := notification.NewNotificationService(service.ctx).Notify(target.ownerId, authorId, model.NotifyReply, payload); err != nil {
			hlog.CtxErrorf(service.ctx, "notify reply on %s: %v", parentCommentId, err)
		}
	}
	return target.view, nil
}

// insert writes the comment under the lock. With an empty parentId the comment is
// top level and ownerId is the content author; otherwise it is a reply and ownerId
// is the parent comment's author.
func (service *CommentService) insert(contentId string, t model.ContentType, parentId, authorId, text string) (*commentTarget, error) {
	defer db.Lock()()

	users, err := db.LoadUsers(service.ctx)
	if err != nil {
		return nil, err
	}
	if db.FindUser(users, authorId) == nil {
		return nil, errno.NotFoundErr.WithMessage("Author not found")
	}
	set, err := db.LoadContent(service.ctx, t)
	if err != nil {
		return nil, err
	}
	content, ok := set.Find(contentId)
	if !ok {
		return nil, errno.NotFoundErr.WithMessage("Content not found")
	}

	comment := &model.Comment{
		Id:        uuid.NewString(),
		AuthorId:  authorId,
		Text:      text,
		CreatedAt: time.Now().UTC().Format(constants.DataFormate),
		Replies:   []*model.Comment{},
	}
	target := &commentTarget{ownerId: content.AuthorId()}
	list := content.CommentsRef()
	if parentId == "" {
		*list = append([]*model.Comment{comment}, *list...)
		for _, name := range utils.ExtractMentions(text) {
			if u := db.FindUserByUsername(users, name); u != nil {
				target.mentions = append(target.mentions, u.Id)
			}
		}
	} else {
		parent := findComment(*list, parentId)
		if parent == nil {
			return nil, errno.NotFoundErr.WithMessage("Parent comment not found")
		}
		parent.Replies = append([]*model.Comment{comment}, parent.Replies...)
		target.ownerId = parent.AuthorId
	}

	if err := db.SaveContent(service.ctx, set); err != nil {
		return nil, errors.WithMessage(err, "dao.SaveContent failed")
	}
	target.view = hydrate.Comments([]*model.Comment{comment}, hydrate.Users(users))[0]
	return target, nil
}

// DeleteComment removes a top-level comment, or a reply under parentCommentId when
// that is set. Without a parent id a reply is still found by its own id. The comment's author and the content's author may delete. A removed
// top-level comment takes its replies with it; notifications are left alone.
func (service *CommentService) DeleteComment(contentId string, t model.ContentType, commentId, userId, parentCommentId string) error {
	defer db.Lock()()

	set, err := db.LoadContent(service.ctx, t)
	if err != nil {
		return err
	}
	content, ok := set.Find(contentId)
	if !ok {
		return errno.NotFoundErr.WithMessage("Content not found")
	}

	list := content.CommentsRef()
	if parentCommentId != "" {
		parent := findComment(*list, parentCommentId)
		if parent == nil {
			return errno.NotFoundErr.WithMessage("Parent comment not found")
		}
		list = &parent.Replies
	}
	i := indexOf(*list, commentId)
	if i < 0 && parentCommentId == "" {
		list, i = findReply(*list, commentId)
	}
	if i < 0 {
		return errno.NotFoundErr.WithMessage("Comment not found")
	}
	if (*list)[i].AuthorId != userId && content.AuthorId() != userId {
		return errno.UnauthorizedErr.WithMessage("User not authorized to delete this comment")
	}
	*list = append((*list)[:i], (*list)[i+1:]...)

	if err := db.SaveContent(service.ctx, set); err != nil {
		return errors.WithMessage(err, "dao.SaveContent failed")
	}
	return nil
}

func findComment(cs []*model.Comment, id string) *model.Comment {
	if i := indexOf(cs, id); i >= 0 {
		return cs[i]
	}
	return nil
}

// findReply returns the reply list holding id and its index, or -1.
func findReply(cs []*model.Comment, id string) (*[]*model.Comment, int) {
	for _, c := range cs {
		if i := indexOf(c.Replies, id); i >= 0 {
			return &c.Replies, i
		}
	}
	return nil, -1
}

func indexOf(cs []*model.Comment, id string) int {
	for i, c := range cs {
		if c.Id == id {
			return i
		}
	}
	return -1
}
