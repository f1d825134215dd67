package service

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"FlowTube.com/cmd/dal/db"
	"FlowTube.com/cmd/hydrate"
	"FlowTube.com/cmd/model"
	notification "FlowTube.com/cmd/notification/service"
	"FlowTube.com/config"
	"FlowTube.com/pkg/constants"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/oss"
	"FlowTube.com/pkg/search"
	"FlowTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type CreateVideoRequest struct {
	AuthorId    string
	Title       string
	Description string
	Thumbnail   string
	VideoUrl    string
	Duration    string
}

type CreatePostRequest struct {
	AuthorId    string
	Title       string
	Description string
	Caption     string
	Image       string
}

type VideoUploadService struct {
	ctx context.Context
}

func NewVideoUploadService(ctx context.Context) *VideoUploadService {
	return &VideoUploadService{ctx: ctx}
}

func (s *VideoUploadService) CreateVideo(req *CreateVideoRequest) (*model.VideoView, error) {
	if strings.TrimSpace(req.Title) == "" || req.VideoUrl == "" {
		return nil, errno.RequestErr.WithMessage("Title and video are required")
	}
	video := &model.Video{
		Id:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		VideoUrl:    req.VideoUrl,
		Duration:    req.Duration,
		CreatedAt:   time.Now().UTC().Format(constants.DataFormate),
		AuthorId:    req.AuthorId,
		Comments:    []*model.Comment{},
	}
	if video.Thumbnail == "" {
		video.Thumbnail = s.thumbnailFor(video.VideoUrl)
	}
	view, subscribers, err := s.publish(model.VideoContent(video))
	if err != nil {
		return nil, err
	}
	s.index(model.VideoContent(video))
	s.notifySubscribers(subscribers, video.AuthorId, model.NotifyNewVideo, video.Id, model.ContentVideo, video.Title)
	return view.Video, nil
}

func (s *VideoUploadService) CreatePost(req *CreatePostRequest) (*model.PostView, error) {
	if req.Image == "" && strings.TrimSpace(req.Caption) == "" {
		return nil, errno.RequestErr.WithMessage("A post needs an image or a caption")
	}
	post := &model.Post{
		Id:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Caption:     req.Caption,
		Image:       req.Image,
		CreatedAt:   time.Now().UTC().Format(constants.DataFormate),
		AuthorId:    req.AuthorId,
		Comments:    []*model.Comment{},
	}
	view, subscribers, err := s.publish(model.PostContent(post))
	if err != nil {
		return nil, err
	}
	s.index(model.PostContent(post))
	s.notifySubscribers(subscribers, post.AuthorId, model.NotifyNewPost, post.Id, model.ContentPost, post.Caption)
	return view.Post, nil
}

// publish appends c to its content file and returns the hydrated result along with
// the ids of the author's subscribers.
func (s *VideoUploadService) publish(c model.Content) (model.ContentView, []string, error) {
	defer db.Lock()()

	users, err := db.LoadUsers(s.ctx)
	if err != nil {
		return model.ContentView{}, nil, err
	}
	if db.FindUser(users, c.AuthorId()) == nil {
		return model.ContentView{}, nil, errno.NotFoundErr.WithMessage("Author not found")
	}
	set, err := db.LoadContent(s.ctx, c.Type)
	if err != nil {
		return model.ContentView{}, nil, err
	}
	set.Append(c)
	if err := db.SaveContent(s.ctx, set); err != nil {
		return model.ContentView{}, nil, errors.WithMessage(err, "dao.SaveContent failed")
	}

	subscribers := make([]string, 0)
	for _, u := range users {
		if utils.Contains(u.Subscriptions, c.AuthorId()) {
			subscribers = append(subscribers, u.Id)
		}
	}
	return hydrate.Content(c, hydrate.Users(users)), subscribers, nil
}

// index hands c to the search engine, if any. The content file stays the source of
// truth so failures are only logged.
func (s *VideoUploadService) index(c model.Content) {
	if search.Default == nil {
		return
	}
	if err := search.Default.Index(s.ctx, search.DocumentOf(c)); err != nil {
		hlog.CtxWarnf(s.ctx, "index %s: %v", c.Id(), err)
	}
}

func (s *VideoUploadService) notifySubscribers(subscribers []string, authorId string, typ model.NotificationType, contentId string, contentType model.ContentType, text string) {
	_, err := notification.NewNotificationService(s.ctx).NotifyMany(subscribers, authorId, typ, model.NotificationPayload{
		ContentId:   contentId,
		ContentType: contentType,
		Text:        text,
	})
	if err != nil {
		hlog.CtxErrorf(s.ctx, "notify subscribers of %s: %v", authorId, err)
	}
}

// thumbnailFor extracts the first frame of a locally uploaded video. Failures only
// cost the thumbnail.
func (s *VideoUploadService) thumbnailFor(videoUrl string) string {
	if !config.ConfigInfo.Upload.Thumbnails {
		return ""
	}
	local, ok := oss.Default.(*oss.LocalUploader)
	if !ok {
		return ""
	}
	path, ok := local.Resolve(videoUrl)
	if !ok {
		return ""
	}
	thumb, err := utils.GetVideoThumbnail(path, local.Dir)
	if err != nil {
		hlog.CtxWarnf(s.ctx, "thumbnail for %s: %v", videoUrl, err)
		return ""
	}
	return local.PublicPrefix + "/" + filepath.Base(thumb)
}

// UploadFile stores data as <epoch-millis>-<random-int><ext> with the configured
// uploader and returns its URL.
func (s *VideoUploadService) UploadFile(data []byte, originalName string) (string, error) {
	if oss.Default == nil {
		return "", errno.ServiceErr.WithMessage("Uploads are not configured")
	}
	name := utils.UploadName(originalName, time.Now())
	url, err := oss.Default.Upload(s.ctx, data, name)
	if err != nil {
		return "", errors.WithMessage(errno.IOFailureErr.WithMessage(err.Error()), "UploadFile failed")
	}
	return url, nil
}
