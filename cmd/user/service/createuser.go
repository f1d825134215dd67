package service

import (
	"context"
	"strings"
	"time"

	"FlowTube.com/cmd/dal/db"
	"FlowTube.com/cmd/model"
	"FlowTube.com/pkg/constants"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type CreateUserRequest struct {
	Username     string
	Password     string
	DisplayName  string
	ProfileImage string
	Bio          string
	Banner       string
}

type CreateUserService struct {
	ctx context.Context
}

func NewCreateUserService(ctx context.Context) *CreateUserService {
	return &CreateUserService{ctx: ctx}
}

func (v *CreateUserService) CreateUser(req *CreateUserRequest) (*model.PublicUser, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, errno.RequestErr.WithMessage("Username and password are required")
	}
	passWord, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, errors.WithMessage(err, "Password fail to crypt")
	}

	defer db.Lock()()
	users, err := db.LoadUsers(v.ctx)
	if err != nil {
		return nil, err
	}
	if db.FindUserByUsername(users, username) != nil {
		return nil, errors.WithMessage(errno.ConflictErr.WithMessage("Username already exists"), "User duplicate registration")
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = username
	}
	user := &model.User{
		Id:            uuid.NewString(),
		Username:      username,
		DisplayName:   displayName,
		ProfileImage:  req.ProfileImage,
		Subscriptions: []string{},
		LikedVideos:   []string{},
		LikedPosts:    []string{},
		ViewedVideos:  []string{},
		Bio:           req.Bio,
		Banner:        req.Banner,
		Password:      passWord,
		CreatedAt:     time.Now().UTC().Format(constants.DataFormate),
	}
	if err := db.SaveUsers(v.ctx, append(users, user)); err != nil {
		return nil, errors.WithMessage(err, "dao.SaveUsers failed")
	}
	hlog.CtxInfof(v.ctx, "created user %s (%s)", user.Username, user.Id)
	return user.Public(), nil
}
