package service

import (
	"context"
	"strings"

	"FlowTube.com/cmd/dal/db"
	"FlowTube.com/cmd/model"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/utils"
	"github.com/pkg/errors"
)

// UpdateUserRequest is a profile edit. Empty Password keeps the stored hash and an
// empty DisplayName falls back to the username. The subscription, like and view
// lists are owned by their own actions and are kept.
type UpdateUserRequest struct {
	UserId       string
	Username     string
	DisplayName  string
	ProfileImage string
	Bio          string
	Banner       string
	Password     string
}

type UpdateUserService struct {
	ctx context.Context
}

func NewUpdateUserService(ctx context.Context) *UpdateUserService {
	return &UpdateUserService{ctx: ctx}
}

func (v *UpdateUserService) UpdateUser(req *UpdateUserRequest) (*model.PublicUser, error) {
	var hash string
	if req.Password != "" {
		var err error
		if hash, err = utils.Crypt(req.Password); err != nil {
			return nil, errors.WithMessage(err, "Password fail to crypt")
		}
	}

	defer db.Lock()()
	users, err := db.LoadUsers(v.ctx)
	if err != nil {
		return nil, err
	}
	user := db.FindUser(users, req.UserId)
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("User not found")
	}

	if name := strings.TrimSpace(req.Username); name != "" && name != user.Username {
		if other := db.FindUserByUsername(users, name); other != nil && other != user {
			return nil, errno.ConflictErr.WithMessage("Username already exists")
		}
		user.Username = name
	}
	user.DisplayName = strings.TrimSpace(req.DisplayName)
	if user.DisplayName == "" {
		user.DisplayName = user.Username
	}
	user.ProfileImage = req.ProfileImage
	user.Bio = req.Bio
	user.Banner = req.Banner
	if hash != "" {
		user.Password = hash
	}

	if err := db.SaveUsers(v.ctx, users); err != nil {
		return nil, errors.WithMessage(err, "dao.SaveUsers failed")
	}
	return user.Public(), nil
}
