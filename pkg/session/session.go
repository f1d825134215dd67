package session

import (
	"FlowTube.com/pkg/constants"
	"FlowTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// Session is the signed-in user attached to a request by the auth middleware.
type Session struct {
	UserId   string
	Username string
}

func Set(c *app.RequestContext, s *Session) {
	c.Set(constants.IdentityKey, s)
}

// Current returns the request's session, or UnauthorizedErr when nobody is signed in.
func Current(c *app.RequestContext) (*Session, error) {
	v, ok := c.Get(constants.IdentityKey)
	if !ok {
		return nil, errno.UnauthorizedErr.WithMessage("Not signed in")
	}
	s, ok := v.(*Session)
	if !ok || s.UserId == "" {
		return nil, errno.UnauthorizedErr.WithMessage("Not signed in")
	}
	return s, nil
}
