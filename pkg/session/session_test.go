package session

import (
	"errors"
	"testing"

	"FlowTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func TestCurrent(t *testing.T) {
	c := app.NewContext(0)
	if _, err := Current(c); !errors.Is(err, errno.UnauthorizedErr) {
		t.Fatalf("anonymous request: got %v", err)
	}

	Set(c, &Session{UserId: "u1", Username: "alice"})
	s, err := Current(c)
	if err != nil || s.UserId != "u1" {
		t.Fatalf("Current: %+v %v", s, err)
	}
}
