package jwt

import (
	"strings"
	"testing"
	"time"

	"FlowTube.com/cmd/model"
)

func TestTokenGenerator(t *testing.T) {
	m, err := New("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	token, expire, err := m.TokenGenerator(&model.PublicUser{Id: "u1", Username: "alice"})
	if err != nil {
		t.Fatalf("TokenGenerator: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("not a JWT: %q", token)
	}
	if !expire.After(time.Now()) {
		t.Fatalf("token already expired: %v", expire)
	}
	if _, err := m.ParseTokenString(token); err != nil {
		t.Fatalf("ParseTokenString: %v", err)
	}
}
