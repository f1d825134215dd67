package errno

import (
	"testing"

	"github.com/pkg/errors"
)

func TestConvertErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int64
		msg  string
	}{
		{"nil", nil, SuccessCode, "Success"},
		{"plain", errors.New("boom"), ServiceErrCode, "boom"},
		{"errno", NotFoundErr.WithMessage("Author not found"), NotFoundErrCode, "Author not found"},
		{"wrapped", errors.WithMessage(ConflictErr.WithMessage("Username already exists"), "CreateUser failed"), ConflictErrCode, "Username already exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertErr(tt.err)
			if got.ErrCode != tt.code || got.ErrMsg != tt.msg {
				t.Errorf("ConvertErr() = %+v, want code=%d msg=%q", got, tt.code, tt.msg)
			}
		})
	}
}

func TestIsMatchesOnCode(t *testing.T) {
	err := errors.Wrap(UnauthorizedErr.WithMessage("User not authorized to delete this comment"), "DeleteComment")
	if !errors.Is(err, UnauthorizedErr) {
		t.Fatalf("expected %v to match UnauthorizedErr", err)
	}
	if errors.Is(err, NotFoundErr) {
		t.Fatalf("did not expect %v to match NotFoundErr", err)
	}
}
