package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode      = 0
	ServiceErrCode   = 10001
	RequestErrCode   = 10002
	NotFoundErrCode  = 10003
	ConflictErrCode  = 10004
	UnauthorizedCode = 10005
	IOFailureErrCode = 10006
	TokenInvalidCode = 10007
	TooManyReqCode   = 10008
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

// Is reports a match on the code alone so that a message-customised ErrNo still
// compares equal to its base value.
func (e ErrNo) Is(target error) bool {
	var t ErrNo
	if !errors.As(target, &t) {
		return false
	}
	return t.ErrCode == e.ErrCode
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success         = NewErrNo(SuccessCode, "Success")
	ServiceErr      = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	RequestErr      = NewErrNo(RequestErrCode, "Wrong Parameter has been given")
	NotFoundErr     = NewErrNo(NotFoundErrCode, "Record not found")
	ConflictErr     = NewErrNo(ConflictErrCode, "Record already exists")
	UnauthorizedErr = NewErrNo(UnauthorizedCode, "User not authorized")
	IOFailureErr    = NewErrNo(IOFailureErrCode, "Storage read or write failed")
	TokenInvalidErr = NewErrNo(TokenInvalidCode, "Token is invalid or expired")
	TooManyReqErr   = NewErrNo(TooManyReqCode, "Too many requests")
)

// ConvertErr convert error to Errno
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
