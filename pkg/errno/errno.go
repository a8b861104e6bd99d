package errno

import (
	"errors"
	"fmt"

	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const (
	SuccessCode     = int64(0)
	ServiceErrCode  = 10001
	ParamErrCode    = 10002
	AuthFailedCode  = 10003
	ForbiddenCode   = 10004
	NotFoundCode    = 10005
	ConflictCode    = 10006
	UnavailableCode = 10007
	RateLimitCode   = 10008
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success    = NewErrNo(SuccessCode, "Success")
	ServiceErr = NewErrNo(ServiceErrCode, "Service is unable to handle this request")
	ParamErr   = NewErrNo(ParamErrCode, "Wrong parameter has been given")

	AuthorizationFailedErr = NewErrNo(AuthFailedCode, "Authentication required. Please provide a valid Bearer token.")
	LoginErr               = NewErrNo(AuthFailedCode, "Invalid username or password")
	ForbiddenErr           = NewErrNo(ForbiddenCode, "You do not own this resource")
	NotFoundErr            = NewErrNo(NotFoundCode, "Record not found")
	ConflictErr            = NewErrNo(ConflictCode, "Record already exists")
	UnavailableErr         = NewErrNo(UnavailableCode, "Downstream service is unavailable")
	RateLimitErr           = NewErrNo(RateLimitCode, "Too many requests, slow down")

	UserAlreadyExistErr    = NewErrNo(ConflictCode, "Username already taken")
	LikeAlreadyExistErr    = NewErrNo(ConflictCode, "User has already liked this video")
	DislikeAlreadyExistErr = NewErrNo(ConflictCode, "User has already disliked this video")
	ReportAlreadyExistErr  = NewErrNo(ConflictCode, "User has already reported this video")
	VideoNotFoundErr       = NewErrNo(NotFoundCode, "Video not found")
	UserNotFoundErr        = NewErrNo(NotFoundCode, "User not found")
)

// ConvertErr converts a plain error to ErrNo. Unrecognized errors become
// ServiceErr carrying the original message.
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}

// HTTPStatus maps an error code onto its stable HTTP status class.
func HTTPStatus(e ErrNo) int {
	switch e.ErrCode {
	case SuccessCode:
		return consts.StatusOK
	case ParamErrCode:
		return consts.StatusBadRequest
	case AuthFailedCode:
		return consts.StatusUnauthorized
	case ForbiddenCode:
		return consts.StatusForbidden
	case NotFoundCode:
		return consts.StatusNotFound
	case ConflictCode:
		return consts.StatusConflict
	case UnavailableCode:
		return consts.StatusServiceUnavailable
	case RateLimitCode:
		return consts.StatusTooManyRequests
	default:
		return consts.StatusInternalServerError
	}
}
