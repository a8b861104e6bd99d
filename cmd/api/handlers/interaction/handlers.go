package interaction

import (
	"strconv"

	"speakup/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(errno.HTTPStatus(Err), Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type LikeParam struct {
	VideoID int64 `json:"video_id"`
}

type ReportParam struct {
	VideoID int64  `json:"video_id"`
	Reason  string `json:"reason"`
}

type CommentParam struct {
	VideoID int64  `json:"video_id"`
	Content string `json:"content"`
}

// queryID parses an optional numeric query parameter. Absent means zero
// (no filter); present but malformed is a client error, never coerced.
func queryID(c *app.RequestContext, key string) (int64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// requiredQueryID parses a mandatory numeric query parameter.
func requiredQueryID(c *app.RequestContext, key string) (int64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
