package video

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

type PublishParam struct {
	Hash    string   `json:"hash"`
	Caption string   `json:"caption"`
	Tags    []string `json:"tags"`
}

func pathID(c *app.RequestContext, key string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(key), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
