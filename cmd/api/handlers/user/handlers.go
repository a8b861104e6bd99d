package user

import (
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

type RegisterParam struct {
	Password string `json:"password"`
}

type LoginParam struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}
