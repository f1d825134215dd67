package handlers

import (
	"FlowTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type CreateVideoParam struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Thumbnail   string `json:"thumbnail" form:"thumbnail"`
	VideoUrl    string `json:"videoUrl" form:"videoUrl"`
	Duration    string `json:"duration" form:"duration"`
}

type CreatePostParam struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Caption     string `json:"caption" form:"caption"`
	Image       string `json:"image" form:"image"`
}

type ListParam struct {
	AuthorId string `query:"author_id"`
}

type SearchParam struct {
	Query string `query:"q"`
	Limit int    `query:"limit"`
}
