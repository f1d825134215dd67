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

type RegisterParam struct {
	Username     string `json:"username" form:"username"`
	Password     string `json:"password" form:"password"`
	DisplayName  string `json:"displayName" form:"displayName"`
	ProfileImage string `json:"profileImage" form:"profileImage"`
}

type UpdateParam struct {
	Username     string `json:"username" form:"username"`
	DisplayName  string `json:"displayName" form:"displayName"`
	ProfileImage string `json:"profileImage" form:"profileImage"`
	Bio          string `json:"bio" form:"bio"`
	Banner       string `json:"banner" form:"banner"`
	Password     string `json:"password" form:"password"`
}
