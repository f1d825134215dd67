package handlers

import (
	"context"
	"io"

	video "FlowTube.com/cmd/video/service"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/session"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// Upload stores the multipart field "file" and answers with its public URL.
func Upload(ctx context.Context, c *app.RequestContext) {
	if _, err := session.Current(c); err != nil {
		SendResponse(c, err, nil)
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		SendResponse(c, errno.RequestErr.WithMessage("Missing file"), nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		SendResponse(c, errno.IOFailureErr.WithMessage(err.Error()), nil)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		SendResponse(c, errno.IOFailureErr.WithMessage(err.Error()), nil)
		return
	}
	url, err := video.NewVideoUploadService(ctx).UploadFile(data, fh.Filename)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, utils.H{"url": url})
}
