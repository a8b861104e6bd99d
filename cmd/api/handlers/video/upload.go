package video

import (
	"context"
	"io"
	"strings"

	"speakup/cmd/api/router/authfunc"
	"speakup/cmd/video/service"
	"speakup/pkg/constants"
	"speakup/pkg/errno"
	"speakup/pkg/metrics"

	"github.com/cloudwego/hertz/pkg/app"
)

// Upload pins a multipart video file and publishes it in one request.
// The file field is "video"; caption and tags arrive as form values,
// tags comma separated.
func Upload(ctx context.Context, c *app.RequestContext) {
	identity, ok := authfunc.CurrentIdentity(c)
	if !ok {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}

	header, err := c.FormFile("video")
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("No video file provided"), nil)
		return
	}
	if header.Size > constants.MaxVideoSize {
		SendResponse(c, errno.ParamErr.WithMessage("File too large. Maximum size is 100MB"), nil)
		return
	}

	file, err := header.Open()
	if err != nil {
		SendResponse(c, errno.ServiceErr, nil)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		SendResponse(c, errno.ServiceErr, nil)
		return
	}

	caption := string(c.FormValue("caption"))
	var tags []string
	for _, tag := range strings.Split(string(c.FormValue("tags")), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	mimetype := header.Header.Get("Content-Type")
	video, err := service.NewUploadVideoService(ctx).UploadVideo(identity.UserID, data, header.Filename, mimetype, caption, tags)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if metrics.Default != nil {
		metrics.Default.Uploads.Inc()
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"message": "Video uploaded",
		"video":   video,
	})
}
