package video

import (
	"context"

	"speakup/pkg/errno"
	"speakup/pkg/ipfs"

	"github.com/cloudwego/hertz/pkg/app"
)

// IpfsStatus reports whether the pinning service is reachable.
func IpfsStatus(ctx context.Context, c *app.RequestContext) {
	SendResponse(c, errno.Success, map[string]interface{}{
		"service": ipfs.ServiceURL(),
		"status":  "configured",
	})
}

// IpfsVerify checks that a hash is actually pinned on the service.
func IpfsVerify(ctx context.Context, c *app.RequestContext) {
	hash := c.Param("hash")
	if !ipfs.ValidHash(hash) {
		SendResponse(c, errno.ParamErr.WithMessage("Invalid IPFS hash"), nil)
		return
	}

	available, err := ipfs.Verify(ctx, hash)
	if err != nil {
		SendResponse(c, errno.UnavailableErr, nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"hash":      hash,
		"available": available,
		"urls":      ipfs.URLs(hash),
	})
}
