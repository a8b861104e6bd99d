package router

import (
	"time"

	"speakup/cmd/api/handlers/interaction"
	"speakup/cmd/api/handlers/user"
	"speakup/cmd/api/handlers/video"
	"speakup/cmd/api/middleware"
	"speakup/cmd/api/router/authfunc"
	rediscache "speakup/cmd/interaction/infras/redis"
	"speakup/pkg/security"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// Register wires every route. Identify runs globally so reads can see
// who is asking; RequireAuth gates the mutating routes.
func Register(h *server.Hertz) {
	h.Use(authfunc.Identify())

	api := h.Group("/api")

	// Brute-force guard on the credential endpoints only; a nil limiter
	// (no redis) lets everything through.
	credLimiter := security.NewRateLimiter(rediscache.Client(), time.Minute, 20)

	users := api.Group("/users")
	users.POST("", middleware.RateLimit(credLimiter, "register"), user.Register)
	users.GET("", user.List)
	users.GET("/:id", user.GetInfo)

	auth := api.Group("/auth")
	auth.POST("/login", middleware.RateLimit(credLimiter, "login"), user.Login)

	videos := api.Group("/videos")
	videos.GET("", video.Feed)
	videos.GET("/:id", video.GetInfo)
	videos.GET("/metadata/:hash", video.GetMetadata)
	videos.POST("", authfunc.RequireAuth(), video.Publish)
	videos.POST("/upload", authfunc.RequireAuth(), video.Upload)
	videos.DELETE("/:id", authfunc.RequireAuth(), video.Delete)

	likes := api.Group("/likes")
	likes.GET("", interaction.LikeList)
	likes.POST("", authfunc.RequireAuth(), interaction.LikeAction)
	likes.DELETE("", authfunc.RequireAuth(), interaction.UnlikeAction)

	dislikes := api.Group("/dislikes")
	dislikes.GET("", interaction.DislikeList)
	dislikes.POST("", authfunc.RequireAuth(), interaction.DislikeAction)
	dislikes.DELETE("", authfunc.RequireAuth(), interaction.UndislikeAction)

	comments := api.Group("/comments")
	comments.GET("", interaction.CommentList)
	comments.POST("", authfunc.RequireAuth(), interaction.CreateComment)

	reports := api.Group("/reports")
	reports.GET("", interaction.ReportList)
	reports.POST("", authfunc.RequireAuth(), interaction.CreateReport)

	ipfs := api.Group("/ipfs")
	ipfs.GET("/status", video.IpfsStatus)
	ipfs.GET("/verify/:hash", video.IpfsVerify)
}
