package main

import (
	"strings"

	interaction "FlowTube.com/cmd/api/handlers/interaction"
	message "FlowTube.com/cmd/api/handlers/message"
	relation "FlowTube.com/cmd/api/handlers/relation"
	user "FlowTube.com/cmd/api/handlers/user"
	video "FlowTube.com/cmd/api/handlers/video"
	"FlowTube.com/cmd/api/router/authfunc"
	"FlowTube.com/cmd/model"
	"FlowTube.com/config"
	"FlowTube.com/pkg/jwt"
	"FlowTube.com/pkg/security"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
)

func register(r *server.Hertz) {
	auth := authfunc.Auth()

	a := r.Group("/auth")
	a.POST("/register", user.Register)
	a.POST("/login", jwt.JwtMiddleware.LoginHandler)
	a.GET("/refresh_token", jwt.JwtMiddleware.RefreshHandler)

	u := r.Group("/users")
	u.GET("", user.ListUsers)
	u.GET("/:id", user.GetUserInfo)
	u.GET("/:id/subscriptions", relation.ListSubscriptions)
	u.GET("/:id/subscribers", relation.ListSubscribers)
	u.PUT("/me", append(auth, user.UpdateUser)...)
	u.POST("/:id/subscribe", append(auth, relation.Subscribe)...)

	contentRoutes(r, "/videos", model.ContentVideo)
	contentRoutes(r, "/posts", model.ContentPost)
	r.POST("/videos", append(auth, video.CreateVideo)...)
	r.POST("/posts", append(auth, video.CreatePost)...)
	r.POST("/videos/:id/view", append(auth, video.ViewVideo)...)

	r.GET("/feed", video.FeedService)
	r.GET("/search", video.Search)
	r.POST("/upload", append(auth, video.Upload)...)

	m := r.Group("/messages", auth...)
	m.POST("", security.Middleware("message"), message.SendMessage)
	m.GET("", message.Inbox)
	m.GET("/:user_id", message.Conversation)

	n := r.Group("/notifications", auth...)
	n.GET("", message.ListNotifications)
	n.POST("/read", message.MarkAllRead)

	if cfg := config.ConfigInfo.Upload; cfg.Backend == "local" {
		segments := strings.Count(strings.Trim(cfg.PublicPrefix, "/"), "/") + 1
		r.StaticFS(cfg.PublicPrefix, &app.FS{
			Root:        cfg.Dir,
			PathRewrite: app.NewPathSlashesStripper(segments),
		})
	}
}

// contentRoutes registers the reads and interactions shared by videos and posts.
func contentRoutes(r *server.Hertz, prefix string, t model.ContentType) {
	auth := authfunc.Auth()
	g := r.Group(prefix)
	g.GET("", video.ListContent(t))
	g.GET("/:id", video.GetContent(t))
	g.DELETE("/:id", append(auth, video.DeleteContent(t))...)
	g.POST("/:id/like", append(auth, interaction.LikeAction(t))...)
	g.POST("/:id/comments", append(auth, security.Middleware("comment"), interaction.CreateComment(t))...)
	g.POST("/:id/comments/:comment_id/replies", append(auth, security.Middleware("comment"), interaction.CreateReply(t))...)
	g.DELETE("/:id/comments/:comment_id", append(auth, interaction.DeleteComment(t))...)
}
