package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "gopherblog/internal/app"
	"gopherblog/internal/bootstrap"
	"gopherblog/internal/repository"
	"gopherblog/internal/session"
	"gopherblog/internal/transport/http/handler"
	"gopherblog/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	postRepo := repository.NewPostRepository(app.MySQL)
	commentRepo := repository.NewCommentRepository(app.MySQL)
	revocations := session.NewRevocationList(app.Redis)

	authService := appsvc.NewAuthService(
		userRepo,
		revocations,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.TokenTTLHour)*time.Hour,
	)
	userService := appsvc.NewUserService(userRepo, postRepo)
	postService := appsvc.NewPostService(postRepo, userRepo)
	commentService := appsvc.NewCommentService(commentRepo, postRepo)

	authHandler := handler.NewAuthHandler(authService, app.Config.Auth.CookieSecure)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)

	authRequired := middleware.Auth(authService)

	userGroup := router.Group("/api/user")
	userGroup.POST("/register", authHandler.Register)
	userGroup.POST("/login", authHandler.Login)
	userGroup.POST("/logout", authRequired, authHandler.Logout)
	userGroup.GET("/:id", authRequired, userHandler.Me)
	userGroup.PUT("/update/:id", authRequired, userHandler.UpdateAccount)
	userGroup.PUT("/updateprofile/:id", authRequired, userHandler.UpdateProfile)
	userGroup.DELETE("/delete/:id", authRequired, userHandler.Delete)

	postGroup := router.Group("/api/post")
	postGroup.Use(authRequired)
	postGroup.POST("/", postHandler.Create)
	postGroup.GET("/all", postHandler.List)
	postGroup.POST("/search", postHandler.Search)
	postGroup.GET("/:id", postHandler.Get)
	postGroup.PUT("/update/:id", postHandler.Update)
	postGroup.DELETE("/delete/:id", postHandler.Delete)

	commentGroup := router.Group("/api/comment")
	commentGroup.Use(authRequired)
	commentGroup.POST("/:postId", commentHandler.Create)
	commentGroup.PUT("/update/:commentId", commentHandler.Update)
	commentGroup.DELETE("/delete/:commentId", commentHandler.Delete)

	return router
}
