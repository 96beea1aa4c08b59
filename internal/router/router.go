package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/client"
	"taskboard-api/internal/events"
	"taskboard-api/internal/handler"
	"taskboard-api/internal/mailer"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/middleware"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/service"
)

// Config carries everything the router needs to wire the API together.
type Config struct {
	DB      *gorm.DB
	Logger  *zap.Logger
	Metrics *metrics.Metrics

	Hub       *events.Hub
	Publisher events.Publisher

	Mailer mailer.Sender
	Github client.GithubClient

	JWTSecret string
	JWTTTL    time.Duration

	OAuthBaseURL  string
	OAuthClientID string

	AllowedOrigins []string
}

// Setup builds the gin engine with all routes and middleware.
func Setup(cfg *Config) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	boardRepo := repository.NewBoardRepository(cfg.DB)
	cardRepo := repository.NewCardRepository(cfg.DB)
	taskRepo := repository.NewTaskRepository(cfg.DB)
	assignmentRepo := repository.NewAssignmentRepository(cfg.DB)
	attachmentRepo := repository.NewAttachmentRepository(cfg.DB)
	inviteRepo := repository.NewInviteRepository(cfg.DB)

	// services
	authService := service.NewAuthService(userRepo, cfg.Mailer, cfg.Github, cfg.JWTSecret, cfg.JWTTTL, cfg.Logger)
	boardService := service.NewBoardService(boardRepo, cfg.Publisher, cfg.Metrics, cfg.Logger)
	cardService := service.NewCardService(cardRepo, cfg.Logger)
	taskService := service.NewTaskService(taskRepo, assignmentRepo, attachmentRepo, cfg.Publisher, cfg.Metrics, cfg.Logger)
	inviteService := service.NewInviteService(boardRepo, inviteRepo, cfg.Mailer, cfg.Logger)
	githubService := service.NewGithubService(cfg.Github)
	userService := service.NewUserService(userRepo)

	// handlers
	authHandler := handler.NewAuthHandler(authService, cfg.OAuthBaseURL, cfg.OAuthClientID)
	boardHandler := handler.NewBoardHandler(boardService, inviteService)
	cardHandler := handler.NewCardHandler(cardService)
	taskHandler := handler.NewTaskHandler(taskService)
	githubHandler := handler.NewGithubHandler(githubService)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handler.NewHealthHandler()
	wsHandler := handler.NewWSHandler(cfg.Hub, cfg.JWTSecret, cfg.Logger)

	// unauthenticated surface
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws", wsHandler.Connect)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/signin", authHandler.Signin)
		auth.GET("/github", authHandler.GithubRedirect)
		auth.GET("/github/callback", authHandler.GithubCallback)
	}

	// authenticated surface
	api := r.Group("/", middleware.Auth(cfg.JWTSecret))
	{
		boards := api.Group("/boards")
		{
			boards.POST("", boardHandler.CreateBoard)
			boards.GET("", boardHandler.GetBoards)
			boards.GET("/:boardId", boardHandler.GetBoard)
			boards.PUT("/:boardId", boardHandler.UpdateBoard)
			boards.DELETE("/:boardId", boardHandler.DeleteBoard)
			boards.POST("/:boardId/invite", boardHandler.InviteMember)

			cards := boards.Group("/:boardId/cards")
			{
				cards.POST("", cardHandler.CreateCard)
				cards.GET("", cardHandler.GetCards)
				cards.GET("/:cardId", cardHandler.GetCard)
				cards.PUT("/:cardId", cardHandler.UpdateCard)
				cards.DELETE("/:cardId", cardHandler.DeleteCard)

				tasks := cards.Group("/:cardId/tasks")
				{
					tasks.POST("", taskHandler.CreateTask)
					tasks.GET("", taskHandler.GetTasks)
					tasks.GET("/:taskId", taskHandler.GetTask)
					tasks.PUT("/:taskId", taskHandler.UpdateTask)
					tasks.DELETE("/:taskId", taskHandler.DeleteTask)

					tasks.POST("/:taskId/assign", taskHandler.AssignMember)
					tasks.GET("/:taskId/assign", taskHandler.GetAssignments)
					tasks.DELETE("/:taskId/assign/:memberId", taskHandler.UnassignMember)

					tasks.POST("/:taskId/github-attach", taskHandler.AttachGithub)
					tasks.GET("/:taskId/github-attachments", taskHandler.GetGithubAttachments)
					tasks.DELETE("/:taskId/github-attachments/:attachmentId", taskHandler.DeleteGithubAttachment)
				}
			}
		}

		api.GET("/repositories/:owner/:repo/github-info", githubHandler.GetRepositoryInfo)

		users := api.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
		}
	}

	return r
}
