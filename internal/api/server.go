package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/themeweek/showcase-api/docs"
	v1 "github.com/themeweek/showcase-api/internal/api/handler/v1"
	"github.com/themeweek/showcase-api/internal/api/middleware"
	"github.com/themeweek/showcase-api/internal/config"
	"github.com/themeweek/showcase-api/internal/repository"
	"github.com/themeweek/showcase-api/internal/repository/dao"
	"github.com/themeweek/showcase-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	themeWeekHandler := s.initThemeWeekHandler(db)
	videoHandler := s.initVideoHandler(db)
	materialHandler := s.initMaterialHandler(db)
	s.MountHandlers(authHandler, userHandler, themeWeekHandler, videoHandler, materialHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initThemeWeekHandler(db *gorm.DB) *v1.ThemeWeekHandler {
	weekRepo := repository.NewThemeWeekRepository(dao.NewThemeWeekDAO(db))
	videoRepo := repository.NewVideoRepository(dao.NewVideoDAO(db), dao.NewVoteDAO(db))
	svc := service.NewThemeWeekService(weekRepo, videoRepo)
	materialSvc := service.NewMaterialService(repository.NewMaterialRepository(dao.NewMaterialDAO(db)))
	handler := v1.NewThemeWeekHandler(svc, materialSvc)

	return handler
}

func (s *Server) initVideoHandler(db *gorm.DB) *v1.VideoHandler {
	repo := repository.NewVideoRepository(dao.NewVideoDAO(db), dao.NewVoteDAO(db))
	svc := service.NewVideoService(repo)
	handler := v1.NewVideoHandler(svc)

	return handler
}

func (s *Server) initMaterialHandler(db *gorm.DB) *v1.MaterialHandler {
	repo := repository.NewMaterialRepository(dao.NewMaterialDAO(db))
	svc := service.NewMaterialService(repo)
	handler := v1.NewMaterialHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	themeWeekHandler *v1.ThemeWeekHandler,
	videoHandler *v1.VideoHandler,
	materialHandler *v1.MaterialHandler,
) {
	const basePath = "/api"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/register", authHandler.HandleRegister)
		auth.POST("/auth/login", authHandler.HandleLogin)
		auth.GET("/auth/me", authenticator.VerifyJWT(), authHandler.HandleGetMe)
	}

	public := s.Router.Group(basePath)
	{
		public.GET("/theme-weeks/", themeWeekHandler.HandleListThemeWeeks)
		// gin cannot mount a static "materials" segment beside the :weekID
		// wildcard, so the two public routes share one pattern.
		public.GET("/theme-weeks/:weekID", func(ctx *gin.Context) {
			if ctx.Param("weekID") == "materials" {
				themeWeekHandler.HandleListPublicMaterials(ctx)
				return
			}

			themeWeekHandler.HandleGetThemeWeek(ctx)
		})
		public.GET("/videos/", videoHandler.HandleListVideos)
	}

	member := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		member.POST("/videos/", videoHandler.HandleSubmitVideo)
		member.POST("/videos/:videoID/vote", videoHandler.HandleVote)
	}

	admin := s.Router.Group(basePath+"/admin", authenticator.VerifyJWT(), authenticator.RequireAdmin())
	{
		admin.GET("/users", userHandler.HandleListUsers)
		admin.POST("/users", userHandler.HandleCreateUser)
		admin.GET("/users/:userID", userHandler.HandleGetUser)
		admin.PUT("/users/:userID", userHandler.HandleUpdateUser)
		admin.DELETE("/users/:userID", userHandler.HandleDeleteUser)

		admin.GET("/theme-weeks", themeWeekHandler.HandleAdminListThemeWeeks)
		admin.POST("/theme-weeks", themeWeekHandler.HandleCreateThemeWeek)
		admin.GET("/theme-weeks/:weekID", themeWeekHandler.HandleAdminGetThemeWeek)
		admin.PUT("/theme-weeks/:weekID", themeWeekHandler.HandleUpdateThemeWeek)
		admin.DELETE("/theme-weeks/:weekID", themeWeekHandler.HandleDeleteThemeWeek)

		admin.GET("/videos", videoHandler.HandleAdminListVideos)
		admin.POST("/videos", videoHandler.HandleCreateVideo)
		admin.GET("/videos/:videoID", videoHandler.HandleAdminGetVideo)
		admin.PUT("/videos/:videoID", videoHandler.HandleUpdateVideo)
		admin.DELETE("/videos/:videoID", videoHandler.HandleDeleteVideo)

		admin.GET("/materials", materialHandler.HandleListMaterials)
		admin.POST("/materials", materialHandler.HandleCreateMaterial)
		admin.GET("/materials/:materialID", materialHandler.HandleGetMaterial)
		admin.PUT("/materials/:materialID", materialHandler.HandleUpdateMaterial)
		admin.DELETE("/materials/:materialID", materialHandler.HandleDeleteMaterial)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Theme Week Showcase API"
	docs.SwaggerInfo.Description = "REST API for theme week video and material showcases."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
