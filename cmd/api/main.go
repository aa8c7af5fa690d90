package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "staffhub/internal/adapter/db"
	httpadapter "staffhub/internal/adapter/http"
	"staffhub/internal/adapter/http/handlers"
	httpmiddleware "staffhub/internal/adapter/http/middleware"
	"staffhub/internal/adapter/storage"
	appservice "staffhub/internal/app/service"
	"staffhub/internal/config"
	"staffhub/pkg/token"
	"staffhub/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	fileStore, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		logger.Fatal("failed to prepare upload dir", zap.Error(err))
	}

	tokens := token.NewManager(cfg.JwtSecret, cfg.SessionTTL)

	employeeRepository := dbadapter.NewEmployeeRepository(db)
	projectRepository := dbadapter.NewProjectRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	requestRepository := dbadapter.NewHRRequestRepository(db)

	employeeService := appservice.NewEmployeeService(employeeRepository)
	projectService := appservice.NewProjectService(projectRepository, employeeRepository)
	taskService := appservice.NewTaskService(taskRepository, projectRepository, fileStore)
	requestService := appservice.NewHRRequestService(requestRepository, employeeRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language"},
		AllowCredentials: true,
	}))

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:    handlers.NewHealthHandler(db),
		Auth:      handlers.NewAuthHandler(employeeService, tokens),
		Employee:  handlers.NewEmployeeHandler(employeeService),
		Project:   handlers.NewProjectHandler(projectService),
		Task:      handlers.NewTaskHandler(taskService),
		HRRequest: handlers.NewHRRequestHandler(requestService),
	}, tokens)

	port := cfg.AppPort
	if port == "" {
		port = "8000"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
