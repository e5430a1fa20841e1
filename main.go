package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Srinandan2003/CollabSphere/config"
	"github.com/Srinandan2003/CollabSphere/controllers"
	"github.com/Srinandan2003/CollabSphere/database"
	"github.com/Srinandan2003/CollabSphere/logger"
	"github.com/Srinandan2003/CollabSphere/middlewares"
	"github.com/Srinandan2003/CollabSphere/routes"
	"github.com/Srinandan2003/CollabSphere/services"
	"github.com/Srinandan2003/CollabSphere/store/mongostore"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Error("failed to connect to mongodb", "error", err)
		os.Exit(1)
	}
	log.Info("connected to mongodb", "database", cfg.DBName)

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Error("failed to create indexes", "error", err)
		os.Exit(1)
	}

	userStore := mongostore.NewUserStore(db)
	postStore := mongostore.NewPostStore(db)
	commentStore := mongostore.NewCommentStore(db)
	categoryStore := mongostore.NewCategoryStore(db)
	mediaStore := mongostore.NewMediaStore(db)

	userSvc := services.NewUserService(userStore)
	postSvc := services.NewPostService(postStore, commentStore, mediaStore, log)
	commentSvc := services.NewCommentService(postStore, commentStore, userStore, log)
	categorySvc := services.NewCategoryService(categoryStore)

	authCtl := controllers.NewAuthController(userSvc, cfg.SecretKey, cfg.TokenTTL)
	postCtl := controllers.NewPostController(postSvc, mediaStore)
	commentCtl := controllers.NewCommentController(commentSvc)
	categoryCtl := controllers.NewCategoryController(categorySvc)
	mediaCtl := controllers.NewMediaController(mediaStore, log)

	requireAuth := middlewares.RequireAuth(userSvc, cfg.SecretKey)

	// reject unknown keys in JSON bodies instead of silently dropping them
	gin.EnableJsonDecoderDisallowUnknownFields()

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	api := router.Group("/api")
	routes.AuthRouter(api, authCtl, requireAuth)
	routes.PostRouter(api, postCtl, commentCtl, mediaCtl, requireAuth)
	routes.CategoryRouter(api, categoryCtl, requireAuth)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		log.Error("failed to disconnect from mongodb", "error", err)
	}
	log.Info("server stopped")
}
