package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// newRouter wires middleware and routes onto a fresh gin engine.
func newRouter(h *Handler, instr *instrumentation) *gin.Engine {
	router := gin.New()
	router.SetTrustedProxies(nil)
	router.Use(gin.Recovery(), requestLogger(), instr.middleware())
	router.GET("/metrics", instr.handler())
	h.registerRoutes(router)
	return router
}

func main() {
	// .env is optional in production; real env vars win either way.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.Fatalf("Error loading .env: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	setupLogging(cfg)

	catalog, err := loadCatalog(cfg.ExerciseCatalogPath)
	if err != nil {
		logrus.Fatalf("Unable to load exercise catalog: %v", err)
	}
	foods, err := parseFoods(foodsYAML)
	if err != nil {
		logrus.Fatalf("Unable to load food reference list: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := getDBPool(ctx, cfg.DBURL)
	if err != nil {
		logrus.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()
	logrus.Info("DB pool ready!")

	gin.SetMode(gin.ReleaseMode)
	h := newHandler(newPGStore(pool), cfg.calculator(), catalog, foods)
	instr := newInstrumentation("fitness_tracker")
	instr.watchPool(pool, pool.Config().ConnConfig.Database)
	router := newRouter(h, instr)

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: cors.New(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE"},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		}).Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Server starting on port %s (%d exercises in catalog)", cfg.Port, len(catalog))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Shutdown: %v", err)
	}
}
