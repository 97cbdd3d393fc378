package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/poolboard/poolboard-api/api/swagger"
	"github.com/poolboard/poolboard-api/internal/handler"
	"github.com/poolboard/poolboard-api/internal/middleware"
	"github.com/poolboard/poolboard-api/internal/repository"
	"github.com/poolboard/poolboard-api/internal/service"
	"github.com/poolboard/poolboard-api/pkg/cache"
	"github.com/poolboard/poolboard-api/pkg/config"
	"github.com/poolboard/poolboard-api/pkg/logger"
	corsmiddleware "github.com/poolboard/poolboard-api/pkg/middleware/cors"
	reqidmiddleware "github.com/poolboard/poolboard-api/pkg/middleware/requestid"
)

// @title Poolboard API
// @version 1.0.0
// @description Pool schedule viewer and admin editor backend
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	repo, err := repository.NewFacilityRepository(cfg.Store.DataDir, cfg.Store.BackupKeep, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to init facility repository", "error", err)
	}

	metricsSvc := service.NewMetricsService()
	cacheStore := cache.New(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	facilitySvc := service.NewFacilityService(repo, cacheStore, metricsSvc, logr)
	availabilitySvc := service.NewAvailabilityService(service.SystemClock(), logr)
	editorSvc := service.NewEditorService(facilitySvc, validator.New(), logr)
	exportSvc := service.NewExportService(facilitySvc, nil, nil, logr)

	facilityHandler := handler.NewFacilityHandler(facilitySvc)
	scheduleHandler := handler.NewScheduleHandler(facilitySvc)
	availabilityHandler := handler.NewAvailabilityHandler(facilitySvc, availabilitySvc, cfg.Availability.LookaheadDays)
	filterHandler := handler.NewFilterHandler(facilitySvc)
	editorHandler := handler.NewEditorHandler(editorSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/stats", metricsHandler.Stats)
		api.GET("/facilities", facilityHandler.List)
		api.POST("/save-facility/:slug", facilityHandler.SaveRaw)
		api.POST("/filters/evaluate", filterHandler.Evaluate)

		facility := api.Group("/facility/:slug")
		{
			facility.GET("", facilityHandler.Get)
			facility.GET("/schedule/:date", scheduleHandler.ForDate)
			facility.GET("/dates", scheduleHandler.Dates)
			facility.GET("/lane-status", scheduleHandler.LaneStatus)
			facility.GET("/lane-schedule", scheduleHandler.LaneSchedule)
			facility.GET("/activities-at", scheduleHandler.ActivitiesAt)
			facility.GET("/hours", scheduleHandler.Hours)
			facility.GET("/open", scheduleHandler.Open)
			facility.GET("/availability/:activity", availabilityHandler.Upcoming)

			facility.GET("/pending", editorHandler.Pending)
			facility.POST("/entries", editorHandler.AddEntry)
			facility.PUT("/entries/:date/:index", editorHandler.UpdateEntry)
			facility.DELETE("/entries/:date/:index", editorHandler.DeleteEntry)
			facility.DELETE("/days/:date", editorHandler.ClearDay)
			facility.POST("/import", editorHandler.Import)
			facility.POST("/save", editorHandler.Save)
			facility.POST("/discard", editorHandler.Discard)
			facility.GET("/export", editorHandler.Export)

			if cfg.Exports.Enabled {
				facility.GET("/export/:date", exportHandler.Day)
			}
		}
	}

	r.NoRoute(staticHandler(cfg.StaticDir, cfg.APIPrefix))

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "dataDir", cfg.Store.DataDir)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// staticHandler serves the viewer assets, falling back to index.html for
// unknown non-API paths so client-side routing keeps working.
func staticHandler(staticDir, apiPrefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || strings.HasPrefix(path, apiPrefix) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		target := filepath.Join(staticDir, filepath.Clean("/"+path))
		if info, err := os.Stat(target); err == nil && !info.IsDir() {
			c.File(target)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	}
}
