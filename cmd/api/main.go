package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"draft-value/internal/api"
	"draft-value/internal/api/handlers"
	"draft-value/internal/config"
	"draft-value/internal/data"
	"draft-value/internal/logger"
	"draft-value/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load environment: %v\n", err)
		os.Exit(1)
	}
	log := logger.InitLogger(env.LogLevel, env.IsDevelopment())

	if env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := store.Open(env.DatabasePath)
	if err != nil {
		log.WithError(err).Fatal("Failed to open league store")
	}
	defer st.Close()

	// A missing league config starts the server empty; a saved league can be loaded later.
	session := handlers.NewSession(nil)
	if cfg, err := config.Load(env.LeagueConfig); err != nil {
		log.WithError(err).WithField("path", env.LeagueConfig).Warn("No league loaded at startup")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		l, err := cfg.BuildLeague(ctx, data.NewFeedCache(env.FeedCacheTTL), log)
		cancel()
		if err != nil {
			log.WithError(err).Fatal("Failed to build league")
		}
		session.Replace(l)
	}

	router := api.NewRouter(api.Deps{
		Session:     session,
		Store:       st,
		Logger:      log,
		CORSOrigins: env.CorsOrigins,
	})

	server := &http.Server{
		Addr:         ":" + env.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("Starting API server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
	log.WithFields(logrus.Fields{"port": env.Port}).Info("Server exited")
}
