package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	apianalysis "finsight/pkg/api/analysis"
	apichat "finsight/pkg/api/chat"
	apiconfig "finsight/pkg/api/config"
	apinarrative "finsight/pkg/api/narrative"
	"finsight/pkg/core/config"
	"finsight/pkg/core/llm"
	"finsight/pkg/core/narrative"
	"finsight/pkg/core/session"
)

func main() {
	// Load environment variables
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	srvCfg, err := config.LoadServer()
	if err != nil {
		slog.Error("invalid server configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	modelCfg := config.LoadModel("config/models.yaml")

	provider := &llm.GeminiProvider{Model: modelCfg.Name, Temperature: modelCfg.Temperature}
	store := session.NewStore(provider, srvCfg.SessionTTL)
	summarizer := narrative.NewSummarizer(provider)

	analysisHandler := apianalysis.NewHandler(store)
	narrativeHandler := apinarrative.NewHandler(store, summarizer)
	chatHandler := apichat.NewHandler(store)
	configHandler := apiconfig.NewHandler(modelCfg)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	// A failing request must never take the process down with it.
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/analysis", analysisHandler.HandleUpload)
		r.Get("/analysis", analysisHandler.HandleCurrent)
		r.Post("/narrative", narrativeHandler.HandleGenerate)
		r.Post("/chat/message", chatHandler.HandleMessage)
		r.Get("/chat/history", chatHandler.HandleHistory)
		r.Post("/chat/reset", chatHandler.HandleReset)
		r.Get("/config", configHandler.HandleConfig)
	})

	srv := &http.Server{Addr: srvCfg.Addr, Handler: r}

	go func() {
		slog.Info("API server starting",
			slog.String("addr", srvCfg.Addr),
			slog.String("model", modelCfg.Name))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Shutdown(ctx)
}
