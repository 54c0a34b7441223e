package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"trainingquote/commands"
	"trainingquote/config"
	"trainingquote/handlers"
	"trainingquote/logger"
)

func main() {
	if err := config.LoadEnv(".env"); err != nil {
		log.Printf("Warning: could not load .env: %v", err)
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl := logger.NewLogger(cfg.Debug)
	defer zl.Sync()

	app := pocketbase.New()
	app.RootCmd.AddCommand(commands.NewQuoteCmd(cfg))

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS(cfg.StaticDir), false))

		se.Router.BindFunc(handlers.RequestLogMiddleware())

		// ── Calculator ───────────────────────────────────────────
		se.Router.GET("/", handlers.HandleQuotePage(cfg))
		se.Router.POST("/quote/calculate", handlers.HandleQuoteCalculate(cfg))

		// ── Trainer roster ───────────────────────────────────────
		se.Router.POST("/quote/trainers", handlers.HandleTrainerAdd(cfg))
		se.Router.POST("/quote/trainers/{id}/remove", handlers.HandleTrainerRemove(cfg))

		// ── Export ───────────────────────────────────────────────
		se.Router.POST("/quote/export/{format}", handlers.HandleQuoteExport(cfg))

		se.Router.GET("/metrics", apis.WrapStdHandler(promhttp.Handler()))

		logger.Log.Info("quote calculator routes registered",
			zap.String("static_dir", cfg.StaticDir),
			zap.String("default_travel_mode", cfg.DefaultTravelMode),
		)
		return se.Next()
	})

	if err := app.Start(); err != nil {
		logger.Log.Fatal("app stopped", zap.Error(err))
	}
}
