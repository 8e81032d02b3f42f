package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/cardstudio/internal/api"
	"github.com/youruser/cardstudio/internal/config"
	"github.com/youruser/cardstudio/internal/logger"
	"github.com/youruser/cardstudio/internal/render"
)

func main() {
	log := logger.New("info")
	cfg := config.Load(log)
	log = logger.New(cfg.LogLevel)

	h := &api.Handler{
		Renderer:     render.NewRenderer(log),
		AssetBaseURL: cfg.AssetBaseURL,
		ShareBaseURL: cfg.ShareBaseURL,
		Log:          log,
	}

	r := gin.Default()
	api.RegisterRoutes(r, h)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server exited")
	}
}
