// Package main is the entry point for the mounjaro-hub application.
//
// @title           Mounjaro Hub API
// @version         1.0.0
// @description     API for tracking injectable medication pens, doses and derived analytics.
//
//	The service models pen capacity in clicks, classifies dose feasibility,
//	projects depletion risk and estimates body concentration over time.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.url    https://github.com/Askwho/mounjaro-hub
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token. Format: "Bearer {token}".
//
// @tag.name        Pens
// @tag.description Pen lifecycle operations
//
// @tag.name        Doses
// @tag.description Dose recording and planning
//
// @tag.name        Metrics
// @tag.description Metrics, risk projection and concentration curves
//
// @tag.name        Weights
// @tag.description Body weight tracking
//
// @tag.name        Snapshots
// @tag.description Stored metric history
//
// @tag.name        Pen Sizes
// @tag.description Pen size catalog management
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/Askwho/mounjaro-hub/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/Askwho/mounjaro-hub/config"
	"github.com/Askwho/mounjaro-hub/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
