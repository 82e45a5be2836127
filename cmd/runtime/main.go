package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	container "github.com/thehyperflames/dicontainer-go"

	"github.com/ivan0796/swaplaunch-sub000/internal/config"
	"github.com/ivan0796/swaplaunch-sub000/internal/http"
	"github.com/ivan0796/swaplaunch-sub000/internal/services/history"
	"github.com/ivan0796/swaplaunch-sub000/internal/services/quoting"
	"github.com/ivan0796/swaplaunch-sub000/internal/services/tokens"
)

// @title SwapLaunch Quote API
// @version 1.0
// @description Multi-chain swap quote engine. Normalizes quotes from EVM and
// @description Solana aggregators into one canonical shape with tiered fees
// @description and automatic slippage recommendations.
// @description
// @description ## Chains
// @description | Chain | Quote upstream |
// @description |-------|----------------|
// @description | Ethereum, BSC, Polygon | 0x-style swap API |
// @description | Solana | Jupiter-style quote API |
// @description
// @description ## Usage Tips
// @description - Amounts are smallest token units as decimal integer strings
// @description - Use 0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee for native coins
// @description - Custom slippage must be within 0.1% and 50%
// @description - Rate limit: 10 requests/second (burst: 20)
// @BasePath /api/v1
// @schemes https http
// @tag.name quote
// @tag.description Normalized swap quotes with fee and slippage decisions
// @tag.name tokens
// @tag.description Token and pair search across indexed providers
// @tag.name swaps
// @tag.description Executed swap history

func main() {
	// load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded")
	}

	// di container config
	conf := container.NewConf(
		&config.GeneralConfig{},
		&config.UpstreamConfig{},
		&config.FeesConfig{},
		&config.RiskConfig{},
		&config.HistoryConfig{},
	)

	// di container
	dic, err := container.New(
		conf,

		&quoting.Service{},
		&tokens.Service{},
		&history.Service{},

		&http.HTTPService{},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create di container")
		return
	}

	// Run() blocks until SIGINT/SIGTERM
	if err := dic.Run(); err != nil {
		log.Error().Err(err).Msg("failed to run di container")
		return
	}

	log.Info().Msg("Shutting down services...")
	if err := dic.Stop(); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("Shutdown complete")
}
