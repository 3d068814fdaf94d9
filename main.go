package main

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	assistantx "github.com/kittipos/shoptalk/agent/assistant"
	llmx "github.com/kittipos/shoptalk/agent/llm"
	statex "github.com/kittipos/shoptalk/agent/state"
	toolx "github.com/kittipos/shoptalk/agent/tool"
	"github.com/kittipos/shoptalk/cli"
	configx "github.com/kittipos/shoptalk/pkg/config"
	_ "github.com/kittipos/shoptalk/pkg/logger/autoload"
	openrouterx "github.com/kittipos/shoptalk/pkg/openrouter"
	catalogx "github.com/kittipos/shoptalk/shop/catalog"
)

type AppConfig struct {
	SessionStore string `envconfig:"SESSION_STORE" default:"memory"`
	CustomerID   string `envconfig:"CUSTOMER_ID" default:"default-customer"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("")

	catalogCfg := configx.MustNew[catalogx.Config]("CATALOG")
	catalog, err := catalogx.Load(*catalogCfg)
	if err != nil {
		log.Fatal().Err(err).Str("path", catalogCfg.Path).Msg("load catalog")
	}
	log.Info().Int("products", catalog.Len()).Msg("catalog loaded")

	openRouterCfg := configx.MustNew[openrouterx.Config]("OPENROUTER")
	model, err := llmx.NewClient(openrouterx.NewClient(*openRouterCfg), *openRouterCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init chat model")
	}

	store := newSessionStore(appCfg.SessionStore)

	assistant, err := assistantx.New(store, model, toolx.NewGateway(catalog), assistantx.Config{
		CustomerID:  appCfg.CustomerID,
		ChannelType: "cli",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init assistant")
	}

	sessionID := uuid.NewString()
	loop, err := cli.NewLoop(assistant, sessionID, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("init chat loop")
	}

	log.Info().Str("session_id", sessionID).Msg("chat session started")
	if err := loop.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("chat loop failed")
	}
}

func newSessionStore(kind string) statex.Store {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "upstash":
		cfg := configx.MustNew[statex.UpstashRedisConfig]("UPSTASH_REDIS")
		store, err := statex.NewUpstashRedisStore(*cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("init upstash session store")
		}
		return store
	default:
		return statex.NewMemoryStore()
	}
}
