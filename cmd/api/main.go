package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver

	"jira-notifier/config"
	_ "jira-notifier/docs" // Swagger docs
	"jira-notifier/internal/httpserver"
	mappingHTTP "jira-notifier/internal/mapping/delivery/http"
	mappingRepo "jira-notifier/internal/mapping/repository/postgre"
	mappingUC "jira-notifier/internal/mapping/usecase"
	notifySlack "jira-notifier/internal/notify/slack"
	preferenceHTTP "jira-notifier/internal/preference/delivery/http"
	preferenceRepo "jira-notifier/internal/preference/repository/postgre"
	preferenceUC "jira-notifier/internal/preference/usecase"
	"jira-notifier/internal/routing"
	routingUC "jira-notifier/internal/routing/usecase"
	"jira-notifier/internal/webhook"
	"jira-notifier/pkg/cache"
	"jira-notifier/pkg/jira"
	"jira-notifier/pkg/log"
	"jira-notifier/pkg/slack"
)

// @title       Jira Notifier API
// @description Routes Jira issue webhooks to Slack channels via project/component mappings and per-channel preferences.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Jira Notifier...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Jira URL: %s", cfg.Jira.URL)

	// 3. Postgres
	db, err := sql.Open("pgx", cfg.Postgres.DSN())
	if err != nil {
		logger.Errorf(ctx, "Failed to open postgres: %v", err)
		return
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Errorf(ctx, "Failed to ping postgres: %v", err)
		return
	}

	// 4. Shared TTL cache
	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.New(cache.Config{
			DefaultTTL:    cfg.Cache.DefaultTTL,
			SweepInterval: cfg.Cache.SweepInterval,
		})
	}

	// 5. External clients
	jiraClient := jira.NewClient(cfg.Jira.URL, cfg.Jira.Username, cfg.Jira.APIToken, cfg.Jira.VCSType, c)
	slackClient := slack.NewClient(cfg.Slack.BotToken)

	// 6. Domains
	mappingUseCase := mappingUC.New(logger, mappingRepo.New(db, logger), c, mappingUC.Config{
		CacheEnabled: cfg.Cache.Enabled,
		CacheTTL:     cfg.Cache.DefaultTTL,
	})
	preferenceUseCase := preferenceUC.New(logger, preferenceRepo.New(db, logger), c, preferenceUC.Config{
		CacheEnabled: cfg.Cache.Enabled,
		CacheTTL:     cfg.Cache.DefaultTTL,
	})

	sender := notifySlack.New(logger, slackClient, c)

	var dynamic routing.DynamicChannelSource
	if cfg.Notification.DynamicChannels {
		dynamic = routingUC.NewDynamicSource(jiraClient, mappingUseCase.RepoChannels)
		logger.Info(ctx, "Dynamic repository-linked channels enabled")
	}

	routingUseCase := routingUC.New(logger, mappingUseCase, preferenceUseCase, sender, dynamic, jiraClient)

	// 7. Webhook ingestion
	var webhookHandler *webhook.Handler
	if cfg.Webhook.Enabled {
		webhookHandler = webhook.NewHandler(routingUseCase, webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, cfg.Notification.WorkspaceID, logger)
	} else {
		logger.Warn(ctx, "Webhook ingestion disabled, only management endpoints are served")
	}

	// 8. HTTP Server
	srvCfg := httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		MappingHandler:    mappingHTTP.New(logger, mappingUseCase, cfg.Notification.WorkspaceID),
		PreferenceHandler: preferenceHTTP.New(logger, preferenceUseCase, cfg.Notification.WorkspaceID),
		Cache:             c,
	}
	if webhookHandler != nil {
		srvCfg.WebhookHandler = webhookHandler
	}

	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
