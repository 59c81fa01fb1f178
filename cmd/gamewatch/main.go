package main

import (
	"context"
	"log"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/aleister1102/gamewatch/internal/config"
	"github.com/aleister1102/gamewatch/internal/datastore"
	"github.com/aleister1102/gamewatch/internal/gamedata"
	"github.com/aleister1102/gamewatch/internal/httpclient"
	"github.com/aleister1102/gamewatch/internal/logger"
	"github.com/aleister1102/gamewatch/internal/marketstats"
	"github.com/aleister1102/gamewatch/internal/monitor"
	"github.com/aleister1102/gamewatch/internal/notifier"
	"github.com/aleister1102/gamewatch/internal/notifier/discord"
	"github.com/rs/zerolog"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load global config using path '%s': %v", flags.GlobalConfigFile, err)
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		log.Fatalf("[FATAL] Configuration validation failed: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}
	zLogger.Info().Str("monitor", flags.Monitor).Msg("gamewatch starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpClient, err := httpclient.NewHTTPClient(gCfg.HTTPClientSettings.ToClientConfig(), zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Could not initialize HTTP client")
	}

	if flags.Monitor == "marketstats" {
		runMarketStats(ctx, gCfg, httpClient, zLogger)
		return
	}

	res, ok := gamedata.Lookup(flags.Monitor)
	if !ok {
		zLogger.Fatal().Str("monitor", flags.Monitor).Msg("Unknown monitor")
	}

	notificationHelper := notifier.NewNotificationHelper(discord.NewDiscordNotifier(zLogger, httpClient), zLogger)

	var historyDB *datastore.HistoryDB
	if gCfg.StorageConfig.HistoryDBPath != "" {
		historyDB, err = datastore.NewHistoryDB(gCfg.StorageConfig.HistoryDBPath, zLogger)
		if err != nil {
			// Run history is auxiliary: a broken database must not block a check
			zLogger.Error().Err(err).Msg("Could not open run history database, continuing without it")
		} else {
			defer historyDB.Close()
		}
	}

	runner := monitor.NewRunner(zLogger, gCfg, httpClient, notificationHelper, historyDB)
	result, err := runner.Run(ctx, res)
	if err != nil {
		zLogger.Fatal().Err(err).Str("monitor", res.Name).Msg("Monitor run failed")
	}

	if result.NotifyError != nil {
		zLogger.Warn().Err(result.NotifyError).Msg("Run succeeded but notification delivery failed")
	}
	zLogger.Info().
		Bool("changed", result.Changed).
		Dur("duration", result.Duration).
		Msg("gamewatch finished")
}

func runMarketStats(ctx context.Context, gCfg *config.GlobalConfig, httpClient *httpclient.HTTPClient, zLogger zerolog.Logger) {
	historyFile := gCfg.MarketStatsConfig.HistoryFile
	if !filepath.IsAbs(historyFile) {
		historyFile = filepath.Join(gCfg.MonitorConfig.SnapshotDir, historyFile)
	}

	store := marketstats.NewHistoryStore(historyFile, zLogger)
	collector := marketstats.NewCollector(zLogger, gCfg.MarketStatsConfig, httpClient, store)

	result, err := collector.Run(ctx)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Stats collection failed")
	}

	zLogger.Info().
		Int("items", result.ItemsProcessed).
		Int("appended", result.RecordsAppended).
		Dur("duration", result.Duration).
		Msg("gamewatch finished")
}
