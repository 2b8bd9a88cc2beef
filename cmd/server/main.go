package main

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"

	"prism-terminal/internal/config"
	"prism-terminal/internal/db"
	"prism-terminal/internal/gateway"
	"prism-terminal/internal/prefs"
	"prism-terminal/internal/server"
	"prism-terminal/internal/theme"
)

func main() {
	logger := log.Default()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.Fatal("load config", "err", err)
	}

	database, err := openDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("open database", "err", err)
	}
	defer database.Close()

	var preferences theme.PreferenceStore = prefs.NewStore(database)

	// Leave the Deliverer interface nil when no webhook is configured;
	// assigning a nil *WebhookDeliverer would make it non-nil.
	var deliverer gateway.Deliverer
	if webhook := gateway.NewWebhookDeliverer(cfg.WebhookURL); webhook != nil {
		deliverer = webhook
	} else {
		logger.Warn("message delivery unconfigured", "event", "delivery_unconfigured")
	}

	archive := gateway.NewMessageArchive(database)
	service := gateway.NewService(deliverer, archive, logger)
	handler := gateway.NewHandler(service, logger)

	runtime, err := server.New(cfg, server.Deps{
		Prefs:          preferences,
		Gateway:        gateway.NewClient("http://" + listenHost(cfg.HTTPAddr)),
		GatewayHandler: handler.Routes(),
		Logger:         logger,
	})
	if err != nil {
		logger.Fatal("build server", "err", err)
	}

	if err := runtime.Run(context.Background()); err != nil {
		logger.Fatal("run server", "err", err)
	}
}

func openDatabase(cfg config.Config, logger *log.Logger) (*db.DB, error) {
	if cfg.DataDir == "" {
		logger.Warn("no data dir configured, storage is in-memory", "event", "storage_ephemeral")
		return db.OpenMemory()
	}
	return db.Open(filepath.Join(cfg.DataDir, "prism.db"))
}

// listenHost turns a listen address like ":8080" into an address the
// in-process gateway client can dial.
func listenHost(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "127.0.0.1" + addr
	}
	return addr
}
