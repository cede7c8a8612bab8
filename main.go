package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/jupiterai/jupiterctl/client"
	"github.com/jupiterai/jupiterctl/command"
	"github.com/jupiterai/jupiterctl/config"
	jerrors "github.com/jupiterai/jupiterctl/errors"
	logger "github.com/jupiterai/jupiterctl/logging"
	"github.com/jupiterai/jupiterctl/service"
	"github.com/jupiterai/jupiterctl/session"
	"github.com/jupiterai/jupiterctl/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	cfg := config.GetConfig()

	// Initialize logger
	logger.InitLogger(cfg.Log.Dir)
	defer logger.Sync()

	// Cancel in-flight API calls on Ctrl-C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info("Interrupted, cancelling")
		cancel()
	}()

	// Load the persisted session. Missing or invalid just means the only
	// usable command is login; the client refuses everything else.
	sess, err := session.Load(cfg.Session.File)
	if err != nil && !errors.Is(err, jerrors.ErrNotAuthenticated) {
		logger.Warn("Ignoring unreadable session file", zap.Error(err))
	}

	api := client.New(cfg, sess, logger.Log)

	// Initialize EventBus
	eventBus := util.NewEventBus()
	eventBus.Start(ctx)

	notifier := util.NewNotifier(os.Stderr)
	notifier.Register(eventBus)

	// Initialize services and utilities
	validationUtil := util.NewValidationUtil()
	services, err := service.InitializeServices(api, validationUtil, eventBus)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	app := &command.App{
		Services: services,
		Auth:     api,
		Notifier: notifier,
		Cfg:      cfg,
		Out:      os.Stdout,
	}

	registry := command.SetupRegistry()
	err = registry.Dispatch(ctx, app, os.Args[1:])

	// Event handlers run on goroutines; wait for them or their output is lost.
	eventBus.Drain()

	if err != nil {
		notifier.NotifyError(err)
		logger.Error("Command failed", zap.Error(err), zap.Strings("args", os.Args[1:]))
		logger.Sync()
		os.Exit(1)
	}
}
