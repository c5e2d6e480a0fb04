package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	"github.com/vedantwpatil/hand-cursor/internal/config"
	"github.com/vedantwpatil/hand-cursor/internal/controller"
	"github.com/vedantwpatil/hand-cursor/internal/hotkeys"
	"github.com/vedantwpatil/hand-cursor/internal/logging"
	"github.com/vedantwpatil/hand-cursor/internal/pointer"
	"github.com/vedantwpatil/hand-cursor/internal/sensor"
)

var errNoSensor = errors.New("no sensor configured: set sensor.replayPath or pass --replay")

type Application struct {
	config     *config.Config
	logger     zerolog.Logger
	controller *controller.Controller
	hotkeys    *hotkeys.Listener
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewApplication(cfg *config.Config, logger zerolog.Logger) *Application {
	ctx, cancel := context.WithCancel(context.Background())
	return &Application{
		config: cfg,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (app *Application) buildSensor() (sensor.Sensor, error) {
	sc := app.config.Sensor
	if sc.ReplayPath == "" {
		return nil, errNoSensor
	}
	return sensor.NewReplay(sensor.ReplayOptions{
		Path:      sc.ReplayPath,
		FrameRate: sc.FrameRate,
		BodyCount: sc.BodyCount,
		Loop:      sc.Loop,
		Logger:    app.logger.With().Str("component", "replay").Logger(),
	}), nil
}

func (app *Application) Run() error {
	src, err := app.buildSensor()
	if err != nil {
		return err
	}

	ctl, err := controller.New(src, pointer.NewRobot(app.config.Display.Index), app.config.Settings,
		controller.WithLogger(app.logger.With().Str("component", "controller").Logger()))
	if err != nil {
		return errors.Wrap(err, "invalid settings")
	}
	if err := ctl.Start(app.ctx); err != nil {
		return err
	}
	app.controller = ctl

	if app.config.Hotkeys.Enabled {
		app.hotkeys = hotkeys.NewListener(app.logger.With().Str("component", "hotkeys").Logger(),
			hotkeys.DefaultBindings(ctl, app.cancel)...)
		app.hotkeys.Start()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go app.handleSignals(sigChan)

	<-app.ctx.Done()
	return app.cleanup()
}

func (app *Application) handleSignals(sigChan chan os.Signal) {
	select {
	case sig := <-sigChan:
		app.logger.Info().Str("signal", sig.String()).Msg("received signal, exiting")
		app.cancel()
	case <-app.ctx.Done():
	}
}

func (app *Application) cleanup() error {
	var err error
	if app.hotkeys != nil {
		app.hotkeys.Stop()
	}
	if app.controller != nil {
		err = multierr.Append(err, app.controller.Stop())
	}
	app.cancel()
	return err
}

func main() {
	configDir := pflag.String("config", ".", "directory containing "+config.FileName)
	replay := pflag.String("replay", "", "JSON Lines body recording to play back")
	logLevel := pflag.String("log-level", "", "override logLevel from the config file")
	pflag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *replay != "" {
		cfg.Sensor.ReplayPath = *replay
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger := logging.Setup(os.Stdout, cfg.LogLevel)
	app := NewApplication(cfg, logger)
	if err := app.Run(); err != nil {
		logger.Fatal().Err(err).Msg("application error")
	}
}
