package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/five82/decklens/internal/config"
	"github.com/five82/decklens/internal/dashboard"
	"github.com/five82/decklens/internal/logging"
	"github.com/five82/decklens/internal/prefs"
	"github.com/five82/decklens/internal/royale"
	"github.com/five82/decklens/internal/session"
	"github.com/five82/decklens/internal/state"
	"github.com/five82/decklens/internal/ui"
)

// Options configure the decklens application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/decklens/prefs.toml
	Tag        string // opens this player's dashboard on start
}

// Module provides every dependency the UI needs.
var Module = fx.Options(
	fx.Provide(provideConfig),
	fx.Provide(provideLogger),
	fx.Provide(provideSession),
	fx.Provide(provideClient),
	fx.Provide(provideStore),
	fx.Provide(provideLoader),
)

// deps is what Run pulls out of the graph.
type deps struct {
	cfg    config.Config
	logger zerolog.Logger
	client *royale.Client
	store  *state.Store
	loader *dashboard.Loader
}

// Run boots the decklens TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	var d deps
	app := fx.New(
		fx.NopLogger,
		fx.Supply(opts),
		Module,
		fx.Populate(&d.cfg, &d.logger, &d.client, &d.store, &d.loader),
	)
	if err := app.Err(); err != nil {
		return fmt.Errorf("build app: %w", err)
	}

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("start app: %w", err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, _ := prefs.Load(prefsPath)

	d.logger.Info().
		Str("api", d.client.BaseURL()).
		Bool("authenticated", d.client.IsAuthenticated()).
		Str("tag", royale.NormalizeTag(opts.Tag)).
		Msg("decklens starting")

	err := ui.Run(ui.Options{
		Context:    ctx,
		Client:     d.client,
		Loader:     d.loader,
		Store:      d.store,
		Logger:     d.logger,
		Prefs:      userPrefs,
		PrefsPath:  prefsPath,
		ChartDir:   d.cfg.ChartDir,
		LogFile:    d.cfg.LogFile,
		InitialTag: opts.Tag,
	})
	if err != nil {
		d.logger.Error().Err(err).Msg("ui exited with error")
		return err
	}
	d.logger.Info().Msg("decklens stopped")
	return nil
}

func provideConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// provideLogger opens the log file and closes it when the app stops.
func provideLogger(lc fx.Lifecycle, cfg config.Config) (zerolog.Logger, error) {
	handle, err := logging.Open(cfg.LogFile, cfg.Level())
	if err != nil {
		return zerolog.Nop(), err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return handle.Close()
		},
	})
	return handle.Logger, nil
}

// provideSession restores saved credentials. An unreadable session file
// starts a guest session instead of failing startup.
func provideSession(cfg config.Config, logger zerolog.Logger) *session.Store {
	store, err := session.Open(session.FilePersister{Path: cfg.SessionFile})
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.SessionFile).Msg("session not restored")
	}
	return store
}

func provideClient(cfg config.Config, sess *session.Store, logger zerolog.Logger) (*royale.Client, error) {
	client, err := royale.NewClient(cfg.APIBaseURL, sess, royale.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}
	return client, nil
}

func provideStore() *state.Store {
	return &state.Store{}
}

func provideLoader(client *royale.Client, logger zerolog.Logger) *dashboard.Loader {
	return dashboard.NewLoader(client, logger)
}
