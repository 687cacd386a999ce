package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-slidemacro/internal/prompt"
	"github.com/goliatone/go-slidemacro/pkg/config"
	"github.com/goliatone/go-slidemacro/pkg/macro"
	"github.com/goliatone/go-slidemacro/pkg/render/template/gotemplate"
)

type app struct {
	v          *viper.Viper
	configPath string
	cfg        config.Config
	logger     zerolog.Logger
	driver     prompt.Driver
}

func newApp() *app {
	return &app{
		v:      config.New(),
		logger: zerolog.Nop(),
		driver: prompt.NewSurveyDriver(),
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "slidemacro",
		Short:         "Expand remark slide macros and filter pandoc slide decks",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./slidemacro.yaml)")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))

	root.AddCommand(
		newExpandCommand(a),
		newRenderCommand(a),
		newListCommand(a),
		newFilterCommand(a),
		newMetaCommand(a),
		newPagesCommand(a),
		newThemesCommand(a),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	logger, err := cfg.Log.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger.With().Str("cmd", cmd.Name()).Logger()
	return nil
}

func (a *app) registry() (*macro.Registry, error) {
	engine, err := gotemplate.New()
	if err != nil {
		return nil, fmt.Errorf("template engine: %w", err)
	}
	return a.cfg.Registry(engine)
}
