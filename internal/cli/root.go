// SPDX-License-Identifier: Unlicense OR MIT

// Package cli implements the rectlayout command.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"rectlayout.org/internal/config"
	"rectlayout.org/internal/observability"
)

// Version is set at build time with -ldflags "-X rectlayout.org/internal/cli.Version=...".
var Version = "dev"

// app is the state shared by all subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
}

// NewRootCommand returns the rectlayout command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:           "rectlayout",
		Short:         "Lay out trees of rectangles and render them.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./rectlayout.yaml)")
	pf.StringSlice("size", nil, "viewport sizes as WIDTHxHEIGHT, repeatable")
	pf.Float32("px-per-dp", 1, "pixels per dp in scene values")
	pf.String("scene", "", "scene description (default is the demo scene)")
	pf.String("scene-file", "", "file holding the scene description")
	pf.String("log-level", "info", "log level")
	a.bind(pf.Lookup("size"), "layout.sizes")
	a.bind(pf.Lookup("px-per-dp"), "layout.px_per_dp")
	a.bind(pf.Lookup("scene"), "scene.source")
	a.bind(pf.Lookup("scene-file"), "scene.file")
	a.bind(pf.Lookup("log-level"), "logger.level")

	root.AddCommand(
		newRenderCommand(a),
		newDumpCommand(a),
		newBenchCommand(a),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := NewRootCommand().Execute()
	if err != nil {
		observability.GetLogger().Error("Command execution failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	observability.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func (a *app) bind(f *pflag.Flag, key string) {
	if err := a.v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

// setup reads the config file and the environment, then sets up
// logging. Flags are already bound.
func (a *app) setup() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName("rectlayout")
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix("RECTLAYOUT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	cfg, err := config.NewConfigFromViper(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	observability.InitializeLogger(cfg.Logger)
	a.log = observability.GetLogger()
	a.log.Debug("Configuration loaded", zap.String("config_file", a.v.ConfigFileUsed()), zap.Strings("sizes", cfg.Layout.Sizes))
	return nil
}
