package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/vitality/config"
	"github.com/katalvlaran/vitality/telemetry"
)

const version = "0.1.0"

// app carries what PersistentPreRunE resolved to the subcommands.
type app struct {
	stdout, stderr io.Writer

	cfgFile  string
	v        *viper.Viper
	cfg      config.Config
	log      *slog.Logger
	shutdown func(context.Context) error
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "vitality",
		Short:         "Closeness vitality of graph vertices",
		Long:          "vitality measures how much the Wiener index of a graph drops when each vertex is removed.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.shutdown == nil {
				return nil
			}
			return a.shutdown(context.WithoutCancel(cmd.Context()))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default .vitality.yaml)")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	pf.Bool("trace", false, "print OpenTelemetry spans to stderr")
	keyFlag(pf, "log-level", "log_level")
	keyFlag(pf, "log-format", "log_format")
	keyFlag(pf, "trace", "trace")

	root.AddCommand(newComputeCmd(a), newGenerateCmd(a))

	return root
}

// setup loads configuration, builds the logger and, if asked, the tracer.
func (a *app) setup(cmd *cobra.Command) error {
	v, err := config.New(a.cfgFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.v, a.cfg = v, cfg
	a.log = cfg.Logger(a.stderr)

	if cfg.Trace {
		a.shutdown, err = telemetry.Init(cmd.Context(), telemetry.Options{
			Service: "vitality",
			Version: version,
			Writer:  a.stderr,
		})
		if err != nil {
			return err
		}
	}
	a.log.Debug("configuration loaded", "config", v.ConfigFileUsed(), "parallelism", cfg.Parallelism, "weight", cfg.Weight)

	return nil
}

// configKey marks a flag as the command-line source of a config key.
const configKey = "config-key"

// keyFlag annotates flag name on fs with the config key it sets.
func keyFlag(fs *pflag.FlagSet, name, key string) {
	_ = fs.SetAnnotation(name, configKey, []string{key})
}

// bindFlags binds every annotated flag of fs to its config key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		keys := f.Annotations[configKey]
		if err != nil || len(keys) == 0 {
			return
		}
		err = v.BindPFlag(keys[0], f)
	})

	return err
}
