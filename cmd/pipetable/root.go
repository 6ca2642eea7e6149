package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/pipetable"
	"github.com/iw2rmb/pipetable/internal/config"
	"github.com/iw2rmb/pipetable/internal/logger"
)

// rootOptions holds global flags and the configuration loaded from them.
type rootOptions struct {
	configPath string
	debug      bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "pipetable",
		Short: "Format and edit Markdown pipe tables",
		Long: `pipetable keeps Markdown pipe tables aligned.

  pipetable format [files...]   Format every table (stdin when no files)
  pipetable edit <file>         Edit a file with table-aware keys
  pipetable config              Print the effective configuration`,
		Version:      pipetable.Version(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&o.configPath, "config", "", "config file path (default ~/.config/pipetable/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newFormatCmd(o),
		newEditCmd(o),
		newConfigCmd(o),
		newVersionCmd(),
	)
	return rootCmd
}

// load reads the configuration and initializes the logger from it.
func (o *rootOptions) load() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	o.cfg = cfg

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if o.debug {
		level = logger.LevelDebug
	}
	logger.Init(level, cfg.Log.Path)
	logger.Debug("config loaded", "path", o.configPath, "format_type", cfg.FormatType)
	return nil
}
