// Command parcours runs the doctorate lifecycle engine.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"parcours/internal/platform/config"
	"parcours/internal/platform/logger"
)

var (
	configPath string

	cfg *config.Config
	log *slog.Logger
	zl  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "parcours",
	Short: "Doctorate lifecycle engine",
	Long: `parcours drives a doctorate from enrolment to proclamation: confirmation
paper, jury, private and public defences (or admissibility under formule 2)
and the distribution of the thesis.

Commands and queries are served over HTTP by "parcours serve".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		log, zl, err = logger.New(cfg.Log)
		if err != nil {
			return err
		}
		slog.SetDefault(log)
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if zl != nil {
			_ = zl.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration file")
	rootCmd.AddCommand(serveCmd, migrateCmd, tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
