// Package cmd is the command-line surface of the toolkit. Each subcommand
// loads its inputs, calls one stateless core operation, and renders the
// result; no state is carried between invocations.
package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Mochibw/PrimerPioneer/config"
)

var logger = log.New(os.Stderr)

var rootCmd = &cobra.Command{
	Use:   "primerpioneer",
	Short: "Design and virtually validate DNA cloning steps",
	Long: `Stateless tools for cloning design: scan a sequence for functional
motifs, design primer pairs, simulate PCR amplification, and simulate
multi-enzyme restriction digestion.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command; it is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("format", "", "output format: text | json")
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	cobra.OnInitialize(func() {
		if v, _ := rootCmd.PersistentFlags().GetBool("verbose"); v {
			logger.SetLevel(log.DebugLevel)
		}
	})
}

// loadConfig resolves the effective settings for one command run.
func loadConfig() config.Config {
	c, err := config.New()
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}
	if c.Format == "" {
		c.Format = "text"
	}
	return c
}
