package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "wlproxygen",
	Short: "Generate proxy Object types from a Wayland protocol AST",
	Long: `wlproxygen reads a JSON-deserialized protocol AST (the output of an
XML-to-JSON step this tool does not itself perform) and emits one Go
source file per interface, matching the hand-written shape package
protocol carries: a concrete Object type, opcode/since constants,
enum types, and a HandleRequest/HandleEvent pair.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		zerolog.SetGlobalLevel(level)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(generateCmd)
}
