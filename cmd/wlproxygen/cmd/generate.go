package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/wl-proxy/codegen"
)

var (
	protocolPath string
	outDir       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one Go file per interface from a protocol AST",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&protocolPath, "protocol", "", "path to a protocol AST JSON file (required)")
	generateCmd.Flags().StringVar(&outDir, "out", ".", "directory to write generated .go files into")
	generateCmd.MarkFlagRequired("protocol")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	f, err := os.Open(protocolPath)
	if err != nil {
		return fmt.Errorf("wlproxygen: open %s: %w", protocolPath, err)
	}
	defer f.Close()

	proto, err := codegen.LoadProtocol(f)
	if err != nil {
		return fmt.Errorf("wlproxygen: load protocol: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("wlproxygen: mkdir %s: %w", outDir, err)
	}

	for _, iface := range proto.Interfaces {
		src, err := codegen.GenerateInterface(iface)
		if err != nil {
			return fmt.Errorf("wlproxygen: generate %s: %w", iface.Name, err)
		}
		outPath := filepath.Join(outDir, iface.Name+".go")
		if err := os.WriteFile(outPath, src, 0o644); err != nil {
			return fmt.Errorf("wlproxygen: write %s: %w", outPath, err)
		}
		logger.Info().Str("interface", iface.Name).Str("path", outPath).Msg("generated")
	}

	logger.Info().Int("count", len(proto.Interfaces)).Str("protocol", proto.Name).Msg("generation complete")
	return nil
}
