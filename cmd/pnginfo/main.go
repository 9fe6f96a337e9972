// Package main provides the CLI entry point for pnginfo.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/maxixo/dataworld/internal/config"
	"github.com/maxixo/dataworld/internal/logging"
	"github.com/maxixo/dataworld/pkg/pnginfo"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitOK         = 0
	exitFailure    = 1
	exitValidation = 2
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

// exitCode maps missing or invalid input to 2 and everything else to 1.
func exitCode(err error) int {
	if pnginfo.IsValidationError(err) {
		return exitValidation
	}
	return exitFailure
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		format    string
		verifyCRC bool
		logLevel  string
	)

	rootCmd := &cobra.Command{
		Use:   "pnginfo <image.png>",
		Short: "Print PNG dimensions and DPI",
		Long: `pnginfo reads the header of a PNG file and prints its width and height,
followed by the pixel density from the pHYs chunk when one is present.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := pnginfo.ParseFormat(format)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			settings := cfg.WithLogLevel(logLevel)
			logger := logging.NewLogger(logging.Options{
				Name:   "pnginfo",
				Level:  settings.LogLevel,
				JSON:   settings.JSONLog,
				Output: stderr,
			})

			info, err := pnginfo.InspectFile(args[0], pnginfo.Options{
				VerifyCRC: verifyCRC,
				Logger:    logger,
			})
			if err != nil {
				return err
			}

			return pnginfo.Render(stdout, info, outFormat)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().StringVarP(&format, "format", "f", string(pnginfo.FormatText), "Output format: text, json")
	rootCmd.Flags().BoolVar(&verifyCRC, "verify-crc", false, "Verify the CRC of every chunk read")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	return rootCmd
}
