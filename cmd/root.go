package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"encscan/internal/config"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "encscan",
		Short: "encscan - find lines with non-ASCII characters in " + targetFile,
		Long: "encscan detects the character encoding of " + targetFile + " in the current directory,\n" +
			"decodes it and lists every line holding a character outside 7-bit ASCII.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runScan,
	}

	root.SetHelpCommand(&cobra.Command{Hidden: true})
	root.PersistentFlags().String("config", "", "path to a TOML settings file")
	root.PersistentFlags().BoolP("verbose", "v", false, "log detection details to stderr")
	root.PersistentFlags().String("color", config.ColorAuto, "colorize output: auto, always or never")
	root.PersistentFlags().Bool("progress", false, "show a progress view on stderr while scanning")
	root.PersistentFlags().Bool("summary", false, "print a summary table after the report")

	root.AddCommand(newScanCmd())
	return root
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadSettings merges the optional config file with flags. A flag set on the
// command line wins over the file.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("progress") {
		cfg.Progress, _ = flags.GetBool("progress")
	}
	if flags.Changed("summary") {
		cfg.Summary, _ = flags.GetBool("summary")
	}

	return cfg, cfg.Validate()
}
