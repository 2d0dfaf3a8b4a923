package cmd

import (
	"github.com/frizadiga/textify/pkg/logging"
	"github.com/frizadiga/textify/pkg/textify"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cfg textify.Config

// RootCmd is the base command; running it without a subcommand performs the
// conversion.
var RootCmd = &cobra.Command{
	Use:   "textify [path]",
	Short: "Convert a local Git repository to a single text file",
	Long: `Textify walks a local repository, filters out binary and oversized files,
and concatenates the remaining file contents into one labeled text file,
suitable for feeding a whole codebase to an LLM.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Setup(cfg.Debug)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// A positional path takes precedence over --path, matching the
		// original CLI surface.
		if len(args) == 1 {
			cfg.Path = args[0]
		}

		logger := logging.Logger
		if err := textify.Run(cfg, logger); err != nil {
			logger.Error("textify execution failed", zap.Error(err))
			return err
		}
		return nil
	},
}

// Execute runs the root command and returns any fatal error.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Flags().StringVar(&cfg.Path, "path", ".", "Path to the repository (defaults to the current directory)")
	RootCmd.Flags().StringVarP(&cfg.Output, "output", "o", "", "Output file path (defaults to <repo>.textify.txt)")
	RootCmd.Flags().Float64VarP(&cfg.ThresholdMB, "threshold", "t", textify.DefaultThresholdMB, "File size threshold in MB; larger files are excluded")
	RootCmd.Flags().BoolVar(&cfg.IncludeAll, "include-all", false, "Include all files regardless of size or type")
	RootCmd.Flags().BoolVar(&cfg.Debug, "debug", false, "Enable debug mode with verbose logging")
	RootCmd.Flags().BoolVar(&cfg.Profile, "profile", false, "Log per-stage timing information")
}
