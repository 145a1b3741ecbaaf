package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// version is the release version, overridable via ldflags.
var version = "1.0.0"

// SetVersion overrides the version shown by --version; main injects the
// build-time value.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the alquilerdocs CLI and returns an error if any command
// fails.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "alquilerdocs",
		Short:        "Genera contratos de alquiler y anuncios de habitaciones",
		Long:         "alquilerdocs renders Spanish room-rental contracts and listing flyers as PDF or DOCX from JSON data files.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the configuration file")

	root.AddCommand(newContractCmd(&configPath))
	root.AddCommand(newListingCmd(&configPath))

	return root.ExecuteContext(ctx)
}
