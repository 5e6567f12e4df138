// Root command for the mazegen CLI.
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/akk228/maze/internal/paths"
	"github.com/akk228/maze/pkg/maze"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagJSON      bool
)

// cfg holds the configuration loaded by PersistentPreRunE so all
// subcommands can read defaults from it.
var cfg *viper.Viper

var rootCmd = &cobra.Command{
	Use:     "mazegen",
	Short:   "Mazegen generates rectangular character mazes",
	Version: maze.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		loaded, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > MAZEGEN_CONFIG_DIR env >
// platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
