package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/goeuclid/internal/app"
	"github.com/philipparndt/goeuclid/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	width      int
	height     int
	fps        int
)

var rootCmd = &cobra.Command{
	Use:   "goeuclid",
	Short: "Interactive figure of Euclid's proof of the Pythagorean theorem",
	Long: `GoEuclid draws the figure of Euclid's Elements I.47 and keeps it
consistent while the vertices of the right triangle are dragged.

Hover a proof step in the side panel to highlight the parts it refers to.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return app.Run(cfg, configPath)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file, reloaded on change")
	rootCmd.Flags().IntVar(&width, "width", 0, "Window width in pixels")
	rootCmd.Flags().IntVar(&height, "height", 0, "Window height in pixels")
	rootCmd.Flags().IntVar(&fps, "fps", 0, "Target frame rate")
}

// loadConfig reads the config file and applies flags set on the command line
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("width") {
		cfg.Window.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Window.Height = height
	}
	if cmd.Flags().Changed("fps") {
		cfg.Window.FPS = fps
	}
	return cfg, cfg.Validate()
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
