package cmd

import (
	"fmt"

	"github.com/philipparndt/goeuclid/internal/config"
	"github.com/philipparndt/goeuclid/pkg/drag"
	"github.com/philipparndt/goeuclid/pkg/export"
	"github.com/philipparndt/goeuclid/pkg/geometry"
	"github.com/philipparndt/goeuclid/pkg/plane"
	"github.com/philipparndt/goeuclid/pkg/render"
	"github.com/philipparndt/goeuclid/pkg/scene"
	"github.com/philipparndt/goeuclid/pkg/surface"
	"github.com/spf13/cobra"
)

var (
	exportWidth     int
	exportHeight    int
	exportB         float64
	exportC         float64
	exportHighlight []string
)

var exportCmd = &cobra.Command{
	Use:   "export <file.svg|file.png>",
	Short: "Render the figure to an SVG or PNG file",
	Long: `Render the figure without opening a window. The output format follows
the file extension.

Β and Γ can be placed with --b (u of Β) and --c (v of Γ). Proof steps are
highlighted with --highlight kind:target, for example --highlight poly:ΑΒΖΗ.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().IntVar(&exportWidth, "width", 1000, "Image width in pixels")
	exportCmd.Flags().IntVar(&exportHeight, "height", 800, "Image height in pixels")
	exportCmd.Flags().Float64Var(&exportB, "b", 1, "Horizontal position of Β")
	exportCmd.Flags().Float64Var(&exportC, "c", 1.5, "Vertical position of Γ")
	exportCmd.Flags().StringArrayVar(&exportHighlight, "highlight", nil, "Highlight token kind:target, repeatable")
	if err := exportCmd.RegisterFlagCompletionFunc("highlight", completeHighlight); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	theme, err := cfg.Theme.Resolve()
	if err != nil {
		return err
	}

	tokens := make([]scene.Token, 0, len(exportHighlight))
	for _, h := range exportHighlight {
		tok, err := scene.ParseToken(h)
		if err != nil {
			return err
		}
		tokens = append(tokens, tok)
	}

	s := scene.New()
	if _, err := scene.BuildPythagoras(s); err != nil {
		return fmt.Errorf("failed to build construction: %w", err)
	}
	s.FitBounds()

	mapper := plane.NewMapper(plane.FixedViewport{Width: float64(exportWidth), Height: float64(exportHeight)}, s.Bounds())
	controller := drag.NewController(s, mapper)
	if cmd.Flags().Changed("b") && !controller.Place(scene.LabelB, geometry.NewVector2(exportB, 0)) {
		fmt.Printf("Warning: Β not moved to %v\n", exportB)
	}
	if cmd.Flags().Changed("c") && !controller.Place(scene.LabelC, geometry.NewVector2(0, exportC)) {
		fmt.Printf("Warning: Γ not moved to %v\n", exportC)
	}

	store := surface.NewStore()
	loop := render.NewLoop(s, mapper, store)
	if err := loop.Tick(); err != nil {
		fmt.Printf("Warning: %v\n", err)
	}
	for _, tok := range tokens {
		render.Highlight(s, store, tok, true)
	}

	opts := export.Options{Width: exportWidth, Height: exportHeight, Theme: theme}
	if err := export.WriteFile(args[0], store, opts); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d shapes)\n", args[0], store.Len())
	return nil
}
