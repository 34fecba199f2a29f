package cmd

import (
	"fmt"

	"github.com/philipparndt/goeuclid/pkg/scene"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the coordinates and areas of the initial figure",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	s := scene.New()
	e, err := scene.BuildPythagoras(s)
	if err != nil {
		return err
	}
	s.FitBounds()

	fmt.Println("Elements I.47")
	fmt.Println("=============")

	fmt.Println("Points:")
	for _, p := range s.Points() {
		fmt.Printf("  %s  (%9.4f, %9.4f)  %s\n", p.Label, p.Pos.X, p.Pos.Y, p.Kind)
	}
	fmt.Println()

	fmt.Println("Squares:")
	for _, q := range s.Squares() {
		fmt.Printf("  %s  area %.6f\n", q.Key, q.Area())
	}
	fmt.Printf("  Residual: %.3e\n\n", e.Residual())

	b := s.Bounds()
	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: (%.4f, %.4f)\n", b.Min.X, b.Min.Y)
	fmt.Printf("  Max: (%.4f, %.4f)\n", b.Max.X, b.Max.Y)
	fmt.Printf("  Lines: %d  Triangles: %d\n", len(s.Lines()), len(s.Triangles()))
	return nil
}
