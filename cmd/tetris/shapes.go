package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print every piece and rotation",
	Long:  `Shows the seven pieces in generation order with each rotation frame.`,
	Run:   runShapes,
}

var shapeColors = map[string]lipgloss.Color{
	"S": "10",
	"Z": "9",
	"I": "14",
	"O": "11",
	"J": "208",
	"L": "12",
	"T": "5",
}

func runShapes(cmd *cobra.Command, args []string) {
	logger, closeLog := commandLogger()
	defer closeLog()
	logger.Debug("printing catalog", "shapes", len(tetris.Catalog))

	frameStyle := lipgloss.NewStyle().MarginRight(2)

	for _, shape := range tetris.Catalog {
		block := lipgloss.NewStyle().Foreground(shapeColors[shape.Name])
		fmt.Printf("%s (%s, %d rotations)\n", shape.Name, shape.Color, shape.FrameCount())

		frames := make([]string, 0, shape.FrameCount())
		for _, f := range shape.Frames {
			var sb strings.Builder
			for i, line := range f {
				if i > 0 {
					sb.WriteRune('\n')
				}
				for _, ch := range line {
					if ch == '0' {
						sb.WriteString(block.Render("██"))
					} else {
						sb.WriteString(" ·")
					}
				}
			}
			frames = append(frames, frameStyle.Render(sb.String()))
		}
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, frames...))
		fmt.Println()
	}
}
