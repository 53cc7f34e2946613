// Package render draws composed timetable scenes as SVG documents and PNG
// bitmaps.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/models"
)

// lineHeight is the vertical spacing of block label lines, in pixels.
const lineHeight = 12

// WriteSVG renders the scene as an SVG document.
func WriteSVG(w io.Writer, scene models.Scene) {
	c := svg.New(w)
	c.Start(scene.Width, scene.Height)
	c.Rect(0, 0, scene.Width, scene.Height, "fill:#ffffff")

	for _, gl := range scene.Gridlines {
		c.Line(scene.Gutter, gl.Y, scene.Width-8, gl.Y, "stroke:#dddddd;stroke-width:1")
		c.Text(scene.Gutter-8, gl.Y+4, gl.Label, "font-family:sans-serif;font-size:11px;fill:#555555;text-anchor:end")
	}

	for _, col := range scene.Columns {
		c.Text(col.X+col.Width/2, scene.HeaderHeight-10, col.Label, "font-family:sans-serif;font-size:12px;fill:#222222;text-anchor:middle")
		for _, b := range col.Blocks {
			c.Rect(b.X, b.Y, b.Width, b.Height, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", b.Fill, b.Border))
			y := b.Y + 13
			for _, line := range b.Lines {
				// Clip labels that would spill past the block.
				if y > b.Y+b.Height-3 {
					break
				}
				c.Text(b.X+4, y, line, "font-family:sans-serif;font-size:10px;fill:#1a1a1a")
				y += lineHeight
			}
		}
	}

	c.End()
}
