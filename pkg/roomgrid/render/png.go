package render

import (
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/models"
)

var (
	fontOnce   sync.Once
	fontErr    error
	labelFace  font.Face
	headerFace font.Face
)

func loadFaces() {
	ft, err := truetype.Parse(goregular.TTF)
	if err != nil {
		fontErr = err
		return
	}
	labelFace = truetype.NewFace(ft, &truetype.Options{Size: 10})
	headerFace = truetype.NewFace(ft, &truetype.Options{Size: 12})
}

// WritePNG rasterizes the scene and encodes it as a PNG bitmap with the
// same geometry the SVG renderer uses.
func WritePNG(w io.Writer, scene models.Scene) error {
	fontOnce.Do(loadFaces)
	if fontErr != nil {
		return fontErr
	}

	dc := gg.NewContext(int(scene.Width), int(scene.Height))
	dc.SetHexColor("#ffffff")
	dc.Clear()

	dc.SetLineWidth(1)
	for _, gl := range scene.Gridlines {
		dc.SetHexColor("#dddddd")
		dc.DrawLine(scene.Gutter, gl.Y, scene.Width-8, gl.Y)
		dc.Stroke()
		dc.SetFontFace(labelFace)
		dc.SetHexColor("#555555")
		dc.DrawStringAnchored(gl.Label, scene.Gutter-8, gl.Y, 1, 0.35)
	}

	for _, col := range scene.Columns {
		dc.SetFontFace(headerFace)
		dc.SetHexColor("#222222")
		dc.DrawStringAnchored(col.Label, col.X+col.Width/2, scene.HeaderHeight/2, 0.5, 0.35)
		for _, b := range col.Blocks {
			dc.SetHexColor(b.Fill)
			dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
			dc.Fill()
			dc.SetHexColor(b.Border)
			dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
			dc.Stroke()

			dc.SetFontFace(labelFace)
			dc.SetHexColor("#1a1a1a")
			y := b.Y + 13
			for _, line := range b.Lines {
				if y > b.Y+b.Height-3 {
					break
				}
				dc.DrawString(line, b.X+4, y)
				y += lineHeight
			}
		}
	}

	return dc.EncodePNG(w)
}
