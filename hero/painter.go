package hero

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const captionMargin = 8

// Painter draws a widget onto a pixel target
type Painter struct {
	imd     *imdraw.IMDraw
	caption *text.Text
	label   string
}

func NewPainter(caption string) *Painter {
	painter := &Painter{
		imd:   imdraw.New(nil),
		label: caption,
	}
	if caption != "" {
		atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
		painter.caption = text.New(pixel.ZV, atlas)
		painter.caption.Color = colornames.Lightsteelblue
	}
	return painter
}

// Paint draws widget onto target, which is viewportHeight pixels tall. The
// target's own height is used rather than the layout's, as the layout lags
// behind while a resize is being debounced. The caller clears the target
// beforehand.
func (painter *Painter) Paint(target pixel.Target, viewportHeight float64, widget *Widget) {
	layout := widget.Layout()
	if layout.Empty() || widget.Grid() == nil {
		return
	}

	imd := painter.imd
	imd.Clear()

	imd.Color = WallColor
	imd.EndShape = imdraw.SharpEndShape
	for _, segment := range WallSegments(widget.Grid(), layout) {
		imd.Push(ToScreen(segment.A, viewportHeight), ToScreen(segment.B, viewportHeight))
		imd.Line(wallThickness)
	}

	dot := ToScreen(widget.Dot(), viewportHeight)
	radius := layout.CellSize * dotRadiusFactor

	for i := glowLayers; i > 0; i-- {
		imd.Color = DotGlowColor.Mul(pixel.Alpha(1 / float64(i+1)))
		imd.Push(dot)
		imd.Circle(radius+float64(i*glowSpread), 0) // 0 = filled
	}

	imd.Color = DotColor
	imd.Push(dot)
	imd.Circle(radius, 0)

	imd.Draw(target)

	if painter.caption != nil {
		painter.drawCaption(target)
	}
}

// drawCaption writes the caption in the bottom-left corner of the window,
// over whatever part of the maze lies there
func (painter *Painter) drawCaption(target pixel.Target) {
	painter.caption.Orig = pixel.V(captionMargin, captionMargin)
	painter.caption.Clear()
	fmt.Fprint(painter.caption, painter.label)
	painter.caption.Draw(target, pixel.IM)
}
