package hero

import (
	"time"

	"github.com/faiface/pixel"
)

const (
	DefaultCols = 25
	DefaultRows = 19

	DefaultWidth  = 960
	DefaultHeight = 540

	// Fraction of the remaining distance the dot covers each frame
	DefaultSpeed = 0.08
	// Distance in pixels, per axis, at which the dot counts as arrived
	DefaultTolerance = 0.5

	DefaultResizeDebounce = 150 * time.Millisecond
)

const (
	wallThickness   = 2
	dotRadiusFactor = 0.32
	glowLayers      = 3
	glowSpread      = 4
)

var (
	BackgroundColor = rgb(13, 17, 23)
	WallColor       = rgb(88, 166, 255).Mul(pixel.Alpha(0.28))
	DotColor        = rgb(88, 166, 255).Mul(pixel.Alpha(0.9))
	DotGlowColor    = rgb(88, 166, 255).Mul(pixel.Alpha(0.35))
)

func rgb(r, g, b uint8) pixel.RGBA {
	return pixel.RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}
