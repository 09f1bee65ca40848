package app

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/heromaze/hero"
)

const title = "heromaze"

// Main runs the animation window on the main thread, as pixelgl requires,
// and returns once it is closed
func Main(config hero.Config) error {
	var runErr error
	pixelgl.Run(func() {
		runErr = Run(config)
	})
	return runErr
}

// Run opens a window and animates a maze in it until the window is closed.
// It must be called from within pixelgl.Run.
func Run(config hero.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	cfg := pixelgl.WindowConfig{
		Title:     title,
		Bounds:    pixel.R(0, 0, config.Width, config.Height),
		Resizable: true,
		VSync:     true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Destroy()

	log := logrus.WithField("component", "app")

	frameQueue := hero.NewFrameQueue()
	widget := hero.NewWidget(config, frameQueue)
	painter := hero.NewPainter(config.Caption)

	size := win.Bounds().Size()
	if err := widget.Init(size.X, size.Y); err != nil {
		return err
	}
	debouncer := hero.NewDebouncer(config.ResizeDebounce, size)

	var (
		frames = 0
		second = time.Tick(time.Second)
	)

	for !win.Closed() {
		win.Update()

		now := time.Now()
		debouncer.Observe(win.Bounds().Size(), now)
		if settled, ready := debouncer.Ready(now); ready {
			widget.Resize(settled.X, settled.Y)
		}

		frameQueue.RunFrame()

		win.Clear(hero.BackgroundColor)
		painter.Paint(win, win.Bounds().H(), widget)

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", title, frames))
			frames = 0
		default:
		}

		// Regenerate with R
		if win.JustPressed(pixelgl.KeyR) {
			if err := widget.Regenerate(); err != nil {
				log.WithError(err).Error("Could not regenerate maze")
			}
		}

		// Save a snapshot with S
		if win.JustPressed(pixelgl.KeyS) {
			saveSnapshot(log, config.SnapshotDir, widget)
		}

		if win.JustPressed(pixelgl.KeyEscape) {
			win.SetClosed(true)
		}
	}

	log.WithField("frames", widget.Frames()).Info("Window closed")
	return nil
}

func saveSnapshot(log *logrus.Entry, dir string, widget *hero.Widget) {
	if dir == "" {
		log.Warn("No snapshot dir configured; not saving snapshot")
		return
	}

	path, err := hero.SaveSnapshot(dir, widget.Snapshot(), time.Now())
	if err != nil {
		log.WithError(err).Error("Could not save snapshot")
		return
	}
	log.WithField("path", path).Info("Saved snapshot")
}
