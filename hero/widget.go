package hero

import (
	"fmt"
	"math/rand"

	"github.com/faiface/pixel"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/heromaze/maze"
)

// Widget owns everything one animated maze needs: the maze itself, the route
// through it, where it sits on screen and the animation running along it.
type Widget struct {
	config    Config
	scheduler FrameScheduler
	log       *logrus.Entry

	rng  *rand.Rand
	seed int64

	grid     *maze.Grid
	path     maze.Path
	layout   Layout
	animator *Animator

	frame  FrameHandle
	frames uint64
}

func NewWidget(config Config, scheduler FrameScheduler) *Widget {
	return &Widget{
		config:    config,
		scheduler: scheduler,
		log:       logrus.WithField("component", "widget"),
	}
}

// Init builds the maze and its route from scratch, lays them out in a
// width x height viewport and starts the animation from the first path point
func (widget *Widget) Init(width, height float64) error {
	if err := widget.build(); err != nil {
		return err
	}

	widget.path = maze.SolvePath(widget.grid)
	widget.animator = NewAnimator(widget.path, widget.config.Speed, widget.config.Tolerance)
	widget.layout = ComputeLayout(widget.grid.Cols(), widget.grid.Rows(), width, height)
	widget.animator.Snap(widget.layout)

	widget.log.WithFields(logrus.Fields{
		"cols":     widget.grid.Cols(),
		"rows":     widget.grid.Rows(),
		"seed":     widget.seed,
		"pathHops": widget.path.Hops(),
	}).Info("Maze ready")

	widget.Start()
	return nil
}

func (widget *Widget) build() error {
	if widget.config.Snapshot != nil {
		grid, err := widget.config.Snapshot.Grid()
		if err != nil {
			return fmt.Errorf("loading maze from snapshot: %w", err)
		}
		widget.grid = grid
		widget.seed = widget.config.Snapshot.Seed
		widget.rng, _ = maze.NewRand(widget.seed)
		return nil
	}

	if widget.config.Cols < 1 || widget.config.Rows < 1 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, widget.config.Cols, widget.config.Rows)
	}

	widget.rng, widget.seed = maze.NewRand(widget.config.Seed)
	widget.grid = maze.NewGrid(widget.config.Cols, widget.config.Rows)
	maze.Generate(widget.grid, widget.rng)
	return nil
}

// Regenerate replaces the maze with a fresh one, seeded from the current one
func (widget *Widget) Regenerate() error {
	nextSeed := int64(0)
	if widget.rng != nil {
		for nextSeed == 0 {
			nextSeed = widget.rng.Int63()
		}
	}
	widget.config.Snapshot = nil
	widget.config.Seed = nextSeed
	return widget.Init(widget.layout.Width, widget.layout.Height)
}

// Start schedules the animation loop, replacing any loop already scheduled
func (widget *Widget) Start() {
	if widget.frame != 0 {
		widget.scheduler.CancelFrame(widget.frame)
	}
	widget.frame = widget.scheduler.RequestFrame(widget.tick)
}

func (widget *Widget) tick() {
	if widget.animator == nil {
		return
	}
	widget.animator.Step(widget.layout)
	widget.frames++
	widget.frame = widget.scheduler.RequestFrame(widget.tick)
}

// Resize lays the existing maze out in a new viewport. The maze, its path and
// the dot's progress along the path are left as they are.
func (widget *Widget) Resize(width, height float64) {
	if widget.grid == nil {
		return
	}

	widget.layout = ComputeLayout(widget.grid.Cols(), widget.grid.Rows(), width, height)
	widget.animator.Snap(widget.layout)

	widget.log.WithFields(logrus.Fields{
		"width":    width,
		"height":   height,
		"cellSize": widget.layout.CellSize,
	}).Debug("Viewport resized")
}

func (widget *Widget) Grid() *maze.Grid {
	return widget.grid
}

func (widget *Widget) Path() maze.Path {
	return widget.path
}

func (widget *Widget) Layout() Layout {
	return widget.layout
}

func (widget *Widget) Animator() *Animator {
	return widget.animator
}

func (widget *Widget) Seed() int64 {
	return widget.seed
}

// Frames returns the number of animation frames run so far
func (widget *Widget) Frames() uint64 {
	return widget.frames
}

// Dot returns the dot's position, in top-left-origin pixels
func (widget *Widget) Dot() pixel.Vec {
	if widget.animator == nil {
		return pixel.ZV
	}
	return widget.animator.Dot()
}

func (widget *Widget) Snapshot() *maze.Snapshot {
	if widget.grid == nil {
		return nil
	}
	return maze.TakeSnapshot(widget.grid, widget.seed)
}
