package squaregrid

import (
	"log/slog"

	"github.com/gogpu/squaregrid/dispatch"
	"github.com/gogpu/squaregrid/surface"
)

// Grid defaults.
const (
	// MinCellSize is the smallest cell size in pixels. Smaller sizes are raised to it.
	MinCellSize = 5

	// DefaultCellSize is the cell size used by NewDefault.
	DefaultCellSize = 10

	// DefaultRows is the number of rows used by NewDefault.
	DefaultRows = 50

	// DefaultColumns is the number of columns used by NewDefault.
	DefaultColumns = 50

	// MaxSurfaceSize is the largest surface width or height in pixels.
	MaxSurfaceSize = 1 << 14
)

// Option configures a Grid during creation.
//
// Example:
//
//	g, err := squaregrid.New(20, 30, 12,
//	    squaregrid.WithDefaultColor(squaregrid.White),
//	    squaregrid.WithGridColor(squaregrid.Hex("#ccc")),
//	    squaregrid.WithAlwaysDrawGrid(true),
//	)
type Option func(*options)

// options holds optional configuration for Grid creation.
type options struct {
	defaultColor    Color
	gridColor       OptionalColor
	alwaysDrawGrid  bool
	automaticRedraw bool
	dispatcher      dispatch.Dispatcher
	newSurface      surface.Factory
	logger          *slog.Logger
}

// defaultOptions returns the default grid options.
func defaultOptions() options {
	return options{
		defaultColor:    Black,
		gridColor:       Some(Gray),
		automaticRedraw: true,
		dispatcher:      dispatch.Immediate{},
		newSurface:      surface.NewImage,
	}
}

// WithDefaultColor sets the color of cells that have no color of their own.
func WithDefaultColor(c Color) Option {
	return func(o *options) {
		o.defaultColor = c
	}
}

// WithGridColor sets the color of the lines drawn around cells.
func WithGridColor(c Color) Option {
	return func(o *options) {
		o.gridColor = Some(c)
	}
}

// WithoutGridLines disables grid lines.
func WithoutGridLines() Option {
	return func(o *options) {
		o.gridColor = NoColor
	}
}

// WithAlwaysDrawGrid sets whether empty cells are bordered too.
func WithAlwaysDrawGrid(b bool) Option {
	return func(o *options) {
		o.alwaysDrawGrid = b
	}
}

// WithAutomaticRedraw sets whether changing a cell redraws it immediately.
// When off, cell changes show up on the next full redraw.
func WithAutomaticRedraw(b bool) Option {
	return func(o *options) {
		o.automaticRedraw = b
	}
}

// WithDispatcher sets the render context all drawing runs on.
// Nil keeps the default dispatch.Immediate.
func WithDispatcher(d dispatch.Dispatcher) Option {
	return func(o *options) {
		if d != nil {
			o.dispatcher = d
		}
	}
}

// WithSurface sets the factory used to create the grid's surface.
// Nil keeps the default surface.NewImage.
func WithSurface(f surface.Factory) Option {
	return func(o *options) {
		if f != nil {
			o.newSurface = f
		}
	}
}

// WithLogger sets a logger for this grid, overriding the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
