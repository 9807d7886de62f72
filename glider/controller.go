/*
Package glider drives a model along a two-segment Bézier motion path.

The user clicks six anchor points onto a ground plane. Once the sixth point
is placed, a Controller builds the motion path and, from then on, moves and
orients a glider model along it in every frame.

Windowing, picking and rendering are not part of this package. They are
reached through the Window and Model interfaces, so the interaction can be
driven headlessly, with scripted clicks and scripted clock values.

The usual pattern looks like this:

	ctrl := glider.New(win, glider.WithContinuity(bezier.G1))
	if err := ctrl.Run(); err != nil {
		…
	}

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package glider

import (
	"errors"
	"fmt"
	"time"

	"github.com/npillmayer/glide"
	"github.com/npillmayer/glide/bezier"
	"github.com/npillmayer/glide/ground"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glider'
func tracer() tracing.Trace {
	return tracing.Select("glider")
}

// ErrNotStarted indicates a frame on a controller whose window is not open.
var ErrNotStarted = errors.New("controller has not been started")

// State is the interaction state of a Controller.
type State int8

const (
	// Collecting anchors, less than six placed.
	Collecting State = iota
	// Ready is entered once, in the frame the sixth anchor is placed. The
	// glider starts moving in this frame already.
	Ready
	// Animating the glider in every following frame.
	Animating
)

func (s State) String() string {
	switch s {
	case Collecting:
		return "collecting"
	case Ready:
		return "ready"
	case Animating:
		return "animating"
	}
	return fmt.Sprintf("<state %d>", int(s))
}

// Controller owns the interaction state: anchors, markers, the motion path
// and the glider model. It is not safe for concurrent use; all calls are
// expected from the window's frame loop.
type Controller struct {
	win      Window
	mode     bezier.Continuity
	boundary bezier.TangentBoundary
	clock    Clock
	now      func() time.Time
	stage    ground.Stage
	shapes   Shapes
	state    State
	started  bool
	anchors  []glide.V3
	markers  []Model
	joint    Model
	glider   Model
	path     *bezier.Path
}

// Option configures a Controller.
type Option func(*Controller)

// WithContinuity sets the continuity at the joint of the two segments.
func WithContinuity(mode bezier.Continuity) Option {
	return func(c *Controller) { c.mode = mode }
}

// WithTangentBoundary sets the finite difference policy near segment ends.
func WithTangentBoundary(b bezier.TangentBoundary) Option {
	return func(c *Controller) { c.boundary = b }
}

// WithClock sets the clock mapping frame time to the path parameter.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithNow replaces time.Now as time source for Run.
func WithNow(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithStage sets the plane clicks are projected onto and the area of it
// where they are accepted.
func WithStage(stage ground.Stage) Option {
	return func(c *Controller) { c.stage = stage }
}

// WithPlane sets the plane clicks are projected onto, accepting picks
// anywhere on it.
func WithPlane(plane ground.Plane) Option {
	return func(c *Controller) { c.stage = ground.NewStage(plane) }
}

// WithShapes sets the shapes of anchor, joint and glider models.
func WithShapes(shapes Shapes) Option {
	return func(c *Controller) { c.shapes = shapes }
}

// New creates a controller for a window. Without options it uses C1
// continuity, the wall clock and the unbounded XY plane.
func New(win Window, opts ...Option) *Controller {
	c := &Controller{
		win:     win,
		mode:    bezier.C1,
		clock:   WallClock{},
		now:     time.Now,
		stage:   ground.NewStage(ground.XY),
		shapes:  DefaultShapes,
		anchors: make([]glide.V3, 0, bezier.AnchorCount),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current interaction state.
func (c *Controller) State() State {
	return c.state
}

// Anchors returns a copy of the anchors placed so far, in click order.
func (c *Controller) Anchors() []glide.V3 {
	a := make([]glide.V3, len(c.anchors))
	copy(a, c.anchors)
	return a
}

// Path returns the motion path, or nil while collecting anchors.
func (c *Controller) Path() *bezier.Path {
	return c.path
}

// Markers returns the anchor markers entered into the scene so far.
func (c *Controller) Markers() []Model {
	return c.markers
}

// Joint returns the marker of the derived joint point, nil while
// collecting anchors.
func (c *Controller) Joint() Model {
	return c.joint
}

// Glider returns the model moving along the path, nil before Start.
func (c *Controller) Glider() Model {
	return c.glider
}

// Start opens the window and enters the glider model into the scene.
func (c *Controller) Start() error {
	if c.started {
		return nil
	}
	if err := c.win.Open(); err != nil {
		return fmt.Errorf("cannot open window: %w", err)
	}
	c.glider = c.win.NewModel(c.shapes.Glider)
	c.win.Entry(c.glider)
	c.started = true
	tracer().Infof("started, %s continuity, %s tangents", c.mode, c.boundary)
	return nil
}

// Run starts the controller and loops over frames until the window is
// closed. An error in a frame ends the loop.
func (c *Controller) Run() error {
	if err := c.Start(); err != nil {
		return err
	}
	for c.win.Update() {
		if err := c.Frame(c.now()); err != nil {
			return err
		}
	}
	tracer().Infof("window closed")
	return nil
}

// Frame performs one step of the interaction, for a frame rendered at time
// now. It is called after the window has been updated.
func (c *Controller) Frame(now time.Time) error {
	if !c.started {
		return ErrNotStarted
	}
	switch c.state {
	case Collecting:
		c.collect()
		if len(c.anchors) < bezier.AnchorCount {
			return nil
		}
		if err := c.buildPath(); err != nil {
			return err
		}
	case Ready:
		c.state = Animating
	}
	c.animate(now)
	return nil
}

// collect places an anchor if the left mouse button has been pressed.
func (c *Controller) collect() {
	if len(c.anchors) >= bezier.AnchorCount || !c.win.MouseButtonPressed(MouseLeft) {
		return
	}
	x, y := c.win.MousePosition()
	p, err := c.win.ProjectToPlane(x, y, c.stage.Plane())
	if err != nil {
		tracer().Infof("ignoring click at (%g,%g): %v", x, y, err)
		return
	}
	if !c.stage.Contains(p) {
		return
	}
	m := c.win.NewModel(c.shapes.Anchor)
	m.MoveTo(p)
	c.win.Entry(m)
	c.markers = append(c.markers, m)
	c.anchors = append(c.anchors, p)
	tracer().P("anchor", len(c.anchors)-1).Infof("placed at %s", glide.String(p))
}

// buildPath performs the transition Collecting → Ready.
func (c *Controller) buildPath() error {
	path, err := bezier.NewPath(c.anchors, c.mode)
	if err != nil {
		return fmt.Errorf("cannot build motion path: %w", err)
	}
	c.path = path.WithTangentBoundary(c.boundary)
	c.joint = c.win.NewModel(c.shapes.Joint)
	c.joint.MoveTo(path.Joint())
	c.win.Entry(c.joint)
	c.state = Ready
	tracer().Infof("ready, joint at %s", glide.String(path.Joint()))
	return nil
}

// animate moves the glider along the path.
func (c *Controller) animate(now time.Time) {
	t := c.clock.Param(now)
	pos := c.path.Position(t)
	tangent := c.path.Tangent(t)
	c.glider.MoveTo(pos)
	if _, ok := glide.Unit(tangent); ok {
		c.glider.SetOrientation(tangent)
	} else {
		tracer().Debugf("tangent vanishes at t=%.3f, keeping orientation", t)
	}
	tracer().Debugf("t=%.3f, glider at %s", t, glide.String(pos))
}
