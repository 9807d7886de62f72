package main

import (
	"errors"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/npillmayer/glide"
	"github.com/npillmayer/glide/config"
	"github.com/npillmayer/glide/glider"
	"github.com/npillmayer/glide/ground"
)

const (
	fovy         = 45 // degrees
	gridSlices   = 80 // grid covers ±40 units on the XY plane
	sphereRings  = 8
	sphereSlices = 8
	coneSides    = 16
	orbitSpeed   = 0.005 // radians per pixel of mouse drag
)

// window implements glider.Window with raylib.
type window struct {
	settings config.Window
	camera   rl.Camera3D
	scene    []*model
	open     bool
}

var _ glider.Window = &window{}

func newWindow(settings config.Window) *window {
	return &window{settings: settings}
}

func (w *window) Open() error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(w.settings.Width), int32(w.settings.Height), w.settings.Title)
	if !rl.IsWindowReady() {
		return errors.New("raylib window not ready")
	}
	w.open = true
	rl.SetTargetFPS(int32(w.settings.FPS))
	w.camera = rl.Camera3D{
		Position:   rl.NewVector3(0, 0, float32(w.settings.CameraDistance)),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       fovy,
		Projection: rl.CameraPerspective,
	}
	return nil
}

// Close closes the window, if open.
func (w *window) Close() {
	if w.open {
		rl.CloseWindow()
		w.open = false
	}
}

// Update draws the scene. Input events are polled at the end of drawing,
// so mouse queries following Update see the current frame.
func (w *window) Update() bool {
	if !w.open || rl.WindowShouldClose() {
		return false
	}
	w.orbit()
	rl.BeginDrawing()
	rl.ClearBackground(w.settings.Background)
	rl.BeginMode3D(w.camera)
	rl.PushMatrix()
	rl.Rotatef(90, 1, 0, 0) // DrawGrid draws onto XZ
	rl.DrawGrid(gridSlices, 1)
	rl.PopMatrix()
	for _, m := range w.scene {
		m.draw()
	}
	rl.EndMode3D()
	rl.EndDrawing()
	return true
}

// orbit turns the camera around its target while the right mouse button
// is dragged. Picking uses the same camera, so clicks stay on the plane.
func (w *window) orbit() {
	if !w.settings.Trackball || !rl.IsMouseButtonDown(rl.MouseButtonRight) {
		return
	}
	d := rl.GetMouseDelta()
	if d.X == 0 && d.Y == 0 {
		return
	}
	eye, up := glider.Orbit(fromRL(w.camera.Position), fromRL(w.camera.Target), fromRL(w.camera.Up),
		-float64(d.X)*orbitSpeed, -float64(d.Y)*orbitSpeed)
	w.camera.Position, w.camera.Up = toRL(eye), toRL(up)
}

func (w *window) Entry(m glider.Model) {
	if rm, ok := m.(*model); ok {
		w.scene = append(w.scene, rm)
	}
}

func (w *window) NewModel(s glider.Shape) glider.Model {
	return &model{shape: s, dir: glide.P(0, 0, -1)}
}

func (w *window) MouseButtonPressed(b glider.MouseButton) bool {
	switch b {
	case glider.MouseLeft:
		return rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	case glider.MouseRight:
		return rl.IsMouseButtonPressed(rl.MouseButtonRight)
	case glider.MouseMiddle:
		return rl.IsMouseButtonPressed(rl.MouseButtonMiddle)
	}
	return false
}

func (w *window) MousePosition() (float64, float64) {
	p := rl.GetMousePosition()
	return float64(p.X), float64(p.Y)
}

func (w *window) ProjectToPlane(x, y float64, plane ground.Plane) (glide.V3, error) {
	ray := rl.GetScreenToWorldRay(rl.NewVector2(float32(x), float32(y)), w.camera)
	return plane.Intersect(fromRL(ray.Position), fromRL(ray.Direction))
}

// --- Models -----------------------------------------------------------------

type model struct {
	shape glider.Shape
	pos   glide.V3
	dir   glide.V3 // unit vector; a cone points this way
}

func (m *model) Position() glide.V3 { return m.pos }
func (m *model) MoveTo(p glide.V3)  { m.pos = p }

func (m *model) SetOrientation(dir glide.V3) {
	if u, ok := glide.Unit(dir); ok {
		m.dir = u
	}
}

func (m *model) draw() {
	col := materialColor(m.shape.Material)
	switch m.shape.Kind {
	case glider.Cone:
		tip := m.pos.Add(m.dir.Mul(m.shape.Height))
		rl.DrawCylinderEx(toRL(m.pos), toRL(tip), float32(m.shape.Radius), 0, coneSides, col)
	default:
		rl.DrawSphereEx(toRL(m.pos), float32(m.shape.Radius), sphereRings, sphereSlices, col)
	}
}

func materialColor(mat glider.Material) color.RGBA {
	switch mat {
	case glider.Red:
		return rl.Red
	case glider.Green:
		return rl.Green
	}
	return rl.Yellow
}

func toRL(v glide.V3) rl.Vector3 {
	return rl.NewVector3(float32(v[0]), float32(v[1]), float32(v[2]))
}

func fromRL(v rl.Vector3) glide.V3 {
	return glide.P(float64(v.X), float64(v.Y), float64(v.Z))
}
