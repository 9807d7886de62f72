package glider

import (
	"fmt"

	"github.com/npillmayer/glide"
	"github.com/npillmayer/glide/ground"
)

// Window is the capability set a windowing/rendering toolkit has to offer.
// A frame is one call to Update, followed by queries and model mutations.
type Window interface {
	// Open creates the window.
	Open() error
	// Update renders a frame. It returns false once the window is closed.
	Update() bool
	// Entry adds a model to the scene.
	Entry(Model)
	// NewModel creates a renderable model, not yet part of the scene.
	NewModel(Shape) Model
	// MouseButtonPressed is true if a button went down during the last frame.
	MouseButtonPressed(MouseButton) bool
	// MousePosition returns the mouse in screen coordinates.
	MousePosition() (float64, float64)
	// ProjectToPlane hit-tests a screen position against a plane in world space.
	ProjectToPlane(x, y float64, plane ground.Plane) (glide.V3, error)
}

// Model is a renderable with a mutable position and orientation.
type Model interface {
	Position() glide.V3
	MoveTo(glide.V3)
	SetOrientation(dir glide.V3) // orient the model along dir
}

// MouseButton identifies a mouse button.
type MouseButton int8

// Mouse buttons
const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// ShapeKind is the geometry of a model.
type ShapeKind int8

// Shapes the demo uses
const (
	Sphere ShapeKind = iota
	Cone
)

func (k ShapeKind) String() string {
	switch k {
	case Sphere:
		return "sphere"
	case Cone:
		return "cone"
	}
	return fmt.Sprintf("<shape %d>", int(k))
}

// Material is the surface color of a model.
type Material int8

// Materials the demo uses
const (
	Yellow Material = iota
	Red
	Green
)

func (m Material) String() string {
	switch m {
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	case Green:
		return "green"
	}
	return fmt.Sprintf("<material %d>", int(m))
}

// Shape describes a model to be created by a Window.
// Height is ignored for spheres.
type Shape struct {
	Kind     ShapeKind
	Radius   float64
	Height   float64
	Material Material
}

// Shapes collects the shapes for the three kinds of markers.
type Shapes struct {
	Anchor Shape // clicked points
	Joint  Shape // the derived joint point
	Glider Shape // the model moving along the path
}

// DefaultShapes are yellow anchors, a red joint and a green cone.
var DefaultShapes = Shapes{
	Anchor: Shape{Kind: Sphere, Radius: 1, Material: Yellow},
	Joint:  Shape{Kind: Sphere, Radius: 1, Material: Red},
	Glider: Shape{Kind: Cone, Radius: 1, Height: 2, Material: Green},
}
