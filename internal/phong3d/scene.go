package phong3d

import "fmt"

// Camera: eye at the origin looking down -Z at the window [Left,Right]x[Bottom,Top] on z = -Near.
type Camera struct {
	Near, Left, Right, Bottom, Top Real
}

func DefaultCamera() Camera {
	return Camera{Near: 1, Left: -1, Right: 1, Bottom: -1, Top: 1}
}

// Scene is filled by a loader and read-only during rendering.
type Scene struct {
	Camera        Camera
	Width, Height int
	Background    RGB
	Ambient       RGB
	MaxBounces    int
	Shapes        []*Shape
	Lights        []Light
	Output        string
}

// NewScene returns an empty scene with the default camera, resolution, bounce budget and output.
func NewScene() *Scene {
	s := &Scene{
		Camera:     DefaultCamera(),
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		MaxBounces: MaxBounces,
		Output:     DefaultOutput,
	}
	return s
}

func (s *Scene) AddShape(sh *Shape) {
	s.Shapes = append(s.Shapes, sh)
}

func (s *Scene) AddLight(l Light) {
	s.Lights = append(s.Lights, l)
}

// Validate rejects scenes the renderer cannot map to pixels.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("resolution must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.MaxBounces < 0 {
		return fmt.Errorf("bounce budget must be >= 0, got %d", s.MaxBounces)
	}
	c := s.Camera
	if !(c.Right != c.Left && c.Top != c.Bottom && c.Near > 0) {
		return fmt.Errorf("degenerate camera window %+v", c)
	}
	DebugLog("Scene: %dx%d camera=%+v shapes=%d lights=%d bounces=%d", s.Width, s.Height, c, len(s.Shapes), len(s.Lights), s.MaxBounces)
	return nil
}
