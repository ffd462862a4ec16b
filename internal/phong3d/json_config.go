package phong3d

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

type XYZ struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

type LightCfg struct {
	Name      string `json:"name"`
	Position  XYZ    `json:"position"`
	Intensity RGB    `json:"intensity"`
}

// Rotation in degrees for JSON (friendlier than radians).
type Rot3Deg struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

func (r Rot3Deg) Radians() Rot3 {
	const k = math.Pi / 180
	return Rot3{X: r.X * k, Y: r.Y * k, Z: r.Z * k}
}

type ShapeCfg struct {
	Kind     string  `json:"kind"` // sphere, cube, tetrahedron, polycube, dodecahedron, mesh
	Name     string  `json:"name"`
	Position XYZ     `json:"position"`
	Scale    XYZ     `json:"scale,omitempty"` // zero axes default to 1
	RotDeg   Rot3Deg `json:"rotDeg"`
	File     string  `json:"file,omitempty"` // glTF/GLB, mesh only

	Color  RGB  `json:"color"`
	Amb    Real `json:"amb"`
	Diff   Real `json:"diff"`
	Spec   Real `json:"spec"`
	Refl   Real `json:"refl"`
	Bright Real `json:"bright"`
}

type Config struct {
	Camera     *Camera    `json:"camera,omitempty"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Background RGB        `json:"background"`
	Ambient    RGB        `json:"ambient"`
	MaxBounces *int       `json:"maxBounces,omitempty"`
	Output     string     `json:"output,omitempty"`
	Lights     []LightCfg `json:"lights"`
	Shapes     []ShapeCfg `json:"shapes"`
}

// Build validates and constructs the runtime shape; baseDir resolves mesh files.
func (c ShapeCfg) Build(baseDir string) (*Shape, error) {
	sc := c.Scale
	if sc.X == 0 {
		sc.X = 1
	}
	if sc.Y == 0 {
		sc.Y = 1
	}
	if sc.Z == 0 {
		sc.Z = 1
	}
	pos := Point(c.Position.X, c.Position.Y, c.Position.Z)
	scale := Vec(sc.X, sc.Y, sc.Z)
	rot := c.RotDeg.Radians()
	lp := LightingProps{Color: c.Color, Amb: c.Amb, Diff: c.Diff, Spec: c.Spec, Refl: c.Refl, Bright: c.Bright}

	kind := strings.ToUpper(c.Kind)
	if kind == "MESH" {
		if c.File == "" {
			return nil, &GeometryError{Shape: c.Name, Err: fmt.Errorf("mesh needs a file")}
		}
		file := c.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(baseDir, file)
		}
		faces, err := LoadGLTFFaces(file)
		if err != nil {
			return nil, &GeometryError{Shape: c.Name, Err: err}
		}
		return NewMesh(c.Name, pos, scale, rot, lp, faces, false)
	}
	build, ok := solidBuilders[kind]
	if !ok {
		return nil, fmt.Errorf("shape %q: unknown kind %q", c.Name, c.Kind)
	}
	return build(c.Name, pos, scale, rot, lp)
}

// Scene builds the runtime scene, applying defaults.
func (cfg *Config) Scene(baseDir string) (*Scene, error) {
	s := NewScene()
	if cfg.Camera != nil {
		s.Camera = *cfg.Camera
	}
	if cfg.Width > 0 {
		s.Width = cfg.Width
	}
	if cfg.Height > 0 {
		s.Height = cfg.Height
	}
	if cfg.MaxBounces != nil {
		s.MaxBounces = *cfg.MaxBounces
	}
	if cfg.Output != "" {
		s.Output = cfg.Output
	}
	s.Background = cfg.Background
	s.Ambient = cfg.Ambient
	for _, lc := range cfg.Lights {
		s.AddLight(NewLight(lc.Name, Point(lc.Position.X, lc.Position.Y, lc.Position.Z), lc.Intensity))
	}
	for i, sc := range cfg.Shapes {
		sh, err := sc.Build(baseDir)
		if err != nil {
			return nil, fmt.Errorf("shapes[%d]: %w", i, err)
		}
		s.AddShape(sh)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	DebugLog("Loaded config from %s: %dx%d, %d lights, %d shapes", path, cfg.Width, cfg.Height, len(cfg.Lights), len(cfg.Shapes))
	return &cfg, nil
}

// LoadJSONScene reads a JSON scene file.
func LoadJSONScene(path string) (*Scene, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	s, err := cfg.Scene(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
