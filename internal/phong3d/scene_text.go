package phong3d

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Text scene format, one directive per line; '#' starts a comment.
//
//	RES w h | NEAR v | LEFT v | RIGHT v | BOTTOM v | TOP v | BOUNCES n
//	BACK r g b | AMBIENT r g b | OUTPUT path
//	LIGHT name x y z r g b
//	SPHERE|CUBE|TETRAHEDRON|POLYCUBE|DODECAHEDRON name px py pz sx sy sz [rx [ry [rz]]] r g b amb diff spec refl bright
//	MESH name file.glb px py pz sx sy sz [rx [ry [rz]]] r g b amb diff spec refl bright
//
// Rotations are in radians. Mesh paths are relative to the scene file.

type solidBuilder func(name string, pos, scale Vector4, rot Rot3, lp LightingProps) (*Shape, error)

var solidBuilders = map[string]solidBuilder{
	"SPHERE":       NewSphere,
	"CUBE":         NewCube,
	"TETRAHEDRON":  NewTetrahedron,
	"POLYCUBE":     NewPolyCube,
	"DODECAHEDRON": NewDodecahedron,
}

// LoadTextScene reads a scene file in the token format.
func LoadTextScene(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ParseTextScene(f, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseTextScene parses the token format; baseDir resolves MESH file paths.
func ParseTextScene(r io.Reader, baseDir string) (*Scene, error) {
	s := NewScene()
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		if err := s.applyDirective(tokens, baseDir); err != nil {
			return nil, fmt.Errorf("line %d: %w", ln, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	DebugLog("Parsed text scene: %d shapes, %d lights", len(s.Shapes), len(s.Lights))
	return s, nil
}

func (s *Scene) applyDirective(tokens []string, baseDir string) error {
	key, args := strings.ToUpper(tokens[0]), tokens[1:]
	switch key {
	case "RES":
		v, err := parseInts(args, 2)
		if err != nil {
			return fmt.Errorf("RES: %w", err)
		}
		s.Width, s.Height = v[0], v[1]
	case "BOUNCES":
		v, err := parseInts(args, 1)
		if err != nil {
			return fmt.Errorf("BOUNCES: %w", err)
		}
		s.MaxBounces = v[0]
	case "NEAR", "LEFT", "RIGHT", "BOTTOM", "TOP":
		v, err := parseReals(args, 1)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		switch key {
		case "NEAR":
			s.Camera.Near = v[0]
		case "LEFT":
			s.Camera.Left = v[0]
		case "RIGHT":
			s.Camera.Right = v[0]
		case "BOTTOM":
			s.Camera.Bottom = v[0]
		case "TOP":
			s.Camera.Top = v[0]
		}
	case "BACK", "AMBIENT":
		v, err := parseReals(args, 3)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if key == "BACK" {
			s.Background = RGB{v[0], v[1], v[2]}
		} else {
			s.Ambient = RGB{v[0], v[1], v[2]}
		}
	case "OUTPUT":
		if len(args) != 1 {
			return fmt.Errorf("OUTPUT: expected 1 path, got %d tokens", len(args))
		}
		s.Output = args[0]
	case "LIGHT":
		if len(args) != 7 {
			return fmt.Errorf("LIGHT: expected name and 6 numbers, got %d tokens", len(args))
		}
		v, err := parseReals(args[1:], 6)
		if err != nil {
			return fmt.Errorf("LIGHT %s: %w", args[0], err)
		}
		s.AddLight(NewLight(args[0], Point(v[0], v[1], v[2]), RGB{v[3], v[4], v[5]}))
	case "MESH":
		if len(args) < 2 {
			return fmt.Errorf("MESH: expected name and file")
		}
		name, file := args[0], args[1]
		pos, scale, rot, lp, err := parseShapeFields(args[2:])
		if err != nil {
			return fmt.Errorf("MESH %s: %w", name, err)
		}
		if !filepath.IsAbs(file) {
			file = filepath.Join(baseDir, file)
		}
		faces, err := LoadGLTFFaces(file)
		if err != nil {
			return &GeometryError{Shape: name, Err: err}
		}
		sh, err := NewMesh(name, pos, scale, rot, lp, faces, false)
		if err != nil {
			return err
		}
		s.AddShape(sh)
	default:
		build, ok := solidBuilders[key]
		if !ok {
			return fmt.Errorf("unrecognized directive %q", tokens[0])
		}
		if len(args) < 1 {
			return fmt.Errorf("%s: missing name", key)
		}
		pos, scale, rot, lp, err := parseShapeFields(args[1:])
		if err != nil {
			return fmt.Errorf("%s %s: %w", key, args[0], err)
		}
		sh, err := build(args[0], pos, scale, rot, lp)
		if err != nil {
			return err
		}
		s.AddShape(sh)
	}
	return nil
}

// parseShapeFields reads px py pz sx sy sz [rx [ry [rz]]] r g b amb diff spec refl bright.
// The number of rotation angles is implied by the field count (14..17).
func parseShapeFields(args []string) (pos, scale Vector4, rot Rot3, lp LightingProps, err error) {
	n := len(args)
	if n < 14 || n > 17 {
		err = fmt.Errorf("expected 14 to 17 numbers, got %d", n)
		return
	}
	v, err := parseReals(args, n)
	if err != nil {
		return
	}
	pos = Point(v[0], v[1], v[2])
	scale = Vec(v[3], v[4], v[5])
	nrot := n - 14
	angles := [3]Real{}
	copy(angles[:], v[6:6+nrot])
	rot = Rot3{X: angles[0], Y: angles[1], Z: angles[2]}
	c := v[6+nrot:]
	lp = LightingProps{
		Color:  RGB{c[0], c[1], c[2]},
		Amb:    c[3],
		Diff:   c[4],
		Spec:   c[5],
		Refl:   c[6],
		Bright: c[7],
	}
	return
}

func parseReals(args []string, n int) ([]Real, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d numbers, got %d", n, len(args))
	}
	out := make([]Real, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", a)
		}
		out[i] = f
	}
	return out, nil
}

func parseInts(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d integers, got %d", n, len(args))
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("bad integer %q", a)
		}
		out[i] = v
	}
	return out, nil
}
