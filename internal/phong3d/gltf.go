package phong3d

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
)

// LoadGLTFFaces reads every triangle of every triangle primitive reachable
// from the default scene and returns them as object-space vertex loops.
// Node transforms are baked in; winding is kept (CCW is front facing).
func LoadGLTFFaces(path string) ([][]Vector4, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	faces, err := facesFromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	DebugLog("Loaded %d triangles from %s", len(faces), path)
	return faces, nil
}

func facesFromDocument(doc *gltf.Document) ([][]Vector4, error) {
	var faces [][]Vector4
	add := func(meshIdx int, M mgl64.Mat4) error {
		if meshIdx < 0 || meshIdx >= len(doc.Meshes) {
			return fmt.Errorf("mesh index %d out of range", meshIdx)
		}
		m := doc.Meshes[meshIdx]
		tris, err := meshTriangles(doc, m, M)
		if err != nil {
			return fmt.Errorf("mesh %q: %w", m.Name, err)
		}
		faces = append(faces, tris...)
		return nil
	}

	if len(doc.Nodes) == 0 {
		// bare meshes, no scene graph
		for i := range doc.Meshes {
			if err := add(i, mgl64.Ident4()); err != nil {
				return nil, err
			}
		}
	} else {
		visited := make(map[int]bool, len(doc.Nodes))
		var walk func(idx int, parent mgl64.Mat4) error
		walk = func(idx int, parent mgl64.Mat4) error {
			if idx < 0 || idx >= len(doc.Nodes) {
				return fmt.Errorf("node index %d out of range", idx)
			}
			if visited[idx] {
				return fmt.Errorf("node %d visited twice (cycle or shared child)", idx)
			}
			visited[idx] = true
			n := doc.Nodes[idx]
			M := parent.Mul4(nodeMatrix(n))
			if n.Mesh != nil {
				if err := add(*n.Mesh, M); err != nil {
					return err
				}
			}
			for _, c := range n.Children {
				if err := walk(c, M); err != nil {
					return err
				}
			}
			return nil
		}
		for _, r := range rootNodes(doc) {
			if err := walk(r, mgl64.Ident4()); err != nil {
				return nil, err
			}
		}
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("no triangles found")
	}
	return faces, nil
}

// rootNodes prefers the document's default scene, then the first scene,
// then every node that is nobody's child.
func rootNodes(doc *gltf.Document) []int {
	if len(doc.Scenes) > 0 {
		s := 0
		if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
			s = *doc.Scene
		}
		return doc.Scenes[s].Nodes
	}
	child := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			child[c] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !child[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

// nodeMatrix is the node's local transform: its matrix when set, else T*R*S.
// Decoded nodes carry gltf.DefaultMatrix when no matrix was given, so that
// value also means "unset", as do zero rotation and scale.
func nodeMatrix(n *gltf.Node) mgl64.Mat4 {
	if n.Matrix != gltf.DefaultMatrix && n.Matrix != [16]float64{} {
		return mgl64.Mat4(n.Matrix)
	}
	t, r, s := n.Translation, n.Rotation, n.Scale
	if r == [4]float64{} {
		r[3] = 1
	}
	if s == [3]float64{} {
		s = [3]float64{1, 1, 1}
	}
	q := mgl64.Quat{W: r[3], V: mgl64.Vec3{r[0], r[1], r[2]}}
	return mgl64.Translate3D(t[0], t[1], t[2]).Mul4(q.Normalize().Mat4()).Mul4(mgl64.Scale3D(s[0], s[1], s[2]))
}

func meshTriangles(doc *gltf.Document, m *gltf.Mesh, M mgl64.Mat4) ([][]Vector4, error) {
	var tris [][]Vector4
	for pi, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			DebugLog("Skipping primitive %d of mesh %q: mode %v", pi, m.Name, prim.Mode)
			continue
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		pos, err := readPositions(doc, posIdx)
		if err != nil {
			return nil, fmt.Errorf("primitive %d positions: %w", pi, err)
		}
		world := make([]Vector4, len(pos))
		for i, p := range pos {
			v := M.Mul4x1(mgl64.Vec4{p[0], p[1], p[2], 1})
			world[i] = Point(v[0], v[1], v[2])
		}

		var idx []int
		if prim.Indices != nil {
			if idx, err = readIndices(doc, *prim.Indices); err != nil {
				return nil, fmt.Errorf("primitive %d indices: %w", pi, err)
			}
		} else {
			idx = make([]int, len(pos))
			for i := range idx {
				idx[i] = i
			}
		}
		for i := 0; i+2 < len(idx); i += 3 {
			a, b, c := idx[i], idx[i+1], idx[i+2]
			if a >= len(world) || b >= len(world) || c >= len(world) {
				return nil, fmt.Errorf("primitive %d: index out of range at triangle %d", pi, i/3)
			}
			tri := []Vector4{world[a], world[b], world[c]}
			// zero-area triangles cannot carry a plane
			if tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[1])).Len() == 0 {
				continue
			}
			tris = append(tris, tri)
		}
	}
	return tris, nil
}

// accessorBytes returns the buffer bytes, start offset and stride of an accessor.
func accessorBytes(doc *gltf.Document, a *gltf.Accessor, elemSize int) ([]byte, int, int, error) {
	if a.BufferView == nil {
		return nil, 0, 0, fmt.Errorf("accessor has no buffer view")
	}
	if *a.BufferView >= len(doc.BufferViews) {
		return nil, 0, 0, fmt.Errorf("buffer view %d out of range", *a.BufferView)
	}
	bv := doc.BufferViews[*a.BufferView]
	if bv.Buffer >= len(doc.Buffers) {
		return nil, 0, 0, fmt.Errorf("buffer %d out of range", bv.Buffer)
	}
	data := doc.Buffers[bv.Buffer].Data
	if data == nil {
		return nil, 0, 0, fmt.Errorf("buffer %d has no data", bv.Buffer)
	}
	start := bv.ByteOffset + a.ByteOffset
	stride := bv.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	if a.Count > 0 && start+(a.Count-1)*stride+elemSize > len(data) {
		return nil, 0, 0, fmt.Errorf("accessor overruns buffer (%d bytes)", len(data))
	}
	return data, start, stride, nil
}

func readPositions(doc *gltf.Document, idx int) ([][3]Real, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}
	a := doc.Accessors[idx]
	if a.Type != gltf.AccessorVec3 || a.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3, got %v/%v", a.Type, a.ComponentType)
	}
	data, start, stride, err := accessorBytes(doc, a, 12)
	if err != nil {
		return nil, err
	}
	out := make([][3]Real, a.Count)
	for i := range out {
		off := start + i*stride
		for j := 0; j < 3; j++ {
			out[i][j] = Real(math.Float32frombits(binary.LittleEndian.Uint32(data[off+4*j:])))
		}
	}
	return out, nil
}

func readIndices(doc *gltf.Document, idx int) ([]int, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}
	a := doc.Accessors[idx]
	if a.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR indices, got %v", a.Type)
	}
	var size int
	switch a.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unexpected index component type %v", a.ComponentType)
	}
	data, start, stride, err := accessorBytes(doc, a, size)
	if err != nil {
		return nil, err
	}
	out := make([]int, a.Count)
	for i := range out {
		off := start + i*stride
		switch size {
		case 1:
			out[i] = int(data[off])
		case 2:
			out[i] = int(binary.LittleEndian.Uint16(data[off:]))
		default:
			out[i] = int(binary.LittleEndian.Uint32(data[off:]))
		}
	}
	return out, nil
}
