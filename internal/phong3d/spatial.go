package phong3d

import "fmt"

// SpatialProps places a canonical object-space shape in the world.
// Model = T·Rz·Ry·Rx·S; its inverse and inverse-transpose are cached once.
type SpatialProps struct {
	Pos   Vector4 // point
	Scale Vector4 // per-axis scale (vector)
	Rot   Rot3    // radians

	Model     Mat4 // object -> world
	InvMatrix Mat4 // world -> object
	InvTransp Mat4 // object-space normals -> world space
}

func NewSpatialProps(pos, scale Vector4, rot Rot3) (SpatialProps, error) {
	if !(isFinite(scale.X) && isFinite(scale.Y) && isFinite(scale.Z)) || scale.X == 0 || scale.Y == 0 || scale.Z == 0 {
		return SpatialProps{}, fmt.Errorf("scale %+v: %w", scale, ErrSingularTransform)
	}
	model := TranslateM(pos.X, pos.Y, pos.Z).Mul(rotFromAngles(rot).Mul(ScaleM(scale.X, scale.Y, scale.Z)))
	inv, err := model.Inverse()
	if err != nil {
		return SpatialProps{}, err
	}
	return SpatialProps{
		Pos:       pos.ForcePoint(),
		Scale:     scale.ForceVec(),
		Rot:       rot,
		Model:     model,
		InvMatrix: inv,
		InvTransp: inv.Transpose(),
	}, nil
}

// toObject maps a world ray into object space.
func (sp *SpatialProps) toObject(origin, ray Vector4) (Vector4, Vector4) {
	return sp.InvMatrix.MulVec(origin), sp.InvMatrix.MulVec(ray)
}

// normalToWorld pushes an object-space normal through the inverse transpose.
func (sp *SpatialProps) normalToWorld(n Vector4) Vector4 {
	return sp.InvTransp.MulVec(n.ForceVec()).ForceVec()
}

// LightingProps are the Phong coefficients of a surface. No range validation.
type LightingProps struct {
	Color  RGB
	Amb    Real
	Diff   Real
	Spec   Real
	Refl   Real
	Bright Real
}

// Light is a point light.
type Light struct {
	Name      string
	Pos       Vector4
	Intensity RGB
}

func NewLight(name string, pos Vector4, intensity RGB) Light {
	l := Light{Name: name, Pos: pos.ForcePoint(), Intensity: intensity}
	DebugLog("Created light %+v", l)
	return l
}
