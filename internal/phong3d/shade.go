package phong3d

import "math"

// traceRay returns the color seen along origin + t*ray for t > tMin.
// bounces is the remaining reflection budget.
func traceRay(scene *Scene, O, D Vector4, tMin Real, bounces int) RGB {
	hit, ok := nearestHit(scene, O, D, tMin, math.Inf(1))
	if !ok {
		logRay(CatMiss, O, D, Vector4{}, bounces)
		// only rays straight from the camera see the background
		if bounces == scene.MaxBounces {
			return scene.Background
		}
		return Black
	}
	logRay(CatHit, O, D, hit.Point, bounces)

	lp := &hit.Shape.Lighting
	color := scene.Ambient.MulRGB(lp.Color).Mul(lp.Amb)

	N, err := hit.Normal.Normalize()
	if err != nil {
		logRay(CatDegenerate, O, D, hit.Point, bounces)
		DebugLogOnce("degenerate normal on shape %q: %v", hit.Shape.Name, err)
		return color
	}
	P := hit.Point

	for i := range scene.Lights {
		light := &scene.Lights[i]
		L := light.Pos.Sub(P).ForceVec()
		nl := N.Dot(L)
		if nl < 0 {
			continue
		}
		if occluded(scene, P, L, ShadowEps, 1) {
			logRay(CatShadowed, P, L, P, bounces)
			continue
		}
		color = color.Add(light.Intensity.MulRGB(lp.Color).Mul(nl / L.Len() * lp.Diff))

		if lp.Spec <= 0 {
			continue
		}
		R := reflect(L.Neg(), N)
		rd := -D.Dot(R)
		if rd > 0 {
			cos := rd / (D.Len() * R.Len())
			color = color.Add(light.Intensity.Mul(math.Pow(cos, lp.Bright) * lp.Spec))
		}
	}

	if bounces <= 0 {
		logRay(CatBounceLimit, O, D, P, bounces)
		return color
	}
	Dr := reflect(D, N).ForceVec()
	logRay(CatReflected, P, Dr, P, bounces)
	rc := traceRay(scene, P, Dr, ReflectEps, bounces-1)
	return color.Add(rc.Mul(lp.Refl))
}
