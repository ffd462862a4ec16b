package phong3d

type Real = float64

const (
	MaxBounces    = 3         // reflection bounce budget per primary ray
	MaxThreads    = 255       // upper bound accepted for -t
	ExtraSamples  = 8         // extra antialiasing samples enabled by -a
	SampleRadius  = 0.35      // distance of the extra samples from the pixel centre, in pixels
	CenterWeight  = 1.0       // weight of the pixel-centre sample
	ExtraWeight   = 0.7       // weight of every extra sample
	ShadowEps     = 1e-9      // shadow ray tMin
	ReflectEps    = 1e-7      // reflected ray tMin
	PrimaryTMin   = 1.0000001 // primary rays start just past the near plane (t=1)
	PivotEps      = 1e-12     // smallest accepted Gauss-Jordan pivot
	BoundsPad     = 1e-6      // slack added to cached world bounds
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultOutput = "output.ppm"
)
