package phong3d

import (
	"fmt"
	"sort"
	"sync"
)

type Category uint8

const (
	CatHit         Category = iota // primary or reflected ray hit a shape
	CatMiss                        // ray left the scene
	CatShadowed                    // light blocked for a hit point
	CatReflected                   // reflection ray spawned
	CatBounceLimit                 // reflection budget exhausted
	CatDegenerate                  // hit normal could not be normalised
)

func (c Category) String() string {
	switch c {
	case CatHit:
		return "hit"
	case CatMiss:
		return "miss"
	case CatShadowed:
		return "shadowed"
	case CatReflected:
		return "reflected"
	case CatBounceLimit:
		return "bounce-limit"
	case CatDegenerate:
		return "degenerate"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

type RayLog struct {
	Category  Category
	Origin    Vector4
	Direction Vector4
	Point     Vector4 // hit point, if any
	Bounce    int     // bounces left when logged
}

// Only the first few rays of each category are kept; the rest are counted.
const rayLogKeep = 4

type RayLogCache struct {
	mu     sync.Mutex
	counts map[Category]int
	rays   map[Category][]RayLog
}

var cache = newRayLogCache()

func newRayLogCache() *RayLogCache {
	return &RayLogCache{
		counts: make(map[Category]int),
		rays:   make(map[Category][]RayLog),
	}
}

// logRay is a no-op unless Debug is set.
func logRay(category Category, origin, direction, point Vector4, bounce int) {
	if !Debug {
		return
	}
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.counts[category]++
	if len(cache.rays[category]) < rayLogKeep {
		cache.rays[category] = append(cache.rays[category], RayLog{
			Category:  category,
			Origin:    origin,
			Direction: direction,
			Point:     point,
			Bounce:    bounce,
		})
	}
}

func resetRayLog() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.counts = make(map[Category]int)
	cache.rays = make(map[Category][]RayLog)
}

func rayCount(c Category) int {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	return cache.counts[c]
}

func raysStats() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cats := make([]Category, 0, len(cache.counts))
	for k := range cache.counts {
		cats = append(cats, k)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	for _, k := range cats {
		fmt.Printf("Ray type %s: %d rays\n", k, cache.counts[k])
		for _, l := range cache.rays[k] {
			fmt.Printf("  bounce=%d origin=%+v dir=%+v point=%+v\n", l.Bounce, l.Origin, l.Direction, l.Point)
		}
	}
}
