package renderer

import (
	"math"
	"runtime"
	"sync"

	"voxtrace/core"
	remath "voxtrace/math"
	"voxtrace/scene"
	"voxtrace/shade"
)

// FOV is the fixed vertical field of view in radians, shared with the
// editor's mouse-ray picking so clicks land on what's on screen.
const FOV = math.Pi / 3

// band is one worker's disjoint row range [yStart, yEnd).
type band struct {
	yStart, yEnd int
}

// Render fills fb by tiling its rows across a worker pool: each worker
// drains bands from a channel, ray-traces its rows into a private local
// buffer, then the band and buffer are sent back for the main thread to
// blit — workers never write into fb directly, so there is no shared
// mutable state to guard. Grounded on gazed-vu/eg/rt.go's channel +
// sync.WaitGroup worker pool.
func Render(fb *Framebuffer, sc *shade.Scene, cam *scene.Camera) {
	width, height := fb.Width, fb.Height
	aspect := float32(width) / float32(height)
	perspectiveScale := float32(math.Tan(FOV / 2))

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 4
	}
	bandHeight := (height + workers - 1) / workers

	type result struct {
		b    band
		cols []core.Color
	}

	bands := make(chan band, workers)
	results := make(chan result, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range bands {
				rows := b.yEnd - b.yStart
				local := make([]core.Color, rows*width)
				for y := b.yStart; y < b.yEnd; y++ {
					for x := 0; x < width; x++ {
						dir := primaryRayDirection(x, y, width, height, aspect, perspectiveScale, cam)
						local[(y-b.yStart)*width+x] = sc.Cast(cam.Eye, dir, 0)
					}
				}
				results <- result{b: b, cols: local}
			}
		}()
	}

	for y0 := 0; y0 < height; y0 += bandHeight {
		y1 := y0 + bandHeight
		if y1 > height {
			y1 = height
		}
		bands <- band{yStart: y0, yEnd: y1}
	}
	close(bands)

	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		rows := r.b.yEnd - r.b.yStart
		for y := 0; y < rows; y++ {
			for x := 0; x < width; x++ {
				fb.Set(x, r.b.yStart+y, r.cols[y*width+x])
			}
		}
	}
}

// primaryRayDirection computes the world-space primary ray direction for
// pixel (fx,fy), per the camera's basis change of a view-space direction.
func primaryRayDirection(fx, fy, width, height int, aspect, perspectiveScale float32, cam *scene.Camera) remath.Vec3 {
	sx := (2*float32(fx)/float32(width) - 1) * aspect * perspectiveScale
	sy := (1 - 2*float32(fy)/float32(height)) * perspectiveScale

	v := remath.Vec3{X: sx, Y: sy, Z: -1}.Normalize()

	return cam.Right.Mul(v.X).Add(cam.Up.Mul(v.Y)).Sub(cam.Forward.Mul(v.Z))
}
