package dino

import "github.com/tinygym/tinygym/internal/common"

const intensityMax = 255

// encodeFrame rasterizes the scene into a fresh single-channel
// intensity buffer of ScreenHeight*ScreenWidth bytes, row-major.
// Background is 0; the two-row ground band, the body and every live
// obstacle are written at max intensity. A fresh buffer is allocated
// per call so observations handed to callers never alias each other.
func encodeFrame(b body, obstacles []obstacle, cfg Config, geo geometry) []uint8 {
	buf := make([]uint8, cfg.ScreenWidth*cfg.ScreenHeight)

	fillRect(buf, cfg.ScreenWidth, cfg.ScreenHeight,
		0, cfg.ScreenWidth, geo.groundY, geo.groundY+2)

	fillRect(buf, cfg.ScreenWidth, cfg.ScreenHeight,
		geo.bodyX, geo.bodyX+geo.bodyW,
		int(b.y), int(b.y+float64(geo.bodyH)))

	for _, o := range obstacles {
		fillRect(buf, cfg.ScreenWidth, cfg.ScreenHeight,
			int(o.x), int(o.trailingEdge()),
			geo.groundY-geo.obsH, geo.groundY)
	}

	return buf
}

// fillRect writes max intensity into [x0,x1) x [y0,y1). Bounds are
// clamped to the buffer before writing: an unclamped negative row would
// index into an unrelated part of the buffer and corrupt the frame, so
// the clamp is a correctness requirement, not an optimization.
func fillRect(buf []uint8, w, h, x0, x1, y0, y1 int) {
	x0 = common.ClampInt(x0, 0, w)
	x1 = common.ClampInt(x1, 0, w)
	y0 = common.ClampInt(y0, 0, h)
	y1 = common.ClampInt(y1, 0, h)

	for y := y0; y < y1; y++ {
		row := buf[y*w : (y+1)*w]
		for x := x0; x < x1; x++ {
			row[x] = intensityMax
		}
	}
}
