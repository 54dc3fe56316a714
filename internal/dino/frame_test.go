package dino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFrame_Shape(t *testing.T) {
	cfg, geo := defaultGeo()
	buf := encodeFrame(body{y: float64(geo.groundY - geo.bodyH)}, nil, cfg, geo)
	require.Len(t, buf, cfg.ScreenWidth*cfg.ScreenHeight)
}

func TestEncodeFrame_GroundBand(t *testing.T) {
	cfg, geo := defaultGeo()
	buf := encodeFrame(body{y: 0}, nil, cfg, geo)

	for _, y := range []int{geo.groundY, geo.groundY + 1} {
		for x := 0; x < cfg.ScreenWidth; x++ {
			require.EqualValues(t, intensityMax, buf[y*cfg.ScreenWidth+x],
				"ground band missing at (%d,%d)", x, y)
		}
	}
	// Row above the band stays background except where the body sits.
	assert.EqualValues(t, 0, buf[(geo.groundY-1)*cfg.ScreenWidth])
}

func TestEncodeFrame_BodyRect(t *testing.T) {
	cfg, geo := defaultGeo()
	groundTop := float64(geo.groundY - geo.bodyH)
	buf := encodeFrame(body{y: groundTop}, nil, cfg, geo)

	top := int(groundTop)
	assert.EqualValues(t, intensityMax, buf[top*cfg.ScreenWidth+geo.bodyX])
	assert.EqualValues(t, intensityMax, buf[top*cfg.ScreenWidth+geo.bodyX+geo.bodyW-1])
	assert.EqualValues(t, 0, buf[top*cfg.ScreenWidth+geo.bodyX+geo.bodyW],
		"pixel right of the body should be background")
	assert.EqualValues(t, 0, buf[(top-1)*cfg.ScreenWidth+geo.bodyX],
		"pixel above the body should be background")
}

func TestEncodeFrame_ObstacleClampedAtLeftEdge(t *testing.T) {
	cfg, geo := defaultGeo()
	obstacles := []obstacle{{x: -2, width: 4}}

	// Must not panic, and only columns 0..1 are written.
	buf := encodeFrame(body{y: 0}, obstacles, cfg, geo)

	row := geo.groundY - 1
	assert.EqualValues(t, intensityMax, buf[row*cfg.ScreenWidth+0])
	assert.EqualValues(t, intensityMax, buf[row*cfg.ScreenWidth+1])
	assert.EqualValues(t, 0, buf[row*cfg.ScreenWidth+2])
}

func TestEncodeFrame_BodyAtTopEdgeNoWraparound(t *testing.T) {
	cfg, geo := defaultGeo()
	buf := encodeFrame(body{y: 0}, nil, cfg, geo)

	assert.EqualValues(t, intensityMax, buf[0*cfg.ScreenWidth+geo.bodyX],
		"body clamped at top should draw in row 0")
	// Bottom rows (below the ground band) must stay untouched; a
	// wraparound bug would paint them.
	lastRow := (cfg.ScreenHeight - 1) * cfg.ScreenWidth
	for x := 0; x < cfg.ScreenWidth; x++ {
		require.EqualValues(t, 0, buf[lastRow+x])
	}
}

func TestEncodeFrame_FreshBufferPerCall(t *testing.T) {
	cfg, geo := defaultGeo()
	a := encodeFrame(body{y: 0}, nil, cfg, geo)
	b := encodeFrame(body{y: 20}, nil, cfg, geo)

	assert.NotSame(t, &a[0], &b[0], "frames handed to callers must not alias")
}
