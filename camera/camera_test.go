package camera

import (
	"math"
	"testing"
)

func TestWorldScreenRoundTrip(t *testing.T) {
	c := New(800, 600, 1200, 900)
	c.SetZoom(2.0)
	c.Pan(40, -25)

	tests := []struct{ wx, wy float32 }{
		{0, 0},
		{600, 450},
		{1199, 899},
	}
	for _, tt := range tests {
		sx, sy := c.WorldToScreen(tt.wx, tt.wy)
		gx, gy := c.ScreenToWorld(sx, sy)
		if math.Abs(float64(gx-tt.wx)) > 0.01 || math.Abs(float64(gy-tt.wy)) > 0.01 {
			t.Errorf("round trip (%v,%v) -> (%v,%v)", tt.wx, tt.wy, gx, gy)
		}
	}
}

func TestCenterStartsAtWorldMiddle(t *testing.T) {
	c := New(800, 600, 1600, 1200)
	if c.X != 800 || c.Y != 600 {
		t.Errorf("center = (%v,%v), want (800,600)", c.X, c.Y)
	}
}

func TestZoomClamped(t *testing.T) {
	c := New(800, 600, 1600, 1200)

	c.SetZoom(100)
	if c.Zoom != c.MaxZoom {
		t.Errorf("Zoom = %v, want clamped to max %v", c.Zoom, c.MaxZoom)
	}

	c.SetZoom(0.001)
	if c.Zoom != c.MinZoom {
		t.Errorf("Zoom = %v, want clamped to min %v", c.Zoom, c.MinZoom)
	}
}

func TestPanStaysInsideWorld(t *testing.T) {
	c := New(800, 600, 1600, 1200)

	c.Pan(-1e6, -1e6)
	minX, minY, _, _ := c.VisibleWorldBounds()
	if minX < -0.5 || minY < -0.5 {
		t.Errorf("view escaped past origin: min=(%v,%v)", minX, minY)
	}

	c.Pan(1e6, 1e6)
	_, _, maxX, maxY := c.VisibleWorldBounds()
	if maxX > 1600.5 || maxY > 1200.5 {
		t.Errorf("view escaped past far edge: max=(%v,%v)", maxX, maxY)
	}
}

func TestSmallWorldCentered(t *testing.T) {
	// Viewport larger than the world: camera pins to the world center.
	c := New(800, 600, 400, 300)
	c.Pan(500, 500)
	if c.X != 200 || c.Y != 150 {
		t.Errorf("center = (%v,%v), want pinned (200,150)", c.X, c.Y)
	}
}

func TestIsVisible(t *testing.T) {
	c := New(800, 600, 1600, 1200)

	if !c.IsVisible(c.X, c.Y, 10) {
		t.Error("camera center not visible")
	}
	if c.IsVisible(c.X+5000, c.Y, 10) {
		t.Error("far point reported visible")
	}
}

func TestReset(t *testing.T) {
	c := New(800, 600, 1600, 1200)
	c.Pan(300, 200)
	c.SetZoom(3)

	c.Reset()
	if c.X != 800 || c.Y != 600 || c.Zoom != 1.0 {
		t.Errorf("after reset: center=(%v,%v) zoom=%v", c.X, c.Y, c.Zoom)
	}
}
