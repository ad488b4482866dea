//go:build !headless

package display

import "testing"

func TestEbitenSurface_DrawPointWritesFrameBuffer(t *testing.T) {
	s, err := NewSurface(Config{Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("NewSurface returned error: %v", err)
	}
	es := s.(*EbitenSurface)
	es.SetPixelColor(10, 20, 30)
	es.DrawPoint(1, 2)

	off := (2*4 + 1) * 4
	if es.frameBuffer[off] != 10 || es.frameBuffer[off+1] != 20 || es.frameBuffer[off+2] != 30 {
		t.Fatalf("unexpected pixel at offset %d: %v", off, es.frameBuffer[off:off+4])
	}
}

func TestEbitenSurface_DrawPointOutOfBoundsIgnored(t *testing.T) {
	s, _ := NewSurface(Config{Width: 4, Height: 4})
	es := s.(*EbitenSurface)
	es.SetPixelColor(1, 2, 3)
	es.DrawPoint(-1, 0)
	es.DrawPoint(0, 100)
	for _, b := range es.frameBuffer {
		if b != 0 {
			t.Fatalf("expected untouched frame buffer, found %v", b)
		}
	}
}

func TestEbitenSurface_ClearToBlack(t *testing.T) {
	s, _ := NewSurface(Config{Width: 2, Height: 2})
	es := s.(*EbitenSurface)
	es.SetPixelColor(255, 255, 255)
	es.DrawPoint(0, 0)
	es.ClearToBlack()
	for _, b := range es.frameBuffer {
		if b != 0 {
			t.Fatalf("expected all-zero frame buffer after ClearToBlack")
		}
	}
}

func TestNewSurface_RejectsNonPositiveDimensions(t *testing.T) {
	if _, err := NewSurface(Config{Width: 0, Height: 10}); err == nil {
		t.Fatal("expected error for zero width")
	}
}
