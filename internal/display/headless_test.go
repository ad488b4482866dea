//go:build headless

package display

import "testing"

func TestHeadlessSurface_DrawPointAndPresent(t *testing.T) {
	s, err := NewSurface(Config{Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("NewSurface returned error: %v", err)
	}
	hs := s.(*HeadlessSurface)
	hs.SetPixelColor(5, 6, 7)
	hs.DrawPoint(0, 0)
	hs.Present()

	if hs.PresentCount() != 1 {
		t.Fatalf("expected PresentCount 1, got %d", hs.PresentCount())
	}
	if hs.frameBuffer[0] != 5 || hs.frameBuffer[1] != 6 || hs.frameBuffer[2] != 7 {
		t.Fatalf("unexpected pixel: %v", hs.frameBuffer[:4])
	}
}

func TestHeadlessSurface_StartClose(t *testing.T) {
	s, _ := NewSurface(Config{Width: 2, Height: 2})
	if err := s.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}
