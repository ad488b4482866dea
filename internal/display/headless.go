//go:build headless

// headless.go - headless display surface for CI and testing
//
// (c) 2024 - 2026 Zayn Otley
// https://github.com/zaynotley/compositedecode
// License: GPLv3 or later

package display

import "sync"

// HeadlessSurface tracks pixel writes in memory without opening a window.
// Mirrors EbitenSurface's buffer semantics so builds with the headless tag
// get the same DrawPoint/Present contract without a window.
type HeadlessSurface struct {
	width, height int

	mu           sync.Mutex
	frameBuffer  []byte
	drawR        uint8
	drawG        uint8
	drawB        uint8
	started      bool
	presentCount uint64
}

func NewSurface(cfg Config) (Surface, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, &SurfaceError{Operation: "create", Details: "width and height must be positive"}
	}
	return &HeadlessSurface{
		width:       cfg.Width,
		height:      cfg.Height,
		frameBuffer: make([]byte, cfg.Width*cfg.Height*4),
	}, nil
}

func (s *HeadlessSurface) Width() int  { return s.width }
func (s *HeadlessSurface) Height() int { return s.height }

func (s *HeadlessSurface) Start() error {
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()
	return nil
}

func (s *HeadlessSurface) Close() error {
	s.mu.Lock()
	s.started = false
	s.mu.Unlock()
	return nil
}

func (s *HeadlessSurface) SetPixelColor(r, g, b uint8) {
	s.mu.Lock()
	s.drawR, s.drawG, s.drawB = r, g, b
	s.mu.Unlock()
}

func (s *HeadlessSurface) DrawPoint(x, y int) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.mu.Lock()
	off := (y*s.width + x) * 4
	s.frameBuffer[off] = s.drawR
	s.frameBuffer[off+1] = s.drawG
	s.frameBuffer[off+2] = s.drawB
	s.frameBuffer[off+3] = 0xFF
	s.mu.Unlock()
}

func (s *HeadlessSurface) ClearToBlack() {
	s.mu.Lock()
	for i := range s.frameBuffer {
		s.frameBuffer[i] = 0
	}
	s.mu.Unlock()
}

func (s *HeadlessSurface) Present() {
	s.mu.Lock()
	s.presentCount++
	s.mu.Unlock()
}

// PresentCount reports how many times Present was called, for tests.
func (s *HeadlessSurface) PresentCount() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presentCount
}
