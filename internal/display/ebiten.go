//go:build !headless

// ebiten.go - Ebiten-backed display surface for the composite decoder
//
// (c) 2024 - 2026 Zayn Otley
// https://github.com/zaynotley/compositedecode
// License: GPLv3 or later

package display

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenSurface is a pure-Go display backend. Pixel writes land in an
// in-memory RGBA frame buffer; the Ebiten game loop (started by Start)
// blits that buffer to the window once per Draw callback.
type EbitenSurface struct {
	width, height int
	title         string

	mu          sync.Mutex
	frameBuffer []byte // width*height*4, RGBA
	drawR       uint8
	drawG       uint8
	drawB       uint8

	window  *ebiten.Image
	started bool
	ready   chan struct{}
}

// NewSurface constructs the default, windowed display backend.
func NewSurface(cfg Config) (Surface, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, &SurfaceError{Operation: "create", Details: "width and height must be positive"}
	}
	title := cfg.Title
	if title == "" {
		title = "composite-decode"
	}
	return &EbitenSurface{
		width:       cfg.Width,
		height:      cfg.Height,
		title:       title,
		frameBuffer: make([]byte, cfg.Width*cfg.Height*4),
		ready:       make(chan struct{}, 1),
	}, nil
}

func (s *EbitenSurface) Width() int  { return s.width }
func (s *EbitenSurface) Height() int { return s.height }

func (s *EbitenSurface) Start() error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.mu.Unlock()

	ebiten.SetWindowSize(s.width, s.height)
	ebiten.SetWindowTitle(s.title)
	ebiten.SetWindowResizable(false)
	ebiten.SetRunnableOnUnfocused(true)

	go func() {
		if err := ebiten.RunGame(s); err != nil {
			fmt.Printf("display: ebiten exited: %v\n", err)
		}
	}()

	<-s.ready
	return nil
}

func (s *EbitenSurface) Close() error {
	s.mu.Lock()
	s.started = false
	s.mu.Unlock()
	return nil
}

func (s *EbitenSurface) SetPixelColor(r, g, b uint8) {
	s.mu.Lock()
	s.drawR, s.drawG, s.drawB = r, g, b
	s.mu.Unlock()
}

func (s *EbitenSurface) DrawPoint(x, y int) {
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

func (s *EbitenSurface) ClearToBlack() {
	s.mu.Lock()
	for i := range s.frameBuffer {
		s.frameBuffer[i] = 0
	}
	s.mu.Unlock()
}

// Present is a no-op on this backend: the Ebiten Draw callback already
// blits the live frame buffer every tick, so there is nothing additional
// to flush. It exists to satisfy the Surface contract (and to give a
// headless backend somewhere to count presented frames).
func (s *EbitenSurface) Present() {}

// Draw implements ebiten.Game.
func (s *EbitenSurface) Draw(screen *ebiten.Image) {
	s.mu.Lock()
	if s.window == nil {
		s.window = ebiten.NewImage(s.width, s.height)
	}
	s.window.WritePixels(s.frameBuffer)
	s.mu.Unlock()

	screen.DrawImage(s.window, nil)

	select {
	case s.ready <- struct{}{}:
	default:
	}
}

// Update implements ebiten.Game.
func (s *EbitenSurface) Update() error {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if !started {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	return nil
}

// Layout implements ebiten.Game.
func (s *EbitenSurface) Layout(_, _ int) (int, int) {
	return s.width, s.height
}
