// interface.go - display surface interface for the composite decoder
//
// (c) 2024 - 2026 Zayn Otley
// https://github.com/zaynotley/compositedecode
// License: GPLv3 or later

// Package display provides the 2-D raster surface the decoder's raster
// emitter writes into: a small, backend-agnostic contract plus a pure-Go
// Ebiten-backed implementation and a headless stub for CI.
package display

import "fmt"

// SurfaceError provides detailed error context for display operations,
// in the same shape the rest of this codebase uses for fatal setup
// failures.
type SurfaceError struct {
	Operation string
	Details   string
	Err       error
}

func (e *SurfaceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("display %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("display %s failed: %s", e.Operation, e.Details)
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}

// Surface is the minimal 2-D raster surface the decoder's raster emitter
// writes into. Coordinate origin is top-left, y increasing downward.
type Surface interface {
	// SetPixelColor sets the draw color used by subsequent DrawPoint calls.
	SetPixelColor(r, g, b uint8)
	// DrawPoint writes the current draw color at (x, y). Out-of-bounds
	// coordinates are silently ignored.
	DrawPoint(x, y int)
	// Present makes the current frame buffer visible. Frame tearing
	// across concurrent DrawPoint calls within the same line is
	// acceptable; this is a per-line present, not a double-buffer swap.
	Present()
	// ClearToBlack resets every pixel to (0, 0, 0).
	ClearToBlack()

	// Start brings up the backend (opening a window, etc). Close tears
	// it down. Both are no-ops if called redundantly.
	Start() error
	Close() error

	Width() int
	Height() int
}

// Config carries the fixed dimensions a Surface is constructed with.
// Per the decoder's external interface the display is always 800x600,
// but backends accept a Config so tests can use smaller surfaces.
type Config struct {
	Width  int
	Height int
	Title  string
}
