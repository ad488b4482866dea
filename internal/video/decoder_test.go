package video

import (
	"testing"

	"github.com/zaynotley/compositedecode/internal/display"
)

func newTestDecoder(t *testing.T) (*Decoder, *fakeSurface) {
	t.Helper()
	fs := newFakeSurface(ScreenWidth, ScreenHeight)
	return NewDecoder(fs), fs
}

// fakeSurface is a minimal display.Surface recording every DrawPoint call,
// used so decoder tests don't depend on a real backend.
type fakeSurface struct {
	w, h         int
	drawR        uint8
	drawG        uint8
	drawB        uint8
	pixels       map[[2]int][3]uint8
	presentCount int
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{w: w, h: h, pixels: make(map[[2]int][3]uint8)}
}

func (f *fakeSurface) SetPixelColor(r, g, b uint8) { f.drawR, f.drawG, f.drawB = r, g, b }
func (f *fakeSurface) DrawPoint(x, y int) {
	f.pixels[[2]int{x, y}] = [3]uint8{f.drawR, f.drawG, f.drawB}
}
func (f *fakeSurface) Present()       { f.presentCount++ }
func (f *fakeSurface) ClearToBlack()  { f.pixels = make(map[[2]int][3]uint8) }
func (f *fakeSurface) Start() error   { return nil }
func (f *fakeSurface) Close() error   { return nil }
func (f *fakeSurface) Width() int     { return f.w }
func (f *fakeSurface) Height() int    { return f.h }

var _ display.Surface = (*fakeSurface)(nil)

func pushInChunks(d *Decoder, samples []float32, chunk int) {
	for len(samples) > 0 {
		n := chunk
		if n > len(samples) {
			n = len(samples)
		}
		d.Push(samples[:n])
		samples = samples[n:]
	}
}

func flatSamples(n int, v float32) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func samplesForDuration(sec float64, v float32) []float32 {
	n := int(sec*SampleRateHz + 0.5)
	return flatSamples(n, v)
}

// flushStaging pads the staging buffer with its last sample until it is
// full, so Push hands everything staged so far to process. Repeating the
// last sample extends the current run without adding an edge.
func flushStaging(d *Decoder) {
	if d.stagingLen == 0 {
		return
	}
	d.Push(flatSamples(StagingCapacity-d.stagingLen, d.staging[d.stagingLen-1]))
}

func TestPush_PanicsOnChunkAtOrAboveCapacity(t *testing.T) {
	d, _ := newTestDecoder(t)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for oversized push chunk")
		}
	}()
	d.Push(make([]float32, StagingCapacity))
}

func TestProcess_SinceEdgeResetsOnEachEdge(t *testing.T) {
	d, _ := newTestDecoder(t)
	// High run, then a sync-depth run: one high->low edge, at the first
	// 0.0 sample (index 50).
	var samples []float32
	samples = append(samples, flatSamples(50, 0.8)...)
	samples = append(samples, flatSamples(50, 0.0)...)
	pushInChunks(d, samples, 30)
	flushStaging(d)
	// sinceEdge restarted at that edge, so it counts only the samples after
	// it, padding included: StagingCapacity - 51.
	if want := StagingCapacity - 51; d.sinceEdge != want {
		t.Fatalf("expected sinceEdge %d after the edge reset, got %d", want, d.sinceEdge)
	}
}

func TestClassify_HorizontalPulse(t *testing.T) {
	d, _ := newTestDecoder(t)
	var samples []float32
	samples = append(samples, flatSamples(100, 0.8)...)
	samples = append(samples, samplesForDuration(HSyncPulseSec, 0.0)...)
	samples = append(samples, flatSamples(200, 0.8)...)
	pushInChunks(d, samples, 37)
	flushStaging(d)

	if d.lastSync != SyncHorizontal {
		t.Fatalf("expected SyncHorizontal, got %v", d.lastSync)
	}
}

func TestClassify_VerticalShortWithOddField(t *testing.T) {
	d, _ := newTestDecoder(t)
	var samples []float32
	samples = append(samples, samplesForDuration(OddFrameHiSec, 0.8)...)
	samples = append(samples, samplesForDuration(VShortSyncPulseSec, 0.0)...)
	// A second equalizing pulse half a line later: drawScanline sees the
	// previous pulse's classification, so the index reset for the first
	// VerticalShort happens at this pulse's trailing edge.
	samples = append(samples, samplesForDuration(VSyncSectionSec-VShortSyncPulseSec, 0.8)...)
	samples = append(samples, samplesForDuration(VShortSyncPulseSec, 0.0)...)
	samples = append(samples, flatSamples(100, 0.8)...)
	pushInChunks(d, samples, 41)
	flushStaging(d)

	if d.lastSync != SyncVerticalShort {
		t.Fatalf("expected SyncVerticalShort, got %v", d.lastSync)
	}
	if d.lastField != FieldOdd {
		t.Fatalf("expected FieldOdd, got %v", d.lastField)
	}
	if d.curScanlineIndex != -int32(VBlankingLines) {
		t.Fatalf("expected scanline index reset to %d, got %d", -VBlankingLines, d.curScanlineIndex)
	}
}

func TestClassify_VerticalShortWithEvenField(t *testing.T) {
	d, _ := newTestDecoder(t)
	var samples []float32
	samples = append(samples, samplesForDuration(EvenFrameHiSec, 0.8)...)
	samples = append(samples, samplesForDuration(VShortSyncPulseSec, 0.0)...)
	// Second equalizing pulse; its trailing edge applies the reset (see the
	// odd-field test).
	samples = append(samples, samplesForDuration(VSyncSectionSec-VShortSyncPulseSec, 0.8)...)
	samples = append(samples, samplesForDuration(VShortSyncPulseSec, 0.0)...)
	samples = append(samples, flatSamples(100, 0.8)...)
	pushInChunks(d, samples, 23)
	flushStaging(d)

	if d.lastField != FieldEven {
		t.Fatalf("expected FieldEven, got %v", d.lastField)
	}
	if d.curScanlineIndex != -int32(VBlankingLines)-1 {
		t.Fatalf("expected scanline index reset to %d, got %d", -VBlankingLines-1, d.curScanlineIndex)
	}
}

func TestClassify_UnknownWidthLeavesLastSyncUnchanged(t *testing.T) {
	d, _ := newTestDecoder(t)
	d.lastSync = SyncHorizontal
	// A sync-depth run with a width matching none of the three templates.
	var samples []float32
	samples = append(samples, flatSamples(20, 0.8)...)
	samples = append(samples, flatSamples(17, 0.0)...) // 0.85us, matches nothing
	samples = append(samples, flatSamples(20, 0.8)...)
	pushInChunks(d, samples, 13)
	flushStaging(d)

	if d.lastSync != SyncHorizontal {
		t.Fatalf("expected last_sync to remain Horizontal, got %v", d.lastSync)
	}
}

func TestScanlineIndexAdvancesByTwoPerHorizontalPulse(t *testing.T) {
	d, _ := newTestDecoder(t)
	// Simulate a decoder already locked onto horizontal sync, mid-stream:
	// drawScanline reacts to the *previous* pulse's classification, so
	// last_sync must already read Horizontal for this edge to advance
	// the index rather than reset it.
	d.lastField = FieldOdd
	d.lastSync = SyncHorizontal
	d.curScanlineIndex = 0

	oneHorizontalLinePlusNext := func() []float32 {
		var s []float32
		s = append(s, samplesForDuration(HBackPorchSec+HActiveVideoSec+HFrontPorchSec, 0.8)...)
		s = append(s, samplesForDuration(HSyncPulseSec, 0.0)...)
		s = append(s, flatSamples(16, 0.8)...) // completes the low->high edge
		return s
	}

	before := d.curScanlineIndex
	pushInChunks(d, oneHorizontalLinePlusNext(), 97)
	flushStaging(d)
	if d.curScanlineIndex != before+2 {
		t.Fatalf("expected scanline index to advance by 2, got %d -> %d", before, d.curScanlineIndex)
	}
}

func TestEndToEnd_FlatActiveWindowRendersGrayPixels(t *testing.T) {
	d, fs := newTestDecoder(t)

	oneHorizontalLine := func() []float32 {
		var s []float32
		s = append(s, samplesForDuration(HBackPorchSec+HActiveVideoSec+HFrontPorchSec, 0.5)...)
		s = append(s, samplesForDuration(HSyncPulseSec, 0.0)...)
		return s
	}

	// Prime field/sync framing: an odd-field vertical-short pulse, then
	// VBlankingLines+1 horizontal lines. The index is reset to
	// -VBlankingLines and advances by 2 per line, so the later lines land
	// in [0, ScreenHeight) and are rendered.
	var priming []float32
	priming = append(priming, samplesForDuration(OddFrameHiSec, 0.5)...)
	priming = append(priming, samplesForDuration(VShortSyncPulseSec, 0.0)...)
	pushInChunks(d, priming, 53)

	for i := 0; i < VBlankingLines+1; i++ {
		pushInChunks(d, oneHorizontalLine(), 89)
	}

	if fs.presentCount == 0 {
		t.Fatal("expected at least one rendered (presented) line")
	}
	for _, c := range fs.pixels {
		for _, ch := range c {
			if ch < 80 || ch > 125 {
				t.Fatalf("expected channels near 0.4*255=102 for a flat 0.5 window, got %v", c)
			}
		}
	}
}
