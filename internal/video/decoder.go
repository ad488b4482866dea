// decoder.go - streaming composite video decoder
//
// (c) 2024 - 2026 Zayn Otley
// https://github.com/zaynotley/compositedecode
// License: GPLv3 or later

// Package video implements the streaming composite-video decoder: a
// push-driven state machine that recovers horizontal/vertical sync from
// an unlabeled sample stream, captures one scanline per H-sync, performs
// luma/chroma demodulation, and emits RGB rows to a display.Surface.
package video

import (
	"fmt"
	"math"

	"github.com/zaynotley/compositedecode/internal/display"
	"github.com/zaynotley/compositedecode/internal/dsp"
)

// Decoder holds all state for one decode session. It is created once at
// startup and driven exclusively through Push; there is no other mutation
// path and no internal goroutine.
type Decoder struct {
	surface   display.Surface
	debugSync bool

	// Sample-intake staging buffer (§4.1).
	staging    [StagingCapacity]float32
	stagingLen int

	// Sync tracker state (§4.2).
	inSyncPulse bool
	sinceEdge   int
	lastFlatSec float32
	lastSync    SyncKind
	lastField   Field

	// Line capture (§4.3).
	curScanline      [ScanlineSamples]float32
	curScanlineIndex int32

	// Precomputed, line-invariant tables.
	firLuma []float32 // Hamming-windowed sinc low-pass, length LumaFIRTaps-1 (see dsp.FIRDesign)
	cosWave []float32 // local oscillator, length ScanlineSamples
	sinWave []float32

	// Per-line demodulation scratch, reused across lines.
	luma       [ScanlineSamples]float32
	iRaw       [ScanlineSamples]float32
	qRaw       [ScanlineSamples]float32
	iFiltered  [ScanlineSamples]float32
	qFiltered  [ScanlineSamples]float32
	iReal      [ScanlineSamples]float32
	qReal      [ScanlineSamples]float32
}

// Option configures a Decoder at construction time.
type Option func(*Decoder)

// WithDebugSync enables a diagnostic trace line for every classified sync
// pulse (kind, field, width). Off by default: at 20 Msamples/sec this would
// otherwise dominate stdout on the hot path.
func WithDebugSync(enabled bool) Option {
	return func(d *Decoder) { d.debugSync = enabled }
}

// NewDecoder builds a Decoder that renders into surface. The FIR kernel and
// local-oscillator tables are computed once here; nothing else on the push
// path allocates.
func NewDecoder(surface display.Surface, opts ...Option) *Decoder {
	d := &Decoder{surface: surface}
	for _, opt := range opts {
		opt(d)
	}

	kernel64 := dsp.FIRDesign(
		dsp.FilterType{Kind: dsp.LowPass, Cut: 2 * LumaFIRCutoffHz / SampleRateHz},
		dsp.WindowHamming,
		LumaFIRTaps,
	)
	d.firLuma = make([]float32, len(kernel64))
	for i, c := range kernel64 {
		d.firLuma[i] = float32(c)
	}

	d.cosWave = make([]float32, ScanlineSamples)
	d.sinWave = make([]float32, ScanlineSamples)
	for n := 0; n < ScanlineSamples; n++ {
		theta := 2 * math.Pi * FBurstHz * float64(n) / SampleRateHz
		d.cosWave[n] = float32(math.Cos(theta))
		d.sinWave[n] = float32(math.Sin(theta))
	}

	return d
}

// Push appends samples and drives as many process cycles as the staging
// buffer fill permits. Contract: len(samples) must be strictly less than
// StagingCapacity; callers that violate this are integrators, not the
// runtime, so the violation aborts rather than degrading gracefully.
func (d *Decoder) Push(samples []float32) {
	if len(samples) >= StagingCapacity {
		panic(fmt.Sprintf("video: Push chunk of %d samples must be smaller than staging capacity %d", len(samples), StagingCapacity))
	}

	nToCopy := len(samples)
	if room := StagingCapacity - d.stagingLen; nToCopy > room {
		nToCopy = room
	}
	copy(d.staging[d.stagingLen:d.stagingLen+nToCopy], samples[:nToCopy])
	d.stagingLen += nToCopy

	if d.stagingLen != StagingCapacity {
		return
	}

	d.process(d.staging[:])
	d.stagingLen = 0

	if nToCopy < len(samples) {
		nLeft := len(samples) - nToCopy
		copy(d.staging[d.stagingLen:d.stagingLen+nLeft], samples[nToCopy:])
		d.stagingLen += nLeft
	}
}

// process runs the hysteretic edge detector over one full staging batch,
// classifying completed sync pulses and driving the line-capture write and
// the raster emitter as edges are found. Expressed as an explicit
// index-advancing loop (rather than a consume-while-predicate fold) so the
// per-sample capture write has an obvious home.
func (d *Decoder) process(buf []float32) {
	for _, v := range buf {
		d.sinceEdge++

		if !d.inSyncPulse && d.lastSync == SyncHorizontal &&
			d.sinceEdge > ScanlineStartN && d.sinceEdge < ScanlineEndN {
			d.curScanline[d.sinceEdge-ScanlineStartN] = v
		}

		var crossed bool
		if d.inSyncPulse {
			crossed = v >= syncThresholdHi
		} else {
			crossed = v <= syncThresholdLo
		}
		if !crossed {
			continue
		}

		d.inSyncPulse = !d.inSyncPulse
		lenSec := float32(d.sinceEdge) / float32(SampleRateHz)

		if !d.inSyncPulse {
			// drawScanline runs before classify() updates last_sync, so it
			// observes the PREVIOUS pulse's classification at this edge.
			d.drawScanline()
			d.classify(lenSec)
		}

		d.lastFlatSec = lenSec
		d.sinceEdge = 0
	}
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// classify implements the pulse-width classifier (§4.2). Unknown widths
// leave last_sync unchanged rather than latching Unknown.
func (d *Decoder) classify(lenSec float32) {
	const (
		hSync     = float32(HSyncPulseSec)
		vShort    = float32(VShortSyncPulseSec)
		vBroadLen = float32(VSyncSectionSec - VBroadSyncPulseSec) // complementary interval, 27.3us
		delta     = float32(SyncLenDelta)
	)

	switch {
	case absf32(lenSec-hSync) < delta:
		d.lastSync = SyncHorizontal
	case absf32(lenSec-vShort) < delta:
		d.lastSync = SyncVerticalShort
		d.classifyField()
	case absf32(lenSec-vBroadLen) < delta:
		d.lastSync = SyncVerticalBroad
	default:
		// unrecognized pulse: ignored, not latched as Unknown.
	}

	if d.debugSync {
		fmt.Printf("sync: %.2f usec [%d samples] \t%s \t%s\n",
			lenSec*1e6, int(lenSec*float32(SampleRateHz)+0.5), d.lastSync, d.lastField)
	}
}

// classifyField sets field parity from the flat-high interval that
// preceded the just-classified VerticalShort pulse.
func (d *Decoder) classifyField() {
	const (
		odd   = float32(OddFrameHiSec)
		even  = float32(EvenFrameHiSec)
		delta = float32(SyncLenDelta)
	)
	switch {
	case absf32(d.lastFlatSec-odd) < delta:
		d.lastField = FieldOdd
	case absf32(d.lastFlatSec-even) < delta:
		d.lastField = FieldEven
	default:
		// unrecognized prelude: field parity left unchanged.
	}
}

// drawScanline is the raster emitter (§4.5): it resets the scanline index
// at vertical-short pulses, demodulates and renders one line at
// Horizontal pulses inside the visible window, and always advances the
// index by 2 after a Horizontal pulse.
func (d *Decoder) drawScanline() {
	if d.lastField == FieldUnknown || d.lastSync == SyncUnknown {
		return
	}

	if d.lastSync == SyncVerticalShort {
		switch d.lastField {
		case FieldEven:
			d.curScanlineIndex = -int32(VBlankingLines) - 1
		case FieldOdd:
			d.curScanlineIndex = -int32(VBlankingLines)
		}
		return
	}

	if d.lastSync == SyncHorizontal &&
		d.curScanlineIndex >= 0 && d.curScanlineIndex < ScreenHeight {
		d.demodulateLine()
		y := int(d.curScanlineIndex)
		for x := 0; x < ScreenWidth; x++ {
			xCsl := ScanlineVidStartN + (x*ScanlineVidSamples)/ScreenWidth

			pixelY := d.luma[xCsl] - BlackLevelPedestal
			pixelI := ChromaGain * d.iReal[xCsl]
			pixelQ := ChromaGain * d.qReal[xCsl]

			r := pixelY + 0.956*pixelI + 0.621*pixelQ
			g := pixelY - 0.272*pixelI - 0.647*pixelQ
			b := pixelY - 1.106*pixelI + 1.703*pixelQ

			d.surface.SetPixelColor(toChannel(r), toChannel(g), toChannel(b))
			d.surface.DrawPoint(x, y)
		}
		d.surface.Present()
	}

	if d.lastSync == SyncHorizontal {
		d.curScanlineIndex += 2
	}
}

// toChannel clamps a YIQ->RGB channel to [0, 255] and converts to 8 bits.
// The lower clamp is explicit; the upper clamp falls out of min(255, 255*c).
func toChannel(c float32) uint8 {
	if c < 0 {
		c = 0
	}
	v := c * 255.0
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
