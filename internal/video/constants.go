// constants.go - composite decoder timing and threshold constants
//
// (c) 2024 - 2026 Zayn Otley
// https://github.com/zaynotley/compositedecode
// License: GPLv3 or later

package video

// ------------------------------------------------------------------------------
// Sample Clock
// ------------------------------------------------------------------------------
const (
	SampleRateHz float64 = 20_000_000 // samples/sec
)

// ------------------------------------------------------------------------------
// Horizontal Timing Constants
// ------------------------------------------------------------------------------
const (
	HLineTimeSec    = 64e-6
	HFrontPorchSec  = 1.65e-6
	HSyncPulseSec   = 4.7e-6
	HBackPorchSec   = 5.7e-6
	HActiveVideoSec = 51.96e-6
)

// ------------------------------------------------------------------------------
// Vertical Timing Constants
// ------------------------------------------------------------------------------
const (
	VSyncSectionSec    = HLineTimeSec / 2.0
	VShortSyncPulseSec = 2.35e-6
	VBroadSyncPulseSec = 4.7e-6
	VBlankingLines     = 25

	// EvenFrameHiSec / OddFrameHiSec are the flat-high durations that
	// immediately precede a VerticalShort pulse in each field.
	EvenFrameHiSec = 27.35e-6
	OddFrameHiSec  = 59.35e-6
)

// ------------------------------------------------------------------------------
// Hysteresis / Classification Constants
// ------------------------------------------------------------------------------
const (
	SyncThreshold = 0.07
	SyncLenDelta  = 0.5e-6

	syncThresholdLo = 0.5 * SyncThreshold
	syncThresholdHi = 1.5 * SyncThreshold
)

// ------------------------------------------------------------------------------
// Color Subcarrier
// ------------------------------------------------------------------------------
const (
	FBurstHz = 4.43361875e6
)

// ------------------------------------------------------------------------------
// Sample Index Geometry (relative to the trailing edge of H-sync)
// ------------------------------------------------------------------------------
const (
	ScanlineStartN = 0

	// ScanlineVidStartN is round_down(SampleRate * HBackPorchSec).
	ScanlineVidStartN = 114

	// ScanlineEndN is round_down(SampleRate * (HBackPorch+HActive+HFrontPorch)).
	ScanlineEndN = 1186

	ScanlineSamples    = ScanlineEndN - ScanlineStartN
	ScanlineVidSamples = ScanlineEndN - ScanlineVidStartN

	// ScanlineBurstN is the sample index of the burst center, used to
	// sample the phase-reference I/Q pair.
	ScanlineBurstN = 57
)

// ------------------------------------------------------------------------------
// Display Geometry
// ------------------------------------------------------------------------------
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// ------------------------------------------------------------------------------
// Staging Buffer
// ------------------------------------------------------------------------------
const (
	// StagingCapacity is the fixed capacity of the sample-intake staging
	// buffer (B in spec terms). Callers must feed push() chunks strictly
	// smaller than this.
	StagingCapacity = 1024
)

// ------------------------------------------------------------------------------
// FIR Kernel
// ------------------------------------------------------------------------------
const (
	// LumaFIRCutoffHz is the -3dB-ish cutoff of the Hamming-windowed
	// sinc luma/chroma low-pass, expressed in Hz at SampleRateHz.
	LumaFIRCutoffHz = 3_000_000
	LumaFIRTaps     = 21
)

// ------------------------------------------------------------------------------
// Raster Emitter Tuning Constants
// ------------------------------------------------------------------------------
const (
	// BlackLevelPedestal is subtracted from the filtered luma before
	// YIQ->RGB conversion.
	BlackLevelPedestal = 0.1

	// ChromaGain scales the phase-corrected I/Q pair to approximately
	// unit color saturation.
	ChromaGain = 80.0
)
