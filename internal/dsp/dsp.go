// dsp.go - window functions, FIR design and convolution for the composite decoder
//
// (c) 2024 - 2026 Zayn Otley
// https://github.com/zaynotley/compositedecode
// License: GPLv3 or later

// Package dsp provides the small set of digital-signal-processing
// primitives the composite decoder needs: a windowed-sinc FIR designer
// and a naive convolution/filter pair. There is no FFT path here — the
// decoder only ever needs one fixed low-pass kernel, computed once at
// startup.
package dsp

import "math"

// WindowType selects the taper applied to a windowed-sinc FIR kernel.
type WindowType int

const (
	WindowRectangular WindowType = iota
	WindowHamming
	WindowBlackmanHarris
)

// FilterType selects the FIR response shape, expressed as a fraction of
// the Nyquist frequency (1.0 == Nyquist).
type FilterType struct {
	Kind FilterKind
	Cut  float64 // low-pass / high-pass cutoff, or low edge of a band
	Cut2 float64 // high edge of a band (BandPass / BandStop only)
}

type FilterKind int

const (
	LowPass FilterKind = iota
	HighPass
	BandPass
	BandStop
)

// GenerateWindow returns the per-tap multiplier for the given window type,
// sampled at n = 1..taps-1 (taps-1 values total, matching the sample count
// FIRDesign consumes). Only odd taps are meaningful for a linear-phase
// FIR; callers are expected to pass an odd value.
func GenerateWindow(windowType WindowType, taps int) []float64 {
	m := float64(taps)
	w := make([]float64, taps-1)
	for n := 1; n < taps; n++ {
		j := float64(n)
		switch windowType {
		case WindowRectangular:
			w[n-1] = 1.0
		case WindowHamming:
			w[n-1] = 0.54 - 0.46*math.Cos((2.0*j*math.Pi)/m)
		case WindowBlackmanHarris:
			w[n-1] = 0.35875 -
				0.48829*math.Cos((2.0*j*math.Pi)/m) +
				0.14128*math.Cos((4.0*j*math.Pi)/m) -
				0.01168*math.Cos((6.0*j*math.Pi)/m)
		}
	}
	return w
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

// FIRDesign computes the coefficients of a windowed-sinc FIR kernel,
// sampled at n = 1..taps-1 about the center taps/2, so it returns taps-1
// coefficients. Only odd taps values are accepted; the returned kernel is
// then of even length, symmetric about its two middle coefficients, with
// no single center tap. Re-invoking with identical
// arguments yields bit-identical coefficients: the computation is a pure
// function of (filterType, windowType, taps).
func FIRDesign(filterType FilterType, windowType WindowType, taps int) []float64 {
	if taps%2 != 1 {
		panic("dsp: FIRDesign requires an odd number of taps")
	}

	m := float64(taps)
	window := GenerateWindow(windowType, taps)

	lowpass := func(c, n float64) float64 {
		return c * sinc(c*math.Pi*(n-m/2.0))
	}

	coeffs := make([]float64, taps-1)
	for n := 1; n < taps; n++ {
		x := float64(n)
		var v float64
		switch filterType.Kind {
		case LowPass:
			v = lowpass(filterType.Cut, x)
		case HighPass:
			v = lowpass(1.0, x) - lowpass(filterType.Cut, x)
		case BandPass:
			v = lowpass(filterType.Cut2, x) - lowpass(filterType.Cut, x)
		case BandStop:
			v = lowpass(1.0, x) - lowpass(filterType.Cut2, x) + lowpass(filterType.Cut, x)
		}
		coeffs[n-1] = v * window[n-1]
	}
	return coeffs
}

// Convolve computes the full (signal + kernel - 1)-length linear
// convolution of signal with kernel, O(len(signal)*len(kernel)).
func Convolve(signal, kernel []float64) []float64 {
	resultLen := len(signal) + len(kernel) - 1
	y := make([]float64, resultLen)
	for n := 0; n < resultLen; n++ {
		kmin := 0
		if n >= len(kernel)-1 {
			kmin = n - (len(kernel) - 1)
		}
		kmax := len(signal) - 1
		if n < len(signal)-1 {
			kmax = n
		}
		for k := kmin; k <= kmax; k++ {
			y[n] += signal[k] * kernel[n-k]
		}
	}
	return y
}

// CausalFilter computes y[n] = sum_k signal[n-k]*kernel[k] for n >= len(kernel)-1,
// leaving y[n] == 0 for n < len(kernel)-1 (no history is available yet). This
// is the naive causal FIR the line demodulator applies to a captured
// scanline: unlike Filter, it does not compensate for group delay, so the
// kernel's transient occupies the first len(kernel)-1 output samples.
func CausalFilter(signal, kernel []float64) []float64 {
	out := make([]float64, len(signal))
	for n := len(kernel) - 1; n < len(signal); n++ {
		var acc float64
		for k := 0; k < len(kernel); k++ {
			acc += signal[n-k] * kernel[k]
		}
		out[n] = acc
	}
	return out
}

// Filter convolves signal with kernel and trims the result back to
// len(signal), compensating for the kernel's group delay by discarding
// its leading half. This mirrors the reference decoder's naive O(N*M)
// filter. The first len(kernel)/2 output samples are computed as if the
// signal were zero before its start, so they only see part of the kernel.
func Filter(signal, kernel []float64) []float64 {
	full := Convolve(signal, kernel)
	delay := len(kernel) / 2
	out := make([]float64, len(signal))
	copy(out, full[delay:])
	return out
}
