// demodulator.go - luma low-pass and I/Q chroma demodulation for one scanline
//
// (c) 2024 - 2026 Zayn Otley
// https://github.com/zaynotley/compositedecode
// License: GPLv3 or later

package video

// demodulateLine runs the §4.4 pipeline over the just-captured scanline:
// a causal luma low-pass, a quadrature product against the free-running
// local oscillator, an I/Q low-pass, and a burst-phase correction sampled
// at the burst center. Every output buffer is preallocated scratch on the
// Decoder, reused line to line.
func (d *Decoder) demodulateLine() {
	causalFilter32(d.curScanline[:], d.firLuma, d.luma[:])

	for n := 0; n < ScanlineSamples; n++ {
		d.iRaw[n] = d.cosWave[n] * d.curScanline[n]
		d.qRaw[n] = d.sinWave[n] * d.curScanline[n]
	}

	causalFilter32(d.iRaw[:], d.firLuma, d.iFiltered[:])
	causalFilter32(d.qRaw[:], d.firLuma, d.qFiltered[:])

	ib := d.iFiltered[ScanlineBurstN]
	qb := d.qFiltered[ScanlineBurstN]

	for n := 0; n < ScanlineSamples; n++ {
		d.iReal[n] = ib*d.iFiltered[n] + qb*d.qFiltered[n]
		d.qReal[n] = ib*d.qFiltered[n] - qb*d.iFiltered[n]
	}
}

// causalFilter32 computes out[n] = sum_k signal[n-k]*kernel[k] for
// n >= len(kernel)-1, leaving out[n] == 0 below that (no history yet).
// This is the float32-specialized twin of dsp.CausalFilter: the decoder's
// hot path works in the 32-bit-float precision the sample stream and FIR
// kernel are declared in, while internal/dsp stays float64 as the
// general-purpose filter-design reference and law-checking surface.
func causalFilter32(signal, kernel, out []float32) {
	for n := 0; n < len(kernel)-1 && n < len(out); n++ {
		out[n] = 0
	}
	for n := len(kernel) - 1; n < len(signal); n++ {
		var acc float32
		for k := 0; k < len(kernel); k++ {
			acc += signal[n-k] * kernel[k]
		}
		out[n] = acc
	}
}
