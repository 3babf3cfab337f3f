package analysis

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/phaseflow/internal/integrators"
	"github.com/san-kum/phaseflow/internal/phase"
)

// Tuning constants for period detection. The section threshold and sample
// sizes are carried over from the original tools as-is.
const (
	periodDt        = 0.01
	periodTransient = 20.0
	periodWindow    = 200.0
	spectrumSamples = 4096
	minCrossings    = 2
)

// DetectPeriod estimates the period of the trajectory through (x0, y0) by
// recording positive-going crossings of the Poincaré section x = section
// and averaging their spacing. Crossing times are refined by linear
// interpolation between the straddling steps. Returns 0 when fewer than
// two crossings occur within the observation window.
func DetectPeriod(f phase.VectorField, p phase.Params, x0, y0, section float64) float64 {
	integ := integrators.NewRK4()
	x, y := x0, y0
	t := 0.0

	// Burn off the transient so the section sees the attractor, not the
	// approach to it.
	for t < periodTransient {
		x, y = integ.Step(f, p, x, y, periodDt)
		t += periodDt
		if !phase.IsFinite(x, y) {
			return 0
		}
	}

	var crossings []float64
	prev := x
	for t < periodTransient+periodWindow {
		x, y = integ.Step(f, p, x, y, periodDt)
		t += periodDt
		if !phase.IsFinite(x, y) {
			return 0
		}

		if prev < section && x >= section {
			frac := (section - prev) / (x - prev)
			if math.IsNaN(frac) || math.IsInf(frac, 0) {
				frac = 0.5
			}
			crossings = append(crossings, t-periodDt+frac*periodDt)
		}
		prev = x
	}

	if len(crossings) < minCrossings {
		return 0
	}
	span := crossings[len(crossings)-1] - crossings[0]
	return span / float64(len(crossings)-1)
}

// SpectralPeriod estimates the period from the dominant frequency of the
// x(t) power spectrum. It integrates a fixed-length sample window, removes
// the mean, and looks for the strongest nonzero FFT bin.
func SpectralPeriod(f phase.VectorField, p phase.Params, x0, y0 float64) float64 {
	integ := integrators.NewRK4()
	x, y := x0, y0
	t := 0.0

	for t < periodTransient {
		x, y = integ.Step(f, p, x, y, periodDt)
		t += periodDt
		if !phase.IsFinite(x, y) {
			return 0
		}
	}

	series := make([]float64, spectrumSamples)
	mean := 0.0
	for i := range series {
		x, y = integ.Step(f, p, x, y, periodDt)
		if !phase.IsFinite(x, y) {
			return 0
		}
		series[i] = x
		mean += x
	}
	mean /= float64(len(series))
	for i := range series {
		series[i] -= mean
	}

	spectrum := fft.FFTReal(series)

	best := 0
	bestPower := 0.0
	for k := 1; k < len(spectrum)/2; k++ {
		re := real(spectrum[k])
		im := imag(spectrum[k])
		power := re*re + im*im
		if power > bestPower {
			bestPower = power
			best = k
		}
	}
	if best == 0 || bestPower == 0 {
		return 0
	}

	freq := float64(best) / (float64(spectrumSamples) * periodDt)
	return 1 / freq
}
