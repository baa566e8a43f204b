// Package stats maintains mean and variance over the finite samples of a
// sliding window in O(1) per update.
//
// Non-finite samples (NaN, ±Inf) never contribute: they are counted as absent
// both when they enter the window and when they leave it. This keeps one bad
// reading from poisoning the aggregate for the whole lifetime of the window.
package stats

import "math"

// Online tracks the count, mean and sum of squared deviations (M2) of the
// finite samples resident in a window.
//
// The zero value is an empty estimator.
type Online struct {
	count int
	mean  float64
	m2    float64
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Update accounts for pushed entering the window and evicted leaving it.
//
// evicted must be the sample the window displaced for pushed, or NaN when the
// window was not full yet.
func (o *Online) Update(pushed, evicted float64) {
	in, out := IsFinite(pushed), IsFinite(evicted)

	switch {
	case in && out:
		o.replace(pushed, evicted)
	case !in && out:
		o.remove(evicted)
	case in && !out:
		o.add(pushed)
	default:
		// neither side contributes
		return
	}

	if o.m2 < 0 {
		o.m2 = 0
	}
}

// add is the Welford growth step.
func (o *Online) add(x float64) {
	o.count++
	delta := x - o.mean
	o.mean += delta / float64(o.count)
	o.m2 += delta * (x - o.mean)
}

// remove reverses add for y.
func (o *Online) remove(y float64) {
	o.count--
	if o.count == 0 {
		o.mean = 0
		o.m2 = 0

		return
	}

	prev := o.mean
	o.mean -= (y - prev) / float64(o.count)
	o.m2 -= (y - o.mean) * (y - prev)
}

// replace swaps y for x keeping the count unchanged.
//
// With d = x - y and mean' = mean + d/count:
//
//	M2' = M2 + d * ((x - mean') + (y - mean))
//
// which equals M2 + d²/count + (x-mean')² - (y-mean')².
func (o *Online) replace(x, y float64) {
	prev := o.mean
	d := x - y
	o.mean += d / float64(o.count)
	o.m2 += d * ((x - o.mean) + (y - prev))
}

// Finite reports whether the mean and M2 are both finite.
//
// A finite sample near the float64 limit can still overflow M2, and the
// incremental steps cannot undo an infinity once it is in the aggregate.
// Callers that own the samples rebuild the estimator with Rebuild when
// Finite turns false.
func (o *Online) Finite() bool {
	return IsFinite(o.mean) && IsFinite(o.m2)
}

// Rebuild replaces the state with the statistics of the finite entries of
// values, as if an empty estimator had been fed them in order.
func (o *Online) Rebuild(values []float64) {
	*o = Online{}
	for _, v := range values {
		if IsFinite(v) {
			o.add(v)
		}
	}
	if o.m2 < 0 {
		o.m2 = 0
	}
}

// Count returns the number of finite samples tracked.
func (o *Online) Count() int {
	return o.count
}

// Mean returns the mean of the finite samples, or 0 when there are none.
func (o *Online) Mean() float64 {
	return o.mean
}

// M2 returns the sum of squared deviations from the mean.
func (o *Online) M2() float64 {
	return o.m2
}

// Std returns the population standard deviation, or 0 when there are no
// finite samples.
func (o *Online) Std() float64 {
	if o.count == 0 {
		return 0
	}

	return math.Sqrt(o.m2 / float64(o.count))
}

// Reset returns the estimator to the empty state.
func (o *Online) Reset() {
	*o = Online{}
}

// MeanStd computes the population mean and standard deviation of the finite
// entries of values, skipping NaN and ±Inf. Both are 0 when values holds no
// finite entry.
//
// It performs the same sequence of growth steps as an empty Online fed with
// values, so a window filled with a series and the series itself agree
// bit for bit.
func MeanStd(values []float64) (mean, std float64) {
	var o Online
	o.Rebuild(values)

	return o.Mean(), o.Std()
}
