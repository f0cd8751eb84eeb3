package interaction

import "math"

// MomentCapacity returns the moment resistance MRd at axial force n: the
// largest M where the line N = n meets the envelope boundary. ok is false
// when n lies outside [PureTension.N, PureCompression.N].
func MomentCapacity(env *Envelope, n float64) (mRd float64, ok bool) {
	if env == nil || len(env.Points) < 3 {
		return 0, false
	}
	if n < env.PureTension.N || n > env.PureCompression.N {
		return 0, false
	}

	xs := intersectionsAtN(env.Points, n)
	if len(xs) == 0 {
		// n sits exactly on an extreme; the closing edge is flat there
		if n == env.PureCompression.N {
			return env.PureCompression.M, true
		}
		return env.PureTension.M, true
	}
	return xs[len(xs)-1], true
}

// Utilisation returns MEd/MRd at the design axial force. Values above 1 mean
// the design point lies outside the envelope. ok is false when the axial
// force alone exceeds the section capacity, in which case +Inf is returned.
func Utilisation(env *Envelope, p Point) (float64, bool) {
	mRd, ok := MomentCapacity(env, p.N)
	if !ok {
		return math.Inf(1), false
	}
	if mRd <= 0 {
		if p.M <= 0 {
			return 0, true
		}
		return math.Inf(1), true
	}
	return p.M / mRd, true
}

// Resample returns MRd on an even grid of count axial forces from
// PureTension.N to PureCompression.N, for plotting M against N
func Resample(env *Envelope, count int) (ns, ms []float64) {
	if env == nil || count < 2 {
		return nil, nil
	}

	lo, hi := env.PureTension.N, env.PureCompression.N
	ns = make([]float64, count)
	ms = make([]float64, count)
	for i := 0; i < count; i++ {
		n := lo + (hi-lo)*float64(i)/float64(count-1)
		m, _ := MomentCapacity(env, n)
		ns[i], ms[i] = n, m
	}
	return ns, ms
}
