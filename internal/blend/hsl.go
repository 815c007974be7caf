// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

// Non-separable blend modes (hue, saturation, color, luminosity) operate on
// the whole RGB triplet. See W3C Compositing and Blending Level 1, section
// "Non-separable blend modes".

// rgb is an un-premultiplied color triplet in [0, 1].
type rgb struct {
	r, g, b float32
}

// tripletFunc is a non-separable blend function B(Cb, Cs).
type tripletFunc func(cb, cs rgb) rgb

// nonSeparable lifts a triplet function into a premultiplied compositing
// function using the same general formula as the separable modes.
func nonSeparable(fn tripletFunc) Func {
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		if sa == 0 {
			return dr, dg, db, da
		}
		if da == 0 {
			return sr, sg, sb, sa
		}

		as, ab := unit(sa), unit(da)
		cs := rgb{clampUnit(unit(sr) / as), clampUnit(unit(sg) / as), clampUnit(unit(sb) / as)}
		cb := rgb{clampUnit(unit(dr) / ab), clampUnit(unit(dg) / ab), clampUnit(unit(db) / ab)}
		b := fn(cb, cs)

		mix := func(s, d byte, bc float32) byte {
			return toByte(unit(s)*(1-ab) + unit(d)*(1-as) + as*ab*bc)
		}
		return mix(sr, dr, b.r), mix(sg, dg, b.g), mix(sb, db, b.b), toByte(as + ab*(1-as))
	}
}

// Lum returns the luminosity of a color.
// Formula: 0.3*r + 0.59*g + 0.11*b
func Lum(r, g, b float32) float32 {
	return 0.3*r + 0.59*g + 0.11*b
}

// Sat returns the saturation of a color: max(r, g, b) - min(r, g, b).
func Sat(r, g, b float32) float32 {
	return max(r, g, b) - min(r, g, b)
}

// clipColor brings out-of-range components back into [0, 1] while keeping
// the luminosity.
func clipColor(c rgb) rgb {
	l := Lum(c.r, c.g, c.b)
	n := min(c.r, c.g, c.b)
	x := max(c.r, c.g, c.b)

	if n < 0 && l-n != 0 {
		k := l / (l - n)
		c = rgb{l + (c.r-l)*k, l + (c.g-l)*k, l + (c.b-l)*k}
	}
	if x > 1 && x-l != 0 {
		k := (1 - l) / (x - l)
		c = rgb{l + (c.r-l)*k, l + (c.g-l)*k, l + (c.b-l)*k}
	}
	return c
}

// setLum shifts c to luminosity l.
func setLum(c rgb, l float32) rgb {
	d := l - Lum(c.r, c.g, c.b)
	return clipColor(rgb{c.r + d, c.g + d, c.b + d})
}

// setSat rescales c to saturation s, keeping the order of its components.
func setSat(c rgb, s float32) rgb {
	lo, mid, hi := order(&c)
	if *hi > *lo {
		*mid = (*mid - *lo) * s / (*hi - *lo)
		*hi = s
	} else {
		*mid, *hi = 0, 0
	}
	*lo = 0
	return c
}

// order returns pointers to the smallest, middle and largest component.
func order(c *rgb) (lo, mid, hi *float32) {
	lo, mid, hi = &c.r, &c.g, &c.b
	if *lo > *mid {
		lo, mid = mid, lo
	}
	if *mid > *hi {
		mid, hi = hi, mid
	}
	if *lo > *mid {
		lo, mid = mid, lo
	}
	return lo, mid, hi
}

func hue(cb, cs rgb) rgb {
	return setLum(setSat(cs, Sat(cb.r, cb.g, cb.b)), Lum(cb.r, cb.g, cb.b))
}

func saturation(cb, cs rgb) rgb {
	return setLum(setSat(cb, Sat(cs.r, cs.g, cs.b)), Lum(cb.r, cb.g, cb.b))
}

func colorMode(cb, cs rgb) rgb {
	return setLum(cs, Lum(cb.r, cb.g, cb.b))
}

func luminosity(cb, cs rgb) rgb {
	return setLum(cb, Lum(cs.r, cs.g, cs.b))
}
