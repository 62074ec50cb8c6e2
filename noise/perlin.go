// Package noise implements Ken Perlin's improved gradient noise over 3D
// space, as published at https://mrl.cs.nyu.edu/~perlin/noise/
//
// The field is continuous, band-limited and deterministic: the same
// coordinates always produce the same sample, and values stay in
// approximately [-1, 1].
package noise

import "math"

// permutation is Perlin's reference permutation of 0..255. It acts as a
// reproducible hash from lattice-cell index to gradient selection and must
// remain a bijection; noise quality silently degrades otherwise.
var permutation = [256]int{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// perm doubles the permutation table so corner hashing can index past 255
// without wrapping on every lookup.
var perm = buildPerm()

func buildPerm() [512]int {
	var p [512]int
	for i := range p {
		p[i] = permutation[i&255]
	}
	return p
}

// Noise samples the gradient noise field at (x, y, z). It is a pure function
// over the fixed permutation table: deterministic, total over all finite
// inputs, and safe to call from any number of goroutines without locking.
func Noise(x, y, z float64) float64 {
	// Find the unit cube containing the point and the offsets into it.
	X, x := unitCube(x)
	Y, y := unitCube(y)
	Z, z := unitCube(z)

	// Fade curves for each axis.
	u := fade(x)
	v := fade(y)
	w := fade(z)

	// Hash coordinates of the 8 cube corners.
	a := perm[X] + Y
	aa := perm[a] + Z
	ab := perm[a+1] + Z
	b := perm[X+1] + Y
	ba := perm[b] + Z
	bb := perm[b+1] + Z

	// Blend the gradient contributions of the 8 corners, x then y then z.
	return lerp(w,
		lerp(v,
			lerp(u, grad(perm[aa], x, y, z), grad(perm[ba], x-1, y, z)),
			lerp(u, grad(perm[ab], x, y-1, z), grad(perm[bb], x-1, y-1, z))),
		lerp(v,
			lerp(u, grad(perm[aa+1], x, y, z-1), grad(perm[ba+1], x-1, y, z-1)),
			lerp(u, grad(perm[ab+1], x, y-1, z-1), grad(perm[bb+1], x-1, y-1, z-1))))
}

// unitCube returns the wrapped lattice-cell index for one coordinate and the
// fractional offset into that cell. The floored value is clamped into int32
// range before truncation; converting an out-of-range float to an integer is
// not portable.
func unitCube(c float64) (int, float64) {
	f := math.Floor(c)
	clamped := math.Min(math.Max(f, math.MinInt32), math.MaxInt32)
	return int(clamped) & 255, c - f
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3. Its first and second derivatives
// vanish at t=0 and t=1, which keeps the field twice continuously
// differentiable across cell boundaries.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp performs linear interpolation.
func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad selects one of the 12 cube-edge gradient directions from the low four
// hash bits and returns its dot product with the corner offset (x, y, z).
// Bits 2..3 pick which two axes participate, bits 0 and 1 pick their signs,
// so no stored vector table is needed.
func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := z
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
