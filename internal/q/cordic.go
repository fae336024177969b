package q

import "github.com/hrvach/talkberry/internal/tables"

// halfPiQ27 is pi/2 in Q27, used to fold arguments outside [-pi/2, pi/2].
const halfPiQ27 int32 = 0x0c90fdaa

// cordicStartX is K = prod(cos(atan(2^-i))) ~= 0.6073 in Q27, the reciprocal
// of the CORDIC gain, so the rotated vector comes out at unit scale.
const cordicStartX int32 = 0x04dba76d

// Cordic rotates the vector (K, 0) by angle theta, a Q27-scaled radian
// value, and returns cos, sin both in Q27.
//
// Folds |theta| > pi/2 by rotating the start vector 180 degrees (negating x)
// and subtracting/adding 2*(pi/2) from theta, then runs 28 fixed iterations
// against the precomputed atan(2^-i) table in Q27.
func Cordic(theta int32) (cos, sin int32) {
	x := cordicStartX
	y := int32(0)
	z := theta

	if theta > halfPiQ27 || theta < -halfPiQ27 {
		if theta < 0 {
			z = theta + 2*halfPiQ27
		} else {
			z = theta - 2*halfPiQ27
		}
		x = -x
	}

	for i := 0; i < 28; i++ {
		d := z >> 31 // arithmetic shift: all-ones if z < 0, else 0

		tx := x - (((y >> uint(i)) ^ d) - d)
		y = y + (((x >> uint(i)) ^ d) - d)
		z = z - ((tables.CordicAtan[i] ^ d) - d)
		x = tx
	}

	return x, y
}
