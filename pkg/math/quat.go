package math

import "github.com/chewxy/math32"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if length < 0.0001 {
		return QuatIdentity()
	}
	inv := 1.0 / length
	return Quat{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

var quatNext = [3]int{1, 2, 0}

// QuatFromMat4 extracts the rotation of a row-major transform whose
// rotation block is orthonormal, using the standard trace test. When the
// trace is not positive it pivots on the largest diagonal element and
// derives the remaining components cyclically.
func QuatFromMat4(m Mat4) Quat {
	trace := m[0] + m[5] + m[10]

	if trace > 0 {
		root := math32.Sqrt(trace + 1.0)
		w := 0.5 * root
		root = 0.5 / root
		return Quat{
			X: root * (m[1*4+2] - m[2*4+1]),
			Y: root * (m[2*4+0] - m[0*4+2]),
			Z: root * (m[0*4+1] - m[1*4+0]),
			W: w,
		}
	}

	i := 0
	if m[1*4+1] > m[0*4+0] {
		i = 1
	}
	if m[2*4+2] > m[i*4+i] {
		i = 2
	}
	j := quatNext[i]
	k := quatNext[j]

	root := math32.Sqrt(m[i*4+i] - m[j*4+j] - m[k*4+k] + 1.0)

	var q [4]float32
	q[i] = 0.5 * root
	root = 0.5 / root
	q[j] = root * (m[i*4+j] + m[j*4+i])
	q[k] = root * (m[i*4+k] + m[k*4+i])
	q[3] = root * (m[j*4+k] - m[k*4+j])

	return Quat{X: q[0], Y: q[1], Z: q[2], W: q[3]}
}
