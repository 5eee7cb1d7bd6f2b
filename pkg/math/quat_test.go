package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := math32.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)
	if math32.Abs(length-1.0) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatNormalizeDegenerate(t *testing.T) {
	q := Quat{}.Normalize()
	if q != QuatIdentity() {
		t.Errorf("Normalizing a zero quaternion should give identity, got %+v", q)
	}
}

func quatNear(a, b Quat, eps float32) bool {
	return math32.Abs(a.X-b.X) < eps &&
		math32.Abs(a.Y-b.Y) < eps &&
		math32.Abs(a.Z-b.Z) < eps &&
		math32.Abs(a.W-b.W) < eps
}

func TestQuatFromMat4Identity(t *testing.T) {
	q := QuatFromMat4(Identity())
	if !quatNear(q, QuatIdentity(), 0.0001) {
		t.Errorf("Identity matrix should give identity quaternion, got %+v", q)
	}
}

func TestQuatFromMat4AxisY(t *testing.T) {
	// 90 degree rotation whose quaternion is (0, sin45, 0, cos45)
	m := Mat4{
		0, 0, -1, 0,
		0, 1, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, 1,
	}
	q := QuatFromMat4(m)
	want := Quat{X: 0, Y: 0.7071068, Z: 0, W: 0.7071068}
	if !quatNear(q, want, 0.0001) {
		t.Errorf("expected %+v, got %+v", want, q)
	}
}

func TestQuatFromMat4NegativeTrace(t *testing.T) {
	// 180 degrees about X: trace is -1, exercising the pivot branch
	m := Mat4{
		1, 0, 0, 0,
		0, -1, 0, 0,
		0, 0, -1, 0,
		0, 0, 0, 1,
	}
	q := QuatFromMat4(m)
	want := Quat{X: 1, Y: 0, Z: 0, W: 0}
	if !quatNear(q, want, 0.0001) {
		t.Errorf("expected %+v, got %+v", want, q)
	}

	length := math32.Sqrt(q.Dot(q))
	if math32.Abs(length-1.0) > 0.0001 {
		t.Errorf("extracted quaternion should be unit length, got %v", length)
	}
}
