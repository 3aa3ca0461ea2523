package glm

import "math"

// PerspectiveLH builds a left handed perspective projection. The camera looks
// down the positive z axis and depth is mapped to [0, 1], which is the clip
// space of WebGPU.
func PerspectiveLH[T float](fovY Rad, aspect, near, far T) Mat4[T] {
	f := T(1 / math.Tan(float64(fovY*0.5)))
	r := far / (far - near)

	return Mat4Of([4][4]T{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, r, 1},
		{0, 0, -r * near, 0},
	})
}
