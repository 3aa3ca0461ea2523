package glm

type Vec4[T numeric] [4]T

func (lhs Vec4[T]) Truncate() Vec3[T] {
	return Vec3[T]{lhs[0], lhs[1], lhs[2]}
}

// Project divides x, y and z by w.
func (lhs Vec4[T]) Project() Vec3[T] {
	return Vec3[T]{lhs[0] / lhs[3], lhs[1] / lhs[3], lhs[2] / lhs[3]}
}

func (lhs Vec4[T]) XYZW() (x, y, z, w T) {
	x = lhs[0]
	y = lhs[1]
	z = lhs[2]
	w = lhs[3]
	return
}
