package gm

import (
	"fmt"
	"math"
)

// Mat describes a 2x2 matrix of float64 values in row major order.
// It is applied to column vectors, v' = M·v:
//
//	| M00  M01 |   | x |
//	| M10  M11 | · | y |
type Mat struct {
	M00 float64 `json:"m00"`
	M01 float64 `json:"m01"`
	M10 float64 `json:"m10"`
	M11 float64 `json:"m11"`
}

func IdentityMat() Mat {
	return Mat{M00: 1, M11: 1}
}

func ZeroMat() Mat {
	return Mat{}
}

// ScaleMat returns a matrix that scales a Vec.
func ScaleMat(scale Vec) Mat {
	return Mat{M00: scale.X, M11: scale.Y}
}

// ShearMat returns a matrix that shears x by x*y and y by y*x:
// (x, y) becomes (x + shearX*y, y + shearY*x).
func ShearMat(shearX, shearY float64) Mat {
	return Mat{M00: 1, M01: shearX, M10: shearY, M11: 1}
}

// RotationMat returns a rotation matrix that rotates
// a Vec counter-clockwise by the given angle
func RotationMat(angle Rad) Mat {
	sin, cos := angle.Sincos()
	return RotationMatCS(cos, sin)
}

// RotationMatCS returns a rotation matrix from a precomputed cosine and sine.
// The values are not normalized.
func RotationMatCS(cos, sin float64) Mat {
	return Mat{
		M00: cos, M01: -sin,
		M10: sin, M11: cos,
	}
}

func MatFromRows(row0, row1 Vec) Mat {
	return Mat{
		M00: row0.X, M01: row0.Y,
		M10: row1.X, M11: row1.Y,
	}
}

func MatFromCols(col0, col1 Vec) Mat {
	return Mat{
		M00: col0.X, M01: col1.X,
		M10: col0.Y, M11: col1.Y,
	}
}

// MatFromArray builds a matrix from its elements in row major order.
func MatFromArray(values [4]float64) Mat {
	return Mat{M00: values[0], M01: values[1], M10: values[2], M11: values[3]}
}

// MatFromSlice builds a matrix from exactly four finite values in row major order.
func MatFromSlice(values []float64) (Mat, error) {
	if err := checkFloats("mat", values, 4); err != nil {
		return Mat{}, err
	}

	return MatFromArray([4]float64(values)), nil
}

// Row returns the row with the given index, either 0 or 1.
func (m Mat) Row(idx int) Vec {
	if idx == 0 {
		return Vec{X: m.M00, Y: m.M01}
	}

	return Vec{X: m.M10, Y: m.M11}
}

// Col returns the column with the given index, either 0 or 1.
func (m Mat) Col(idx int) Vec {
	if idx == 0 {
		return Vec{X: m.M00, Y: m.M10}
	}

	return Vec{X: m.M01, Y: m.M11}
}

func (m Mat) Transform(vec Vec) Vec {
	return Vec{
		X: m.M00*vec.X + m.M01*vec.Y,
		Y: m.M10*vec.X + m.M11*vec.Y,
	}
}

// TransformTranspose applies the transposed matrix to vec without building it.
func (m Mat) TransformTranspose(vec Vec) Vec {
	return Vec{
		X: m.M00*vec.X + m.M10*vec.Y,
		Y: m.M01*vec.X + m.M11*vec.Y,
	}
}

func (m Mat) Add(n Mat) Mat {
	return Mat{
		M00: m.M00 + n.M00, M01: m.M01 + n.M01,
		M10: m.M10 + n.M10, M11: m.M11 + n.M11,
	}
}

func (m Mat) Sub(n Mat) Mat {
	return Mat{
		M00: m.M00 - n.M00, M01: m.M01 - n.M01,
		M10: m.M10 - n.M10, M11: m.M11 - n.M11,
	}
}

// Hadamard returns the element wise product.
func (m Mat) Hadamard(n Mat) Mat {
	return Mat{
		M00: m.M00 * n.M00, M01: m.M01 * n.M01,
		M10: m.M10 * n.M10, M11: m.M11 * n.M11,
	}
}

func (m Mat) Scale(scalar float64) Mat {
	return Mat{
		M00: m.M00 * scalar, M01: m.M01 * scalar,
		M10: m.M10 * scalar, M11: m.M11 * scalar,
	}
}

// Mul returns the matrix product m×n. Applied to a vector, n acts first.
func (m Mat) Mul(n Mat) Mat {
	return Mat{
		M00: m.M00*n.M00 + m.M01*n.M10,
		M01: m.M00*n.M01 + m.M01*n.M11,
		M10: m.M10*n.M00 + m.M11*n.M10,
		M11: m.M10*n.M01 + m.M11*n.M11,
	}
}

// PreMul returns the matrix product n×m.
func (m Mat) PreMul(n Mat) Mat {
	return n.Mul(m)
}

func (m Mat) Transpose() Mat {
	return Mat{
		M00: m.M00, M01: m.M10,
		M10: m.M01, M11: m.M11,
	}
}

// Adjugate returns the transposed cofactor matrix. For an invertible matrix
// the inverse is Adjugate()/Det().
func (m Mat) Adjugate() Mat {
	return Mat{
		M00: m.M11, M01: -m.M01,
		M10: -m.M10, M11: m.M00,
	}
}

func (m Mat) Det() float64 {
	return m.M00*m.M11 - m.M01*m.M10
}

func (m Mat) Trace() float64 {
	return m.M00 + m.M11
}

// Inverse returns the inverse of the matrix. A matrix with a determinant of exactly
// zero has no inverse. Use InverseTolerant to also reject nearly singular matrices.
func (m Mat) Inverse() (Mat, error) {
	det := m.Det()
	if det == 0 {
		return Mat{}, fmt.Errorf("invert singular matrix %s: %w", m, ErrDomain)
	}

	return m.Adjugate().Scale(1 / det), nil
}

// InverseSafe returns the inverse of the matrix, or the zero matrix if m is singular.
func (m Mat) InverseSafe() Mat {
	det := m.Det()
	if det == 0 {
		return Mat{}
	}

	return m.Adjugate().Scale(1 / det)
}

// InverseTolerant returns the inverse of the matrix and fails if the absolute
// value of the determinant is not larger than eps.
func (m Mat) InverseTolerant(eps float64) (Mat, error) {
	det := m.Det()
	if NearZero(det, eps) {
		return Mat{}, fmt.Errorf("invert nearly singular matrix %s (det=%v): %w", m, det, ErrDomain)
	}

	return m.Adjugate().Scale(1 / det), nil
}

func (m Mat) solve(b Vec, det float64) Vec {
	return Vec{
		X: (m.M11*b.X - m.M01*b.Y) / det,
		Y: (m.M00*b.Y - m.M10*b.X) / det,
	}
}

// Solve returns x such that m·x = b. It fails if the determinant is zero.
func (m Mat) Solve(b Vec) (Vec, error) {
	det := m.Det()
	if det == 0 {
		return Vec{}, fmt.Errorf("solve with singular matrix %s: %w", m, ErrDomain)
	}

	return m.solve(b, det), nil
}

// SolveSafe is like Solve, but returns the zero vector for a singular matrix.
func (m Mat) SolveSafe(b Vec) Vec {
	det := m.Det()
	if det == 0 {
		return Vec{}
	}

	return m.solve(b, det)
}

// SolveTolerant is like Solve, but also fails if |det| <= eps.
func (m Mat) SolveTolerant(b Vec, eps float64) (Vec, error) {
	det := m.Det()
	if NearZero(det, eps) {
		return Vec{}, fmt.Errorf("solve with nearly singular matrix %s (det=%v): %w", m, det, ErrDomain)
	}

	return m.solve(b, det), nil
}

// Angle returns the rotation angle of the first column.
// This is the angle of a rotation matrix.
func (m Mat) Angle() Rad {
	return Rad(math.Atan2(m.M10, m.M00))
}

// IsIdentity reports whether each element differs from the identity matrix by at most eps.
func (m Mat) IsIdentity(eps float64) bool {
	return m.ApproxEqual(IdentityMat(), eps)
}

// IsRotation reports whether the matrix has orthonormal columns and a
// determinant of one, each within eps.
func (m Mat) IsRotation(eps float64) bool {
	col0, col1 := m.Col(0), m.Col(1)

	return NearOne(col0.LengthSqr(), eps) &&
		NearOne(col1.LengthSqr(), eps) &&
		NearZero(col0.Dot(col1), eps) &&
		NearOne(m.Det(), eps)
}

// IsSingular reports whether |det| <= eps.
func (m Mat) IsSingular(eps float64) bool {
	return NearZero(m.Det(), eps)
}

// Orthonormalize applies Gram-Schmidt to the columns of the matrix. It is used to
// pull a rotation matrix that drifted due to rounding errors back to a rotation.
//
// The result is always a rotation. If the first column has (nearly) zero length,
// the identity is returned. If the second column collapses onto the first one,
// it is replaced by the perpendicular of the first column. For a matrix with a
// negative determinant the second column is flipped, so a reflection is turned
// into the rotation sharing its first column.
func (m Mat) Orthonormalize() Mat {
	col0, col1 := m.Col(0), m.Col(1)

	length0 := col0.Length()
	if length0 <= LinearEpsilon {
		return IdentityMat()
	}

	u0 := col0.Mul(1 / length0)

	rest := col1.Sub(u0.Mul(u0.Dot(col1)))

	length1 := rest.Length()
	if length1 <= LinearEpsilon {
		return MatFromCols(u0, u0.Perp())
	}

	u1 := rest.Mul(1 / length1)
	if u0.Cross(u1) < 0 {
		u1 = u1.Neg()
	}

	return MatFromCols(u0, u1)
}

// Decompose splits the matrix into a rotation, a scale and a shear, such that
// m equals MatFromDecomposition(angle, scale, shear). A negative scale.Y
// indicates a reflection. Matrices with a zero first column can not be decomposed.
func (m Mat) Decompose() (angle Rad, scale Vec, shear float64, err error) {
	col0, col1 := m.Col(0), m.Col(1)

	scaleX := col0.Length()
	if scaleX == 0 {
		return 0, Vec{}, 0, fmt.Errorf("decompose matrix %s with zero first column: %w", m, ErrDomain)
	}

	u0 := col0.Mul(1 / scaleX)

	angle = u0.Angle()
	scale = Vec{X: scaleX, Y: u0.Cross(col1)}
	shear = u0.Dot(col1)

	return angle, scale, shear, nil
}

// MatFromDecomposition builds the matrix R(angle)·U with the upper triangular
// U = |scale.X shear; 0 scale.Y|. It is the inverse of Mat.Decompose.
func MatFromDecomposition(angle Rad, scale Vec, shear float64) Mat {
	upper := Mat{M00: scale.X, M01: shear, M11: scale.Y}
	return RotationMat(angle).Mul(upper)
}

// Equal reports whether both matrices are exactly equal.
func (m Mat) Equal(n Mat) bool {
	return m == n
}

// ApproxEqual reports whether all elements differ by at most eps.
func (m Mat) ApproxEqual(n Mat, eps float64) bool {
	return NearEqual(m.M00, n.M00, eps) &&
		NearEqual(m.M01, n.M01, eps) &&
		NearEqual(m.M10, n.M10, eps) &&
		NearEqual(m.M11, n.M11, eps)
}

func (m Mat) Array() [4]float64 {
	return [4]float64{m.M00, m.M01, m.M10, m.M11}
}

// PutMat writes the elements of m in row major order into dst at the given offset.
func PutMat[F Scalar](dst []F, offset int, m Mat) error {
	return putFloats(dst, offset, m.M00, m.M01, m.M10, m.M11)
}

// ParseMat parses a matrix in the form "m00,m01,m10,m11".
func ParseMat(text string) (Mat, error) {
	values, err := parseFloats("mat", text, 4)
	if err != nil {
		return Mat{}, err
	}

	return MatFromArray([4]float64(values)), nil
}

// Hash returns a deterministic, non cryptographic hash of the rounded elements.
func (m Mat) Hash() uint64 {
	return hashFloats(m.M00, m.M01, m.M10, m.M11)
}

func (m Mat) String() string {
	return fmt.Sprintf("mat(%v, %v; %v, %v)", m.M00, m.M01, m.M10, m.M11)
}

// SetMul sets m to the product a×b and returns m.
// It is safe for m to alias a or b.
func (m *Mat) SetMul(a, b *Mat) *Mat {
	*m = a.Mul(*b)
	return m
}

// MulAssign sets m to m×n.
func (m *Mat) MulAssign(n Mat) *Mat {
	*m = m.Mul(n)
	return m
}

// PreMulAssign sets m to n×m.
func (m *Mat) PreMulAssign(n Mat) *Mat {
	*m = n.Mul(*m)
	return m
}

func (m *Mat) TransposeAssign() *Mat {
	m.M01, m.M10 = m.M10, m.M01
	return m
}

// InvertAssign inverts m in place. m is left untouched if it is singular.
func (m *Mat) InvertAssign() error {
	inverse, err := m.Inverse()
	if err != nil {
		return err
	}

	*m = inverse
	return nil
}

func (m *Mat) OrthonormalizeAssign() *Mat {
	*m = m.Orthonormalize()
	return m
}
