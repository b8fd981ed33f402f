// Package gm (stands for geometry math) provides the 2d primitives of the planar kernel.
//
// It includes a 2d vector type called Vec, a 2x2 matrix type Mat, a unit complex
// rotation Rot, a rigid transform Transform and a general affine transform named Affine.
// There is also a type named Rad to represent angle values in radian.
//
// All types are small values. Methods with a value receiver never modify the
// receiver and return a new value. Methods with a pointer receiver modify the
// receiver in place and are named with an Assign suffix, or start with Set.
//
// Operations that are undefined for some inputs come in two flavours: the plain
// variant returns an error wrapping ErrDomain, the Safe variant returns a well defined
// degenerate value (usually zero) instead. Tolerance based comparisons panic
// if called with a negative epsilon.
package gm
