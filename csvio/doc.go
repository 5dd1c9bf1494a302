// Package csvio moves stage vectors, projection matrices and projected
// series between delimited text and package population.
//
// Reading yields plain numeric slices; shape validation stays in
// population.Build so every caller sees the same ShapeError sentinels.
// Writing renders one line per projection step:
//
//	10, 40, 111
//	11.1, 38, 137.45
//
// Values use the shortest round-trip formatting unless WithPrecision is set.
package csvio
