package shape

import "errors"

// ErrConstruction is the sentinel wrapped by every constructor validation
// failure (non-positive radius, inverted cube bounds, too few CSG
// operands, ...). Callers branch on it with errors.Is; the wrapping
// message carries the specific parameter that failed.
//
// Grounded on the sentinel-error convention used throughout
// katalvlaran/lvlath (builder/errors.go): package-level sentinels checked
// with errors.Is rather than ad-hoc string comparisons or panics, which the
// teacher module itself does not do but which spec.md §7 calls for
// explicitly (ConstructionError reported at construction time, no partial
// scene state produced).
var ErrConstruction = errors.New("shape: invalid construction parameters")

// ErrSingularTransform is returned by TransformedShape.Compile when the
// wrapped matrix's determinant falls below vecmath.SingularDetLimit and its
// inverse cannot be computed.
var ErrSingularTransform = errors.New("shape: transform matrix is singular")
