// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.22
//

package golsq

import "errors"

// ErrDimensionMismatch is returned when matrix and vector sizes are
// incompatible. It is detected before any numeric work is done.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// ErrSingularMatrix is returned when a factorization or inversion is
// requested on a matrix the backend cannot solve (exact singularity,
// not mere ill-conditioning).
var ErrSingularMatrix = errors.New("singular matrix")
