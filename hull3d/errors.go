package hull3d

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance. Both concrete input errors wrap
// ErrDegenerateInput, the only error kind surfaced to callers.
var (
	// ErrDegenerateInput indicates the point cloud cannot support a 3D hull.
	ErrDegenerateInput = errors.New("hull3d: degenerate input")

	// ErrTooFewPoints indicates fewer than four input points.
	ErrTooFewPoints = fmt.Errorf("%w: at least four points are required", ErrDegenerateInput)

	// ErrCoplanarInput indicates no affinely independent four-point subset
	// was found within the bounded number of shuffle attempts.
	ErrCoplanarInput = fmt.Errorf("%w: points are coplanar", ErrDegenerateInput)
)
