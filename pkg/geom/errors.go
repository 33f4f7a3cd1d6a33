package geom

import "errors"

// ErrNoPoints is returned when a bounding box is requested for an
// empty point set.
var ErrNoPoints = errors.New("bounding box of empty point set")
