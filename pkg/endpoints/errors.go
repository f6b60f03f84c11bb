package endpoints

import "errors"

// ErrInvalidMarker indicates a marker value does not identify a package.
var ErrInvalidMarker = errors.New("endpoints: marker does not identify a module")
