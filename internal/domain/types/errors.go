package types

import "errors"

// ErrCorrupt is returned when a stored file exists but does not decode.
var ErrCorrupt = errors.New("stored file is not valid JSON")
