package charting

import "errors"

var ErrUnknownService = errors.New("unknown service")
