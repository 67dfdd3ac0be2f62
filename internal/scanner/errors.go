package scanner

import "errors"

// ErrCycleInProgress indicates a scan was requested while another is running.
var ErrCycleInProgress = errors.New("scan cycle already in progress")
