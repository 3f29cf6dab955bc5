package ai

import "errors"

// ErrNoFrames rejects a submission with zero frames before any job exists.
var ErrNoFrames = errors.New("no frames supplied")
