package ndarray

import (
	"errors"

	"github.com/born-ml/ndkit/internal/buffer"
)

// ErrRankMismatch indicates that a coordinate count does not match an
// array's rank, or that an iteration depth is invalid for a decomposition.
var ErrRankMismatch = errors.New("rank mismatch")

// Buffer-level sentinels, re-exported so callers of this package can match
// every error kind with a single import.
var (
	ErrIndexOutOfRange = buffer.ErrIndexOutOfRange
	ErrShapeMismatch   = buffer.ErrShapeMismatch
	ErrInvalidOffset   = buffer.ErrInvalidOffset
	ErrBufferUnderrun  = buffer.ErrBufferUnderrun
	ErrBufferOverrun   = buffer.ErrBufferOverrun
	ErrReadOnly        = buffer.ErrReadOnly
)
