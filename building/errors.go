package building

import "errors"

var (
	ErrSourceNotFound     = errors.New("building: source chamber not in graph")
	ErrTargetNotFound     = errors.New("building: target chamber not in graph")
	ErrUnreachableChamber = errors.New("building: chamber unreachable from the source")
	ErrGeometryMismatch   = errors.New("building: geometry does not match the Coxeter type")
	ErrNaNPosition        = errors.New("building: vertex position is NaN")
)
