package navigator

import (
	"errors"
	"fmt"

	"github.com/vinser/toyrobot/internal/robot"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrInvalidOrientation = robot.ErrInvalidOrientation
	ErrOutOfBounds        = errors.New("out of bounds")
	ErrObstructed         = errors.New("obstructed")
	ErrAlreadyArrived     = errors.New("already arrived")
	ErrRouteUnreachable   = errors.New("route unreachable")
	ErrNotPlaced          = errors.New("should call place first")
)

// PositionError describes a rejected operation at a cell.
type PositionError struct {
	Op     string
	Pos    robot.Position
	Reason string
	Err    error
}

func (e *PositionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s %v: %s", e.Op, e.Pos, e.Reason)
	}
	return fmt.Sprintf("%s %v: %v", e.Op, e.Pos, e.Err)
}

func (e *PositionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func positionError(op string, pos robot.Position, kind error, reason string) error {
	return &PositionError{Op: op, Pos: pos, Reason: reason, Err: kind}
}

// Reason returns the human readable part of err, suitable for showing to a user.
func Reason(err error) string {
	var pe *PositionError
	if errors.As(err, &pe) && pe.Reason != "" {
		return pe.Reason
	}
	return err.Error()
}
