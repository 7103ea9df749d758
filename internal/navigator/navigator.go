// Package navigator moves a single toy robot around a table.
//
// A Navigator owns one table and at most one robot. It validates placement,
// performs single steps and quarter turns, and computes routes to a target
// cell using a pluggable Router. A Navigator is not safe for concurrent use;
// every session must own its own instance.
package navigator

import (
	"github.com/vinser/toyrobot/internal/robot"
	"github.com/vinser/toyrobot/internal/table"
)

// Navigator validates and applies robot commands on a table.
type Navigator struct {
	table  *table.Table
	robot  *robot.Robot
	router Router
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithRouter sets the route search heuristic. Greedy is used by default.
func WithRouter(r Router) Option {
	return func(n *Navigator) {
		if r != nil {
			n.router = r
		}
	}
}

// New returns a navigator for t with no robot placed yet.
func New(t *table.Table, opts ...Option) *Navigator {
	n := &Navigator{
		table:  t,
		router: Greedy{},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Table returns the table the navigator operates on.
func (n *Navigator) Table() *table.Table {
	return n.table
}

// Router returns the configured route heuristic.
func (n *Navigator) Router() Router {
	return n.router
}

// SetRouter replaces the route heuristic. A nil router is ignored.
func (n *Navigator) SetRouter(r Router) {
	if r != nil {
		n.router = r
	}
}

// Placed reports whether a robot has been placed.
func (n *Navigator) Placed() bool {
	return n.robot != nil
}

// Place puts the robot at x,y facing face, replacing any previous placement.
func (n *Navigator) Place(x, y int, face string) (robot.Snapshot, error) {
	dir, err := robot.ParseOrientation(face)
	if err != nil {
		return robot.Snapshot{}, err
	}
	return n.place(robot.Position{X: x, Y: y}, dir)
}

// Restore places the robot from previously saved state.
func (n *Navigator) Restore(s robot.Snapshot) error {
	if _, err := s.Orientation.MarshalText(); err != nil {
		return err
	}
	_, err := n.place(s.Pos(), s.Orientation)
	return err
}

func (n *Navigator) place(pos robot.Position, dir robot.Orientation) (robot.Snapshot, error) {
	if n.table.IsForbidden(pos) {
		return robot.Snapshot{}, positionError("place", pos, ErrObstructed, "there is a pothole here")
	}
	if !n.table.Contains(pos) {
		return robot.Snapshot{}, positionError("place", pos, ErrOutOfBounds, "invalid place position")
	}
	n.robot = robot.New(pos, dir)
	return n.robot.Snapshot(), nil
}

// Snapshot returns the current robot state.
func (n *Navigator) Snapshot() (robot.Snapshot, error) {
	if n.robot == nil {
		return robot.Snapshot{}, ErrNotPlaced
	}
	return n.robot.Snapshot(), nil
}

// Report formats the robot state as "x,y,orientation".
func (n *Navigator) Report() (string, error) {
	s, err := n.Snapshot()
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

// Move advances the robot one cell in the direction it faces.
// The robot is left untouched when the move is rejected.
func (n *Navigator) Move() error {
	if n.robot == nil {
		return ErrNotPlaced
	}
	next := n.robot.NextPos()
	if n.table.IsForbidden(next) {
		return positionError("move", next, ErrObstructed, "there is a pothole here")
	}
	if !n.table.Contains(next) {
		return positionError("move", next, ErrOutOfBounds, "cannot move beyond the barrier")
	}
	n.robot.Update(next, n.robot.Dir())
	return nil
}

// Left turns the robot a quarter turn counterclockwise.
func (n *Navigator) Left() error {
	if n.robot == nil {
		return ErrNotPlaced
	}
	n.robot.Update(n.robot.Pos(), n.robot.Dir().Left())
	return nil
}

// Right turns the robot a quarter turn clockwise.
func (n *Navigator) Right() error {
	if n.robot == nil {
		return ErrNotPlaced
	}
	n.robot.Update(n.robot.Pos(), n.robot.Dir().Right())
	return nil
}

// Route computes the steps that bring the robot to x,y and, on success,
// leaves the robot in the final state of the route.
func (n *Navigator) Route(x, y int) (Route, error) {
	if n.robot == nil {
		return Route{}, ErrNotPlaced
	}
	target := robot.Position{X: x, Y: y}
	if n.table.IsForbidden(target) {
		return Route{}, positionError("path", target, ErrObstructed, "the place you wish to go has a pothole")
	}
	if !n.table.Contains(target) {
		return Route{}, positionError("path", target, ErrOutOfBounds, "the place you wish to go is beyond the barrier")
	}
	if n.robot.Pos() == target {
		return Route{}, positionError("path", target, ErrAlreadyArrived, "you are already on your final destination")
	}

	route, err := n.router.Route(n.table, *n.robot, target)
	if err != nil {
		return Route{}, err
	}
	n.robot.Update(route.Final.Pos(), route.Final.Orientation)
	return route, nil
}
