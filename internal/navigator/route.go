package navigator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vinser/toyrobot/internal/robot"
	"github.com/vinser/toyrobot/internal/table"
)

// Step labels one committed move of a route.
type Step string

const (
	StepMove        Step = "move"
	StepLeftMove    Step = "left move"
	StepRightMove   Step = "right move"
	StepReverseMove Step = "left left move"
)

// Route is the result of a route search.
type Route struct {
	Steps []Step
	Path  []robot.Position // cells entered, in order; the last one is the target
	Final robot.Snapshot
}

// String joins the step labels with ", ".
func (r Route) String() string {
	labels := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		labels[i] = string(s)
	}
	return strings.Join(labels, ", ")
}

// Router searches for a sequence of steps from a robot state to a target cell.
// Implementations must not mutate the table and must be deterministic.
type Router interface {
	Name() string
	Route(t *table.Table, from robot.Robot, target robot.Position) (Route, error)
}

// ParseRouter returns the router registered under name.
func ParseRouter(name string) (Router, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "greedy":
		return Greedy{}, nil
	case "toward":
		return Toward{}, nil
	}
	return nil, fmt.Errorf("unknown router %q", name)
}

// RouterNames lists the names accepted by ParseRouter.
func RouterNames() []string {
	return []string{Greedy{}.Name(), Toward{}.Name()}
}

type attempt struct {
	dir  robot.Orientation
	step Step
}

// Greedy keeps going straight and deviates only when blocked: straight, then
// left, then right, then back. It ignores where the target is, so it follows
// the table edge and potholes until it happens to reach the target.
type Greedy struct {
	// MaxSteps caps the route length. Zero means four times the number of cells.
	MaxSteps int
}

func (Greedy) Name() string { return "greedy" }

func (g Greedy) Route(t *table.Table, from robot.Robot, target robot.Position) (Route, error) {
	return walk(t, from, target, g.MaxSteps, func(_ robot.Position, o robot.Orientation) []attempt {
		return []attempt{
			{o, StepMove},
			{o.Left(), StepLeftMove},
			{o.Right(), StepRightMove},
			{o.Reverse(), StepLeftMove},
		}
	})
}

// Toward prefers the non-reversing step that brings the robot closest to the
// target by Manhattan distance. Ties go to straight, then left, then right.
// It reverses only when no other step is possible.
type Toward struct {
	// MaxSteps caps the route length. Zero means four times the number of cells.
	MaxSteps int
}

func (Toward) Name() string { return "toward" }

func (tw Toward) Route(t *table.Table, from robot.Robot, target robot.Position) (Route, error) {
	return walk(t, from, target, tw.MaxSteps, func(pos robot.Position, o robot.Orientation) []attempt {
		forward := []attempt{
			{o, StepMove},
			{o.Left(), StepLeftMove},
			{o.Right(), StepRightMove},
		}
		sort.SliceStable(forward, func(i, j int) bool {
			return manhattan(pos.Add(forward[i].dir.Step()), target) < manhattan(pos.Add(forward[j].dir.Step()), target)
		})
		return append(forward, attempt{o.Reverse(), StepReverseMove})
	})
}

type simState struct {
	pos robot.Position
	dir robot.Orientation
}

// walk simulates the robot from a copy of from, taking at each iteration the
// first passable attempt returned by choose. Routers are deterministic, so a
// repeated state means the search would loop forever.
func walk(t *table.Table, from robot.Robot, target robot.Position, limit int, choose func(robot.Position, robot.Orientation) []attempt) (Route, error) {
	if limit <= 0 {
		limit = 4*t.Size()*t.Size() + 1
	}
	sim := from.Clone()
	seen := make(map[simState]struct{})
	var route Route

	for sim.Pos() != target {
		s := simState{pos: sim.Pos(), dir: sim.Dir()}
		if _, looped := seen[s]; looped || len(route.Steps) >= limit {
			return Route{}, positionError("path", target, ErrRouteUnreachable, "cannot find a way to the place you wish to go")
		}
		seen[s] = struct{}{}

		moved := false
		for _, a := range choose(sim.Pos(), sim.Dir()) {
			next := sim.Pos().Add(a.dir.Step())
			if !t.Passable(next) {
				continue
			}
			sim.Update(next, a.dir)
			route.Steps = append(route.Steps, a.step)
			route.Path = append(route.Path, next)
			moved = true
			break
		}
		if !moved {
			return Route{}, positionError("path", target, ErrRouteUnreachable, "the robot is boxed in")
		}
	}

	route.Final = sim.Snapshot()
	return route, nil
}

func manhattan(a, b robot.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
