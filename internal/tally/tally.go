package tally

import "fmt"

// Tally counts what happened during a session.
type Tally struct {
	commands   int
	moves      int
	turns      int
	routes     int
	routeSteps int
	rejected   int
}

func New() *Tally {
	return &Tally{}
}

func (t *Tally) AddCommand() {
	t.commands++
}

func (t *Tally) AddMove() {
	t.moves++
}

func (t *Tally) AddTurn() {
	t.turns++
}

// AddRoute records a computed route of the given number of steps.
func (t *Tally) AddRoute(steps int) {
	t.routes++
	t.routeSteps += steps
}

func (t *Tally) AddRejected() {
	t.rejected++
}

func (t *Tally) Commands() int {
	return t.commands
}

// Moves returns single moves plus route steps.
func (t *Tally) Moves() int {
	return t.moves + t.routeSteps
}

func (t *Tally) Turns() int {
	return t.turns
}

func (t *Tally) Routes() int {
	return t.routes
}

func (t *Tally) Rejected() int {
	return t.rejected
}

func (t *Tally) Reset() {
	*t = Tally{}
}

func (t *Tally) String() string {
	return fmt.Sprintf("Moves: %d  Turns: %d  Routes: %d  Rejected: %d", t.Moves(), t.turns, t.routes, t.rejected)
}
