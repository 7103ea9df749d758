package navigator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinser/toyrobot/internal/robot"
	"github.com/vinser/toyrobot/internal/table"
)

func TestRoutePreconditions(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		want   error
		reason string
	}{
		{"pothole", 2, 3, ErrObstructed, "the place you wish to go has a pothole"},
		{"other pothole", 2, 1, ErrObstructed, "the place you wish to go has a pothole"},
		{"beyond barrier", 5, 0, ErrOutOfBounds, "the place you wish to go is beyond the barrier"},
		{"negative", 0, -1, ErrOutOfBounds, "the place you wish to go is beyond the barrier"},
		{"already there", 2, 4, ErrAlreadyArrived, "you are already on your final destination"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := placed(t, 2, 4, "south")
			_, err := n.Route(tt.x, tt.y)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.reason, Reason(err))

			report, _ := n.Report()
			assert.Equal(t, "2,4,south", report)
		})
	}
}

func TestGreedyRoute(t *testing.T) {
	tests := []struct {
		name      string
		x, y      int
		face      string
		tx, ty    int
		trace     string
		finalFace robot.Orientation
	}{
		{name: "around the corner", x: 0, y: 0, face: "east", tx: 4, ty: 2,
			trace: "move, move, move, move, left move, move", finalFace: robot.North},
		{name: "along the edges", x: 0, y: 0, face: "north", tx: 2, ty: 0,
			trace: "move, move, move, move, right move, move, move, move, right move, move, move, move, right move, move", finalFace: robot.West},
		{name: "straight ahead", x: 0, y: 2, face: "east", tx: 3, ty: 2,
			trace: "move, move, move", finalFace: robot.East},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := placed(t, tt.x, tt.y, tt.face)
			route, err := n.Route(tt.tx, tt.ty)
			require.NoError(t, err)
			assert.Equal(t, tt.trace, route.String())
			assert.Len(t, route.Path, len(route.Steps))

			target := robot.Position{X: tt.tx, Y: tt.ty}
			assert.Equal(t, target, route.Path[len(route.Path)-1])
			assert.Equal(t, robot.Snapshot{X: tt.tx, Y: tt.ty, Orientation: tt.finalFace}, route.Final)

			s, _ := n.Snapshot()
			assert.Equal(t, route.Final, s, "robot must end in the final route state")
		})
	}
}

func TestGreedyRouteTurnsBack(t *testing.T) {
	// 2 . .
	// 1 . o
	// 0 ^ o
	tbl, err := table.New(0, 2, []robot.Position{{X: 1, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)
	n := New(tbl)
	_, err = n.Place(0, 0, "south")
	require.NoError(t, err)

	route, err := n.Route(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []Step{StepLeftMove, StepMove}, route.Steps)
	assert.Equal(t, "left move, move", route.String())
	assert.Equal(t, []robot.Position{{X: 0, Y: 1}, {X: 0, Y: 2}}, route.Path)

	report, err := n.Report()
	require.NoError(t, err)
	assert.Equal(t, "0,2,north", report)
}

func TestGreedyRouteNeverEntersPothole(t *testing.T) {
	n := placed(t, 0, 0, "east")
	route, err := n.Route(4, 2)
	require.NoError(t, err)
	require.NotEmpty(t, route.Steps)
	for _, p := range route.Path {
		assert.True(t, n.Table().Passable(p), "route visits %v", p)
	}
}

func TestGreedyRouteUnreachable(t *testing.T) {
	// Following the edge from the corner never reaches the centre.
	n := placed(t, 0, 0, "east")
	_, err := n.Route(2, 2)
	require.ErrorIs(t, err, ErrRouteUnreachable)

	report, _ := n.Report()
	assert.Equal(t, "0,0,east", report, "failed route must not move the robot")
}

func TestRouteBoxedIn(t *testing.T) {
	tb, err := table.New(0, 2, []robot.Position{{X: 0, Y: 1}, {X: 1, Y: 0}})
	require.NoError(t, err)
	n := New(tb)
	_, err = n.Place(0, 0, "north")
	require.NoError(t, err)

	_, err = n.Route(2, 2)
	require.ErrorIs(t, err, ErrRouteUnreachable)
	assert.Equal(t, "the robot is boxed in", Reason(err))
}

func TestRouteMaxSteps(t *testing.T) {
	n := New(table.Default(), WithRouter(Greedy{MaxSteps: 3}))
	_, err := n.Place(0, 0, "east")
	require.NoError(t, err)

	_, err = n.Route(4, 2)
	require.ErrorIs(t, err, ErrRouteUnreachable)

	route, err := n.Route(3, 0)
	require.NoError(t, err)
	assert.Equal(t, "move, move, move", route.String())
}

func TestTowardRoute(t *testing.T) {
	n := New(table.Default(), WithRouter(Toward{}))
	_, err := n.Place(0, 0, "east")
	require.NoError(t, err)

	route, err := n.Route(2, 2)
	require.NoError(t, err)
	assert.Equal(t, "move, move, move, left move, move, left move", route.String())
	assert.Equal(t, robot.Snapshot{X: 2, Y: 2, Orientation: robot.West}, route.Final)
}

// Every router either reaches the target over passable cells or reports the
// route as unreachable; it never loops.
func TestRoutersTerminate(t *testing.T) {
	tb := table.Default()
	for _, router := range []Router{Greedy{}, Toward{}} {
		t.Run(router.Name(), func(t *testing.T) {
			reached := 0
			for sx := tb.Min; sx <= tb.Max; sx++ {
				for sy := tb.Min; sy <= tb.Max; sy++ {
					for tx := tb.Min; tx <= tb.Max; tx++ {
						for ty := tb.Min; ty <= tb.Max; ty++ {
							start, target := robot.Position{X: sx, Y: sy}, robot.Position{X: tx, Y: ty}
							if !tb.Passable(start) || !tb.Passable(target) || start == target {
								continue
							}
							for _, dir := range robot.Orientations() {
								route, err := router.Route(tb, *robot.New(start, dir), target)
								if err != nil {
									require.ErrorIs(t, err, ErrRouteUnreachable)
									continue
								}
								reached++
								require.Equal(t, target, route.Final.Pos())
								for _, p := range route.Path {
									require.True(t, tb.Passable(p))
								}
							}
						}
					}
				}
			}
			assert.Positive(t, reached)
		})
	}
}

func TestParseRouter(t *testing.T) {
	r, err := ParseRouter("")
	require.NoError(t, err)
	assert.Equal(t, "greedy", r.Name())

	r, err = ParseRouter("Toward")
	require.NoError(t, err)
	assert.Equal(t, "toward", r.Name())

	_, err = ParseRouter("astar")
	assert.Error(t, err)
	assert.Equal(t, []string{"greedy", "toward"}, RouterNames())
}
