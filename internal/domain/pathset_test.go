package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tracePair(t *testing.T, a, b string) PathSet {
	t.Helper()
	pa, err := Trace(a)
	require.NoError(t, err)
	pb, err := Trace(b)
	require.NoError(t, err)
	return NewPathSet(pa, pb)
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 2, Manhattan([]int{2, 2}, []int{3, 3}))
	assert.Equal(t, 3, Manhattan([]int{2, 2, 2}, []int{3, 3, 3}))
	assert.Equal(t, 0, Manhattan(nil, nil))
	assert.Equal(t, 2, Point{2, 2}.DistanceTo(Point{3, 3}))
}

func TestManhattan_SymmetricAndTriangle(t *testing.T) {
	pts := []Point{{0, 0}, {3, -4}, {-7, 2}, {5, 5}, {-1, -1}}
	for _, a := range pts {
		for _, b := range pts {
			assert.Equal(t, a.DistanceTo(b), b.DistanceTo(a))
			for _, c := range pts {
				assert.LessOrEqual(t, a.DistanceTo(c), a.DistanceTo(b)+b.DistanceTo(c))
			}
		}
	}
}

func TestPointLess(t *testing.T) {
	assert.True(t, Point{1, 9}.Less(Point{2, 0}))
	assert.True(t, Point{1, 1}.Less(Point{1, 2}))
	assert.False(t, Point{1, 2}.Less(Point{1, 2}))
	assert.Equal(t, "(-3,4)", Point{-3, 4}.String())
}

func TestPathSet_ScenarioA(t *testing.T) {
	set := tracePair(t, "R8,U5,L5,D3", "U7,R6,D4,L4")

	assert.Equal(t, []Point{{3, 3}, {6, 5}}, set.Intersections())

	pt, dist, ok := set.ClosestByDistance()
	require.True(t, ok)
	assert.Equal(t, 6, dist)
	assert.Equal(t, Point{3, 3}, pt)

	steps, ok := set.ClosestByCombinedSteps()
	require.True(t, ok)
	assert.Equal(t, 30, steps)

	pt, steps, ok = set.CheapestByCombinedSteps()
	require.True(t, ok)
	assert.Equal(t, 30, steps)
	assert.Equal(t, Point{6, 5}, pt)
}

func TestPathSet_ScenarioB(t *testing.T) {
	set := tracePair(t,
		"R75,D30,R83,U83,L12,D49,R71,U7,L72",
		"U62,R66,U55,R34,D71,R55,D58,R83")

	steps, ok := set.ClosestByCombinedSteps()
	require.True(t, ok)
	assert.Equal(t, 610, steps)

	_, dist, ok := set.ClosestByDistance()
	require.True(t, ok)
	assert.Equal(t, 159, dist)
}

func TestPathSet_ScenarioC(t *testing.T) {
	set := tracePair(t,
		"R98,U47,R26,D63,R33,U87,L62,D20,R33,U53,R51",
		"U98,R91,D20,R16,D67,R40,U7,R15,U6,R7")

	steps, ok := set.ClosestByCombinedSteps()
	require.True(t, ok)
	assert.Equal(t, 410, steps)

	_, dist, ok := set.ClosestByDistance()
	require.True(t, ok)
	assert.Equal(t, 135, dist)
}

func TestPathSet_Crossings(t *testing.T) {
	set := tracePair(t, "R8,U5,L5,D3", "U7,R6,D4,L4")
	assert.Equal(t, []Crossing{
		{Point: Point{3, 3}, Distance: 6, Steps: 40},
		{Point: Point{6, 5}, Distance: 11, Steps: 30},
	}, set.Crossings())
}

func TestPathSet_Idempotent(t *testing.T) {
	set := tracePair(t, "R8,U5,L5,D3", "U7,R6,D4,L4")
	first := set.Intersections()
	first[0] = Point{100, 100}
	assert.Equal(t, []Point{{3, 3}, {6, 5}}, set.Intersections())
}

func TestPathSet_SinglePath(t *testing.T) {
	set := NewPathSet(MustTrace("R8,U5,L5,D3"))

	assert.Empty(t, set.Intersections())
	_, _, ok := set.ClosestByDistance()
	assert.False(t, ok)
	_, ok = set.ClosestByCombinedSteps()
	assert.False(t, ok)
}

func TestPathSet_NoPaths(t *testing.T) {
	set := NewPathSet()
	assert.Empty(t, set.Intersections())
	assert.Empty(t, set.Crossings())
}

func TestPathSet_Disjoint(t *testing.T) {
	set := tracePair(t, "R5", "L5")
	assert.Empty(t, set.Intersections())
	_, _, ok := set.ClosestByDistance()
	assert.False(t, ok)
}

func TestPathSet_IdenticalPaths(t *testing.T) {
	set := tracePair(t, "U2,R1", "U2,R1")
	assert.Equal(t, []Point{{0, 1}, {0, 2}, {1, 2}}, set.Intersections())

	steps, ok := set.ClosestByCombinedSteps()
	require.True(t, ok)
	assert.Equal(t, 2, steps)
}

func TestPathSet_OriginNeverReported(t *testing.T) {
	// Both paths return through the origin.
	set := tracePair(t, "R1,L2", "L1,R2")
	assert.Equal(t, []Point{{-1, 0}, {1, 0}}, set.Intersections())
}

func TestPathSet_SelfCrossingUsesFirstVisit(t *testing.T) {
	// The first path reaches (1,0) at step 1 and again at step 3.
	set := tracePair(t, "R2,L1", "U1,R1,D1")

	steps, ok := set.ClosestByCombinedSteps()
	require.True(t, ok)
	assert.Equal(t, 1+3, steps)
}

func TestPathSet_ThreePaths(t *testing.T) {
	set := NewPathSet(
		MustTrace("R8,U5,L5,D3"),
		MustTrace("U7,R6,D4,L4"),
		MustTrace("U3,R3"),
	)
	assert.Equal(t, []Point{{3, 3}}, set.Intersections())

	steps, ok := set.ClosestByCombinedSteps()
	require.True(t, ok)
	assert.Equal(t, 20+20+6, steps)
}

func TestPathSet_DistanceTieIsLexicographicallyFirst(t *testing.T) {
	// (-1,0), (0,1) and (1,0) are all shared at distance 1.
	set := tracePair(t, "L1,U1,R2,D1", "R1,U1,L2,D1")

	pt, dist, ok := set.ClosestByDistance()
	require.True(t, ok)
	assert.Equal(t, 1, dist)
	assert.Equal(t, Point{-1, 0}, pt)
}

func TestPathSet_ConcurrentQueries(t *testing.T) {
	set := tracePair(t,
		"R75,D30,R83,U83,L12,D49,R71,U7,L72",
		"U62,R66,U55,R34,D71,R55,D58,R83")

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if steps, ok := set.ClosestByCombinedSteps(); !ok || steps != 610 {
				errs <- "combined steps"
			}
			if _, d, ok := set.ClosestByDistance(); !ok || d != 159 {
				errs <- "distance"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Errorf("concurrent query returned wrong %s", e)
	}
}
