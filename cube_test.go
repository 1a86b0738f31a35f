package rubikscube

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rows renders a face as three row strings, e.g. {"WWB", "WWB", "RRR"}.
func rows(c *Cube, f FaceID) [3]string {
	g := c.Face(f)
	return [3]string{g.Row(0), g.Row(1), g.Row(2)}
}

// randomCube returns a cube with arbitrary tiles from a seeded source.
func randomCube(t *testing.T, seed uint64) *Cube {
	t.Helper()
	e := NewEngine(WithRand(rand.New(rand.NewPCG(seed, seed+1))))
	e.Shuffle()
	return e.Cube()
}

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	assert.True(t, c.IsSolved(), "New cube should be solved")
	assert.True(t, c.IsBalanced())

	for _, f := range Faces {
		assert.Equal(t, Fill(f.SolvedColor()), c.Face(f), "face %s", f)
	}
	assert.Equal(t, White, Up.SolvedColor())
	assert.Equal(t, Red, Left.SolvedColor())
	assert.Equal(t, Blue, Front.SolvedColor())
	assert.Equal(t, Orange, Right.SolvedColor())
	assert.Equal(t, Green, Bottom.SolvedColor())
	assert.Equal(t, Yellow, Back.SolvedColor())
}

func TestNewCubeFromFaces(t *testing.T) {
	faces := map[FaceID]Grid{}
	for _, f := range Faces {
		faces[f] = Fill(f.SolvedColor())
	}
	c, err := NewCubeFromFaces(faces)
	require.NoError(t, err)
	assert.True(t, c.IsSolved())

	delete(faces, Back)
	_, err = NewCubeFromFaces(faces)
	assert.ErrorIs(t, err, ErrMissingFace)

	faces[Back] = Fill(Yellow)
	faces[FaceID(9)] = Fill(White)
	_, err = NewCubeFromFaces(faces)
	assert.ErrorIs(t, err, ErrUnknownFace)
}

func TestRotateCW(t *testing.T) {
	g := Grid{
		{White, Red, Blue},
		{Orange, Green, Yellow},
		{White, White, Red},
	}
	want := Grid{
		{White, Orange, White},
		{White, Green, Red},
		{Red, Yellow, Blue},
	}
	assert.Equal(t, want, g.RotateCW())
}

func TestRotateCCW(t *testing.T) {
	g := Grid{
		{White, Red, Blue},
		{Orange, Green, Yellow},
		{White, White, Red},
	}
	want := Grid{
		{Blue, Yellow, Red},
		{Red, Green, White},
		{White, Orange, White},
	}
	assert.Equal(t, want, g.RotateCCW())
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	c := randomCube(t, 7)
	for _, f := range Faces {
		g := c.Face(f)
		assert.Equal(t, g, g.RotateCW().RotateCW().RotateCW().RotateCW(), "CW x 4 on %s", f)
		assert.Equal(t, g, g.RotateCCW().RotateCCW().RotateCCW().RotateCCW(), "CCW x 4 on %s", f)
		assert.Equal(t, g, g.RotateCW().RotateCCW(), "CW then CCW on %s", f)
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, m := range Turns {
		c := NewCube()
		require.Equal(t, Applied, c.Apply(m))
		assert.False(t, c.IsSolved(), "cube should not be solved after %s", m)
		assert.True(t, c.IsBalanced(), "%s should keep nine tiles per color", m)
	}
}

func TestTurnFourTimesReturnsToStart(t *testing.T) {
	for _, m := range Turns {
		c := NewCube()
		for i := 0; i < 4; i++ {
			c.Apply(m)
		}
		if !c.IsSolved() {
			t.Errorf("%s x 4 should return to solved", m)
			t.Log(c.String())
		}

		start := randomCube(t, 11)
		r := start.Clone()
		for i := 0; i < 4; i++ {
			r.Apply(m)
		}
		assert.True(t, start.Equal(r), "%s x 4 on a shuffled cube", m)
	}
}

func TestInverseRestoresState(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		start := randomCube(t, seed)
		for _, m := range Turns {
			c := start.Clone()
			c.Apply(m)
			c.Apply(m.Inverse())
			if !start.Equal(c) {
				t.Errorf("%s then %s should restore the cube", m, m.Inverse())
				t.Log(c.String())
			}
		}
	}
}

func TestCommutatorsHaveOrderSix(t *testing.T) {
	// Every pair of adjacent layers: (a b a' b') x 6 = identity
	pairs := [][2]Move{
		{RPlus, UPlus}, {FPlus, RPlus}, {LPlus, UPlus}, {UPlus, FPlus},
		{BPlus, RPlus}, {LPlus, BPlus}, {FPlus, BPlus}, {FPlus, LPlus},
	}
	for _, p := range pairs {
		c := NewCube()
		for i := 0; i < 6; i++ {
			c.ApplyMoves(Commutator(p[0], p[1]))
		}
		if !c.IsSolved() {
			t.Errorf("(%s %s %s %s) x 6 should return to solved", p[0], p[1], p[0].Inverse(), p[1].Inverse())
			t.Log(c.String())
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	for i := 0; i < 6; i++ {
		c.ApplyMoves(SexyMove)
	}
	assert.True(t, c.IsSolved(), "Sexy move x 6 should return to solved")

	c.ApplyMoves(SexyMove)
	assert.False(t, c.IsSolved())
	c.ApplyMoves(Invert(SexyMove))
	assert.True(t, c.IsSolved())
}

func TestFrontClockwiseFromSolved(t *testing.T) {
	c := NewCube()
	front := c.Face(Front)
	c.Apply(FPlus)

	assert.Equal(t, front.RotateCW(), c.Face(Front))
	assert.Equal(t, [3]string{"WWW", "WWW", "RRR"}, rows(c, Up))
	assert.Equal(t, [3]string{"RRG", "RRG", "RRG"}, rows(c, Left))
	assert.Equal(t, [3]string{"WOO", "WOO", "WOO"}, rows(c, Right))
	assert.Equal(t, [3]string{"OOO", "GGG", "GGG"}, rows(c, Bottom))
	assert.Equal(t, [3]string{"YYY", "YYY", "YYY"}, rows(c, Back))
}

func TestSeamReversal(t *testing.T) {
	// R+ leaves mixed strips on Bottom and Back, so F+ afterwards shows
	// whether each seam copies forwards or reversed.
	c := NewCube()
	c.Apply(RPlus)
	assert.Equal(t, [3]string{"WWB", "WWB", "WWB"}, rows(c, Up))
	assert.Equal(t, [3]string{"BBG", "BBG", "BBG"}, rows(c, Front))
	assert.Equal(t, [3]string{"GGY", "GGY", "GGY"}, rows(c, Bottom))
	assert.Equal(t, [3]string{"WYY", "WYY", "WYY"}, rows(c, Back))

	c.Apply(FPlus)
	assert.Equal(t, [3]string{"WWB", "WWB", "RRR"}, rows(c, Up))
	assert.Equal(t, [3]string{"RRG", "RRG", "RRY"}, rows(c, Left))
	assert.Equal(t, [3]string{"BBB", "BBB", "GGG"}, rows(c, Front))
	assert.Equal(t, [3]string{"WOO", "WOO", "BOO"}, rows(c, Right))
	assert.Equal(t, [3]string{"OOO", "GGY", "GGY"}, rows(c, Bottom))
	assert.Equal(t, [3]string{"WYY", "WYY", "WYY"}, rows(c, Back))

	c = NewCube()
	c.Apply(LPlus)
	c.Apply(FMinus)
	assert.Equal(t, [3]string{"YWW", "YWW", "OOO"}, rows(c, Up))
	assert.Equal(t, [3]string{"RRW", "RRW", "RRY"}, rows(c, Left))
	assert.Equal(t, [3]string{"GOO", "GOO", "BOO"}, rows(c, Right))
	assert.Equal(t, [3]string{"RRR", "BGG", "BGG"}, rows(c, Bottom))
	assert.Equal(t, [3]string{"YYG", "YYG", "YYG"}, rows(c, Back))
}

func TestLayerMovesFromSolved(t *testing.T) {
	c := NewCube()
	c.Apply(UPlus)
	assert.Equal(t, [3]string{"BBB", "RRR", "RRR"}, rows(c, Left))
	assert.Equal(t, [3]string{"OOO", "BBB", "BBB"}, rows(c, Front))
	assert.Equal(t, [3]string{"YYY", "OOO", "OOO"}, rows(c, Right))
	assert.Equal(t, [3]string{"RRR", "YYY", "YYY"}, rows(c, Back))

	c = NewCube()
	c.Apply(BPlus)
	assert.Equal(t, [3]string{"RRR", "RRR", "YYY"}, rows(c, Left))
	assert.Equal(t, [3]string{"BBB", "BBB", "RRR"}, rows(c, Front))
	assert.Equal(t, [3]string{"OOO", "OOO", "BBB"}, rows(c, Right))
	assert.Equal(t, [3]string{"YYY", "YYY", "OOO"}, rows(c, Back))
	assert.Equal(t, Fill(White), c.Face(Up))
	assert.Equal(t, Fill(Green), c.Face(Bottom))

	c = NewCube()
	c.Apply(LPlus)
	assert.Equal(t, [3]string{"YWW", "YWW", "YWW"}, rows(c, Up))
	assert.Equal(t, [3]string{"WBB", "WBB", "WBB"}, rows(c, Front))
	assert.Equal(t, [3]string{"BGG", "BGG", "BGG"}, rows(c, Bottom))
	assert.Equal(t, [3]string{"YYG", "YYG", "YYG"}, rows(c, Back))
}

func TestMoveTouchesOnlyLayer(t *testing.T) {
	start := randomCube(t, 3)
	for _, m := range Turns {
		face, _ := m.Face()
		touched := map[FaceID]map[cell]bool{}
		for _, s := range seams[face] {
			if touched[s.face] == nil {
				touched[s.face] = map[cell]bool{}
			}
			for _, p := range s.cells {
				touched[s.face][p] = true
			}
		}

		c := start.Clone()
		c.Apply(m)
		for _, f := range Faces {
			if f == face {
				continue
			}
			for r := 0; r < 3; r++ {
				for k := 0; k < 3; k++ {
					if touched[f][cell{r, k}] {
						continue
					}
					assert.Equal(t, start.Face(f)[r][k], c.Face(f)[r][k],
						"%s changed %s[%d][%d]", m, f, r, k)
				}
			}
		}
	}
}

func TestMovePermutesShuffledTiles(t *testing.T) {
	start := randomCube(t, 42)
	before := start.ColorCounts()
	for _, m := range Turns {
		c := start.Clone()
		c.Apply(m)
		assert.Equal(t, before, c.ColorCounts(), "%s must only move tiles", m)
	}
}

func TestExitAndUnknownLeaveCubeUnchanged(t *testing.T) {
	c := NewCube()
	c.Apply(RPlus)
	snapshot := c.Clone()

	assert.Equal(t, TerminateRequested, c.Apply(Exit))
	assert.True(t, snapshot.Equal(c))

	assert.Equal(t, Unrecognized, c.Apply(Move(200)))
	assert.True(t, snapshot.Equal(c))
}

func TestApplyMovesStopsAtExit(t *testing.T) {
	c := NewCube()
	n := c.ApplyMoves([]Move{RPlus, Exit, RMinus})
	assert.Equal(t, 1, n)

	want := NewCube()
	want.Apply(RPlus)
	assert.True(t, want.Equal(c))
}

func TestParseFace(t *testing.T) {
	f, err := ParseFace("Bottom")
	require.NoError(t, err)
	assert.Equal(t, Bottom, f)

	_, err = ParseFace("middle")
	assert.ErrorIs(t, err, ErrUnknownFace)
}

func TestCubeString(t *testing.T) {
	s := NewCube().String()
	assert.Contains(t, s, "      W W W \n")
	assert.Contains(t, s, "R R R B B B O O O Y Y Y \n")
	assert.Contains(t, s, "      G G G \n")
}
