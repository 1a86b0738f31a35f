package rubikscube

import (
	"fmt"
	"strings"
)

// Color represents a tile color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Red    Color = 1 // Left face when solved
	Blue   Color = 2 // Front face when solved
	Orange Color = 3 // Right face when solved
	Green  Color = 4 // Bottom face when solved
	Yellow Color = 5 // Back face when solved
)

// Colors lists the palette in face order.
var Colors = [6]Color{White, Red, Blue, Orange, Green, Yellow}

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Red:
		return "R"
	case Blue:
		return "B"
	case Orange:
		return "O"
	case Green:
		return "G"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// Name returns the lower-case color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// FaceID identifies one of the six faces by position.
type FaceID int

const (
	Up     FaceID = 0
	Left   FaceID = 1
	Front  FaceID = 2
	Right  FaceID = 3
	Bottom FaceID = 4
	Back   FaceID = 5
)

// Faces lists every face in index order.
var Faces = [6]FaceID{Up, Left, Front, Right, Bottom, Back}

func (f FaceID) String() string {
	switch f {
	case Up:
		return "up"
	case Left:
		return "left"
	case Front:
		return "front"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Back:
		return "back"
	default:
		return "?"
	}
}

// ParseFace parses a face name as returned by FaceID.String.
func ParseFace(s string) (FaceID, error) {
	for _, f := range Faces {
		if f.String() == strings.ToLower(s) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFace, s)
}

// SolvedColor returns the color a face shows when the cube is solved.
func (f FaceID) SolvedColor() Color {
	return Colors[f]
}

// Grid is a 3x3 block of tiles addressed as [row][col].
//
// In the unfolded net, Up sits above Front (Up row 2 touches Front), Left,
// Front, Right and Back form one band whose row 0 touches Up, and Bottom sits
// below Front (Bottom row 0 touches Front).
type Grid [3][3]Color

// Fill returns a grid with every tile set to c.
func Fill(c Color) Grid {
	var g Grid
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			g[row][col] = c
		}
	}
	return g
}

// RotateCW returns the grid turned 90 degrees clockwise:
// tile (i, j) moves to (j, 2-i).
func (g Grid) RotateCW() Grid {
	var out Grid
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[j][2-i] = g[i][j]
		}
	}
	return out
}

// RotateCCW returns the grid turned 90 degrees counterclockwise:
// tile (i, j) moves to (2-j, i).
func (g Grid) RotateCCW() Grid {
	var out Grid
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[2-j][i] = g[i][j]
		}
	}
	return out
}

// Uniform reports whether every tile has the same color.
func (g Grid) Uniform() bool {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if g[row][col] != g[0][0] {
				return false
			}
		}
	}
	return true
}

// Row returns the three tiles of a row as a string, e.g. "WWB".
func (g Grid) Row(row int) string {
	return g[row][0].String() + g[row][1].String() + g[row][2].String()
}

// Cube holds the six faces of the puzzle.
// The zero value is not solved; use NewCube.
type Cube struct {
	faces [6]Grid
}

// NewCube creates a solved cube.
func NewCube() *Cube {
	c := &Cube{}
	for _, f := range Faces {
		c.faces[f] = Fill(f.SolvedColor())
	}
	return c
}

// NewCubeFromFaces builds a cube from explicit grids. All six faces must be
// present. The result is not checked for reachability.
func NewCubeFromFaces(faces map[FaceID]Grid) (*Cube, error) {
	c := &Cube{}
	for _, f := range Faces {
		g, ok := faces[f]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingFace, f)
		}
		c.faces[f] = g
	}
	if len(faces) != len(Faces) {
		return nil, fmt.Errorf("%w: got %d faces", ErrUnknownFace, len(faces))
	}
	return c, nil
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Face returns a copy of one face.
func (c *Cube) Face(f FaceID) Grid {
	return c.faces[f]
}

// Equal reports whether both cubes show the same tiles.
func (c *Cube) Equal(other *Cube) bool {
	return c.faces == other.faces
}

// IsSolved returns true if every face shows only its canonical color.
func (c *Cube) IsSolved() bool {
	for _, f := range Faces {
		if c.faces[f] != Fill(f.SolvedColor()) {
			return false
		}
	}
	return true
}

// ColorCounts returns how many tiles of each color the cube shows.
func (c *Cube) ColorCounts() map[Color]int {
	counts := make(map[Color]int, len(Colors))
	for _, f := range Faces {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				counts[c.faces[f][row][col]]++
			}
		}
	}
	return counts
}

// IsBalanced reports whether each color appears exactly nine times, which
// holds for every state reachable by moves alone.
func (c *Cube) IsBalanced() bool {
	counts := c.ColorCounts()
	for _, color := range Colors {
		if counts[color] != 9 {
			return false
		}
	}
	return len(counts) == len(Colors)
}

// String returns the unfolded net as text.
func (c *Cube) String() string {
	var b strings.Builder

	// Up face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.faces[Up][row][col].String() + " ")
		}
		b.WriteString("\n")
	}

	// Left, Front, Right, Back side by side
	for row := 0; row < 3; row++ {
		for _, f := range []FaceID{Left, Front, Right, Back} {
			for col := 0; col < 3; col++ {
				b.WriteString(c.faces[f][row][col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// Bottom face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.faces[Bottom][row][col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
