package rubikscube

// cell addresses one tile of a face.
type cell struct {
	row, col int
}

// strip is a one-tile-deep border of a face, listed in seam order.
type strip struct {
	face  FaceID
	cells [3]cell
}

func row(r int) [3]cell         { return [3]cell{{r, 0}, {r, 1}, {r, 2}} }
func rowReversed(r int) [3]cell { return [3]cell{{r, 2}, {r, 1}, {r, 0}} }
func col(c int) [3]cell         { return [3]cell{{0, c}, {1, c}, {2, c}} }
func colReversed(c int) [3]cell { return [3]cell{{2, c}, {1, c}, {0, c}} }

// seams lists, per turnable face, the four strips around it. A clockwise turn
// moves strip k into strip k+1 and the last strip into the first. Reversed
// strips mark seams where the two borders run in opposite directions.
var seams = map[FaceID][4]strip{
	Up: {
		{Front, row(0)},
		{Left, row(0)},
		{Back, row(0)},
		{Right, row(0)},
	},
	Bottom: {
		{Front, row(2)},
		{Right, row(2)},
		{Back, row(2)},
		{Left, row(2)},
	},
	Front: {
		{Up, row(2)},
		{Right, col(0)},
		{Bottom, rowReversed(0)},
		{Left, colReversed(2)},
	},
	Right: {
		{Front, col(2)},
		{Up, col(2)},
		{Back, colReversed(0)},
		{Bottom, col(2)},
	},
	Left: {
		{Up, col(0)},
		{Front, col(0)},
		{Bottom, col(0)},
		{Back, colReversed(2)},
	},
}

// read copies the tiles of a strip.
func (c *Cube) read(s strip) [3]Color {
	var t [3]Color
	for i, p := range s.cells {
		t[i] = c.faces[s.face][p.row][p.col]
	}
	return t
}

// write stores tiles into a strip.
func (c *Cube) write(s strip, t [3]Color) {
	for i, p := range s.cells {
		c.faces[s.face][p.row][p.col] = t[i]
	}
}

// cycleSeamsCW moves each strip around face into the next one.
func (c *Cube) cycleSeamsCW(face FaceID) {
	s := seams[face]

	// Save last strip
	t := c.read(s[3])

	// 3 <- 2 <- 1 <- 0
	c.write(s[3], c.read(s[2]))
	c.write(s[2], c.read(s[1]))
	c.write(s[1], c.read(s[0]))

	// 0 <- 3 (saved)
	c.write(s[0], t)
}

// cycleSeamsCCW is the exact inverse of cycleSeamsCW.
func (c *Cube) cycleSeamsCCW(face FaceID) {
	s := seams[face]

	// Save first strip
	t := c.read(s[0])

	// 0 <- 1 <- 2 <- 3
	c.write(s[0], c.read(s[1]))
	c.write(s[1], c.read(s[2]))
	c.write(s[2], c.read(s[3]))

	// 3 <- 0 (saved)
	c.write(s[3], t)
}

// turn rotates one layer a quarter turn.
func (c *Cube) turn(face FaceID, clockwise bool) {
	if clockwise {
		c.faces[face] = c.faces[face].RotateCW()
		c.cycleSeamsCW(face)
		return
	}
	c.faces[face] = c.faces[face].RotateCCW()
	c.cycleSeamsCCW(face)
}
