package gridscan

// Components finds all contiguous regions ("islands") of land cells
// according to the configured connectivity, using a breadth-first flood
// fill over a separate visited set — the grid itself is never written.
//
// Components are reported in row-major order of their first (topmost,
// then leftmost) cell; cells within a component are in BFS discovery
// order starting from that cell.
//
// Time:   O(W×H×d), where d = 4 or 8.
// Memory: O(W×H) for visited flags and output.
func (g *Grid) Components() [][]Coord {
	total := g.width * g.height
	seen := make([]bool, total)
	var comps [][]Coord

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.IsLand(x, y) {
				continue // water
			}
			i0 := g.index(x, y)
			if seen[i0] {
				continue
			}
			comps = append(comps, g.flood(i0, seen))
		}
	}

	return comps
}

// flood collects one component by BFS from the seed cell index,
// marking cells in the shared visited set.
func (g *Grid) flood(seed int, seen []bool) []Coord {
	queue := []int{seed}
	seen[seed] = true
	comp := make([]Coord, 0, 4)

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ux, uy := g.coordinate(u)
		comp = append(comp, Coord{X: ux, Y: uy})
		for _, d := range g.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !g.IsLand(vx, vy) {
				continue
			}
			vi := g.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return comp
}

// CountIslands returns the number of connected land components.
// Equivalent to len(g.Components()) without materializing coordinates.
//
// Time:   O(W×H×d). Memory: O(W×H).
func (g *Grid) CountIslands() int {
	total := g.width * g.height
	seen := make([]bool, total)
	count := 0

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.IsLand(x, y) || seen[g.index(x, y)] {
				continue
			}
			count++
			g.flood(g.index(x, y), seen)
		}
	}

	return count
}
