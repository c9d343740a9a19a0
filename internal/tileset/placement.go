package tileset

// Placement records where one input tile ended up in a tileset.
type Placement struct {
	Name   string `json:"name"`
	Index  int    `json:"index"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Placements lists the cell of each named tile in input order. Names past
// the layout's capacity are ignored.
func Placements(names []string, layout Layout) []Placement {
	n := len(names)
	if c := layout.Capacity(); n > c {
		n = c
	}

	out := make([]Placement, 0, n)
	for i := 0; i < n; i++ {
		r := layout.Cell(i)
		out = append(out, Placement{
			Name:   names[i],
			Index:  i,
			X:      r.Min.X,
			Y:      r.Min.Y,
			Width:  r.Dx(),
			Height: r.Dy(),
		})
	}
	return out
}
