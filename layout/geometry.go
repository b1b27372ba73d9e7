package layout

// Cluster is one physical group of keys.
type Cluster int

const (
	LeftHand Cluster = iota
	RightHand
	LeftThumb
	RightThumb
)

func (c Cluster) String() string {
	switch c {
	case LeftHand:
		return "left hand"
	case RightHand:
		return "right hand"
	case LeftThumb:
		return "left thumb"
	case RightThumb:
		return "right thumb"
	default:
		return "unknown"
	}
}

// span covers columns [from, to) of one matrix row.
type span struct {
	row, from, to int
}

// Main rows 0-4 per hand; thumb clusters use rows 5-7.
var clusterSpans = map[Cluster][]span{
	LeftHand: {
		{0, 0, 7}, {1, 0, 7}, {2, 0, 7},
		{3, 0, 6},
		{4, 0, 4},
	},
	RightHand: {
		{0, 7, 14}, {1, 7, 14}, {2, 7, 14},
		{3, 8, 14},
		{4, 10, 14},
	},
	LeftThumb: {
		{5, 5, 7}, {6, 5, 7}, {7, 5, 7},
	},
	RightThumb: {
		{5, 8, 10}, {6, 7, 9}, {7, 7, 9},
	},
}

// Clusters returns all clusters in display order.
func Clusters() []Cluster {
	return []Cluster{LeftHand, RightHand, LeftThumb, RightThumb}
}

// Rows returns the positions of c, one slice per physical row.
func (c Cluster) Rows() [][]Position {
	spans := clusterSpans[c]
	rows := make([][]Position, 0, len(spans))
	for _, s := range spans {
		row := make([]Position, 0, s.to-s.from)
		for col := s.from; col < s.to; col++ {
			row = append(row, Position{Row: s.row, Col: col})
		}
		rows = append(rows, row)
	}
	return rows
}

// Slots returns every physical key position.
func Slots() []Position {
	var out []Position
	for _, c := range Clusters() {
		for _, row := range c.Rows() {
			out = append(out, row...)
		}
	}
	return out
}

// ClusterOf returns the cluster containing p.
func ClusterOf(p Position) (Cluster, bool) {
	for c, spans := range clusterSpans {
		for _, s := range spans {
			if p.Row == s.row && p.Col >= s.from && p.Col < s.to {
				return c, true
			}
		}
	}
	return 0, false
}

// Contains reports whether p is a physical key slot.
func Contains(p Position) bool {
	_, ok := ClusterOf(p)
	return ok
}
