package table

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/models"
)

// VertexKey orders vertices inside a figure. Numeric keys sort by value
// and always before string keys; string keys sort lexicographically.
type VertexKey struct {
	Numeric bool
	N       int64
	S       string
}

// NewVertexKey builds the ordering key of a vertex-index cell: an integer
// when the cell holds one (or an integral number, or integer text),
// otherwise the trimmed text.
func NewVertexKey(v interface{}) VertexKey {
	switch t := v.(type) {
	case int64:
		return VertexKey{Numeric: true, N: t}
	case int:
		return VertexKey{Numeric: true, N: int64(t)}
	case float64:
		if n, ok := integral(t); ok {
			return VertexKey{Numeric: true, N: n}
		}
		return VertexKey{S: strconv.FormatFloat(t, 'f', -1, 64)}
	case nil:
		return VertexKey{}
	}

	s := strings.TrimSpace(fmt.Sprint(v))
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return VertexKey{Numeric: true, N: n}
	}
	return VertexKey{S: s}
}

// Less reports whether k sorts before other.
func (k VertexKey) Less(other VertexKey) bool {
	if k.Numeric != other.Numeric {
		return k.Numeric
	}
	if k.Numeric {
		return k.N < other.N
	}
	return k.S < other.S
}

// ExtractVertices returns the block's (x, y) pairs ordered by the vertex
// column, or in row order when vertexCol is empty. Rows whose coordinates
// are missing or non-numeric are dropped.
func ExtractVertices(rows []models.Row, xCol, yCol, vertexCol string) []orb.Point {
	type keyed struct {
		key VertexKey
		pt  orb.Point
	}

	var items []keyed
	for _, row := range rows {
		x, okX := ToFloat(row.Get(xCol))
		y, okY := ToFloat(row.Get(yCol))
		if !okX || !okY {
			continue
		}
		item := keyed{pt: orb.Point{x, y}}
		if vertexCol != "" {
			item.key = NewVertexKey(row.Get(vertexCol))
		}
		items = append(items, item)
	}

	if vertexCol != "" {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].key.Less(items[j].key)
		})
	}

	points := make([]orb.Point, 0, len(items))
	for _, it := range items {
		points = append(points, it.pt)
	}
	return points
}

// ToFloat coerces a cell to a finite float64.
func ToFloat(v interface{}) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int64:
		f = float64(t)
	case int:
		f = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func integral(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
