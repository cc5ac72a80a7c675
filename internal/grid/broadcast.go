package grid

import "fmt"

// MatchShape requires x to have exactly ref's shape.
func MatchShape(name string, x, ref *Grid) error {
	if x.r != ref.r || x.c != ref.c {
		return &ShapeError{Arg: name, Got: x.Shape(), Want: ref.Shape().String()}
	}
	return nil
}

// Broadcast expands x to rows×cols. The cases are tried in order and the
// first match wins: 1×1, 1×cols, rows×1, rows×cols. The result never aliases x.
func Broadcast(name string, x *Grid, rows, cols int) (*Grid, error) {
	out := &Grid{r: rows, c: cols, data: make([]float64, rows*cols)}

	switch {
	case x.r == 1 && x.c == 1:
		v := x.data[0]
		for i := range out.data {
			out.data[i] = v
		}
	case x.r == 1 && x.c == cols:
		for i := 0; i < rows; i++ {
			copy(out.data[i*cols:(i+1)*cols], x.data)
		}
	case x.r == rows && x.c == 1:
		for i := 0; i < rows; i++ {
			v := x.data[i]
			base := i * cols
			for j := 0; j < cols; j++ {
				out.data[base+j] = v
			}
		}
	case x.r == rows && x.c == cols:
		copy(out.data, x.data)
	default:
		return nil, &ShapeError{
			Arg:  name,
			Got:  x.Shape(),
			Want: fmt.Sprintf("1x1, 1x%d, %dx1 or %dx%d", cols, rows, rows, cols),
		}
	}

	return out, nil
}

// BroadcastTo is Broadcast against ref's shape.
func BroadcastTo(name string, x, ref *Grid) (*Grid, error) {
	return Broadcast(name, x, ref.r, ref.c)
}
