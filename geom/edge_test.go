package geom

import "testing"

func TestEdgeReverseEqual(t *testing.T) {
	a := Edge{A: 1, B: 2}
	b := Edge{A: 2, B: 1}
	c := Edge{A: 1, B: 3}

	if !a.ReverseEqual(b) {
		t.Fatalf("%v and %v should be reverse-equal", a, b)
	}
	if a.ReverseEqual(c) {
		t.Fatalf("%v and %v should not be reverse-equal", a, c)
	}
}

func TestTriangleEdges(t *testing.T) {
	tr := Triangle{A: 1, B: 2, C: 3}
	want := [3]Edge{{1, 2}, {2, 3}, {3, 1}}
	got := tr.Edges()
	if got != want {
		t.Fatalf("Edges() = %v, want %v", got, want)
	}
}

func TestTriangleSkinniness(t *testing.T) {
	pts := map[int]Point{
		1: NewPoint(complex(0, 0), 1),
		2: NewPoint(complex(1, 0), 2),
		3: NewPoint(complex(0, 10), 3),
	}
	tr := Triangle{A: 1, B: 2, C: 3}
	got := tr.Skinniness(pts)
	if got < 9 {
		t.Fatalf("Skinniness() = %v, want a skinny triangle (>= 9)", got)
	}
}
