package geom

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Pt(10, 5)

	if got := p.Add(Pt(3, -2)); got != Pt(13, 3) {
		t.Errorf("Add = %v, want (13,3)", got)
	}
	if got := p.Sub(Pt(3, -2)); got != Pt(7, 7) {
		t.Errorf("Sub = %v, want (7,7)", got)
	}
	if got := Pt(31, 17).Half(); got != Pt(15, 8) {
		t.Errorf("Half = %v, want (15,8)", got)
	}
	if got := Pt(-5, -3).Half(); got != Pt(-2, -1) {
		t.Errorf("Half of negative = %v, want (-2,-1)", got)
	}
}

func TestDirectionVectors(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Point
	}{
		{Up, Pt(0, -1)},
		{Right, Pt(1, 0)},
		{Down, Pt(0, 1)},
		{Left, Pt(-1, 0)},
	}

	for _, tt := range tests {
		if got := tt.dir.Vector(); got != tt.want {
			t.Errorf("%v.Vector() = %v, want %v", tt.dir, got, tt.want)
		}
		if got := tt.dir.Opposite().Vector(); got != Pt(-tt.want.X, -tt.want.Y) {
			t.Errorf("%v.Opposite().Vector() = %v", tt.dir, got)
		}
	}
}

func TestDirectionValid(t *testing.T) {
	for _, d := range Directions {
		if !d.Valid() {
			t.Errorf("%v should be valid", d)
		}
	}
	if Direction(4).Valid() || Direction(-1).Valid() {
		t.Error("out of range directions should be invalid")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(30, 16))

	if r.Left() != -15 || r.Right() != 14 {
		t.Errorf("horizontal extent = [%d,%d], want [-15,14]", r.Left(), r.Right())
	}
	if r.Top() != -8 || r.Bottom() != 7 {
		t.Errorf("vertical extent = [%d,%d], want [-8,7]", r.Top(), r.Bottom())
	}

	odd := NewRect(Pt(25, 3), Pt(21, 11))
	if odd.Right()-odd.Left()+1 != 21 || odd.Bottom()-odd.Top()+1 != 11 {
		t.Errorf("odd rect spans %dx%d, want 21x11",
			odd.Right()-odd.Left()+1, odd.Bottom()-odd.Top()+1)
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(Pt(0, 0), Pt(30, 16)) // x [-15,14], y [-8,7]

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"overlapping corner", NewRect(Pt(14, 7), Pt(4, 4)), true},
		{"sharing right column", NewRect(Pt(24, 0), Pt(20, 10)), true}, // x [14,33]
		{"touching right", NewRect(Pt(25, 0), Pt(20, 10)), false},      // x [15,34]
		{"touching below", NewRect(Pt(0, 13), Pt(10, 10)), false},      // y [8,17]
		{"far away", NewRect(Pt(100, 100), Pt(5, 5)), false},
		{"contained", NewRect(Pt(1, 1), Pt(3, 3)), true},
		{"overlap x only", NewRect(Pt(0, 30), Pt(10, 10)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(4, 4)) // x [-2,1], y [-2,1]

	if !r.Contains(Pt(-2, -2)) || !r.Contains(Pt(1, 1)) {
		t.Error("corners should be contained")
	}
	if r.Contains(Pt(2, 0)) || r.Contains(Pt(0, -3)) {
		t.Error("points outside should not be contained")
	}
}
