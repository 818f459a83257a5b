package graphics

import "testing"

func TestRect_Inflate(t *testing.T) {
	r := RectFromLTWH(20, 40, 100, 40)
	got := r.Inflate(10)
	want := Rect{Left: 10, Top: 30, Right: 130, Bottom: 90}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
	if shrunk := got.Inflate(-10); shrunk != r {
		t.Errorf("expected deflate to restore %v, got %v", r, shrunk)
	}
}

func TestRect_Contains(t *testing.T) {
	r := RectFromLTWH(0, 0, 10, 10)
	tests := []struct {
		name string
		p    Offset
		want bool
	}{
		{"origin", Offset{0, 0}, true},
		{"interior", Offset{5, 5}, true},
		{"right edge", Offset{10, 5}, false},
		{"bottom edge", Offset{5, 10}, false},
		{"outside", Offset{-1, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRect_Overlaps(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"same", a, true},
		{"partial", RectFromLTWH(5, 5, 10, 10), true},
		{"touching edge", RectFromLTWH(10, 0, 10, 10), false},
		{"disjoint", RectFromLTWH(20, 20, 5, 5), false},
		{"empty", Rect{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps(%v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestRect_UnionIgnoresEmpty(t *testing.T) {
	a := RectFromLTWH(10, 10, 5, 5)
	if got := a.Union(Rect{}); got != a {
		t.Errorf("expected %v, got %v", a, got)
	}
	if got := (Rect{}).Union(a); got != a {
		t.Errorf("expected %v, got %v", a, got)
	}
}

func area(rects []Rect) float64 {
	total := 0.0
	for _, r := range rects {
		total += r.Width() * r.Height()
	}
	return total
}

func TestRect_Subtract(t *testing.T) {
	outer := RectFromLTWH(0, 0, 100, 100)
	hole := RectFromLTWH(20, 30, 10, 10)

	pieces := outer.Subtract(hole)
	if len(pieces) != 4 {
		t.Fatalf("expected 4 pieces, got %d", len(pieces))
	}
	if got, want := area(pieces), 100.0*100-10*10; got != want {
		t.Errorf("expected area %v, got %v", want, got)
	}
	for i, p := range pieces {
		if p.Overlaps(hole) {
			t.Errorf("piece %d %v overlaps hole", i, p)
		}
		for j := i + 1; j < len(pieces); j++ {
			if p.Overlaps(pieces[j]) {
				t.Errorf("pieces %d and %d overlap", i, j)
			}
		}
	}
}

func TestRect_SubtractDisjointAndCovering(t *testing.T) {
	outer := RectFromLTWH(0, 0, 10, 10)
	if got := outer.Subtract(RectFromLTWH(50, 50, 5, 5)); len(got) != 1 || got[0] != outer {
		t.Errorf("expected outer unchanged, got %v", got)
	}
	if got := outer.Subtract(RectFromLTWH(-5, -5, 20, 20)); len(got) != 0 {
		t.Errorf("expected nothing left, got %v", got)
	}
}

func TestRect_SubtractAllOverlappingHoles(t *testing.T) {
	outer := RectFromLTWH(0, 0, 100, 100)
	holes := []Rect{
		RectFromLTWH(10, 10, 30, 30),
		RectFromLTWH(20, 20, 30, 30), // overlaps the first
	}
	pieces := outer.SubtractAll(holes)

	// Union of the holes covers 30*30 + 30*30 - 20*20.
	want := 100.0*100 - (900 + 900 - 400)
	if got := area(pieces); got != want {
		t.Errorf("expected area %v, got %v", want, got)
	}
	for _, p := range pieces {
		for _, h := range holes {
			if p.Overlaps(h) {
				t.Errorf("piece %v overlaps hole %v", p, h)
			}
		}
	}
}
