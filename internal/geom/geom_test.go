package geom

import "testing"

func TestIntersect(t *testing.T) {
	a := R(0, 0, 10, 10)
	b := R(5, 5, 10, 10)
	if got := a.Intersect(b); got != R(5, 5, 5, 5) {
		t.Fatalf("unexpected intersection: %+v", got)
	}
	if got := a.Intersect(R(20, 20, 5, 5)); !got.Empty() {
		t.Fatalf("expected empty intersection, got %+v", got)
	}
	if a.Intersects(R(10, 0, 5, 5)) {
		t.Fatalf("touching rects must not intersect")
	}
}

func TestGrowAndNormalize(t *testing.T) {
	content := R(0, 0, 100, 40)
	bubble := content.Grow(Margins{Left: 13, Top: 7, Right: 13, Bottom: 8})
	if bubble != R(-13, -7, 126, 55) {
		t.Fatalf("unexpected bubble: %+v", bubble)
	}
	content = content.MovedTo(bubble.TopLeft().Neg())
	bubble = bubble.MovedTo(Point{})
	if content.TopLeft() != Pt(13, 7) {
		t.Fatalf("unexpected content origin: %+v", content)
	}
	if !bubble.ContainsRect(content) {
		t.Fatalf("bubble %+v must contain content %+v", bubble, content)
	}
}

func TestContains(t *testing.T) {
	r := R(2, 3, 4, 5)
	if !r.Contains(2, 3) || r.Contains(6, 3) || r.Contains(2, 8) {
		t.Fatalf("contains is not half-open")
	}
	if !r.ContainsRect(Rect{}) {
		t.Fatalf("empty rect must be contained")
	}
}
