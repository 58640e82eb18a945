package geom

import (
	"math"
	"testing"
)

func TestInRectangle(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{name: "origin", p: Point{0, 0}, want: true},
		{name: "corner edge", p: Point{24, -48}, want: true},
		{name: "outside x", p: Point{24.01, 0}, want: false},
		{name: "outside y", p: Point{0, 48.5}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InRectangle(tt.p, 48, 96); got != tt.want {
				t.Errorf("InRectangle(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestInCircle(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{name: "origin", p: Point{0, 0}, want: true},
		{name: "on margin", p: Point{21, 0}, want: true},
		{name: "on margin off axis", p: Point{21 * math.Cos(1), 21 * math.Sin(1)}, want: true},
		{name: "inside disc but past margin", p: Point{22, 0}, want: false},
		{name: "diagonal", p: Point{15, 15}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InCircle(tt.p, 24, 6); got != tt.want {
				t.Errorf("InCircle(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Point{0, 0}, Point{3, 4}); d != 5 {
		t.Errorf("Distance() = %v, want 5", d)
	}
	if n := (Point{-6, 8}).Norm(); n != 10 {
		t.Errorf("Norm() = %v, want 10", n)
	}
}

func TestContainers(t *testing.T) {
	rect := Rectangle{Width: 96, Height: 48}
	if rect.Shape() != ShapeRectangle || !rect.Horizontal() {
		t.Errorf("rectangle: shape=%v horizontal=%v", rect.Shape(), rect.Horizontal())
	}
	if b := rect.Bounds(); b.Width() != 96 || b.Height() != 48 || b.CenterX() != 0 || b.CenterY() != 0 {
		t.Errorf("rectangle bounds = %+v", b)
	}

	circle := Circle{Radius: 10}
	if circle.Shape() != ShapeCircle {
		t.Errorf("circle shape = %v", circle.Shape())
	}
	if b := circle.Bounds(); b.Width() != 20 || b.MinY != -10 {
		t.Errorf("circle bounds = %+v", b)
	}
	if !circle.Contains(Point{7, 0}, 6) || circle.Contains(Point{7.5, 0}, 6) {
		t.Error("circle containment should keep a half-spacing margin")
	}

	if (Rectangle{Width: 0, Height: 10}).Contains(Point{}, 1) {
		t.Error("degenerate rectangle should contain nothing")
	}
	if (Circle{Radius: -1}).Valid() {
		t.Error("negative radius should be invalid")
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{MinX: -10, MaxX: 10, MinY: -5, MaxY: 0}
	if !b.Contains(Point{10, 0}) {
		t.Error("edges should be inside")
	}
	if b.Contains(Point{0, 0.1}) {
		t.Error("point below the box should be outside")
	}
	if math.Abs(b.CenterY()+2.5) > 1e-12 {
		t.Errorf("CenterY() = %v, want -2.5", b.CenterY())
	}
}
