package draggable

import "testing"

func TestDragPosition(t *testing.T) {
	tests := []struct {
		name           string
		pointer        Vec2
		offset         Vec2
		wantX, wantY   float64
	}{
		{"origin grab", Vec2{X: 100, Y: 80}, Vec2{}, 100, 80},
		{"centered grab", Vec2{X: 100, Y: 80}, Vec2{X: 25, Y: 20}, 75, 60},
		{"pointer left of element", Vec2{X: 10, Y: 10}, Vec2{X: 40, Y: 5}, -30, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := dragPosition(tt.pointer, tt.offset)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("dragPosition(%v, %v) = (%v, %v), want (%v, %v)",
					tt.pointer, tt.offset, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestClampToContainer(t *testing.T) {
	container := Rect{X: 100, Y: 100, Width: 400, Height: 300}
	const w, h = 50, 40

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"already inside", 200, 200, 200, 200},
		{"past left edge", 20, 200, 100, 200},
		{"past right edge", 600, 200, 450, 200},
		{"past top edge", 200, 10, 200, 100},
		{"past bottom edge", 200, 500, 200, 360},
		{"past both corners", -50, 900, 100, 360},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := clampToContainer(tt.x, tt.y, container, w, h)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("clampToContainer(%v, %v) = (%v, %v), want (%v, %v)",
					tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// The clamped position must lie inside the container for every pointer
// position, not just the sampled cases above.
func TestClampInvariantSweep(t *testing.T) {
	container := Rect{X: 100, Y: 100, Width: 400, Height: 300}
	const w, h = 50, 40
	offset := Vec2{X: 10, Y: 10}

	for px := -200.0; px <= 800; px += 37 {
		for py := -200.0; py <= 800; py += 41 {
			x, y := dragPosition(Vec2{X: px, Y: py}, offset)
			x, y = clampToContainer(x, y, container, w, h)
			if x < container.X || x > container.X+container.Width-w {
				t.Fatalf("pointer (%v, %v): x = %v outside [%v, %v]",
					px, py, x, container.X, container.X+container.Width-w)
			}
			if y < container.Y || y > container.Y+container.Height-h {
				t.Fatalf("pointer (%v, %v): y = %v outside [%v, %v]",
					px, py, y, container.Y, container.Y+container.Height-h)
			}
		}
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 10); got != 5 {
		t.Errorf("clamp(5, 0, 10) = %v, want 5", got)
	}
	if got := clamp(-1, 0, 10); got != 0 {
		t.Errorf("clamp(-1, 0, 10) = %v, want 0", got)
	}
	if got := clamp(11, 0, 10); got != 10 {
		t.Errorf("clamp(11, 0, 10) = %v, want 10", got)
	}
}
