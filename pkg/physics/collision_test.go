// pkg/physics/collision_test.go
package physics

import "testing"

func TestCircle_Collides(t *testing.T) {
	tests := []struct {
		name     string
		a        Circle
		b        Circle
		expected bool
	}{
		{
			name:     "overlapping_circles",
			a:        Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 10},
			b:        Circle{Center: Vector2D{X: 15, Y: 0}, Radius: 10},
			expected: true,
		},
		{
			name:     "separated_circles",
			a:        Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 10},
			b:        Circle{Center: Vector2D{X: 25, Y: 0}, Radius: 10},
			expected: false,
		},
		{
			name:     "touching_circles_do_not_collide",
			a:        Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 10},
			b:        Circle{Center: Vector2D{X: 20, Y: 0}, Radius: 10},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Collides(tt.b); got != tt.expected {
				t.Errorf("Collides() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCraftsCollide(t *testing.T) {
	tests := []struct {
		name     string
		a        Circle
		b        Circle
		expected bool
	}{
		{
			name:     "identical_position",
			a:        Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 20},
			b:        Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 20},
			expected: true,
		},
		{
			name:     "inside_combined_radius",
			a:        Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 20},
			b:        Circle{Center: Vector2D{X: 19, Y: 0}, Radius: 20},
			expected: true,
		},
		{
			name:     "outside_combined_radius",
			a:        Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 20},
			b:        Circle{Center: Vector2D{X: 21, Y: 0}, Radius: 20},
			expected: false,
		},
		{
			name:     "uneven_radii_use_average",
			a:        Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 10},
			b:        Circle{Center: Vector2D{X: 14, Y: 0}, Radius: 20},
			expected: true, // combined = 15
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CraftsCollide(tt.a, tt.b); got != tt.expected {
				t.Errorf("CraftsCollide() = %v, expected %v", got, tt.expected)
			}
			// The test must be symmetric in its arguments.
			if got := CraftsCollide(tt.b, tt.a); got != tt.expected {
				t.Errorf("CraftsCollide() reversed = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestBodyCollides(t *testing.T) {
	body := CentralBody{Position: Vector2D{}, CollisionRadius: 30}

	tests := []struct {
		name     string
		craft    Circle
		expected bool
	}{
		{
			name:     "within_margin",
			craft:    Circle{Center: Vector2D{X: 45, Y: 0}, Radius: 20},
			expected: true,
		},
		{
			name:     "outside_margin",
			craft:    Circle{Center: Vector2D{X: 55, Y: 0}, Radius: 20},
			expected: false,
		},
		{
			name:     "at_origin",
			craft:    Circle{Center: Vector2D{}, Radius: 20},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BodyCollides(tt.craft, body); got != tt.expected {
				t.Errorf("BodyCollides() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestPointHits(t *testing.T) {
	target := Circle{Center: Vector2D{X: 100, Y: 100}, Radius: 20}

	tests := []struct {
		name     string
		point    Vector2D
		expected bool
	}{
		{name: "inside", point: Vector2D{X: 110, Y: 100}, expected: true},
		{name: "center", point: Vector2D{X: 100, Y: 100}, expected: true},
		{name: "outside", point: Vector2D{X: 130, Y: 100}, expected: false},
		{name: "on_edge", point: Vector2D{X: 120, Y: 100}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointHits(tt.point, target); got != tt.expected {
				t.Errorf("PointHits() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestQuadTree_InsertAndQuery(t *testing.T) {
	qt := NewQuadTree(Rect{Center: Vector2D{}, Width: 1000, Height: 1000}, 4)

	points := []Vector2D{
		{X: 10, Y: 10},
		{X: -200, Y: 300},
		{X: 400, Y: -400},
		{X: 0, Y: 0},
		{X: 12, Y: 8},
		{X: 15, Y: 12},
	}
	for i, p := range points {
		if !qt.Insert(p, i) {
			t.Fatalf("Insert(%v) failed", p)
		}
	}

	t.Run("rejects_out_of_bounds", func(t *testing.T) {
		if qt.Insert(Vector2D{X: 5000, Y: 0}, 99) {
			t.Error("Insert() accepted a point outside the boundary")
		}
	})

	t.Run("finds_clustered_points", func(t *testing.T) {
		found := qt.Query(Rect{Center: Vector2D{X: 10, Y: 10}, Width: 30, Height: 30})
		if len(found) < 3 {
			t.Errorf("Query() found %d objects, expected at least 3", len(found))
		}
	})

	t.Run("empty_region", func(t *testing.T) {
		found := qt.Query(Rect{Center: Vector2D{X: -450, Y: -450}, Width: 20, Height: 20})
		if len(found) != 0 {
			t.Errorf("Query() found %d objects in empty region", len(found))
		}
	})

	t.Run("clear_empties_tree", func(t *testing.T) {
		qt.Clear()
		found := qt.Query(Rect{Center: Vector2D{}, Width: 1000, Height: 1000})
		if len(found) != 0 {
			t.Errorf("Query() after Clear() found %d objects", len(found))
		}
	})
}
