package core

import "testing"

func TestManhattan(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Coord
		expected int
	}{
		{"same cell", C(3, 3), C(3, 3), 0},
		{"horizontal", C(0, 0), C(4, 0), 4},
		{"vertical", C(0, 0), C(0, 4), 4},
		{"diagonal", C(1, 1), C(4, 5), 7},
		{"negative direction", C(4, 5), C(1, 1), 7},
		{"unit step", C(2, 2), C(2, 3), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Manhattan(tc.b)
			if result != tc.expected {
				t.Errorf("Manhattan(%v, %v) = %d, expected %d", tc.a, tc.b, result, tc.expected)
			}
			// Manhattan distance is symmetric
			if tc.b.Manhattan(tc.a) != tc.expected {
				t.Errorf("Manhattan(%v, %v) (reversed) != %d", tc.b, tc.a, tc.expected)
			}
		})
	}
}

func TestStep(t *testing.T) {
	origin := C(5, 5)

	tests := []struct {
		dir      Dir
		expected Coord
	}{
		{DirUp, C(5, 4)},
		{DirRight, C(6, 5)},
		{DirDown, C(5, 6)},
		{DirLeft, C(4, 5)},
	}

	for _, tc := range tests {
		result := origin.Step(tc.dir)
		if !result.Equal(tc.expected) {
			t.Errorf("Step(%v) = %v, expected %v", tc.dir, result, tc.expected)
		}
	}
}

func TestStepIsUnitMove(t *testing.T) {
	origin := C(3, 7)
	for _, d := range Dirs() {
		next := origin.Step(d)
		if origin.Manhattan(next) != 1 {
			t.Errorf("Step(%v) moved %d cells, expected 1", d, origin.Manhattan(next))
		}
	}
}

func TestDirOpposite(t *testing.T) {
	for _, d := range Dirs() {
		back := d.Opposite()
		if back.Opposite() != d {
			t.Errorf("Opposite(Opposite(%v)) = %v, expected %v", d, back.Opposite(), d)
		}
		if C(0, 0).Step(d).Step(back) != C(0, 0) {
			t.Errorf("stepping %v then %v did not return to origin", d, back)
		}
	}
}
