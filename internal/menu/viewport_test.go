package menu

import "testing"

func TestViewportFollow(t *testing.T) {
	tests := []struct {
		name      string
		top       int
		target    int
		wantTop   int
		wantMoved bool
	}{
		{"inside", 2, 3, 2, false},
		{"last visible row", 2, 5, 2, false},
		{"just below", 2, 6, 3, true},
		{"far below", 0, 10, 7, true},
		{"just above", 2, 1, 1, true},
		{"far above", 8, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viewport{top: tt.top, rows: 4}
			moved := v.follow(tt.target)
			if moved != tt.wantMoved {
				t.Errorf("follow(%d) moved = %v, want %v", tt.target, moved, tt.wantMoved)
			}
			if v.top != tt.wantTop {
				t.Errorf("follow(%d) top = %v, want %v", tt.target, v.top, tt.wantTop)
			}
			if !v.contains(tt.target) {
				t.Errorf("follow(%d) left target outside window", tt.target)
			}
		})
	}
}

func TestViewportSetTop(t *testing.T) {
	tests := []struct {
		in, count, want int
	}{
		{0, 10, 0},
		{3, 10, 3},
		{8, 10, 6},
		{-2, 10, 0},
		{5, 2, 0}, // fewer rows than the window
	}

	for _, tt := range tests {
		v := viewport{rows: 4}
		v.setTop(tt.in, tt.count)
		if v.top != tt.want {
			t.Errorf("setTop(%d, %d) = %v, want %v", tt.in, tt.count, v.top, tt.want)
		}
	}
}

func TestViewportRowOf(t *testing.T) {
	v := viewport{top: 5, rows: 3}
	if v.rowOf(6) != 1 {
		t.Errorf("rowOf(6) = %v, want 1", v.rowOf(6))
	}
	if v.contains(8) {
		t.Error("contains(8) should be false for window [5, 8)")
	}
}
