package menu

// viewport is the window of registry rows currently on screen.
type viewport struct {
	top  int
	rows int
}

func (v *viewport) contains(i int) bool {
	return i >= v.top && i < v.top+v.rows
}

// rowOf converts a registry index into a screen row.
func (v *viewport) rowOf(i int) int {
	return i - v.top
}

// follow scrolls just enough to bring i on screen: i becomes the top row
// when it lies above the window and the bottom row when it lies below.
// Reports whether the window moved.
func (v *viewport) follow(i int) bool {
	switch {
	case i < v.top:
		v.top = i
	case i >= v.top+v.rows:
		v.top = i - v.rows + 1
	default:
		return false
	}
	return true
}

// setTop moves the window, clamped to [0, count-rows].
func (v *viewport) setTop(i, count int) {
	max := count - v.rows
	if max < 0 {
		max = 0
	}
	if i > max {
		i = max
	}
	if i < 0 {
		i = 0
	}
	v.top = i
}
