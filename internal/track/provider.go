package track

// Ordered returns the waypoints to follow in driving direction. In shortcut
// mode the caller's waypoints are ignored and the built-in racing line is used.
// Waypoints are always given counter-clockwise, so a reversed (clockwise) run
// flips the order, whichever source was chosen.
func Ordered(mode Mode, waypoints Loop, reversed bool) Loop {
	var wp Loop
	if mode == ModeShortcut {
		wp = RacingLine()
	} else {
		wp = waypoints
	}

	if reversed {
		return wp.Reversed()
	}
	return wp
}
