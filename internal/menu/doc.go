// Package menu implements the navigation and editing state machine of the
// settings menu.
//
// # States
//
// The menu is either browsing (moving a cursor over the settings) or
// editing (scrolling through the values of the selected setting):
//
//	             Accept
//	 Browsing ───────────► Editing
//	    ▲                     │
//	    └──── Accept/Cancel ──┘
//
// MoveUp and MoveDown move the cursor while browsing, skipping separator
// rows and stopping at the first and last editable row. While editing they
// move the tentative value instead.
//
// # Commit and Rollback
//
// Accept while editing commits the tentative value. Settings without live
// update ask their Acceptor now; live settings already asked on every
// scroll step and reuse the cached decision. A rejected value snaps back to
// the committed one.
//
// Cancel while editing restores the committed value. If a live value was
// applied, the Acceptor is called once more with the committed value in
// place so the outside world can follow; its answer is ignored.
//
// # Drawing
//
// The menu repaints incrementally through the Display interface: moving
// the cursor redraws two markers, editing redraws one value cell. The whole
// viewport is redrawn only when it scrolls or when the display is taken.
// Draw requests made while the display is not taken are dropped.
//
// # Example
//
//	reg := settings.NewRegistry(8)
//	reg.Create("MODE", []string{"AM", "FM", "USB"}, 0, false, acceptor)
//
//	m := menu.New(reg, display.NewGrid(16, 26), menu.WithVisibleRows(16))
//	m.TakeDisplay()
//	m.Accept()  // edit MODE
//	m.MoveUp()  // browse "FM"
//	m.Accept()  // acceptor decides, back to browsing
package menu
