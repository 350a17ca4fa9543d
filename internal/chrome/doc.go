// Package chrome implements the window-chrome state machine for glasspane:
// drag-to-move, the fullscreen toggle, resize-grip tracking and the close
// control.
//
// Chrome owns no window. It reads geometry from, and requests changes of, a
// [Host] supplied by the GUI toolkit layer. Every operation is a synchronous,
// total function: when its preconditions (button identity, region membership,
// fullscreen mode) are not met it does nothing.
//
// All methods must be called from the toolkit's event goroutine. Chrome does
// no locking.
package chrome
