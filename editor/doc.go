// Package editor implements the modal editing core of vex.
//
// Viewport maps motions and edits onto a buffer and keeps a scroll window,
// the cursor and a sticky column consistent. Dispatcher routes key events to
// actions per Mode, ExLine collects colon commands, and Editor wires them
// together. Model adapts an Editor to Bubble Tea.
package editor
