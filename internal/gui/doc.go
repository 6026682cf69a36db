// Package gui runs the viewer in a raylib window.
//
// The window is the event source and the presentation sink for the
// interaction controller. Frames are uploaded to a texture only when the
// controller is dirty; otherwise the loop just redraws the last texture
// and sleeps one monitor refresh interval.
package gui
