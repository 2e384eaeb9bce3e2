// Package ui is the terminal front end of the dashboard builder, built on
// Bubble Tea.
//
// Core abstractions:
//   - View: a screen region with its own model, update and view (Elm-style)
//   - Panel: a bounded region of the screen hosting a View
//   - FocusManager: tracks which zone (catalog or dashboard) has the cursor
//   - Modal: views (the title editor) that receive input first
//   - Gesture: the keyboard rendition of a drag, ending in a drag.Event
//
// The UI never mutates the layout itself: it sends drag events, edit and
// save/load requests to the app.App it wraps and re-renders the result.
package ui
