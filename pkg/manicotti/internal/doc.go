// Package internal contains the infrastructure behind the manicotti
// framework's SDL navigation surface: SDL initialization, the window
// wrapper, theming, fonts, text and icon rendering, input translation, the
// hardware back-button watcher, and logging. Types and functions in this
// package are not part of the public API, although a few (Window,
// WindowOptions, InputEvent) leak through the root package the way the
// rendering backend requires.
package internal
