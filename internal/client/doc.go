// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, client services and the background token
// refresh job into a single process lifecycle.
package client
