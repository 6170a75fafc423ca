// Package viz draws palettes in the terminal.
//
// The live view runs on Bubble Tea:
//
//   - [Model]: swatch strip, pseudo-3D projection and running statistics
//   - [Canvas]: braille canvas with a colour per cell
//   - [Arrange]: projects points into back-to-front markers, shared with
//     the image exporters
//
// # Key Bindings
//
//	Space - Pause/Resume
//	.     - Single tick while paused
//	R     - Reset to home colours
//	T     - Cycle themes
//	?     - Show help overlay
//	Q     - Quit
package viz
