// Package viz renders simulation results in the terminal.
//
// The package consumes finished trajectories and sweep tables and never
// advances a simulation itself:
//
//   - [PlotFractions]: asciigraph chart of the compartment curves
//   - [PlotSeries]: single-series chart with a caption
//   - [RenderSweep]: styled table of sweep rows
//   - [RenderSummary]: styled key/value summary panel
//   - [Player]: Bubble Tea playback of a phased run
//
// # Key Bindings (playback)
//
//	Space - Pause/Resume
//	R     - Restart from the first sample
//	[ ]   - Step one sample back/forward (pauses)
//	Q     - Quit
package viz
