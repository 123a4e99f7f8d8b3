// Package sweep evaluates an intervention scenario over a Cartesian grid
// of epidemic parameters.
//
// An [Axes] value names the grid dimensions: baseline transmission rates,
// recovery rates, intervention depression factors, and intervention
// durations. The [Engine] runs one two-phase simulation per combination
// (depressed transmission first, then the baseline to the horizon) on a
// bounded worker pool and summarizes each into a [Row]:
//
//	eng := sweep.New(cfg, stepper, simCfg)
//	res, err := eng.Run(ctx)
//
// Rows are stored in grid order, indexed by combination, so completion
// order never matters. A failing combination produces a failed row tagged
// with its error kind; the remaining combinations are unaffected.
package sweep
