// Package process connects the labyrinth front-end to the engine binary.
//
// The front-end validates its own flags and then hands the work to a
// separate labyrinth-engine executable. Dispatcher starts that executable
// as a child process with translated arguments, wires it to the caller's
// stdio and reports the child's exit code. A multi-step move is run as one
// engine invocation per step, stopping at the first failure.
//
// Engine Lookup:
//
// ResolveEngine uses an explicit path when one is configured (the --engine
// flag or LABYRINTH_ENGINE), then a labyrinth-engine binary in the same
// directory as the running executable, then $PATH.
package process
