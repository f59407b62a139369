// Package shell implements the interactive prompt loop.
//
// The shell drives the core packages: it builds the state directory once,
// lists a chosen state's sites, and looks up nearby places for a selected
// site. "exit" and "back" are ordinary command values handled by the loop;
// nothing deep in the call stack terminates the process. Errors from the core
// are reported at prompt granularity and the session continues.
package shell
