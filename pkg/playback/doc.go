// Package playback drives a step list forward in time.
//
// A [Controller] owns the index into a trace and moves through five states:
//
//	Idle      no steps loaded
//	Ready     steps loaded, index 0
//	Playing   a tick is pending; each tick advances the index by one
//	Paused    stopped between steps
//	Finished  the index is on the last step
//
// # Timing
//
// Ticks are delayed callbacks obtained from a [Scheduler]. The controller
// holds at most one pending [Handle] and cancels it on Pause, Reset,
// SetInput and Close before doing anything else. Every scheduled callback
// also captures a generation number; a callback whose generation is no
// longer current is discarded, so a timer that fired while the controller
// was busy cannot advance the index after a reset.
//
// [TimerScheduler] uses real timers. [ManualScheduler] advances a virtual
// clock on demand and is what tests use. The terminal player supplies its
// own scheduler backed by bubbletea tick messages.
//
// # Inputs
//
// A [Source] regenerates the step list. SetInput installs a new source;
// Reset re-runs the current one. When a source fails, the error is kept as
// the controller's diagnostic and the previous steps stay in place.
package playback
