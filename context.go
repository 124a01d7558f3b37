package grpf

import (
	"fmt"
	"time"
)

const maxMessages = 1000

// BuildContext carries logging and per-phase timing for a single Grpf
// call, in the shape of the teacher's recast.BuildContext. It also
// caches the triangulation library's coordinate span (read once, per
// spec.md §9) so the rest of the pipeline never hard-codes it.
type BuildContext struct {
	logEnabled   bool
	timerEnabled bool

	startTime [numTimers]time.Time
	accTime   [numTimers]time.Duration

	messages    [maxMessages]string
	numMessages int

	MinCoord, MaxCoord float64
}

// NewBuildContext returns a BuildContext with logging and timers
// enabled according to state.
func NewBuildContext(state bool) *BuildContext {
	return &BuildContext{logEnabled: state, timerEnabled: state}
}

// EnableLog enables or disables logging.
func (ctx *BuildContext) EnableLog(state bool) { ctx.logEnabled = state }

// EnableTimer enables or disables the performance timers.
func (ctx *BuildContext) EnableTimer(state bool) { ctx.timerEnabled = state }

// ResetLog clears all log entries.
func (ctx *BuildContext) ResetLog() {
	if ctx.logEnabled {
		ctx.numMessages = 0
	}
}

// ResetTimers clears all performance timers.
func (ctx *BuildContext) ResetTimers() {
	if ctx.timerEnabled {
		for i := range ctx.accTime {
			ctx.accTime[i] = 0
		}
	}
}

// Progressf logs a progress message.
func (ctx *BuildContext) Progressf(format string, v ...interface{}) {
	ctx.log(LogProgress, format, v...)
}

// Warningf logs a warning message.
func (ctx *BuildContext) Warningf(format string, v ...interface{}) {
	ctx.log(LogWarning, format, v...)
}

// Errorf logs an error message.
func (ctx *BuildContext) Errorf(format string, v ...interface{}) {
	ctx.log(LogError, format, v...)
}

func (ctx *BuildContext) log(category LogCategory, format string, v ...interface{}) {
	if !ctx.logEnabled || ctx.numMessages >= maxMessages {
		return
	}
	prefix := "PROG "
	switch category {
	case LogWarning:
		prefix = "WARN "
	case LogError:
		prefix = "ERR "
	}
	ctx.messages[ctx.numMessages] = prefix + fmt.Sprintf(format, v...)
	ctx.numMessages++
}

// DumpLog prints header (formatted with args) followed by every
// buffered log message, to stdout.
func (ctx *BuildContext) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	for i := 0; i < ctx.numMessages; i++ {
		fmt.Println(ctx.messages[i])
	}
}

// LogCount returns how many messages are currently buffered.
func (ctx *BuildContext) LogCount() int { return ctx.numMessages }

// LogText returns the i-th buffered message.
func (ctx *BuildContext) LogText(i int) string { return ctx.messages[i] }

// StartTimer starts the named timer.
func (ctx *BuildContext) StartTimer(label TimerLabel) {
	if ctx.timerEnabled {
		ctx.startTime[label] = time.Now()
	}
}

// StopTimer stops the named timer, accumulating the elapsed time.
func (ctx *BuildContext) StopTimer(label TimerLabel) {
	if !ctx.timerEnabled {
		return
	}
	ctx.accTime[label] += time.Since(ctx.startTime[label])
}

// AccumulatedTime returns the total time accumulated on the named
// timer, or 0 if timers are disabled.
func (ctx *BuildContext) AccumulatedTime(label TimerLabel) time.Duration {
	if !ctx.timerEnabled {
		return 0
	}
	return ctx.accTime[label]
}
