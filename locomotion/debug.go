package locomotion

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/oerror"
	"github.com/sirupsen/logrus"
)

type DebugMode int

const (
	DebugModeArbitration DebugMode = iota
	DebugModeGround
	DebugModeAvoidance
	DebugModeStep
	debugModeCount
)

// DebugModeList holds the names of every debug mode, indexed by mode.
var DebugModeList = []string{
	"arbitration",
	"ground",
	"avoidance",
	"step",
}

func (m DebugMode) String() string {
	if m < 0 || m >= debugModeCount {
		return fmt.Sprintf("DebugMode(%d)", int(m))
	}
	return DebugModeList[m]
}

// ParseDebugMode returns the debug mode with the name passed.
func ParseDebugMode(name string) (DebugMode, error) {
	for i, n := range DebugModeList {
		if strings.EqualFold(n, name) {
			return DebugMode(i), nil
		}
	}
	return 0, oerror.New(game.ErrorUnknownDebugMode, name)
}

// Debugger writes per-frame diagnostics of a character. Messages are only logged for enabled modes,
// while the trace of the last frame is always kept. A nil *Debugger discards everything.
type Debugger struct {
	log   *logrus.Entry
	modes [debugModeCount]bool
	trace *orderedmap.OrderedMap[string, any]
}

// NewDebugger returns a debugger logging to the entry passed with every mode disabled. A nil entry
// logs to the standard logger.
func NewDebugger(log *logrus.Entry) *Debugger {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Debugger{log: log, trace: orderedmap.NewOrderedMap[string, any]()}
}

// Toggle flips the debug mode passed.
func (d *Debugger) Toggle(mode DebugMode) {
	d.modes[mode] = !d.modes[mode]
}

// Enable enables the debug mode passed.
func (d *Debugger) Enable(mode DebugMode) {
	d.modes[mode] = true
}

// Enabled returns true if the debug mode passed is enabled.
func (d *Debugger) Enabled(mode DebugMode) bool {
	return d != nil && d.modes[mode]
}

// Notify logs the message at debug level if cond holds and the mode is enabled.
func (d *Debugger) Notify(mode DebugMode, cond bool, format string, args ...any) {
	if !cond || !d.Enabled(mode) {
		return
	}
	d.log.WithField("mode", mode.String()).Debugf(format, args...)
}

// Record stores a value in the trace of the current frame.
func (d *Debugger) Record(key string, value any) {
	if d == nil {
		return
	}
	d.trace.Set(key, value)
}

// Trace returns the trace of the current frame, or of the last frame once it has resolved.
func (d *Debugger) Trace() *orderedmap.OrderedMap[string, any] {
	return d.trace
}

// TraceString formats the trace as a single line of key=value pairs.
func (d *Debugger) TraceString() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, key := range d.trace.Keys() {
		if i > 0 {
			b.WriteByte(' ')
		}
		v, _ := d.trace.Get(key)
		fmt.Fprintf(&b, "%s=%v", key, v)
	}
	b.WriteByte(']')
	return b.String()
}

func (d *Debugger) resetTrace() {
	if d == nil {
		return
	}
	d.trace = orderedmap.NewOrderedMap[string, any]()
}
