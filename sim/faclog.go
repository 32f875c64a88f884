package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// FactoryLog collects the ordered, player-facing narration of one run:
// attendance, blocked stages, supplier calls, quality events, dispatches.
// Lines carry the simulated day and hour of the shift clock. Resource
// exhaustion and quality failures land here at INFO granularity; they are
// normal outcomes, not errors.
type FactoryLog struct {
	hoursPerDay float64
	lines       []string
}

// NewFactoryLog creates an empty log for a run with the given shift length.
func NewFactoryLog(hoursPerDay float64) *FactoryLog {
	return &FactoryLog{hoursPerDay: hoursPerDay}
}

// Logf appends one line stamped with the simulated day and hour.
func (l *FactoryLog) Logf(now float64, format string, args ...any) {
	day := int(now / l.hoursPerDay)
	hour := now - float64(day)*l.hoursPerDay
	line := fmt.Sprintf("day %d, hour %.1f: %s", day, hour, fmt.Sprintf(format, args...))
	l.lines = append(l.lines, line)
	logrus.Info(line)
}

// Lines returns the ordered log lines accumulated so far.
func (l *FactoryLog) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
