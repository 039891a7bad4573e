package landing

import (
	"fmt"
	"io"
	"os"
	"time"
)

// LogOutput receives diagnostics. Defaults to stderr.
var LogOutput io.Writer = os.Stderr

// logf writes a single "[landing]"-prefixed line to LogOutput.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(LogOutput, "[landing] "+format+"\n", args...)
}

// debugStats holds per-frame timing and draw metrics.
// Only populated when the backdrop is in debug mode.
type debugStats struct {
	stepTime  time.Duration
	particles int
	symbols   int
	lines     int
	glowing   int
}

// debugLogInterval is how many frames pass between debug log lines.
const debugLogInterval = 60

// debugLog prints frame stats to LogOutput.
func (b *Backdrop) debugLog(stats debugStats) {
	if !b.debug {
		return
	}
	b.debugFrame++
	if b.debugFrame%debugLogInterval != 0 {
		return
	}
	logf("step: %v | particles: %d (glowing %d) | symbols: %d | lines: %d",
		stats.stepTime, stats.particles, stats.glowing, stats.symbols, stats.lines)
}

// SetDebugMode enables or disables periodic frame stats on LogOutput.
func (b *Backdrop) SetDebugMode(enabled bool) {
	b.debug = enabled
	b.debugFrame = 0
}
