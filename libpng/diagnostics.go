package libpng

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// discard receives diagnostics when FlagPrintErrors is not set.
var discard = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}

func newDiagnosticsLogger(w io.Writer) *logrus.Logger {
	return &logrus.Logger{
		Out: w,
		Formatter: &logrus.TextFormatter{
			DisableTimestamp: true,
			DisableColors:    true,
		},
		Hooks: make(logrus.LevelHooks),
		Level: logrus.WarnLevel,
	}
}

// diagnostics returns the entry load failures are reported on.
func (l *Loader) diagnostics(flags LoadFlags) *logrus.Entry {
	if !flags.Has(FlagPrintErrors) {
		return logrus.NewEntry(discard)
	}
	return l.log.WithField("component", "libpng")
}

// writeMissing writes the missing function report for the current table.
func (l *Loader) writeMissing(w io.Writer, includeOptional bool) {
	fmt.Fprintln(w, "missing functions:")
	listed := 0
	for i, fn := range l.manifest {
		if l.procs[i] != 0 {
			continue
		}
		switch {
		case !fn.Optional:
			fmt.Fprintf(w, "  %s\n", fn.Name)
		case includeOptional:
			fmt.Fprintf(w, "  %s (optional)\n", fn.Name)
		default:
			continue
		}
		listed++
	}
	if listed == 0 {
		fmt.Fprintln(w, "  (none)")
	}
}
