package libpng

import (
	"fmt"
	"io"
	"strings"
)

// Report describes a libpng candidate without keeping it loaded.
type Report struct {
	Library         string   `toml:"library,omitempty" json:"library,omitempty"`
	Result          string   `toml:"result" json:"result"`
	Code            uint     `toml:"code" json:"code"`
	ExpectedVersion string   `toml:"expected_version" json:"expected_version"`
	ObservedVersion string   `toml:"observed_version" json:"observed_version"`
	Compatible      bool     `toml:"compatible" json:"compatible"`
	Missing         []string `toml:"missing" json:"missing"`
	MissingOptional []string `toml:"missing_optional" json:"missing_optional"`
}

// Usable reports whether the candidate would pass FlagsDefault.
func (r Report) Usable() bool {
	return r.Code == uint(Success) && r.Compatible && len(r.Missing) == 0
}

// WriteText writes r in a human readable form.
func (r Report) WriteText(w io.Writer) error {
	var b strings.Builder
	if r.Library != "" {
		fmt.Fprintf(&b, "library:          %s\n", r.Library)
	}
	fmt.Fprintf(&b, "result:           %s (%d)\n", r.Result, r.Code)
	fmt.Fprintf(&b, "expected version: %s\n", r.ExpectedVersion)
	fmt.Fprintf(&b, "observed version: %s\n", r.ObservedVersion)
	fmt.Fprintf(&b, "compatible:       %t\n", r.Compatible)
	fmt.Fprintf(&b, "missing:          %s\n", listOrNone(r.Missing))
	fmt.Fprintf(&b, "missing optional: %s\n", listOrNone(r.MissingOptional))
	_, err := io.WriteString(w, b.String())
	return err
}

func listOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}

// Probe loads libpng without validation, records its version and missing
// functions, and unloads it again. An empty path uses the search order.
// When a library is loaded already, the report describes it and it stays loaded.
func (l *Loader) Probe(path string) Report {
	l.mu.Lock()
	defer l.mu.Unlock()

	r := Report{ExpectedVersion: HeaderVersion}
	setResult := func(res LoadError) {
		r.Result, r.Code = res.String(), uint(res)
	}

	owned := false
	if l.lib == nil {
		candidates := l.search
		if path = strings.TrimSpace(path); path != "" {
			candidates = []string{path}
		}
		res := l.load(candidates, FlagsUnsafe)
		setResult(res)
		if res != Success {
			r.ObservedVersion = l.observedVersion()
			return r
		}
		owned = true
	} else {
		setResult(Success)
	}

	r.Library = l.name
	r.ObservedVersion = l.observedVersion()
	r.Compatible = CompatibleVersion(r.ObservedVersion, HeaderVersion)
	for i, fn := range l.manifest {
		if l.procs[i] != 0 {
			continue
		}
		if fn.Optional {
			r.MissingOptional = append(r.MissingOptional, fn.Name)
		} else {
			r.Missing = append(r.Missing, fn.Name)
		}
	}

	if owned {
		l.release(l.diagnostics(FlagsUnsafe))
	}
	return r
}
