// Package main compares the libpng manifest against a png.h header and
// prints manifest entries for exports the loader does not resolve yet.
//
// NOTE: The header is scanned for the PNG_EXPORT family of macros with a
// small hand-written splitter. It does not run the C preprocessor, so exports
// hidden behind feature macros are still reported.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/amikos-tech/pure-libpng/libpng"
)

var exportMacros = map[string]bool{
	"PNG_EXPORT":       true,
	"PNG_EXPORTA":      true,
	"PNG_FP_EXPORT":    true,
	"PNG_FIXED_EXPORT": true,
}

var (
	commentPattern = regexp.MustCompile(`/\*.*?\*/`)
	macroPattern   = regexp.MustCompile(`^(\w+)\s*\(`)
)

type export struct {
	Name      string
	Signature string
	LineNum   int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the tool and returns the process exit status. An empty header
// path means no header was configured, which is not an error.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gen_manifest", flag.ContinueOnError)
	fs.SetOutput(stderr)
	strict := fs.Bool("strict", false, "exit with status 1 when the manifest and header differ")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: gen_manifest [-strict] <path-to-png.h>")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	headerPath := strings.TrimSpace(fs.Arg(0))
	if headerPath == "" {
		fmt.Fprintln(stdout, "// No png.h given (set LIBPNG_HEADER), skipping manifest check")
		return 0
	}
	file, err := os.Open(headerPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to open header file: %v\n", err)
		return 1
	}
	defer file.Close()

	exports, err := parseHeader(file)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to parse %s: %v\n", headerPath, err)
		return 1
	}
	if len(exports) < 200 {
		fmt.Fprintf(stderr, "Warning: Parsed %d exports, a libpng 1.6 header has ~250. Header may have changed.\n", len(exports))
	}

	differs := report(stdout, headerPath, exports, libpng.DefaultManifest())
	if differs && *strict {
		return 1
	}
	return 0
}

// parseHeader collects every exported function declared in r, skipping
// APIs that take a FILE*.
func parseHeader(r io.Reader) ([]export, error) {
	scanner := bufio.NewScanner(r)
	var (
		exports []export
		stmt    strings.Builder
		start   int
		depth   int
		lineNum int
	)
	seen := make(map[string]int)

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if stmt.Len() == 0 {
			m := macroPattern.FindStringSubmatch(line)
			if m == nil || !exportMacros[m[1]] {
				continue
			}
			start = lineNum
		}
		stmt.WriteString(line)
		stmt.WriteByte(' ')
		depth += strings.Count(line, "(") - strings.Count(line, ")")
		if depth > 0 {
			continue
		}

		e, err := parseExport(commentPattern.ReplaceAllString(stmt.String(), ""))
		stmt.Reset()
		depth = 0
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", start)
		}
		if skipExport(e) {
			continue
		}
		if prev, ok := seen[e.Name]; ok {
			return nil, errors.Errorf("line %d: %s already declared at line %d", start, e.Name, prev)
		}
		e.LineNum = start
		seen[e.Name] = start
		exports = append(exports, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	if stmt.Len() > 0 {
		return nil, errors.Errorf("line %d: unterminated export", start)
	}
	return exports, nil
}

// parseExport parses "PNG_EXPORT(ordinal, type, name, (args))".
func parseExport(stmt string) (export, error) {
	open := strings.IndexByte(stmt, '(')
	closing := strings.LastIndexByte(stmt, ')')
	if open < 0 || closing <= open {
		return export{}, errors.Errorf("malformed export %q", stmt)
	}
	fields := splitTopLevel(stmt[open+1 : closing])
	if len(fields) < 4 {
		return export{}, errors.Errorf("export has %d fields, want at least 4", len(fields))
	}

	ret := normalizeType(fields[1])
	name := strings.TrimSpace(fields[2])
	params := strings.TrimSpace(fields[3])
	params = strings.TrimSuffix(strings.TrimPrefix(params, "("), ")")

	var args []string
	for _, arg := range splitTopLevel(params) {
		args = append(args, argType(arg))
	}
	return export{Name: name, Signature: fmt.Sprintf("%s (%s)", ret, strings.Join(args, ", "))}, nil
}

// splitTopLevel splits s on commas outside parentheses.
func splitTopLevel(s string) []string {
	var parts []string
	depth, last := 0, 0
	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[last:i]))
				last = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(s[last:]); tail != "" || len(parts) > 0 {
		parts = append(parts, tail)
	}
	return parts
}

func normalizeType(t string) string {
	t = strings.TrimSpace(t)
	t = strings.TrimSuffix(t, "PNG_RESTRICT")
	return strings.Join(strings.Fields(t), " ")
}

// argType drops the parameter name from a declaration, keeping pointer and
// array markers on the type.
func argType(arg string) string {
	arg = normalizeType(arg)
	if arg == "void" || !strings.Contains(arg, " ") {
		return arg
	}
	i := strings.LastIndexByte(arg, ' ')
	typ, name := arg[:i], arg[i+1:]
	switch {
	case strings.HasPrefix(name, "**"):
		typ += " **"
	case strings.HasPrefix(name, "*"), strings.Contains(name, "["):
		typ += " *"
	}
	return typ
}

func skipExport(e export) bool {
	return e.Name == "png_init_io" ||
		strings.HasSuffix(e.Name, "_stdio") ||
		strings.Contains(e.Signature, "FILE")
}

// report writes the differences between the header and manifest to w and
// reports whether there were any.
func report(w io.Writer, headerPath string, exports []export, manifest libpng.Manifest) bool {
	fmt.Fprintf(w, "// Parsed %d exports from %s\n", len(exports), headerPath)
	fmt.Fprintf(w, "// Manifest has %d functions (%d required)\n", len(manifest), len(manifest.Required()))

	var missing []export
	inHeader := make(map[string]bool, len(exports))
	for _, e := range exports {
		inHeader[e.Name] = true
		if manifest.Index(e.Name) < 0 {
			missing = append(missing, e)
		}
	}
	var stale []string
	for _, fn := range manifest {
		if !inHeader[fn.Name] {
			stale = append(stale, fn.Name)
		}
	}
	sort.Strings(stale)

	if len(missing) > 0 {
		fmt.Fprintln(w, "\n// Not in the manifest:")
		for _, e := range missing {
			fmt.Fprintf(w, "\texport(%q, %q), // png.h:%d\n", e.Name, e.Signature, e.LineNum)
		}
	}
	if len(stale) > 0 {
		fmt.Fprintln(w, "\n// Not declared by the header:")
		for _, name := range stale {
			fmt.Fprintf(w, "//\t%s\n", name)
		}
	}
	return len(missing) > 0 || len(stale) > 0
}
