// Command onigx is a small command-line front end for the regex
// package: compile a pattern, run it against stdin or an argument, and
// print matches, optionally highlighted and copied to the clipboard.
// Its flag/IO shape follows a run(args, stdin, stdout,
// stderr) error structure.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	flag "github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	"github.com/onigx/regex"
)

var version = "0.1.0"

func main() {
	var stdin io.Reader
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		stdin = os.Stdin
	}
	if err := run(os.Args, stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("onigx", flag.ContinueOnError)
	fs.SetOutput(stderr)

	ignoreCase := fs.BoolP("ignore-case", "i", false, "case-insensitive match")
	multiline := fs.BoolP("multiline", "m", false, "^ and $ match at line boundaries")
	singleLine := fs.BoolP("single-line", "s", false, ". matches newline too")
	findLongest := fs.BoolP("longest", "l", false, "prefer the longest match at each position")
	findNotEmpty := fs.BoolP("not-empty", "e", false, "reject zero-width matches in favor of scanning onward")
	all := fs.BoolP("all", "a", false, "print every non-overlapping match, not just the first")
	replace := fs.StringP("replace", "r", "", "replace every match with this template ($1, ${name}, $&) instead of printing matches")
	copyOut := fs.Bool("copy", false, "copy the result to the terminal clipboard via OSC52")
	noColor := fs.Bool("no-color", false, "disable highlighted output even on a TTY")
	showVersion := fs.BoolP("version", "v", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "onigx - match and replace with an Oniguruma-flavoured regex engine\n\n")
		fmt.Fprintf(stderr, "Usage:\n  onigx [flags] <pattern> [input]\n  echo 'text' | onigx [flags] <pattern>\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "onigx version %s\n", version)
		return nil
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return fmt.Errorf("missing pattern")
	}
	pattern := rest[0]

	input, err := readInput(rest[1:], stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return err
	}

	var opts []regex.Option
	if *ignoreCase {
		opts = append(opts, regex.IgnoreCase())
	}
	if *multiline {
		opts = append(opts, regex.Multiline())
	}
	if *singleLine {
		opts = append(opts, regex.SingleLine())
	}
	if *findLongest {
		opts = append(opts, regex.FindLongest())
	}
	if *findNotEmpty {
		opts = append(opts, regex.FindNotEmpty())
	}

	re, err := regex.New(pattern, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}

	out := termenv.NewOutput(stdout)
	useColor := !*noColor && isatty.IsTerminal(os.Stdout.Fd())

	if *replace != "" {
		result := re.ReplaceAll(input, *replace)
		fmt.Fprintln(stdout, result)
		if *copyOut {
			copyToClipboard(stdout, result)
		}
		return nil
	}

	matches := re.AllMatches(input, 0)
	if !*all && len(matches) > 1 {
		matches = matches[:1]
	}
	if len(matches) == 0 {
		fmt.Fprintln(stdout, "no match")
		return nil
	}

	width := terminalWidth(80)
	for i, m := range matches {
		line := formatMatch(out, useColor, i, m)
		fmt.Fprintln(stdout, truncateToWidth(line, width))
	}

	if *copyOut {
		copyToClipboard(stdout, matches[0].FullText())
	}
	return nil
}

func readInput(posArgs []string, stdin io.Reader) (string, error) {
	if len(posArgs) > 0 {
		return posArgs[0], nil
	}
	if stdin == nil {
		return "", fmt.Errorf("no input: pass it as an argument or pipe it on stdin")
	}
	var sb strings.Builder
	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// formatMatch renders a match's line, highlighting the whole match and
// cycling a distinct hue per capturing group so overlapping groups
// stay visually distinguishable.
func formatMatch(out *termenv.Output, useColor bool, idx int, m *regex.Match) string {
	if !useColor {
		return fmt.Sprintf("[%d] %q", idx, m.FullText())
	}
	style := out.String(m.FullText()).Foreground(out.Color(groupColor(0).Hex())).Bold()
	parts := []string{fmt.Sprintf("[%d] %s", idx, style.String())}
	for g := 1; g <= m.GroupCount(); g++ {
		text, ok := m.GroupAt(g)
		if !ok {
			continue
		}
		gs := out.String(text).Foreground(out.Color(groupColor(g).Hex()))
		parts = append(parts, fmt.Sprintf("$%d=%s", g, gs.String()))
	}
	return strings.Join(parts, "  ")
}

// groupColor assigns group n a hue rotated around the wheel so
// adjacent groups are never close in color.
func groupColor(n int) colorful.Color {
	hue := float64((n*67)%360)
	return colorful.Hsv(hue, 0.65, 0.92)
}

func terminalWidth(fallback int) int {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return fallback
	}
	return int(ws.Col)
}

func truncateToWidth(s string, width int) string {
	runes := []rune(s)
	if width <= 1 || len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

// copyToClipboard emits an OSC52 copy sequence so the result reaches
// the local clipboard even over an SSH session.
func copyToClipboard(w io.Writer, text string) {
	osc52.New(text).WriteTo(w)
}
