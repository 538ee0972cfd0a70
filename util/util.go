// Package util holds small helpers shared across the interface and
// engine layers.
package util

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"unicode"

	"github.com/episan-cli/episan/constant"
	"github.com/episan-cli/episan/filesystem"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[\\/<>:;"'|?!*{}#%&^+,~\s]`)
	repeatedUnderscores = regexp.MustCompile(`__+`)
	filenameEdgeJunk    = regexp.MustCompile(`^[_\-.]+|[_\-.]+$`)
)

// SanitizeFilename rewrites a release title into a name every
// supported filesystem accepts.
func SanitizeFilename(name string) string {
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = repeatedUnderscores.ReplaceAllString(name, "_")
	return filenameEdgeJunk.ReplaceAllString(name, "")
}

// Quantify formats a count with the grammatically matching label.
func Quantify(count int, singular, plural string) string {
	label := plural
	if count == 1 {
		label = singular
	}
	return fmt.Sprintf("%d %s", count, label)
}

// Capitalize uppercases the first rune of s.
func Capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// TerminalSize reports the character dimensions of the attached
// terminal.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// FileStem returns the base name of path without its extension.
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ClearScreen wipes the terminal buffer.
func ClearScreen() {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case constant.Linux, constant.Darwin:
		cmd = exec.Command("tput", "clear")
	case constant.Windows:
		cmd = exec.Command("cmd", "/c", "cls")
	default:
		return
	}
	cmd.Stdout = os.Stdout
	_ = cmd.Run()
}

// ReGroups matches str against pattern and returns the named capture
// groups. The map is empty when nothing matches.
func ReGroups(pattern *regexp.Regexp, str string) map[string]string {
	groups := make(map[string]string)
	match := pattern.FindStringSubmatch(str)

	for i, name := range pattern.SubexpNames() {
		if match == nil || name == "" || i >= len(match) {
			continue
		}
		groups[name] = match[i]
	}
	return groups
}

// PrintErasable writes msg over the current terminal line and returns
// a function that blanks it again.
func PrintErasable(msg string) (eraser func()) {
	fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

// Ignore calls f and discards its error, for deferred cleanups whose
// failure has no consumer.
func Ignore(f func() error) {
	_ = f()
}

// Max returns the largest of items, or the zero value when called
// with none.
func Max[T constraints.Ordered](items ...T) (max T) {
	for i, item := range items {
		if i == 0 || item > max {
			max = item
		}
	}
	return
}

// Min returns the smallest of items, or the zero value when called
// with none.
func Min[T constraints.Ordered](items ...T) (min T) {
	for i, item := range items {
		if i == 0 || item < min {
			min = item
		}
	}
	return
}

// Delete removes path through the active filesystem backend,
// recursing into directories.
func Delete(path string) error {
	fs := filesystem.API()

	stat, err := fs.Stat(path)
	if err != nil {
		return err
	}
	if stat.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}
