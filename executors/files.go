package executors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"
)

// lineView is file content as lines. A trailing newline does not add an empty line.
type lineView struct {
	lines           []string
	trailingNewline bool
}

func splitLines(content string) lineView {
	if content == "" {
		return lineView{
			trailingNewline: true,
		}
	}
	view := lineView{
		trailingNewline: strings.HasSuffix(content, "\n"),
	}
	view.lines = strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range view.lines {
		view.lines[i] = strings.TrimSuffix(line, "\r")
	}
	return view
}

func (v lineView) String() string {
	if len(v.lines) == 0 {
		return ""
	}
	s := strings.Join(v.lines, "\n")
	if v.trailingNewline {
		s += "\n"
	}
	return s
}

// contentLines splits written content into the lines it becomes. Empty content is one empty line, a trailing newline ends with an empty line.
func contentLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

var errOutOfRange = errors.New("out of range")

func (v lineView) insert(start int, content string) (lineView, error) {
	if start < 0 || start > len(v.lines) {
		return v, errOutOfRange
	}
	v.lines = slices.Insert(slices.Clone(v.lines), start, contentLines(content)...)
	return v, nil
}

// replace removes lines [start, end) with 1-based indices, 0 meaning the first line, and inserts content there
func (v lineView) replace(start, end int, content string) (lineView, error) {
	offset := max(start-1, 0)
	endOffset := max(end-1, 0)
	if endOffset < offset || endOffset > len(v.lines) {
		return v, errOutOfRange
	}
	v.lines = slices.Replace(slices.Clone(v.lines), offset, endOffset, contentLines(content)...)
	return v, nil
}

func (v lineView) numbered() string {
	b := new(strings.Builder)
	for i, line := range v.lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(": ")
		b.WriteString(line)
	}
	return b.String()
}

func readFile(path string) string {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Sprintf("The file `%s` does not exist.", path)
	} else if err != nil {
		return fmt.Sprintf("The file `%s` could not be read: %v", path, err)
	}
	return fmt.Sprintf("The content of the file `%s` is:\n```\n%s\n```",
		path, splitLines(string(content)).numbered())
}

// loadView reads path for writing. A missing file is an empty view.
func loadView(path string) (lineView, fs.FileMode, error) {
	mode := fs.FileMode(0644)
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return splitLines(""), mode, nil
	} else if err != nil {
		return lineView{}, mode, err
	}
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return splitLines(string(content)), mode, nil
}

func storeView(path string, view lineView, mode fs.FileMode) (string, error) {
	if err := os.WriteFile(path, []byte(view.String()), mode); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return fmt.Sprintf("The file `%s` now has %d lines.", path, len(view.lines)), nil
}

func insertIntoFile(path string, start int, content string) (string, error) {
	view, mode, err := loadView(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	view, err = view.insert(start, content)
	if err != nil {
		return fmt.Sprintf("Cannot insert into `%s` before line %d: the file has %d lines. Nothing was written.",
			path, start, len(view.lines)), nil
	}
	return storeView(path, view, mode)
}

func replaceInFile(path string, start, end int, content string) (string, error) {
	view, mode, err := loadView(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	view, err = view.replace(start, end, content)
	if err != nil {
		return fmt.Sprintf("Cannot replace lines %d to %d of `%s`: the file has %d lines. Nothing was written.",
			start, end, path, len(view.lines)), nil
	}
	return storeView(path, view, mode)
}
