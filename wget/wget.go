// SPDX-License-Identifier: MIT

// Package wget turns a list of exercise file names into notebook download
// commands of the form "!wget <base>/<exercise>/<file>".
package wget

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultBaseURL is the raw-content root of the course exercises.
const DefaultBaseURL = "https://raw.githubusercontent.com/andersle/chemometrics/main/exercises"

// ErrNoExercise indicates that no exercise directory name could be derived.
var ErrNoExercise = errors.New("wget: exercise name is empty")

// Command returns the download command of one file.
func Command(base, exercise, file string) string {
	return fmt.Sprintf("!wget %s/%s/%s", strings.TrimRight(base, "/"), exercise, file)
}

// Commands returns one command per non-blank line of r, in input order.
// Lines are trimmed of surrounding space.
func Commands(base, exercise string, r io.Reader) ([]string, error) {
	if exercise == "" {
		return nil, fmt.Errorf("Commands: %w", ErrNoExercise)
	}
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			continue
		}
		out = append(out, Command(base, exercise, name))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Commands: %w", err)
	}
	return out, nil
}

// FromFile reads the file list at path; the exercise is the name of the
// directory holding it.
func FromFile(base, path string) ([]string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("FromFile: %w", err)
	}
	exercise := filepath.Base(filepath.Dir(abs))
	if exercise == string(filepath.Separator) || exercise == "." {
		return nil, fmt.Errorf("FromFile %s: %w", path, ErrNoExercise)
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("FromFile: %w", err)
	}
	defer f.Close()

	return Commands(base, exercise, f)
}
