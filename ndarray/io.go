// SPDX-License-Identifier: MIT

package ndarray

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of significant digits written per value.
const DefaultPrecision = 16

// commentPrefix starts every header comment line.
const commentPrefix = "#"

// ReadFrom parses an array in the plain-text format:
//
//	# any number of comment lines beginning with '#'
//	5 5 3
//	v000 v001 v002 v010 ...
//
// The shape line lists the extent of every axis; the values follow in
// row-major order, whitespace separated, possibly across several lines.
// Comments are returned without the leading '#' and surrounding spaces.
func ReadFrom(r io.Reader) (*Array, []string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<26)

	var comments []string
	var header string
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, commentPrefix) {
			comments = append(comments, strings.TrimSpace(line[len(commentPrefix):]))
			continue
		}
		header = line
		break
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}

	fields := strings.Fields(header)
	if len(fields) == 0 {
		return nil, nil, ErrBadHeader
	}
	shape := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, nil, fmt.Errorf("%w: %q", ErrBadHeader, header)
		}
		shape[i] = n
	}

	out, err := New(shape...)
	if err != nil {
		return nil, nil, err
	}

	filled := 0
	for filled < len(out.data) && sc.Scan() {
		for _, f := range strings.Fields(sc.Text()) {
			if filled == len(out.data) {
				break
			}
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("ndarray: value %d: %w", filled, err)
			}
			out.data[filled] = v
			filled++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if filled < len(out.data) {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrShortData, filled, len(out.data))
	}

	return out, comments, nil
}

// ReadFile opens path and parses it with ReadFrom.
func ReadFile(path string) (*Array, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return ReadFrom(f)
}

// WriteTo serializes a in the format read by ReadFrom. Values are formatted
// with %.<precision>g; masked entries are written as nan.
func WriteTo(w io.Writer, a *Array, precision int, comments []string) error {
	if a == nil {
		return ErrNilArray
	}
	if precision <= 0 {
		precision = DefaultPrecision
	}

	bw := bufio.NewWriter(w)
	for _, c := range comments {
		fmt.Fprintf(bw, "%s %s\n", commentPrefix, strings.TrimSpace(c))
	}
	for _, n := range a.shape {
		fmt.Fprintf(bw, "%d ", n)
	}
	bw.WriteString("\n")

	for i, v := range a.nanFilled() {
		if i > 0 {
			bw.WriteString(" ")
		}
		if math.IsNaN(v) {
			bw.WriteString("nan")
			continue
		}
		bw.WriteString(strconv.FormatFloat(v, 'g', precision, 64))
	}
	bw.WriteString("\n")

	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes a with WriteTo.
func WriteFile(path string, a *Array, precision int, comments []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteTo(f, a, precision, comments)
}
