// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package topology

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads a custom Table in text form.
//
// Each non-blank line is one row. Cells are separated by whitespace and/or
// commas. A cell is either an element index in [0, 254], or one of ".", "-"
// or "255" for an inactive cell. Text following a "#" is a comment.
func Parse(r io.Reader) (*Table, error) {
	var rows [][]byte

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}

		fields := strings.FieldsFunc(line, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t'
		})
		if len(fields) == 0 {
			continue
		}

		row := make([]byte, len(fields))
		for i, f := range fields {
			switch f {
			case ".", "-":
				row[i] = Inactive
				continue
			}

			v, err := strconv.ParseUint(f, 10, 8)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d, column %d", lineNo, i+1)
			}
			row[i] = byte(v)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading topology")
	}

	t, err := FromRows(rows)
	if err != nil {
		return nil, errors.Wrap(err, "malformed topology")
	}
	return t, nil
}

// Load parses the custom Table stored at path.
func Load(path string) (*Table, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open topology %q", path)
	}
	defer fd.Close()

	t, err := Parse(fd)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse topology %q", path)
	}
	return t, nil
}
