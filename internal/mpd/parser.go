/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package mpd

import (
	"fmt"
	"strings"
)

// parseLine splits an MPD command line into the command name and its
// arguments. Arguments may be double-quoted and quotes may be escaped
// with a backslash.
func parseLine(line string) (string, []string, error) {
	fields, err := tokenize(strings.TrimRight(line, "\r\n"))
	if err != nil {
		return "", nil, err
	}
	if len(fields) == 0 {
		return "", nil, nil
	}
	return fields[0], fields[1:], nil
}

func tokenize(line string) ([]string, error) {
	var fields []string
	var current strings.Builder
	inQuote := false
	escaped := false
	started := false

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && inQuote:
			escaped = true
		case r == '"':
			inQuote = !inQuote
			started = true
		case r == ' ' && !inQuote:
			if started || current.Len() > 0 {
				fields = append(fields, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote in %q", line)
	}
	if started || current.Len() > 0 {
		fields = append(fields, current.String())
	}
	return fields, nil
}
