// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// BusPinName returns the name of the i-th pin of a bus.
func BusPinName(bus string, i int) string {
	return bus + "[" + strconv.Itoa(i) + "]"
}

// ExpandBus parses a comma separated list of wire names and returns individual
// names, expanding bus declarations. For example:
//
//	ExpandBus("in[2], sel") // returns []string{"in[0]", "in[1]", "sel"}
func ExpandBus(names string) ([]string, error) {
	var out []string
	pos := 0
	for _, item := range strings.Split(names, ",") {
		start := pos
		pos += len(item) + 1
		item = strings.TrimSpace(item)
		if item == "" {
			if strings.TrimSpace(names) == "" {
				return nil, nil
			}
			return nil, parseError(names, start, "expected wire name")
		}
		name, size := item, -1
		if i := strings.IndexByte(item, '['); i >= 0 {
			if !strings.HasSuffix(item, "]") {
				return nil, parseError(names, start, "missing close bracket")
			}
			n, err := strconv.Atoi(strings.TrimSpace(item[i+1 : len(item)-1]))
			if err != nil || n <= 0 {
				return nil, parseError(names, start, "invalid bus size")
			}
			name, size = strings.TrimSpace(item[:i]), n
		}
		if !isIdent(name) {
			return nil, parseError(names, start, "invalid wire name "+strconv.Quote(name))
		}
		if size < 0 {
			out = append(out, name)
			continue
		}
		for i := 0; i < size; i++ {
			out = append(out, BusPinName(name, i))
		}
	}
	return out, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if !(unicode.IsLetter(r) || r == '_' || i > 0 && unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
