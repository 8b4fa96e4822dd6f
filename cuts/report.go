// Copyright 2019 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cuts

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-air/kcut/aig"
)

// WriteReport writes one line per node in ascending variable order:
// the node id, a colon, then each retained cut as a brace enclosed,
// space separated, ascending leaf list.
//
//	6: {6} {3 4}
//
// The layout is stable; ParseReport recovers the same leaf sets.
func WriteReport(w io.Writer, all [][]Cut) error {
	bw := bufio.NewWriter(w)
	for v, cs := range all {
		writeNodeLine(bw, aig.Var(v), cs)
	}
	return bw.Flush()
}

// WriteNodeReport writes the single node form of the report, one line
// in the same layout as WriteReport.
func WriteNodeReport(w io.Writer, v aig.Var, cs []Cut) error {
	bw := bufio.NewWriter(w)
	writeNodeLine(bw, v, cs)
	return bw.Flush()
}

func writeNodeLine(bw *bufio.Writer, v aig.Var, cs []Cut) {
	bw.WriteString(strconv.FormatUint(uint64(v), 10))
	bw.WriteByte(':')
	for _, c := range cs {
		bw.WriteString(" {")
		for i, l := range c.Leaves() {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatUint(uint64(l), 10))
		}
		bw.WriteByte('}')
	}
	bw.WriteByte('\n')
}

// ParseReport reads the report layout back into leaf sets keyed by
// node id.
func ParseReport(r io.Reader) (map[aig.Var][][]aig.Var, error) {
	out := make(map[aig.Var][][]aig.Var)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		idStr, rest, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("cut report: no ':' in line %q", line)
		}
		id, err := strconv.ParseUint(strings.TrimSpace(idStr), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("cut report: bad node id in line %q", line)
		}
		var cs [][]aig.Var
		rest = strings.TrimSpace(rest)
		for rest != "" {
			if rest[0] != '{' {
				return nil, fmt.Errorf("cut report: expected '{' in line %q", line)
			}
			end := strings.IndexByte(rest, '}')
			if end < 0 {
				return nil, fmt.Errorf("cut report: unclosed '{' in line %q", line)
			}
			fields := strings.Fields(rest[1:end])
			leaves := make([]aig.Var, 0, len(fields))
			for _, f := range fields {
				l, err := strconv.ParseUint(f, 10, 32)
				if err != nil {
					return nil, fmt.Errorf("cut report: bad leaf %q in line %q", f, line)
				}
				leaves = append(leaves, aig.Var(l))
			}
			cs = append(cs, leaves)
			rest = strings.TrimSpace(rest[end+1:])
		}
		out[aig.Var(id)] = cs
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
