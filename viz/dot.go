// Copyright 2019 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package viz renders an aig.Graph as a PNG through the external
// graphviz dot tool.
package viz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-air/kcut/aig"
)

// WriteDot writes a graphviz rendering of g to w.  Primary inputs
// are light blue boxes, gates circles, the outputs in outs light
// green diamonds; complemented fanins are dashed edges.
func WriteDot(w io.Writer, g *aig.Graph, outs []aig.Lit) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("digraph aig {\n")
	bw.WriteString("  rankdir=LR;\n")
	bw.WriteString("  node [shape=circle];\n")
	for i := 0; i < g.Len(); i++ {
		m := g.At(i)
		switch g.Kind(m) {
		case aig.Input:
			fmt.Fprintf(bw, "  x%d [label=\"x%d\", shape=box, style=filled, fillcolor=lightblue];\n", i, i)
		case aig.And:
			fmt.Fprintf(bw, "  x%d [label=\"x%d\"];\n", i, i)
			a, b, _ := g.Ins(m)
			for _, c := range [2]aig.Lit{a, b} {
				style := "solid"
				if !c.IsPos() {
					style = "dashed"
				}
				fmt.Fprintf(bw, "  x%d -> x%d [style=%s];\n", c.Var(), i, style)
			}
		}
	}
	for i, o := range outs {
		style, label := "solid", fmt.Sprintf("f%d = x%d", i, o.Var())
		if !o.IsPos() {
			style, label = "dashed", fmt.Sprintf("f%d = !x%d", i, o.Var())
		}
		fmt.Fprintf(bw, "  f%d [label=\"%s\", shape=diamond, style=filled, fillcolor=lightgreen];\n", i, label)
		fmt.Fprintf(bw, "  x%d -> f%d [style=%s];\n", o.Var(), i, style)
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

// ExportPNG writes a dot file next to path and rasterizes it to path
// with the dot binary.  path should end in ".png".
func ExportPNG(path string, g *aig.Graph, outs []aig.Lit) error {
	dotPath := strings.TrimSuffix(path, ".png") + ".dot"
	f, err := os.Create(dotPath)
	if err != nil {
		return errors.Wrap(err, "create dot file")
	}
	if err := WriteDot(f, g, outs); err != nil {
		f.Close()
		return errors.Wrap(err, "write dot file")
	}
	if err := f.Close(); err != nil {
		return err
	}
	cmd := exec.Command("dot", "-Tpng", dotPath, "-o", path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "dot -Tpng: %s", strings.TrimSpace(string(out)))
	}
	return nil
}
