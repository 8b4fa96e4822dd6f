// Copyright 2019 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command kcut loads a combinational AIG from an AIGER file and
// enumerates the k-feasible cuts of its nodes.
package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-air/kcut/aig"
	"github.com/go-air/kcut/aiger"
	"github.com/go-air/kcut/cuts"
	"github.com/go-air/kcut/logger"
	"github.com/go-air/kcut/viz"
)

var (
	readPath string
	vizPath  string
	enumPath string
	cutNode  int
	cutSize  int
	outPath  string
)

func main() {
	root := &cobra.Command{
		Use:           "kcut -r in.aig [-k N] [-v out.png] [-e cuts.txt] [-c node [-o out.txt]]",
		Short:         "enumerate the k-feasible cuts of a combinational AIG",
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVarP(&readPath, "read", "r", "", "AIGER input file")
	root.Flags().StringVarP(&vizPath, "visualize", "v", "", "write a PNG rendering of the graph")
	root.Flags().StringVarP(&enumPath, "enumerate", "e", "", "write the all-nodes cut report")
	root.Flags().IntVarP(&cutNode, "cut", "c", -1, "node id for a single-node cut report")
	root.Flags().IntVarP(&cutSize, "cut-size", "k", 4, "maximum cut size")
	root.Flags().StringVarP(&outPath, "output", "o", "", "output path for the single-node cut report")
	root.MarkFlagRequired("read")
	if err := root.Execute(); err != nil {
		log := logger.Logger()
		log.Error().Err(err).Msg("kcut failed")
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if cutSize < 1 {
		return errors.Errorf("cut size %d, need at least 1", cutSize)
	}
	log := logger.Logger()

	f, err := os.Open(readPath)
	if err != nil {
		return errors.Wrap(err, "open aiger file")
	}
	defer f.Close()
	start := time.Now()
	t, err := aiger.Read(f)
	if err != nil {
		return errors.Wrapf(err, "load %s", readPath)
	}
	log.Info().
		Int("nodes", t.Len()).
		Int("inputs", len(t.Inputs)).
		Int("outputs", len(t.Outputs)).
		Dur("in", time.Since(start)).
		Msg("loaded aig")

	if vizPath != "" {
		if err := viz.ExportPNG(vizPath, t.Graph, t.Outputs); err != nil {
			return errors.Wrapf(err, "visualize %s", vizPath)
		}
		log.Info().Str("path", vizPath).Msg("wrote graph rendering")
	}

	tbl := cuts.NewTable(t.Graph)
	if enumPath != "" {
		if err := writeAllCuts(tbl); err != nil {
			return err
		}
		log.Info().Str("path", enumPath).Int("k", cutSize).Msg("wrote cut report")
	}
	if cutNode >= 0 {
		if err := writeNodeCuts(tbl); err != nil {
			return err
		}
	}
	return nil
}

func writeAllCuts(tbl *cuts.Table) error {
	out, err := os.Create(enumPath)
	if err != nil {
		return errors.Wrap(err, "create cut report")
	}
	if err := cuts.WriteReport(out, tbl.AllCuts(cutSize)); err != nil {
		out.Close()
		return errors.Wrapf(err, "write %s", enumPath)
	}
	return out.Close()
}

func writeNodeCuts(tbl *cuts.Table) error {
	v := aig.Var(cutNode)
	// the single node query only enumerates the node's fanin cone
	cs, err := tbl.ConeCuts(v, cutSize)
	if err != nil {
		return errors.Wrapf(err, "node %d", cutNode)
	}
	if outPath == "" {
		return cuts.WriteNodeReport(os.Stdout, v, cs)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, "create cut report")
	}
	if err := cuts.WriteNodeReport(out, v, cs); err != nil {
		out.Close()
		return errors.Wrapf(err, "write %s", outPath)
	}
	return out.Close()
}
