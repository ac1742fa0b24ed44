package main

import (
	"io"

	"github.com/maruel/subcommands"

	"github.com/katalvlaran/spantour/prim_kruskal"
)

func cmdMST() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "mst [-in file]",
		ShortDesc: "prints the minimum spanning tree of an adjacency matrix",
		LongDesc: `Reads a square adjacency matrix (0 = no edge) and prints the
Kruskal minimum spanning tree in the same shape, each edge stored once.`,
		CommandRun: func() subcommands.CommandRun {
			c := &mstRun{}
			c.registerBaseFlags()
			return c
		},
	}
}

type mstRun struct {
	commandBase
}

func (c *mstRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.run(a, args, runMST)
}

func runMST(r io.Reader, w io.Writer) error {
	var rows [][]float64
	if err := decode(r, &rows); err != nil {
		return err
	}
	tree, err := prim_kruskal.MinimumSpanningTree(rows)
	if err != nil {
		return err
	}

	return encode(w, tree)
}
