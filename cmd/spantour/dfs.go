package main

import (
	"io"

	"github.com/maruel/subcommands"

	"github.com/katalvlaran/spantour/dfs"
	"github.com/katalvlaran/spantour/matrix"
)

func cmdDFS() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "dfs [-in file] [-start n]",
		ShortDesc: "prints the ordered depth-first walk of a tree matrix",
		LongDesc: `Reads a tree adjacency matrix, such as the output of "mst", and prints
the vertices reachable from -start with the weight of the edge used to reach each.`,
		CommandRun: func() subcommands.CommandRun {
			c := &dfsRun{}
			c.registerBaseFlags()
			c.Flags.IntVar(&c.start, "start", 0, "start vertex index")
			return c
		},
	}
}

type dfsRun struct {
	commandBase
	start int
}

type nodeJSON struct {
	Index  int     `json:"index"`
	Weight float64 `json:"weight"`
}

func (c *dfsRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.run(a, args, func(r io.Reader, w io.Writer) error {
		return runDFS(r, w, c.start)
	})
}

func runDFS(r io.Reader, w io.Writer, start int) error {
	var rows [][]float64
	if err := decode(r, &rows); err != nil {
		return err
	}
	tree, err := matrix.FromRows(rows)
	if err != nil {
		return err
	}
	nodes, err := dfs.DFS(tree, start)
	if err != nil {
		return err
	}

	out := make([]nodeJSON, len(nodes))
	for i, n := range nodes {
		out[i] = nodeJSON{Index: n.Index, Weight: n.Weight}
	}

	return encode(w, out)
}
