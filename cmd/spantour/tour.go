package main

import (
	"io"

	"github.com/maruel/subcommands"

	"github.com/katalvlaran/spantour/prim_kruskal"
	"github.com/katalvlaran/spantour/tsp"
)

func cmdTour() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "tour [-in file] [-start n] [-method kruskal|prim]",
		ShortDesc: "prints a tree-walk travelling salesman tour",
		LongDesc: `Reads a list of cities ({x: 1, y: 2}) and prints a closed tour that
follows the depth-first walk of their minimum spanning tree.`,
		CommandRun: func() subcommands.CommandRun {
			c := &tourRun{}
			c.registerBaseFlags()
			c.Flags.IntVar(&c.start, "start", 0, "start city index")
			c.Flags.StringVar(&c.method, "method", prim_kruskal.MethodKruskal, "spanning tree method: kruskal or prim")
			return c
		},
	}
}

type tourRun struct {
	commandBase
	start  int
	method string
}

type cityJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type tourJSON struct {
	Tour []int      `json:"tour"`
	Path []cityJSON `json:"path"`
	Cost float64    `json:"cost"`
}

func (c *tourRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.run(a, args, func(r io.Reader, w io.Writer) error {
		return runTour(r, w, c.start, tsp.Options{Method: c.method})
	})
}

func runTour(r io.Reader, w io.Writer, start int, opts tsp.Options) error {
	var in []cityJSON
	if err := decode(r, &in); err != nil {
		return err
	}
	cities := make([]tsp.City, len(in))
	for i, c := range in {
		cities[i] = tsp.City{X: c.X, Y: c.Y}
	}

	res, err := tsp.Approx(cities, start, opts)
	if err != nil {
		return err
	}

	out := tourJSON{Tour: res.Tour, Cost: res.Cost, Path: make([]cityJSON, len(res.Tour))}
	for i, c := range tsp.ToCities(cities, res.Tour) {
		out.Path[i] = cityJSON{X: c.X, Y: c.Y}
	}

	return encode(w, out)
}
