// Command spantour is a small demo harness around the spanning tree,
// traversal and tour packages. Each subcommand reads JSON5 from a file
// (or stdin) and prints JSON to stdout.
//
//	spantour mst  -in graph.json5
//	spantour dfs  -in tree.json5 -start 0
//	spantour tour -in cities.json5 -start 0 -method kruskal
package main

import (
	"os"

	"github.com/maruel/subcommands"
)

func getApplication() *subcommands.DefaultApplication {
	return &subcommands.DefaultApplication{
		Name:  "spantour",
		Title: "Minimum spanning trees, ordered tree walks and tree-walk TSP tours.",
		Commands: []*subcommands.Command{
			cmdMST(),
			cmdDFS(),
			cmdTour(),
			subcommands.CmdHelp,
		},
	}
}

func main() {
	os.Exit(subcommands.Run(getApplication(), nil))
}
