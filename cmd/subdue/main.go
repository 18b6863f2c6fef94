// Command subdue discovers repeated, connected subgraph patterns in an
// attributed multigraph, scoring each candidate by how much it would
// compress the graph, and optionally iterates by collapsing the best
// pattern's instances into summary vertices between rounds.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := newRootCmd(log).Execute(); err != nil {
		log.WithError(err).Error("subdue failed")
		os.Exit(1)
	}
}
