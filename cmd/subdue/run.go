package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/subdue/discovery"
	"github.com/katalvlaran/subdue/iofmt"
	"github.com/katalvlaran/subdue/pattern"
)

// runSubdue loads the input graph, resolves default parameters, runs
// discovery, and writes whichever output files the flags request. Write
// failures are returned only after the discovery result has already been
// logged (spec §7 "Write-failure" ordering).
func runSubdue(log *logrus.Logger, flags cliFlags, inputPath string) error {
	overlap, err := pattern.ParseOverlapPolicy(flags.overlap)
	if err != nil {
		return fmt.Errorf("option-malformed --overlap: %w", err)
	}

	graph, err := iofmt.ReadGraph(inputPath)
	if err != nil {
		return err
	}

	params := discovery.ResolveDefaults(discovery.Params{
		BeamWidth:       flags.beam,
		Iterations:      flags.iterations,
		Limit:           flags.limit,
		MaxSize:         flags.maxSize,
		MinSize:         flags.minSize,
		NumBest:         flags.numBest,
		Overlap:         overlap,
		Prune:           flags.prune,
		ValueBased:      flags.valueBased,
		Temporal:        flags.temporal,
		WriteCompressed: flags.writeCompressed,
		WritePattern:    flags.writePattern,
		WriteInstances:  flags.writeInstances,
	}, graph)

	summary := graph.Summarize()
	log.WithFields(logrus.Fields{
		"vertices": summary.VertexCount,
		"edges":    summary.EdgeCount,
		"input":    inputPath,
	}).Info("loaded graph")

	iterationsOut, err := discovery.Run(context.Background(), params, graph, log)
	if err != nil {
		return err
	}

	outputBase := outputBaseName(inputPath)
	for i, patternList := range iterationsOut {
		iteration := i + 1
		best := patternList[0]
		log.WithFields(logrus.Fields{
			"iteration": iteration,
			"found":     len(patternList),
			"bestValue": best.Value,
		}).Info("best pattern for iteration")

		if params.WritePattern {
			path := fmt.Sprintf("%s-pattern-%d.json", outputBase, iteration)
			if err := iofmt.WriteGraph(path, best.Definition); err != nil {
				return err
			}
		}
		if params.WriteInstances {
			path := fmt.Sprintf("%s-instances-%d.json", outputBase, iteration)
			if err := iofmt.WriteInstances(path, best); err != nil {
				return err
			}
		}
	}

	// The compressed graph is only emitted once, at the final planned
	// iteration, matching original_source/src/Subdue.py's
	// "iteration == parameters.iterations" guard: if discovery stopped
	// early (no patterns found, or the graph fully compressed), there is
	// no final-iteration round to emit.
	if params.WriteCompressed && len(iterationsOut) == params.Iterations {
		path := fmt.Sprintf("%s-compressed-%d.json", outputBase, params.Iterations)
		if err := iofmt.WriteGraph(path, graph); err != nil {
			return err
		}
	}

	if len(iterationsOut) == 0 {
		log.Info("no patterns found")
	}

	return nil
}

// outputBaseName strips a trailing ".json" extension from the input path,
// matching Parameters.set_parameters's outputFileName derivation.
func outputBaseName(inputPath string) string {
	if strings.EqualFold(filepath.Ext(inputPath), ".json") {
		return strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	}

	return inputPath
}
