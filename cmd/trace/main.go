// Command trace runs one traversal algorithm over a graph description file
// and writes the replayable trace as JSON. With -watch it keeps re-running
// on every change to the graph file, the loop used while tuning a graph for
// animation.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/kimestelle/algorithm-visualizer/graphio"
	"github.com/kimestelle/algorithm-visualizer/internal/watch"
	"github.com/kimestelle/algorithm-visualizer/registry"
)

func main() {
	graphPath := flag.String("graph", "", "path to the graph description (.yaml/.yml/.json)")
	algo := flag.String("algo", "dfs", fmt.Sprintf("algorithm to run (%s)", strings.Join(registry.Names(), ", ")))
	start := flag.String("start", "", "start node id (required for bfs and dijkstra)")
	out := flag.String("out", "", "trace output path (default: stdout)")
	watchMode := flag.Bool("watch", false, "re-run whenever the graph file changes")
	flag.Parse()

	log := logrus.New()

	if *graphPath == "" {
		log.Fatal("-graph is required")
	}
	if _, ok := registry.Lookup(*algo); !ok {
		log.WithField("algorithm", *algo).Fatal("unknown algorithm")
	}
	if *watchMode && *out == "" {
		log.Fatal("-watch requires -out (stdout would interleave traces)")
	}

	run := func() error {
		g, err := graphio.Load(*graphPath)
		if err != nil {
			return err
		}
		res, err := registry.Run(*algo, g, *start)
		if err != nil {
			return err
		}
		if *out == "" {
			return graphio.WriteResult(os.Stdout, res)
		}
		if err := graphio.SaveResult(*out, res); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"algorithm": *algo,
			"steps":     len(res.Steps),
			"out":       *out,
		}).Info("trace written")
		return nil
	}

	if err := run(); err != nil {
		log.WithError(err).Fatal("traversal failed")
	}
	if !*watchMode {
		return
	}

	stop, err := watch.File(*graphPath, func() {
		// A bad edit should not kill the loop; report and wait for the fix.
		if err := run(); err != nil {
			log.WithError(err).Warn("re-run failed")
		}
	})
	if err != nil {
		log.WithError(err).Fatal("watcher unavailable")
	}
	defer stop()
	log.WithField("graph", *graphPath).Info("watching for changes")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
}
