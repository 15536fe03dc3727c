// bitreach.go -- reachability sets of a directed graph using bitsets
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// bitreach is an example of using go-bitset. It computes, for each queried
// node, the set of nodes reachable from it. The graph can come from a
// variety of input:
//   - white space delimited text file: first field is source, second is dest
//   - Comma Separated text file (CSV): first field is source, second is dest
//   - a random graph of N nodes with a fixed out-degree
//
// Each node's successors are kept in a Promoted bitset; reachability is a
// fixed point of unions over these sets.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"

	flag "github.com/opencoff/pflag"
)

var log = logrus.WithField("prefix", "bitreach")

func main() {
	var random, degree, cache int
	var seed uint64
	var from []string
	var classes, verbose bool

	usage := fmt.Sprintf("%s [options] [INPUT ...]", os.Args[0])

	flag.IntVarP(&random, "random", "r", 0, "Use a random graph of `N` nodes instead of input files")
	flag.IntVarP(&degree, "degree", "d", 3, "Use `D` out-edges per node in a random graph")
	flag.Uint64VarP(&seed, "seed", "s", 1, "Seed the random graph with `S`")
	flag.StringSliceVarP(&from, "from", "f", nil, "Print nodes reachable from `NODE` (repeatable)")
	flag.IntVarP(&cache, "cache", "c", 128, "Cache up to `N` reachability sets")
	flag.BoolVarP(&classes, "classes", "C", false, "Print groups of nodes with identical reachability")
	flag.BoolVarP(&verbose, "verbose", "v", false, "Show verbose progress")
	flag.Usage = func() {
		fmt.Printf("bitreach - reachability sets of a directed graph\nUsage: %s\n", usage)
		flag.PrintDefaults()
	}

	flag.Parse()
	args := flag.Args()

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	var g *graph
	var err error

	if random > 0 {
		if degree < 0 {
			die("invalid degree %d", degree)
		}
		g, err = randomGraph(random, degree, seed, cache)
		if err != nil {
			die("can't make graph: %s", err)
		}
		log.WithFields(logrus.Fields{"nodes": random, "degree": degree, "seed": seed}).Debug("random graph")
	} else {
		g, err = newGraph(cache)
		if err != nil {
			die("can't make graph: %s", err)
		}
		load(g, args)
	}

	log.WithField("nodes", g.Len()).Debug("graph ready")

	for _, name := range from {
		i, ok := g.index[name]
		if !ok {
			warn("unknown node %s", name)
			continue
		}

		r := g.reach(i)
		log.WithFields(logrus.Fields{"node": name, "reach": r.Count(), "words": r.NumWords()}).Debug("reach")
		fmt.Printf("%s: %s\n", name, strings.Join(g.nodes(r), " "))
	}

	if classes {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		cls, err := g.classes(ctx)
		if err != nil {
			die("can't compute classes: %s", err)
		}
		for _, c := range cls {
			fmt.Printf("= %s\n", strings.Join(c, " "))
		}
	}
}

// load edges from the named files or STDIN
func load(g *graph, args []string) {
	var n uint64
	var err error

	if len(args) == 0 {
		n, err = AddTextStream(g, os.Stdin, " \t")
		if err != nil {
			die("can't add STDIN: %s", err)
		}

		log.WithField("edges", n).Debug("+ <STDIN>")
		return
	}

	for _, f := range args {
		switch {
		case strings.HasSuffix(f, ".txt"):
			n, err = AddTextFile(g, f, " \t")

		case strings.HasSuffix(f, ".csv"):
			n, err = AddCSVFile(g, f, ',', '#', 0, 1)

		default:
			warn("Don't know how to add %s", f)
			continue
		}

		if err != nil {
			warn("can't add %s: %s", f, err)
			continue
		}

		log.WithField("edges", n).Debugf("+ %s", f)
	}
}

// die with error
func die(f string, v ...interface{}) {
	warn(f, v...)
	os.Exit(1)
}

func warn(f string, v ...interface{}) {
	z := fmt.Sprintf("%s: %s", os.Args[0], f)
	s := fmt.Sprintf(z, v...)
	if n := len(s); s[n-1] != '\n' {
		s += "\n"
	}

	os.Stderr.WriteString(s)
	os.Stderr.Sync()
}

// vim: ft=go:sw=4:ts=4:noexpandtab:tw=78:
