// text.go -- read edge lists from a variety of text files into a graph

package main

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

type edge struct {
	src, dst string
}

// AddTextFile adds edges from text file 'fn' where source and destination
// are separated by one of the characters in 'delim'. Empty lines, comments
// and lines with a single field are skipped. This function just opens the
// file and calls AddTextStream().
// Returns number of edges added.
func AddTextFile(g *graph, fn string, delim string) (uint64, error) {
	fd, err := os.Open(fn)
	if err != nil {
		return 0, err
	}

	if len(delim) == 0 {
		delim = " \t"
	}

	defer fd.Close()

	n, err := AddTextStream(g, fd, delim)
	return n, errors.Wrapf(err, "%s", fn)
}

// AddTextStream adds edges from text stream 'fd' where source and
// destination are separated by one of the characters in 'delim'.
// Returns number of edges added.
func AddTextStream(g *graph, fd io.Reader, delim string) (uint64, error) {
	sc := bufio.NewScanner(bufio.NewReader(fd))
	ch := make(chan *edge, 10)
	errch := make(chan error, 1)

	// do I/O asynchronously
	go func(sc *bufio.Scanner, ch chan *edge) {
		for sc.Scan() {
			s := strings.TrimSpace(sc.Text())
			if len(s) == 0 || s[0] == '#' {
				continue
			}

			i := strings.IndexAny(s, delim)
			if i <= 0 {
				continue
			}

			dst := strings.TrimLeft(s[i:], delim)
			if j := strings.IndexAny(dst, delim); j > 0 {
				dst = dst[:j]
			}
			if len(dst) == 0 {
				continue
			}

			ch <- &edge{s[:i], dst}
		}

		errch <- sc.Err()
		close(ch)
	}(sc, ch)

	n := addFromChan(g, ch)
	if err := <-errch; err != nil {
		return n, errors.Wrap(err, "read error")
	}
	return n, nil
}

// AddCSVFile adds edges from CSV file 'fn'. If 'srcfield' and 'dstfield' are
// non-negative, they indicate the field# of the source and destination
// respectively; the default is 0 and 1.
// If 'comment' is not 0, then lines beginning with that rune are discarded.
// Returns number of edges added.
func AddCSVFile(g *graph, fn string, comma, comment rune, srcfield, dstfield int) (uint64, error) {
	fd, err := os.Open(fn)
	if err != nil {
		return 0, err
	}

	defer fd.Close()

	n, err := AddCSVStream(g, fd, comma, comment, srcfield, dstfield)
	return n, errors.Wrapf(err, "%s", fn)
}

// AddCSVStream is AddCSVFile() for an open stream.
func AddCSVStream(g *graph, fd io.Reader, comma, comment rune, srcfield, dstfield int) (uint64, error) {
	if srcfield < 0 {
		srcfield = 0
	}

	if dstfield < 0 {
		dstfield = 1
	}

	max := dstfield
	if srcfield > dstfield {
		max = srcfield
	}

	max += 1

	ch := make(chan *edge, 10)
	errch := make(chan error, 1)
	cr := csv.NewReader(fd)
	cr.Comma = comma
	cr.Comment = comment
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	go func(cr *csv.Reader, ch chan *edge) {
		var err error
		for {
			var v []string

			v, err = cr.Read()
			if err != nil {
				break
			}

			if len(v) < max {
				continue
			}

			ch <- &edge{v[srcfield], v[dstfield]}
		}

		if err == io.EOF {
			err = nil
		}
		errch <- err
		close(ch)
	}(cr, ch)

	n := addFromChan(g, ch)
	if err := <-errch; err != nil {
		return n, errors.Wrap(err, "csv")
	}
	return n, nil
}

// drain edges from the chan into the graph
func addFromChan(g *graph, ch chan *edge) uint64 {
	var n uint64
	for e := range ch {
		g.addEdge(e.src, e.dst)
		n++
	}

	return n
}
