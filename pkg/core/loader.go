package core

import (
	"bufio"
	"fmt"
	"io"
)

// maxTokenSize bounds a single site token. Crawled URLs can be long.
const maxTokenSize = 1 << 20

// Build reads whitespace separated tokens from r two at a time and adds
// each (source, target) pair as a link. A trailing unpaired token is dropped.
//
// The only error returned is a read error from r.
func Build(r io.Reader) (*Graph, error) {
	g := NewGraph()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	var source string
	pending := false
	for scanner.Scan() {
		if !pending {
			source = scanner.Text()
			pending = true
			continue
		}
		g.AddEdge(source, scanner.Text())
		pending = false
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read link pairs: %w", err)
	}

	return g, nil
}
