package metis

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/prrp/region"
)

// Parse reads a METIS-format graph from r and returns its adjacency. Only
// the unweighted line format is supported: a header "n m" (an optional
// third fmt token is accepted but ignored — weighted and vertex-sized
// variants are out of scope here) followed by n lines of 1-based neighbor
// ids. Blank lines before the header are skipped; a vertex with no
// neighbors is a line left blank.
func Parse(r io.Reader) (region.Adjacency, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	n, err := readHeader(scanner)
	if err != nil {
		return nil, err
	}

	adj := make(region.Adjacency, n)
	for i := 1; i <= n; i++ {
		adj[region.AreaID(i-1)] = make(region.AreaSet)
	}

	for i := 1; i <= n; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("metis: parse: missing adjacency line for vertex %d", i)
		}
		fields := strings.Fields(scanner.Text())
		for _, f := range fields {
			oneBased, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("metis: parse: vertex %d: bad neighbor token %q: %w", i, f, err)
			}
			if oneBased < 1 || oneBased > n {
				return nil, fmt.Errorf("metis: parse: vertex %d: neighbor %d out of range [1,%d]", i, oneBased, n)
			}
			adj.AddEdge(region.AreaID(i-1), region.AreaID(oneBased-1))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("metis: parse: %w", err)
	}

	return adj, nil
}

// readHeader scans past any leading blank lines and parses "n m [fmt]",
// returning n (the vertex count).
func readHeader(scanner *bufio.Scanner) (int, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, fmt.Errorf("metis: parse: malformed header %q", line)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, fmt.Errorf("metis: parse: bad vertex count %q: %w", fields[0], err)
		}
		if n < 0 {
			return 0, fmt.Errorf("metis: parse: negative vertex count %d", n)
		}
		return n, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("metis: parse: %w", err)
	}
	return 0, fmt.Errorf("metis: parse: empty input, expected a header line")
}
