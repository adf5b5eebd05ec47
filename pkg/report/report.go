// Package report prints analysis results in the fixed text layout read by
// people comparing runs.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-netanalysis/pkg/algorithms"
)

const separator = "--------------------"

// Writer prints report sections to an underlying writer. The first write
// error is kept and later writes are skipped.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter creates a report writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first write error
func (r *Writer) Err() error {
	return r.err
}

func (r *Writer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Clustering prints the average clustering coefficient line
func (r *Writer) Clustering(average float64) {
	r.printf("Average Clustering Coefficient: %s\n", FormatFloat(average))
}

// Ranking prints one top-N block, e.g. measure "Degree Centrality"
func (r *Writer) Ranking(measure string, ranked []algorithms.RankedNode) {
	r.printf("\nTop Nodes based on %s:\n", measure)
	for i, node := range ranked {
		r.printf("Top %d: Node %d - %s: %s\n", i+1, node.NodeID, measure, FormatFloat(node.Score))
	}
}

// Centrality prints the four rankings in their fixed order
func (r *Writer) Centrality(result *algorithms.CentralityResult) {
	r.Ranking("Degree Centrality", result.TopByDegree)
	r.Ranking("Closeness Centrality", result.TopByCloseness)
	r.Ranking("Betweenness Centrality", result.TopByBetweenness)
	r.Ranking("Eigenvector Centrality", result.TopByEigenvector)
}

// Communities prints every community with its members
func (r *Writer) Communities(communities []*algorithms.Community) {
	r.printf("Communities:\n")
	for i, community := range communities {
		r.printf("Community %d:\n", i+1)
		r.printf("%s\n", joinIDs(community.Nodes))
		r.printf("%s\n", separator)
	}
}

// CommunitySummary prints the community count and mean size
func (r *Writer) CommunitySummary(count int, averageSize float64) {
	r.printf("\nDetails Concluded from Community Detection:\n")
	r.printf("Number of Communities: %d\n", count)
	r.printf("Average Community Size: %s\n", FormatFloat(averageSize))
}

func joinIDs(ids []int64) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(id, 10))
	}
	return sb.String()
}

// FormatFloat renders v as the shortest round-trip decimal, always with a
// fractional part or exponent: 1 -> "1.0", 1e-05 -> "1e-05",
// 1e16 -> "1e+16", NaN -> "nan".
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if v != 0 && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
