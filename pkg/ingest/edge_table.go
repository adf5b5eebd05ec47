// Package ingest loads edge lists into an EdgeTable and builds graphs from it.
package ingest

import "github.com/dd0wney/cluso-netanalysis/pkg/graph"

// Column names expected in CSV input
const (
	FromColumn = "FromNodeId"
	ToColumn   = "ToNodeId"
)

// Format selects the on-disk layout of an edge list
type Format string

const (
	// FormatCSV is comma separated with a header naming FromColumn and ToColumn
	FormatCSV Format = "csv"
	// FormatSNAP is the SNAP text layout: tab separated, '#' comments, no header
	FormatSNAP Format = "snap"
)

// EdgeRecord is one row of the input
type EdgeRecord struct {
	From int64
	To   int64
}

// EdgeTable holds edge rows in input order, duplicates included
type EdgeTable struct {
	Records []EdgeRecord
}

// Len returns the number of rows
func (t *EdgeTable) Len() int {
	return len(t.Records)
}

// BuildGraph interprets every row as a directed arc. Repeated rows collapse.
func (t *EdgeTable) BuildGraph() *graph.Graph {
	g := graph.New()
	for _, rec := range t.Records {
		g.AddEdge(rec.From, rec.To)
	}
	return g
}
