package report

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dd0wney/cluso-netanalysis/pkg/algorithms"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{0.5, "0.5"},
		{2.0 / 3.0, "0.6666666666666666"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1234567, "1234567.0"},
		{1e16, "1e+16"},
		{-0.25, "-0.25"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFloat(tt.in), "FormatFloat(%v)", tt.in)
	}
}

func TestWriter_Layout(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.Clustering(0.5)
	w.Ranking("Degree Centrality", []algorithms.RankedNode{
		{NodeID: 30, Score: 1},
		{NodeID: 3, Score: 0.25},
	})
	w.Communities([]*algorithms.Community{
		{ID: 0, Nodes: []int64{3, 25, 4}, Size: 3},
		{ID: 1, Nodes: []int64{7}, Size: 1},
	})
	w.CommunitySummary(2, 2)

	want := "Average Clustering Coefficient: 0.5\n" +
		"\nTop Nodes based on Degree Centrality:\n" +
		"Top 1: Node 30 - Degree Centrality: 1.0\n" +
		"Top 2: Node 3 - Degree Centrality: 0.25\n" +
		"Communities:\n" +
		"Community 1:\n" +
		"3 25 4\n" +
		"--------------------\n" +
		"Community 2:\n" +
		"7\n" +
		"--------------------\n" +
		"\nDetails Concluded from Community Detection:\n" +
		"Number of Communities: 2\n" +
		"Average Community Size: 2.0\n"

	assert.NoError(t, w.Err())
	assert.Equal(t, want, buf.String())
}

func TestWriter_CentralityOrder(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Centrality(&algorithms.CentralityResult{})

	assert.Equal(t,
		"\nTop Nodes based on Degree Centrality:\n"+
			"\nTop Nodes based on Closeness Centrality:\n"+
			"\nTop Nodes based on Betweenness Centrality:\n"+
			"\nTop Nodes based on Eigenvector Centrality:\n",
		buf.String())
}

type failingWriter struct {
	calls int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("disk full")
}

func TestWriter_StopsAfterError(t *testing.T) {
	fw := &failingWriter{}
	w := NewWriter(fw)

	w.Clustering(0.1)
	w.CommunitySummary(1, 1)

	assert.EqualError(t, w.Err(), "disk full")
	assert.Equal(t, 1, fw.calls)
}
