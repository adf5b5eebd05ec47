package algorithms

// Community represents a detected community
type Community struct {
	ID      int
	Nodes   []int64 // Members in graph node order
	Size    int
	Density float64 // Arc density within community
}

// CommunityDetectionResult contains detected communities
type CommunityDetectionResult struct {
	Communities   []*Community
	Modularity    float64       // Quality measure of the partitioning
	NodeCommunity map[int64]int // Node ID -> Community ID
	Iterations    int           // Sweeps performed
	Converged     bool
}
