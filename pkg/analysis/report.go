package analysis

import (
	"time"

	"github.com/dd0wney/cluso-bibliometrics/pkg/algorithms"
	"github.com/dd0wney/cluso-bibliometrics/pkg/bibliometric"
)

// CoauthorshipReport is the network view of the collaboration graph.
// The embedded centrality report contributes density, component counts,
// the ranked centrality lists, and the availability flags.
type CoauthorshipReport struct {
	NAuthors        int `json:"n_authors"`
	NCollaborations int `json:"n_collaborations"`
	algorithms.CentralityReport
}

// KeywordReport is the network view of the keyword co-occurrence graph.
// Connectedness is ranked by the number of distinct co-occurring keywords.
type KeywordReport struct {
	NKeywords            int                     `json:"n_keywords"`
	NConnections         int                     `json:"n_connections"`
	NKeywordClusters     int                     `json:"n_keyword_clusters"`
	LargestClusterSize   int                     `json:"largest_cluster_size"`
	TopConnectedKeywords []algorithms.RankedNode `json:"top_connected_keywords"`
}

// Report is the complete result of one analysis run. Every section is
// always present; sections that could not be computed carry explicit
// availability flags instead of zeroed values.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	Coauthorship *CoauthorshipReport         `json:"coauthorship_network"`
	Communities  *algorithms.CommunityReport `json:"research_communities"`
	Keywords     *KeywordReport              `json:"keyword_network"`
	Bibliometric *bibliometric.Report        `json:"bibliometric"`
}
