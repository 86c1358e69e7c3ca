package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/dd0wney/cluso-bibliometrics/pkg/analysis"
	"github.com/dd0wney/cluso-bibliometrics/pkg/corpus"
	"github.com/dd0wney/cluso-bibliometrics/pkg/export"
	"github.com/dd0wney/cluso-bibliometrics/pkg/graph"
	"github.com/dd0wney/cluso-bibliometrics/pkg/logging"
	"github.com/dd0wney/cluso-bibliometrics/pkg/metrics"
	"github.com/dd0wney/cluso-bibliometrics/pkg/validation"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config file (optional)")
		corpusPath = flag.String("corpus", "", "path to corpus JSON file (required)")
		outDir     = flag.String("out", "./output", "output directory for reports and graphs")
		compress   = flag.Bool("compress", false, "snappy-compress exported artifacts")
		logLevel   = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	if err := validation.ValidateAnalysisRequest(&validation.AnalysisRequest{
		CorpusPath: *corpusPath,
	}); err != nil {
		flag.Usage()
		log.Fatalf("Invalid arguments: %v", err)
	}
	if err := validation.NewConfigValidator("Flags").
		Required("out", *outDir).
		OneOf("log_level", *logLevel, []string{"debug", "info", "warn", "error"}).
		Validate(); err != nil {
		flag.Usage()
		log.Fatalf("Invalid arguments: %v", err)
	}

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(*logLevel))

	fmt.Println("🚀 Bibliograph - Starting analysis...")

	cfg := analysis.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = analysis.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	c, err := corpus.LoadFile(*corpusPath)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}
	fmt.Printf("✅ Loaded %d papers from %s\n", c.Len(), *corpusPath)

	registry := metrics.DefaultRegistry()
	analyzer, err := analysis.NewAnalyzer(cfg, logger, registry)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	report, err := analyzer.Analyze(context.Background(), c)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
	fmt.Printf("📊 Analysis complete: %d authors, %d collaborations, %d communities\n",
		report.Coauthorship.NAuthors,
		report.Coauthorship.NCollaborations,
		report.Communities.NumCommunities)

	exporter := export.NewExporter(logger, registry)

	writeReport := func(w io.Writer) error {
		return exporter.WriteJSON(w, report, true)
	}
	if err := exporter.Export(&validation.ExportRequest{
		Format:   "json",
		Path:     filepath.Join(*outDir, "report.json"),
		Compress: *compress,
	}, writeReport); err != nil {
		log.Fatalf("Failed to export report: %v", err)
	}

	exportGraph := func(name string, extract graph.Extractor, minWeight int) {
		g, err := graph.Build(c.Papers(), extract, minWeight)
		if err != nil {
			log.Fatalf("Failed to build %s graph: %v", name, err)
		}
		path := filepath.Join(*outDir, name+".graphml")
		err = exporter.Export(&validation.ExportRequest{
			Format:   "graphml",
			Path:     path,
			Compress: *compress,
		}, func(w io.Writer) error {
			return exporter.WriteGraphML(w, g, name)
		})
		if err != nil {
			log.Fatalf("Failed to export %s graph: %v", name, err)
		}
		fmt.Printf("  📁 %s\n", path)
	}
	exportGraph("coauthorship", graph.Authors, cfg.MinCollaborations)
	exportGraph("keywords", graph.Keywords, cfg.MinCooccurrence)

	authorStatsPath := filepath.Join(*outDir, "author_stats.csv")
	err = exporter.Export(&validation.ExportRequest{
		Format: "csv",
		Path:   authorStatsPath,
	}, func(w io.Writer) error {
		return exporter.WriteAuthorStatsCSV(w, report.Bibliometric.AuthorProductivity.Top20Authors)
	})
	if err != nil {
		log.Fatalf("Failed to export author stats: %v", err)
	}
	fmt.Printf("  📁 %s\n", authorStatsPath)

	fmt.Println("✅ Done")
}
