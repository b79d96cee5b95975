package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/adityakaushiik/CandidateManagement/internal/annotate"
	"github.com/adityakaushiik/CandidateManagement/internal/docstore"
	"github.com/adityakaushiik/CandidateManagement/internal/parser"
	"github.com/adityakaushiik/CandidateManagement/internal/shared/config"
	"github.com/adityakaushiik/CandidateManagement/internal/shared/metrics"
)

func main() {
	showMetrics := flag.Bool("metrics", false, "print parse metrics after the run")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: parse [-metrics] <resume-file> [<resume-file>...]")
		os.Exit(2)
	}

	cfg := config.Load()
	p := parser.New(annotate.NewHeuristic(), docstore.New(cfg.TempDir))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	for _, path := range flag.Args() {
		result := p.Parse(context.Background(), parser.Input{Path: path})
		if err := enc.Encode(result); err != nil {
			log.Fatalf("encode result: %v", err)
		}
	}

	if *showMetrics {
		fmt.Fprint(os.Stderr, metrics.Render())
	}
}
