package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"rotaboard/cmd/rotagen/engine"
)

func main() {
	days := flag.Int("days", 31, "Number of schedule days to generate")
	residents := flag.Int("residents", 40, "Number of resident rotation records to generate")
	start := flag.String("start", "", "First schedule date (YYYY-MM-DD, defaults to the first of the current month)")
	outDir := flag.String("out", "./data", "Output directory for the dataset files")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Days:      *days,
		Residents: *residents,
		Seed:      *seed,
	}
	if *start != "" {
		t, err := time.Parse("2006-01-02", *start)
		if err != nil {
			fmt.Printf("Invalid start date: %v\n", err)
			os.Exit(1)
		}
		cfg.Start = t
	}

	fmt.Printf("Generating %d schedule days and %d residents to %s...\n", cfg.Days, cfg.Residents, *outDir)

	schedule, roster := engine.Generate(cfg)

	if err := engine.Save(*outDir, schedule, roster); err != nil {
		fmt.Printf("Failed to save dataset: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
