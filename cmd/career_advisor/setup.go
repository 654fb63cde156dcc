package main

import (
	"context"
	"log"
	"os"

	"github.com/pushkarjay/career-advisor/internal/advisor"
	"github.com/pushkarjay/career-advisor/internal/catalog"
	"github.com/pushkarjay/career-advisor/internal/config"
	"github.com/pushkarjay/career-advisor/internal/insights"
	"github.com/pushkarjay/career-advisor/internal/llm"
)

// buildAdvisor wires the advisor from configuration. Returns a cleanup
// function releasing the catalog connection and LLM client.
func buildAdvisor(ctx context.Context, cfg config.Config) (*advisor.Advisor, func(), error) {
	var (
		careerCat   catalog.CareerCatalog
		resourceCat catalog.ResourceCatalog
		cleanups    []func()
	)

	if cfg.DatabaseURL != "" {
		pg, err := catalog.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		cleanups = append(cleanups, pg.Close)
		careerCat = pg
		resourceCat = pg
	} else {
		mem := catalog.NewMemory()
		if cfg.CareersFile != "" {
			if err := mem.LoadCareersFile(cfg.CareersFile); err != nil {
				return nil, nil, err
			}
		}
		careerCat = mem
		resourceCat = mem
	}

	var gen *insights.Generator
	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, nil, err
		}
		cleanups = append(cleanups, func() { _ = client.Close() })
		gen = insights.NewGenerator(client)
	} else {
		log.Println("GEMINI_API_KEY not set, narrative sections disabled")
	}

	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	return advisor.New(careerCat, resourceCat, gen, nil), cleanup, nil
}

// configFromEnv fills a Config from environment variables for fields not
// already set.
func configFromEnv(cfg config.Config) config.Config {
	return cfg.MergeWithDefaults(config.Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CareersFile: os.Getenv("CAREERS_FILE"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
	})
}
