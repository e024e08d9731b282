package main

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/register"
	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/scrape"
	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/store"
)

const (
	defaultRegisterURL = "https://www.frc.sa.gov.au/developmentregister"
	defaultCommentURL  = "mailto:council@frc.sa.gov.au"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := register.Config{
		RegisterURL: envOr("REGISTER_URL", defaultRegisterURL),
		CommentURL:  envOr("COMMENT_URL", defaultCommentURL),
		Logger:      logger,
	}
	dbPath := envOr("SQLITE_PATH", "data.sqlite")
	sampleSize := envIntOr("PDF_SAMPLE", 2)

	st, err := store.Open(dbPath)
	if err != nil {
		logger.Error("open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	client, err := scrape.NewClient(os.Getenv("SCRAPE_PROXY"))
	if err != nil {
		logger.Error("create client", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	urls, err := client.PDFLinks(ctx, cfg.RegisterURL)
	if err != nil {
		logger.Error("discover register PDFs", "url", cfg.RegisterURL, "error", err)
		os.Exit(1)
	}
	logger.Info("register PDFs discovered", "count", len(urls))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	selected := scrape.Sample(urls, sampleSize, rng)

	scraper := register.New(cfg)
	for _, pdfURL := range selected {
		data, err := client.Fetch(ctx, pdfURL)
		if err != nil {
			logger.Error("fetch pdf", "url", pdfURL, "error", err)
			continue
		}

		counts, err := scraper.ProcessPDF(data, pdfURL, st)
		if err != nil {
			logger.Error("process pdf", "url", pdfURL, "error", err)
			continue
		}
		logger.Info("pdf processed", "url", pdfURL,
			"inserted", counts.Inserted, "skipped", counts.Skipped)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
