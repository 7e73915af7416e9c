package importer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jimezsa/jobboard/internal/models"
)

// Fetcher retrieves the body of a page by URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Load reads job postings from a local HTML file or an http(s) URL. fetcher
// is only used for URLs and may be nil otherwise.
func Load(ctx context.Context, fetcher Fetcher, source string) ([]models.JobDraft, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("source is required")
	}

	var (
		page []byte
		err  error
	)
	if IsURL(source) {
		if fetcher == nil {
			return nil, fmt.Errorf("no fetcher for %s", source)
		}
		page, err = fetcher.Fetch(ctx, source)
	} else {
		page, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	drafts := ParseJobPostings(doc)
	if len(drafts) == 0 {
		return nil, fmt.Errorf("no JobPosting entries found in %s", source)
	}
	return drafts, nil
}

func IsURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
