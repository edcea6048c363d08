package analyzer

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"vettr/internal/models"
	"vettr/internal/util"
)

// iso8601Layouts are tried in order for the raw "date" field. RFC 3339
// covers the trailing-Z designator; the naive layouts cover scrapers that
// omit the zone.
var iso8601Layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// NormalizeScrape converts a raw ingestion payload into content items.
// It fails only when the upstream scrape itself failed; individual bad
// records are logged and skipped, so the returned slice may legitimately
// be empty.
func NormalizeScrape(scrape *models.ScrapeResult) ([]models.ContentItem, error) {
	if scrape == nil || !scrape.Success {
		msg := "Unknown error"
		if scrape != nil && scrape.Error != "" {
			msg = scrape.Error
		}
		return nil, fmt.Errorf("%w: %s", models.ErrScrapeFailed, msg)
	}

	items := make([]models.ContentItem, 0, len(scrape.Data.Posts))
	for _, post := range scrape.Data.Posts {
		item, err := normalizePost(post)
		if err != nil {
			log.Warnf("Failed to convert post %q: %v", postID(post), err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func postID(post models.RawPost) string {
	if post.ID != "" {
		return post.ID
	}
	return "unknown"
}

func normalizePost(post models.RawPost) (models.ContentItem, error) {
	timestamp, err := resolveTimestamp(post)
	if err != nil {
		return models.ContentItem{}, err
	}

	platform := strings.ToLower(post.Platform)
	if platform == "" {
		platform = "unknown"
	}

	text := util.CleanText(post.Text)
	if strings.Contains(text, "<") && strings.Contains(text, ">") {
		text = stripMarkup(text)
	}

	return models.ContentItem{
		Text:       text,
		Platform:   platform,
		Timestamp:  timestamp,
		PostType:   derivePostType(text, platform),
		Engagement: post.Stats,
	}, nil
}

// resolveTimestamp applies the priority order: epoch milliseconds, then the
// ISO-8601 date field, then the current time as last resort.
func resolveTimestamp(post models.RawPost) (time.Time, error) {
	if post.Timestamp != nil {
		return time.UnixMilli(*post.Timestamp).UTC(), nil
	}
	if post.Date != "" {
		for _, layout := range iso8601Layouts {
			if t, err := time.Parse(layout, post.Date); err == nil {
				return t.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("unparseable date %q", post.Date)
	}
	return time.Now().UTC(), nil
}

// derivePostType inspects the text case-insensitively. The retweet check
// runs first: an "RT @" prefix must not be mistaken for a reply or quote.
func derivePostType(text, platform string) string {
	t := strings.ToLower(strings.TrimSpace(text))

	if platform == "twitter" {
		if strings.HasPrefix(t, "rt @") || strings.Contains(t, "retweeted") {
			return models.PostTypeRetweet
		}
	}
	if strings.HasPrefix(t, "@") || strings.HasPrefix(t, "replying to") {
		return models.PostTypeReply
	}
	if strings.Contains(t, "quoted") || strings.Contains(t, "shared") {
		return models.PostTypeQuote
	}
	return models.PostTypeOriginal
}

// stripMarkup flattens HTML-bearing post text to its visible text. Scrapers
// that read from web feeds leave markup in place, which would pollute both
// keyword scans and model prompts.
func stripMarkup(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(sb.String()), " ")
}
