// Package feed turns the demo catalog into the home feed: other authors'
// posts, flattened with author display fields and ordered by recency.
package feed

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"gamechanger/internal/models"
)

// Order selects how composed posts are sorted.
type Order int

const (
	// OrderChronological sorts newest first by real or parsed timestamp.
	OrderChronological Order = iota
	// OrderRecencyBucket sorts by the coarse hour < day < other rank of the label.
	OrderRecencyBucket
)

func (o Order) String() string {
	switch o {
	case OrderRecencyBucket:
		return "recency_bucket"
	default:
		return "chronological"
	}
}

// Compose builds the feed for the viewer with the given handle. Authors whose
// handle equals viewerHandle are left out; an empty handle leaves everyone in.
// Posts are stably sorted, so equal keys keep catalog order. The catalog is not
// modified.
func Compose(catalog *models.Catalog, viewerHandle string, order Order) []models.FeedPost {
	return ComposeAt(catalog, viewerHandle, order, time.Now())
}

// ComposeAt is Compose with an explicit reference time for relative labels.
func ComposeAt(catalog *models.Catalog, viewerHandle string, order Order, now time.Time) []models.FeedPost {
	if catalog == nil {
		return []models.FeedPost{}
	}

	posts := make([]models.FeedPost, 0)
	for _, author := range catalog.Athletes {
		if viewerHandle != "" && author.Username == viewerHandle {
			continue
		}
		ref := author.Ref()
		for _, p := range author.Posts {
			fp := models.FeedPost{Post: p, User: ref}
			if p.PostedAt != nil {
				t := *p.PostedAt
				fp.PostedAt = &t
			}
			posts = append(posts, fp)
		}
	}

	switch order {
	case OrderRecencyBucket:
		sort.SliceStable(posts, func(i, j int) bool {
			return BucketRank(posts[i].Timestamp) < BucketRank(posts[j].Timestamp)
		})
	default:
		times := make([]resolved, len(posts))
		for i := range posts {
			times[i] = resolve(posts[i].Post, now)
		}
		idx := make([]int, len(posts))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return times[idx[a]].newerThan(times[idx[b]])
		})
		sorted := make([]models.FeedPost, len(posts))
		for i, k := range idx {
			sorted[i] = posts[k]
		}
		posts = sorted
	}

	return posts
}

// BucketRank is the coarse recency rank of a timestamp label: 1 when it
// mentions "hour", 2 when it mentions "day", 3 otherwise.
func BucketRank(label string) int {
	switch {
	case strings.Contains(label, "hour"):
		return 1
	case strings.Contains(label, "day"):
		return 2
	default:
		return 3
	}
}

var relativeLabel = regexp.MustCompile(`^(\d+|an?)\s+(second|minute|min|hour|hr|day|week|month|year)s?\s+ago$`)

var unitSizes = map[string]time.Duration{
	"second": time.Second,
	"minute": time.Minute,
	"min":    time.Minute,
	"hour":   time.Hour,
	"hr":     time.Hour,
	"day":    24 * time.Hour,
	"week":   7 * 24 * time.Hour,
	"month":  30 * 24 * time.Hour,
	"year":   365 * 24 * time.Hour,
}

// ResolveTimestamp parses a relative label such as "2 hours ago" or
// "just now" into an absolute time relative to now.
func ResolveTimestamp(label string, now time.Time) (time.Time, bool) {
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "just now" || l == "now" {
		return now, true
	}

	m := relativeLabel.FindStringSubmatch(l)
	if m == nil {
		return time.Time{}, false
	}

	n := 1
	if m[1] != "a" && m[1] != "an" {
		var err error
		if n, err = strconv.Atoi(m[1]); err != nil {
			return time.Time{}, false
		}
	}
	return now.Add(-time.Duration(n) * unitSizes[m[2]]), true
}

type resolved struct {
	at time.Time
	ok bool
}

func resolve(p models.Post, now time.Time) resolved {
	if p.PostedAt != nil {
		return resolved{at: *p.PostedAt, ok: true}
	}
	at, ok := ResolveTimestamp(p.Timestamp, now)
	return resolved{at: at, ok: ok}
}

// newerThan orders resolved times newest first, with unresolved ones last.
func (r resolved) newerThan(o resolved) bool {
	if r.ok != o.ok {
		return r.ok
	}
	if !r.ok {
		return false
	}
	return r.at.After(o.at)
}
