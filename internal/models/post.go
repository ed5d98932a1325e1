package models

import "time"

// MediaKind is the type of media attached to a post.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Post is a single demo feed item. Engagement counters are display values only.
type Post struct {
	ID        int        `json:"id" yaml:"id"`
	Type      MediaKind  `json:"type" yaml:"type"`
	Content   string     `json:"content" yaml:"content"`
	Media     string     `json:"media" yaml:"media"`
	Likes     int        `json:"likes" yaml:"likes"`
	Comments  int        `json:"comments" yaml:"comments"`
	Shares    int        `json:"shares" yaml:"shares"`
	Timestamp string     `json:"timestamp" yaml:"timestamp"`
	PostedAt  *time.Time `json:"postedAt,omitempty" yaml:"postedAt,omitempty"`
}

// AuthorRef is the copy of an author's display fields carried by a feed post.
type AuthorRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Sport    string `json:"sport"`
	Position string `json:"position"`
}

// FeedPost is a post annotated with its author, as shown on the home feed.
type FeedPost struct {
	Post
	User AuthorRef `json:"user"`
}

// DraftPost is the input collected by the create-post flow.
type DraftPost struct {
	Content string   `json:"content"`
	Media   []string `json:"media"`
}
