// Package parser reassembles the token stream from a thread page into
// ordered reply records.
package parser

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"okayplayer-parser/pkg/thread"
	"okayplayer-parser/tokenize"
)

// Parser turns the raw HTML of one thread page into a Thread with its
// replies in page order. A Parser holds no per-parse state; one instance
// may serve concurrent parses.
type Parser struct {
	logger *slog.Logger
	cfg    Config
}

// New creates a parser. A nil logger discards diagnostics. An empty
// ReplyURLTemplate falls back to the default template.
func New(cfg Config, logger *slog.Logger) *Parser {
	if cfg.ReplyURLTemplate == "" {
		cfg.ReplyURLTemplate = defaultReplyURLTemplate
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{cfg: cfg, logger: logger}
}

// Parse extracts every complete reply from the page.
//
// With Config.SkipMalformed unset, the first post that fails to fold aborts
// the parse and the caller gets no replies at all; with it set, bad posts
// are dropped with a warning and the rest survive.
func (p *Parser) Parse(document string) (*thread.Thread, error) {
	title, forumID, topicID, err := p.metadata(document)
	if err != nil {
		return nil, err
	}

	tokens := tokenize.Tokenize(document)
	groups := group(tokens)

	replies := make([]*thread.Reply, 0, len(groups))
	for i, g := range groups {
		reply, err := p.foldGroup(forumID, topicID, g)
		if err != nil {
			if p.cfg.SkipMalformed {
				p.logger.Warn("Dropping malformed post", "group", i, "error", err)
				continue
			}
			return nil, fmt.Errorf("fold post %d: %w", i, err)
		}
		replies = append(replies, reply)
	}

	// The root post's numbering in the markup is unreliable; its position
	// in the thread is structurally known.
	if len(replies) > 0 {
		rootNum, rootParent := 0, -1
		replies[0].MessageNum = &rootNum
		replies[0].MessageParent = &rootParent
	}

	p.logger.Info("Thread page parsed",
		"title", title,
		"forum_id", forumID,
		"topic_id", topicID,
		"tokens", len(tokens),
		"replies", len(replies))

	return &thread.Thread{
		Title:   title,
		ForumID: forumID,
		TopicID: topicID,
		Replies: replies,
	}, nil
}

// group partitions the token stream into per-post chunks. A boundary token
// closes the current chunk; a boundary with nothing accumulated is a no-op.
// Tokens after the final boundary belong to a truncated tail and are
// dropped rather than folded into a bogus record.
func group(tokens []tokenize.Token) [][]tokenize.Token {
	var groups [][]tokenize.Token
	var current []tokenize.Token
	for _, tok := range tokens {
		if tok.Kind != tokenize.Boundary {
			current = append(current, tok)
			continue
		}
		if len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
	}
	return groups
}

var (
	threadTitleRegexp = regexp.MustCompile(`<strong>\s*"(.*?)"\s*</strong>`)
	forumIDRegexp     = regexp.MustCompile(`forum=(\d+)`)
	topicIDRegexp     = regexp.MustCompile(`topic_id=(\d+)`)
)

// metadata pulls the thread-level fields out of the page. Forum and topic
// ids appear in every navigation link, so their absence means this is not a
// thread page at all.
func (p *Parser) metadata(document string) (title string, forumID, topicID int, err error) {
	m := forumIDRegexp.FindStringSubmatch(document)
	if m == nil {
		return "", 0, 0, &MetadataError{Field: "forum id"}
	}
	// The capture is all digits, but a pathological run can still
	// overflow int.
	forumID, err = strconv.Atoi(m[1])
	if err != nil {
		return "", 0, 0, &MetadataError{Field: "forum id", Err: err}
	}

	m = topicIDRegexp.FindStringSubmatch(document)
	if m == nil {
		return "", 0, 0, &MetadataError{Field: "topic id"}
	}
	topicID, err = strconv.Atoi(m[1])
	if err != nil {
		return "", 0, 0, &MetadataError{Field: "topic id", Err: err}
	}

	if m := threadTitleRegexp.FindStringSubmatch(document); m != nil {
		title = m[1]
	} else {
		title = titleFromHead(document)
	}
	return title, forumID, topicID, nil
}

// titleFromHead falls back to the document <title> when no header run
// carries the quoted thread title, trimming the board-name suffix.
func titleFromHead(document string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return ""
	}
	raw := strings.TrimSpace(doc.Find("title").First().Text())
	if idx := strings.Index(raw, " | "); idx > 0 {
		return raw[:idx]
	}
	return raw
}
