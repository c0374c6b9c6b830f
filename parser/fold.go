package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"okayplayer-parser/pkg/thread"
	"okayplayer-parser/tokenize"
)

const (
	// Rendered as e.g. "Sun Oct-16-05 09:42 AM"; the weekday prefix is a
	// fixed four characters and is stripped before parsing.
	messageDateLayout = "Jan-02-06 03:04 PM"

	// Rendered as e.g. "Jan 12th 2004", with an ordinal suffix on the day.
	joinDateLayout = "Jan 2 2006"
)

var ordinalSuffixRegexp = regexp.MustCompile(`(\d+)(?:st|nd|rd|th)`)

// foldGroup builds one Reply from a post's tokens, applied in source order.
// A field with no token keeps its zero value; a field whose token fails to
// parse is a *MalformedValueError; a group with no id token at all is
// ErrNoMessageID, since the deep link cannot be built without it.
func (p *Parser) foldGroup(forumID, topicID int, group []tokenize.Token) (*thread.Reply, error) {
	r := &thread.Reply{ForumID: forumID, TopicID: topicID}
	keepFirst := p.cfg.Duplicates == FirstWins

	setInt := func(dst **int, tok tokenize.Token) error {
		if keepFirst && *dst != nil {
			return nil
		}
		n, err := strconv.Atoi(tok.Payload)
		if err != nil {
			return &MalformedValueError{Kind: tok.Kind, Value: tok.Payload, Err: err}
		}
		*dst = &n
		return nil
	}
	setString := func(dst **string, tok tokenize.Token) {
		if keepFirst && *dst != nil {
			return
		}
		s := tok.Payload
		*dst = &s
	}

	var fragments []string
	var postsSet bool

	for _, tok := range group {
		switch tok.Kind {
		case tokenize.MessageID:
			if err := setInt(&r.MessageID, tok); err != nil {
				return nil, err
			}

		case tokenize.MessageTitle:
			setString(&r.MessageTitle, tok)

		case tokenize.MessageParent:
			if err := setInt(&r.MessageParent, tok); err != nil {
				return nil, err
			}

		case tokenize.MessageText:
			// Malformed nesting can split one body across several
			// matches; keep them all, in order.
			fragments = append(fragments, tok.Payload)

		case tokenize.MessageDate:
			if keepFirst && r.MessageDate != nil {
				continue
			}
			d, err := parseMessageDate(tok.Payload)
			if err != nil {
				return nil, &MalformedValueError{Kind: tok.Kind, Value: tok.Payload, Err: err}
			}
			d = d.Add(p.cfg.TimeOffset)
			r.MessageDate = &d

		case tokenize.MessageNum:
			if err := setInt(&r.MessageNum, tok); err != nil {
				return nil, err
			}

		case tokenize.AuthorName:
			setString(&r.AuthorName, tok)

		case tokenize.AuthorAvatar:
			if keepFirst && r.AuthorAvatar != nil {
				continue
			}
			// Moderator badge images match the same pattern but carry
			// relative paths; only an absolute image URL is the avatar.
			img := strings.ToLower(tok.Payload)
			if strings.HasPrefix(img, "http") && hasImageExtension(img) {
				r.AuthorAvatar = &img
			}

		case tokenize.AuthorID:
			if err := setInt(&r.AuthorID, tok); err != nil {
				return nil, err
			}

		case tokenize.AuthorCharter:
			r.AuthorIsCharter = true
			r.AuthorJoinDate = nil

		case tokenize.AuthorJoinDate:
			if keepFirst && r.AuthorJoinDate != nil {
				continue
			}
			d, err := parseJoinDate(tok.Payload)
			if err != nil {
				return nil, &MalformedValueError{Kind: tok.Kind, Value: tok.Payload, Err: err}
			}
			r.AuthorJoinDate = &d
			r.AuthorIsCharter = false

		case tokenize.AuthorPosts:
			if keepFirst && postsSet {
				continue
			}
			n, err := strconv.Atoi(tok.Payload)
			if err != nil {
				return nil, &MalformedValueError{Kind: tok.Kind, Value: tok.Payload, Err: err}
			}
			r.AuthorNumPosts = n
			postsSet = true

		case tokenize.Boundary:
			// Boundaries never reach a group.
		}
	}

	r.MessageText = strings.Join(fragments, "")

	if r.MessageID == nil {
		return nil, ErrNoMessageID
	}
	r.URL = fmt.Sprintf(p.cfg.ReplyURLTemplate, forumID, topicID, *r.MessageID)

	return r, nil
}

// parseMessageDate strips the fixed-width weekday prefix and parses the
// remainder, e.g. "Sun Oct-16-05 09:42 AM" -> 2005-10-16 09:42.
func parseMessageDate(s string) (time.Time, error) {
	if len(s) < 4 {
		return time.Time{}, fmt.Errorf("date %q too short for weekday prefix", s)
	}
	return time.Parse(messageDateLayout, s[4:])
}

// parseJoinDate strips the ordinal suffix off the day number and parses,
// e.g. "Jan 12th 2004" -> 2004-01-12.
func parseJoinDate(s string) (time.Time, error) {
	return time.Parse(joinDateLayout, ordinalSuffixRegexp.ReplaceAllString(s, "$1"))
}

func hasImageExtension(url string) bool {
	return strings.HasSuffix(url, ".jpg") ||
		strings.HasSuffix(url, ".gif") ||
		strings.HasSuffix(url, ".png")
}
