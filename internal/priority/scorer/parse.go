package scorer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ParsedRating is one item of an LLM rating response.
type ParsedRating struct {
	ID     string
	Score  float64
	Band   string
	Reason string
	Title  string
}

// ParsedResponse is the decoded LLM rating payload.
type ParsedResponse struct {
	Summary string
	Items   []ParsedRating
}

// ParseRatings decodes `{summary, rated_tasks:[...]}` in snake_case or
// camelCase, optionally wrapped in a markdown code fence. A bare array is
// read as the rated task list. Items without an id or a numeric score are
// skipped.
func ParseRatings(text string) (ParsedResponse, error) {
	body := sanitizeJSONResponse(text)
	if body == "" || !gjson.Valid(body) {
		return ParsedResponse{}, fmt.Errorf("%w: not JSON", ErrMalformedResponse)
	}

	root := gjson.Parse(body)
	list := root
	if !root.IsArray() {
		list = firstOf(root, "rated_tasks", "ratedTasks")
		if !list.IsArray() {
			return ParsedResponse{}, fmt.Errorf("%w: rated_tasks missing", ErrMalformedResponse)
		}
	}

	var out ParsedResponse
	if root.IsObject() {
		out.Summary = strings.TrimSpace(root.Get("summary").String())
	}

	list.ForEach(func(_, item gjson.Result) bool {
		id := strings.TrimSpace(item.Get("id").String())
		if id == "" {
			return true
		}
		score, ok := numeric(firstOf(item, "priority_score", "priorityScore", "score"))
		if !ok {
			return true
		}
		out.Items = append(out.Items, ParsedRating{
			ID:     id,
			Score:  score,
			Band:   strings.ToLower(strings.TrimSpace(firstOf(item, "priority_band", "priorityBand").String())),
			Reason: strings.TrimSpace(item.Get("reason").String()),
			Title:  strings.TrimSpace(item.Get("title").String()),
		})
		return true
	})

	return out, nil
}

// firstOf returns the first path that is present and not null.
func firstOf(r gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if v := r.Get(p); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}

func numeric(r gjson.Result) (float64, bool) {
	switch r.Type {
	case gjson.Number:
		return r.Num, true
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		return f, err == nil
	}
	return 0, false
}

// sanitizeJSONResponse strips a markdown code fence or any prose around
// the outermost JSON value.
func sanitizeJSONResponse(response string) string {
	s := strings.TrimSpace(response)

	if start := strings.Index(s, "```"); start >= 0 {
		rest := s[start+3:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[nl+1:]
		}
		if end := strings.LastIndex(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		s = strings.TrimSpace(rest)
	}

	if gjson.Valid(s) {
		return s
	}

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return ""
	}
	closer := byte('}')
	if s[start] == '[' {
		closer = ']'
	}
	end := strings.LastIndexByte(s, closer)
	if end <= start {
		return ""
	}
	return s[start : end+1]
}
