// Package eval scores copilot responses with a coarse lexical heuristic
// and compares prompt variants against each other.
package eval

import (
	"strings"
	"unicode/utf8"
)

const snippetLen = 300

// keywordGroups are the reasoning markers the scorer looks for. One point
// per group with at least one substring hit; the score says nothing about
// semantic quality, only surface structure.
var keywordGroups = [][]string{
	{"thought", "plan"},
	{"answer", "recommend", "recommendation"},
	{"observation", "tool", "reminder"},
}

// Record is the outcome of evaluating one response.
type Record struct {
	Query           string `json:"query"`
	ResponseSnippet string `json:"response_snippet"`
	ReasoningScore  int    `json:"reasoning_score"`
	LengthWords     int    `json:"length_words"`
}

// Score counts how many keyword groups appear in the response,
// case-insensitively. Result is always in [0,3].
func Score(response string) int {
	lower := strings.ToLower(response)
	score := 0
	for _, group := range keywordGroups {
		for _, kw := range group {
			if strings.Contains(lower, kw) {
				score++
				break
			}
		}
	}
	return score
}

// Evaluate builds the evaluation record for one query/response pair.
// Total for all inputs; an empty response scores 0 with 0 words.
func Evaluate(query, response string) Record {
	// The snippet is the first 300 characters, not bytes; slicing bytes
	// here would split a multibyte rune at the boundary.
	snippet := response
	if utf8.RuneCountInString(snippet) > snippetLen {
		snippet = string([]rune(snippet)[:snippetLen])
	}
	return Record{
		Query:           query,
		ResponseSnippet: snippet,
		ReasoningScore:  Score(response),
		LengthWords:     len(strings.Fields(response)),
	}
}
