// ABOUTME: MCP prompt definitions and handlers
// ABOUTME: Provides a guided reflection workflow over recent journal entries

package mcp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

const defaultReflectionEntries = 10

func (s *Server) registerPrompts() {
	s.registerMoodReflectionPrompt()
}

func (s *Server) registerMoodReflectionPrompt() {
	s.mcpServer.AddPrompt(
		mcp.Prompt{
			Name:        "mood_reflection",
			Description: "Reflect on recent journal entries: spot mood patterns, recurring themes, and good moments worth keeping",
			Arguments: []mcp.PromptArgument{
				{
					Name:        "entries",
					Description: fmt.Sprintf("Number of recent entries to reflect on (default: %d)", defaultReflectionEntries),
					Required:    false,
				},
			},
		},
		s.handleMoodReflection,
	)
}

//nolint:funlen // Prompt handlers contain large template strings
func (s *Server) handleMoodReflection(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	n := defaultReflectionEntries
	if req.Params.Arguments != nil {
		if v, ok := req.Params.Arguments["entries"]; ok && v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed <= 0 {
				return nil, fmt.Errorf("entries must be a positive integer, got %q", v)
			}
			n = parsed
		}
	}

	stats := s.buildStats()
	var breakdown string
	for _, mc := range stats.ByMood {
		breakdown += fmt.Sprintf("- %s %s: %d (%.0f%%)\n", mc.Mood, mc.Name, mc.Count, mc.Percent)
	}

	template := fmt.Sprintf(`# Mood Reflection

## Overview
Look back over the %d most recent entries in "%s" and help the writer notice how they have been feeling. Be warm and concrete. Quote their own words where it helps, and never diagnose.

## Current Snapshot
Total entries: %d

%s
## Workflow Steps

### Step 1: Read Recent Entries
**Use list_entries tool with limit=%d:**
- Entries come back newest first
- Note the mood emoji, the date, and the text of each

### Step 2: Find Patterns
- Which mood shows up most often lately? Compare with the snapshot above
- Are there streaks (several 😢 or 😡 in a row) or a clear turning point?
- What people, places, or activities appear next to 😊 entries?
- What tends to come before 😢 or 😡 entries?

### Step 3: Revisit Favorites
**Use moodlog://favorites resource:**
- Favorites are moments the writer chose to keep
- Connect recent entries to these when there is a genuine link

### Step 4: Write the Reflection
Keep it short:
- **How it's been:** one or two sentences on the overall mood
- **Bright spots:** two or three specific good moments
- **Worth noticing:** one gentle observation about a pattern
- **A small idea:** one thing the writer might try, based on what already works for them

### Step 5: Offer Follow-ups
- Ask if they want to add today's entry (add_entry)
- Offer to mark a highlighted entry as a favorite (edit_entry with is_favorite=true)

## Notes
- Do not edit or delete entries unless the writer asks
- Never call delete_all_entries as part of a reflection
`, n, stats.Title, stats.Total, breakdown, n)

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Reflection over the %d most recent journal entries", n),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: template,
				},
			},
		},
	}, nil
}
