// ABOUTME: MCP tool definitions and handlers for journal entry operations
// ABOUTME: Provides tools for adding, editing, deleting, searching entries and managing the title

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/harper/moodlog/internal/journal"
	"github.com/harper/moodlog/internal/models"
)

// Type definitions for input/output structures

type EntryOutput struct {
	ID         string `json:"id"`
	Mood       string `json:"mood"`
	MoodName   string `json:"mood_name"`
	Text       string `json:"text"`
	IsFavorite bool   `json:"is_favorite"`
	Date       string `json:"date"`
}

type AddEntryInput struct {
	Text       string  `json:"text"`
	Mood       *string `json:"mood,omitempty"`
	IsFavorite *bool   `json:"is_favorite,omitempty"`
}

type EditEntryInput struct {
	EntryID    string  `json:"entry_id"`
	Text       *string `json:"text,omitempty"`
	Mood       *string `json:"mood,omitempty"`
	IsFavorite *bool   `json:"is_favorite,omitempty"`
}

type DeleteEntryInput struct {
	EntryID string `json:"entry_id"`
}

type GetEntryInput struct {
	EntryID string `json:"entry_id"`
}

type ListEntriesInput struct {
	Search        *string `json:"search,omitempty"`
	FavoritesOnly *bool   `json:"favorites_only,omitempty"`
	Limit         *int    `json:"limit,omitempty"`
}

type ListEntriesOutput struct {
	Title   string         `json:"title"`
	Entries []EntryOutput  `json:"entries"`
	Count   int            `json:"count"`
	Total   int            `json:"total"`
	Filters map[string]any `json:"filters"`
}

type SetTitleInput struct {
	Title string `json:"title"`
}

type DeleteAllEntriesInput struct {
	Confirm bool `json:"confirm"`
}

type ActionOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

type StatsOutput struct {
	Title  string       `json:"title"`
	Total  int          `json:"total"`
	ByMood []MoodCount  `json:"by_mood"`
	Counts models.Stats `json:"counts"`
}

type MoodCount struct {
	Mood    string  `json:"mood"`
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Tool registration

func (s *Server) registerTools() {
	s.registerAddEntryTool()
	s.registerEditEntryTool()
	s.registerDeleteEntryTool()
	s.registerListEntriesTool()
	s.registerGetEntryTool()
	s.registerGetStatsTool()
	s.registerSetTitleTool()
	s.registerDeleteAllEntriesTool()
}

const moodDescription = "Mood emoji or name: 😊 (happy), 😐 (neutral), 😢 (sad), 😡 (angry)"

func (s *Server) registerAddEntryTool() {
	tool := mcp.Tool{
		Name:        "add_entry",
		Description: "Add a new diary entry to the mood journal. The entry is placed at the top of the list and stamped with today's date. Returns the created entry with its unique ID.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "What happened today. Must not be blank. Example: 'Went for a long walk by the sea'",
				},
				"mood": map[string]interface{}{
					"type":        "string",
					"description": moodDescription + ". Default: 😐",
				},
				"is_favorite": map[string]interface{}{
					"type":        "boolean",
					"description": "Mark the entry as a favorite. Default: false",
				},
			},
			Required: []string{"text"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleAddEntry)
}

func (s *Server) registerEditEntryTool() {
	tool := mcp.Tool{
		Name:        "edit_entry",
		Description: "Edit an existing entry's text, mood, or favorite flag. Fields that are omitted keep their current value. The entry's ID, date, and position never change. Supports full IDs and unique ID prefixes (at least 6 characters).",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id": map[string]interface{}{
					"type":        "string",
					"description": "The entry ID or ID prefix. Example: 'abc123' (prefix) or 'abc12345-1234-1234-1234-123456789abc' (full)",
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "New entry text. Must not be blank if provided.",
				},
				"mood": map[string]interface{}{
					"type":        "string",
					"description": moodDescription + ". Empty keeps the current mood",
				},
				"is_favorite": map[string]interface{}{
					"type":        "boolean",
					"description": "New favorite flag",
				},
			},
			Required: []string{"entry_id"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleEditEntry)
}

func (s *Server) registerDeleteEntryTool() {
	tool := mcp.Tool{
		Name:        "delete_entry",
		Description: "Delete a single entry by ID or unique ID prefix. This action cannot be undone.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id": map[string]interface{}{
					"type":        "string",
					"description": "The entry ID or ID prefix to delete",
				},
			},
			Required: []string{"entry_id"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleDeleteEntry)
}

func (s *Server) registerListEntriesTool() {
	tool := mcp.Tool{
		Name:        "list_entries",
		Description: "List journal entries, newest first. Filter with 'search' (case-insensitive match on text, or a mood emoji) and 'favorites_only'. All filters are optional and can be combined. Use get_entry for a single entry.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"search": map[string]interface{}{
					"type":        "string",
					"description": "Text to search for, or a mood emoji. Example: 'tatil' or '😢'",
				},
				"favorites_only": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, returns only favorite entries",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of entries to return. If omitted, returns all matching entries.",
				},
			},
		},
	}
	s.mcpServer.AddTool(tool, s.handleListEntries)
}

func (s *Server) registerGetEntryTool() {
	tool := mcp.Tool{
		Name:        "get_entry",
		Description: "Get a single entry by full ID or unique ID prefix (at least 6 characters).",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id": map[string]interface{}{
					"type":        "string",
					"description": "The entry ID or ID prefix",
				},
			},
			Required: []string{"entry_id"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleGetEntry)
}

func (s *Server) registerGetStatsTool() {
	tool := mcp.Tool{
		Name:        "get_stats",
		Description: "Get mood statistics: total entry count and how many entries have each mood.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
	s.mcpServer.AddTool(tool, s.handleGetStats)
}

func (s *Server) registerSetTitleTool() {
	tool := mcp.Tool{
		Name:        "set_title",
		Description: "Change the journal's display title.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"title": map[string]interface{}{
					"type":        "string",
					"description": "New title. Must not be blank. Example: 'Günlüğüm'",
				},
			},
			Required: []string{"title"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleSetTitle)
}

func (s *Server) registerDeleteAllEntriesTool() {
	tool := mcp.Tool{
		Name:        "delete_all_entries",
		Description: "Permanently delete every entry in the journal. The title is kept. Requires confirm=true. This action cannot be undone; ask the user before calling it.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"confirm": map[string]interface{}{
					"type":        "boolean",
					"description": "Must be true to proceed",
				},
			},
			Required: []string{"confirm"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleDeleteAllEntries)
}

// Handler implementations

func (s *Server) handleAddEntry(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input AddEntryInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	if err := journal.ValidateText(input.Text); err != nil {
		return nil, err
	}
	mood := models.DefaultMood
	if input.Mood != nil && *input.Mood != "" {
		m, err := models.ParseMood(*input.Mood)
		if err != nil {
			return nil, err
		}
		mood = m
	}
	fav := input.IsFavorite != nil && *input.IsFavorite

	entry, err := s.journal.AddEntry(mood, input.Text, fav)
	if err != nil {
		return nil, fmt.Errorf("failed to add entry: %w", err)
	}
	s.logger.Debug("entry added via mcp", zap.String("id", entry.ID))

	return jsonResult(toEntryOutput(entry))
}

func (s *Server) handleEditEntry(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input EditEntryInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	entry, err := s.journal.Resolve(input.EntryID)
	if err != nil {
		return nil, err
	}

	mood, text, fav := entry.Mood, entry.Text, entry.IsFavorite
	if input.Text != nil {
		if err := journal.ValidateText(*input.Text); err != nil {
			return nil, err
		}
		text = *input.Text
	}
	if input.Mood != nil && *input.Mood != "" {
		m, err := models.ParseMood(*input.Mood)
		if err != nil {
			return nil, err
		}
		mood = m
	}
	if input.IsFavorite != nil {
		fav = *input.IsFavorite
	}

	found, err := s.journal.EditEntry(entry.ID, mood, text, fav)
	if err != nil {
		return nil, fmt.Errorf("failed to edit entry: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", journal.ErrNotFound, entry.ID)
	}

	updated, ok := s.journal.Entry(entry.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", journal.ErrNotFound, entry.ID)
	}
	return jsonResult(toEntryOutput(updated))
}

func (s *Server) handleDeleteEntry(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input DeleteEntryInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	entry, err := s.journal.Resolve(input.EntryID)
	if err != nil {
		return nil, err
	}
	removed, err := s.journal.DeleteEntry(entry.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete entry: %w", err)
	}

	message := "Entry deleted"
	if !removed {
		message = "Entry was already deleted"
	}
	return jsonResult(ActionOutput{Success: true, Message: message, ID: entry.ID})
}

func (s *Server) handleListEntries(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input ListEntriesInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if input.Limit != nil && *input.Limit < 0 {
		return nil, fmt.Errorf("limit must be non-negative, got %d", *input.Limit)
	}

	search := ""
	if input.Search != nil {
		search = *input.Search
	}
	favoritesOnly := input.FavoritesOnly != nil && *input.FavoritesOnly

	matches := s.journal.Query(search, favoritesOnly)
	total := len(matches)
	if input.Limit != nil && *input.Limit < len(matches) {
		matches = matches[:*input.Limit]
	}

	filters := map[string]any{}
	if search != "" {
		filters["search"] = search
	}
	if favoritesOnly {
		filters["favorites_only"] = true
	}
	if input.Limit != nil {
		filters["limit"] = *input.Limit
	}

	return jsonResult(ListEntriesOutput{
		Title:   s.journal.Title(),
		Entries: toEntryOutputs(matches),
		Count:   len(matches),
		Total:   total,
		Filters: filters,
	})
}

func (s *Server) handleGetEntry(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input GetEntryInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	entry, err := s.journal.Resolve(input.EntryID)
	if err != nil {
		return nil, err
	}
	return jsonResult(toEntryOutput(entry))
}

func (s *Server) handleGetStats(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.buildStats())
}

func (s *Server) handleSetTitle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input SetTitleInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if err := journal.ValidateTitle(input.Title); err != nil {
		return nil, err
	}
	if err := s.journal.UpdateTitle(input.Title); err != nil {
		return nil, fmt.Errorf("failed to set title: %w", err)
	}
	return jsonResult(ActionOutput{Success: true, Message: fmt.Sprintf("Title set to %q", input.Title)})
}

// errNotConfirmed is returned when delete_all_entries is called without confirm=true.
var errNotConfirmed = errors.New("delete_all_entries requires confirm=true")

func (s *Server) handleDeleteAllEntries(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input DeleteAllEntriesInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if !input.Confirm {
		return nil, errNotConfirmed
	}

	count := s.journal.Len()
	if err := s.journal.DeleteAllEntries(); err != nil {
		return nil, fmt.Errorf("failed to delete entries: %w", err)
	}
	s.logger.Info("all entries deleted via mcp", zap.Int("count", count))

	return jsonResult(ActionOutput{Success: true, Message: fmt.Sprintf("Deleted %d entries", count)})
}

// Helpers

func (s *Server) buildStats() StatsOutput {
	stats := s.journal.Stats()
	byMood := make([]MoodCount, 0, len(models.AllMoods))
	for _, m := range models.AllMoods {
		n := stats.Count(m)
		pct := 0.0
		if stats.Total > 0 {
			pct = float64(n) * 100 / float64(stats.Total)
		}
		byMood = append(byMood, MoodCount{Mood: string(m), Name: m.Name(), Count: n, Percent: pct})
	}
	return StatsOutput{
		Title:  s.journal.Title(),
		Total:  stats.Total,
		ByMood: byMood,
		Counts: stats,
	}
}

func toEntryOutput(e models.Entry) EntryOutput {
	return EntryOutput{
		ID:         e.ID,
		Mood:       string(e.Mood),
		MoodName:   e.Mood.Name(),
		Text:       e.Text,
		IsFavorite: e.IsFavorite,
		Date:       e.Date,
	}
}

func toEntryOutputs(entries []models.Entry) []EntryOutput {
	out := make([]EntryOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryOutput(e))
	}
	return out
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
