// ABOUTME: MCP resource providers for moodlog
// ABOUTME: Exposes read-only views of entries, favorites, and mood statistics

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	uriEntries   = "moodlog://entries"
	uriFavorites = "moodlog://favorites"
	uriStats     = "moodlog://stats"
)

// ResourceData is the standard response format for all resources.
type ResourceData struct {
	Metadata ResourceMetadata  `json:"metadata"`
	Data     interface{}       `json:"data"`
	Links    map[string]string `json:"links"`
}

// ResourceMetadata contains metadata about the resource response.
type ResourceMetadata struct {
	Timestamp   time.Time      `json:"timestamp"`
	Title       string         `json:"title"`
	Count       int            `json:"count"`
	ResourceURI string         `json:"resource_uri"`
	Filters     map[string]any `json:"filters,omitempty"`
}

func (s *Server) registerResources() {
	s.registerEntriesResource()
	s.registerFavoritesResource()
	s.registerStatsResource()
}

func (s *Server) registerEntriesResource() {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         uriEntries,
			Name:        "All Entries",
			Description: "Every journal entry, newest first, with mood, text, favorite flag, and date",
			MIMEType:    "application/json",
		},
		s.handleEntriesResource,
	)
}

func (s *Server) handleEntriesResource(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	entries := toEntryOutputs(s.journal.Entries())
	return s.resourceContents(request, ResourceData{
		Metadata: ResourceMetadata{
			Timestamp:   time.Now(),
			Title:       s.journal.Title(),
			Count:       len(entries),
			ResourceURI: uriEntries,
		},
		Data: entries,
		Links: map[string]string{
			"favorites": uriFavorites,
			"stats":     uriStats,
		},
	})
}

func (s *Server) registerFavoritesResource() {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         uriFavorites,
			Name:        "Favorite Entries",
			Description: "Journal entries marked as favorites, newest first",
			MIMEType:    "application/json",
		},
		s.handleFavoritesResource,
	)
}

func (s *Server) handleFavoritesResource(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	entries := toEntryOutputs(s.journal.Query("", true))
	return s.resourceContents(request, ResourceData{
		Metadata: ResourceMetadata{
			Timestamp:   time.Now(),
			Title:       s.journal.Title(),
			Count:       len(entries),
			ResourceURI: uriFavorites,
			Filters: map[string]any{
				"favorites_only": true,
			},
		},
		Data: entries,
		Links: map[string]string{
			"all_entries": uriEntries,
			"stats":       uriStats,
		},
	})
}

func (s *Server) registerStatsResource() {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         uriStats,
			Name:        "Mood Statistics",
			Description: "Total entry count and per-mood breakdown with percentages",
			MIMEType:    "application/json",
		},
		s.handleStatsResource,
	)
}

func (s *Server) handleStatsResource(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	stats := s.buildStats()
	return s.resourceContents(request, ResourceData{
		Metadata: ResourceMetadata{
			Timestamp:   time.Now(),
			Title:       stats.Title,
			Count:       stats.Total,
			ResourceURI: uriStats,
		},
		Data: stats,
		Links: map[string]string{
			"all_entries": uriEntries,
			"favorites":   uriFavorites,
		},
	})
}

func (s *Server) resourceContents(request mcp.ReadResourceRequest, data ResourceData) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
