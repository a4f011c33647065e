package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/attiodex/internal/domain/resource"
	"github.com/kailas-cloud/attiodex/internal/domain/search/query"
	"github.com/kailas-cloud/attiodex/internal/logger"
)

func (s *Server) handleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query parameter is required"), nil
	}
	rt, err := parseResource(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	q, err := query.New(text, rt, req.GetInt("limit", 0), req.GetInt("offset", 0))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	records, err := s.search.Search(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Warn("search failed", zap.String("resource", rt.Slug()), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %s", err)), nil
	}
	return mcp.NewToolResultText(formatRecords(records, rt, text)), nil
}

func (s *Server) handleBatchSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rt, err := parseResource(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	queries, err := stringSlice(req.GetArguments()["queries"])
	if err != nil {
		return mcp.NewToolResultError("queries must be an array of strings"), nil
	}

	outcomes, err := s.batch.SearchAll(ctx, rt, queries, req.GetInt("limit", 0))
	if err != nil {
		logger.FromContext(ctx).Warn("batch search failed", zap.Int("queries", len(queries)), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("batch search failed: %s", err)), nil
	}
	return mcp.NewToolResultText(formatBatch(outcomes, rt)), nil
}

func (s *Server) handleGetRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rt, err := parseResource(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := req.RequireString("record_id")
	if err != nil {
		return mcp.NewToolResultError("record_id parameter is required"), nil
	}

	rec, err := s.records.Get(ctx, rt, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("get record failed: %s", err)), nil
	}
	return mcp.NewToolResultText(formatRecord(rec)), nil
}

func (s *Server) handleCreateRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rt, err := parseResource(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	values, ok := req.GetArguments()["values"].(map[string]any)
	if !ok {
		return mcp.NewToolResultError("values must be an object of attribute values"), nil
	}

	rec, err := s.records.Create(ctx, rt, values)
	if err != nil {
		logger.FromContext(ctx).Warn("create record failed", zap.String("resource", rt.Slug()), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("create record failed: %s", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Created %s record %s.\n%s", rt.Slug(), rec.ID(), formatRecord(rec))), nil
}

func (s *Server) handleUpdateRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rt, err := parseResource(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := req.RequireString("record_id")
	if err != nil {
		return mcp.NewToolResultError("record_id parameter is required"), nil
	}
	values, ok := req.GetArguments()["values"].(map[string]any)
	if !ok {
		return mcp.NewToolResultError("values must be an object of attribute values"), nil
	}

	rec, err := s.records.Update(ctx, rt, id, values)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("update record failed: %s", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Updated %s record %s.\n%s", rt.Slug(), rec.ID(), formatRecord(rec))), nil
}

func (s *Server) handleDeleteRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rt, err := parseResource(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := req.RequireString("record_id")
	if err != nil {
		return mcp.NewToolResultError("record_id parameter is required"), nil
	}

	if err := s.records.Delete(ctx, rt, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("delete record failed: %s", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted %s record %s.", rt.Slug(), id)), nil
}

func (s *Server) handleListEntries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := req.RequireString("list")
	if err != nil {
		return mcp.NewToolResultError("list parameter is required"), nil
	}

	entries, err := s.lists.Entries(ctx, list, req.GetInt("limit", 0), req.GetInt("offset", 0))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list entries failed: %s", err)), nil
	}
	if len(entries) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("List %q has no entries on this page.", list)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d entries in list %q:\n\n", len(entries), list)
	for i, entry := range entries {
		fmt.Fprintf(&b, "[%d] %s (%s)\n", i+1, entry.DisplayName(), entry.ID())
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleAddToList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := req.RequireString("list")
	if err != nil {
		return mcp.NewToolResultError("list parameter is required"), nil
	}
	parent, err := req.RequireString("parent_object")
	if err != nil {
		return mcp.NewToolResultError("parent_object parameter is required"), nil
	}
	recordID, err := req.RequireString("record_id")
	if err != nil {
		return mcp.NewToolResultError("record_id parameter is required"), nil
	}

	entry, err := s.lists.Add(ctx, list, parent, recordID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("add to list failed: %s", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Added record %s to list %q (entry %s).", recordID, list, entry.ID())), nil
}

func (s *Server) handleRemoveFromList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := req.RequireString("list")
	if err != nil {
		return mcp.NewToolResultError("list parameter is required"), nil
	}
	entryID, err := req.RequireString("entry_id")
	if err != nil {
		return mcp.NewToolResultError("entry_id parameter is required"), nil
	}

	if err := s.lists.Remove(ctx, list, entryID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("remove from list failed: %s", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Removed entry %s from list %q.", entryID, list)), nil
}

func (s *Server) handleValidateCategories(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, ok := req.GetArguments()["categories"]
	if !ok {
		return mcp.NewToolResultError("categories parameter is required"), nil
	}

	result := s.records.ValidateCategories(input)
	text := formatCategoryResult(result)
	if !result.IsValid {
		return mcp.NewToolResultError(text), nil
	}
	return mcp.NewToolResultText(text), nil
}

// parseResource reads and validates the resource argument.
func parseResource(req mcp.CallToolRequest) (resource.Type, error) {
	slug, err := req.RequireString("resource")
	if err != nil {
		return "", fmt.Errorf("resource parameter is required")
	}
	rt, err := resource.Parse(strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return "", err
	}
	return rt, nil
}

// stringSlice coerces a JSON-decoded array argument into strings.
func stringSlice(v any) ([]string, error) {
	switch val := v.(type) {
	case []string:
		return val, nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected array, got %T", v)
	}
}
