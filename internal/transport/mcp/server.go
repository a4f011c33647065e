// Package mcp exposes the Attio tools over the Model Context Protocol. The
// transport is stdio JSON-RPC; handlers translate tool arguments into
// usecase calls and render results as text blocks. Input errors come back as
// tool errors, never as protocol errors.
package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/kailas-cloud/attiodex/internal/logger"
	"github.com/kailas-cloud/attiodex/internal/metrics"
	"github.com/kailas-cloud/attiodex/internal/usecase/batch"
	"github.com/kailas-cloud/attiodex/internal/usecase/list"
	"github.com/kailas-cloud/attiodex/internal/usecase/record"
	"github.com/kailas-cloud/attiodex/internal/usecase/search"
	"github.com/kailas-cloud/attiodex/internal/version"
)

// serverInstructions is returned in the initialize response; clients may add
// it to the system prompt.
const serverInstructions = `Attiodex exposes an Attio CRM workspace. Use attio_search to find people, ` +
	`companies, deals, or tasks by free text, email, or phone; attio_batch_search ` +
	`for several queries at once; attio_get_record / attio_create_record / ` +
	`attio_update_record / attio_delete_record for CRUD; attio_list_entries, ` +
	`attio_add_to_list, attio_remove_from_list for list membership; and ` +
	`attio_validate_categories to check company categories before writing them.`

// Server wires the usecases to the MCP tool surface.
type Server struct {
	search  *search.Service
	batch   *batch.Service
	records *record.Service
	lists   *list.Service
	log     *zap.Logger
}

// Deps are the usecase dependencies of the tool surface.
type Deps struct {
	Search  *search.Service
	Batch   *batch.Service
	Records *record.Service
	Lists   *list.Service
	Logger  *zap.Logger
}

// NewServer creates the MCP server with every tool registered.
func NewServer(deps Deps) *server.MCPServer {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		search:  deps.Search,
		batch:   deps.Batch,
		records: deps.Records,
		lists:   deps.Lists,
		log:     log,
	}

	srv := server.NewMCPServer(
		"attiodex",
		version.Version,
		server.WithToolCapabilities(true),
		server.WithInstructions(serverInstructions),
	)
	s.registerTools(srv)
	return srv
}

// Serve runs the stdio transport until the client disconnects.
func Serve(srv *server.MCPServer) error {
	return server.ServeStdio(srv)
}

func (s *Server) registerTools(srv *server.MCPServer) {
	srv.AddTool(
		mcp.NewTool("attio_search",
			mcp.WithDescription("Search records of one Attio resource type by free text. Understands names, email addresses, and phone numbers; multi-word queries match records containing every word in any searchable field."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Search text: words, an email address, a phone number, or a mix"),
			),
			mcp.WithString("resource",
				mcp.Required(),
				mcp.Description("Resource type: people, companies, deals, tasks, or a custom object slug"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Max results (default: 20, max: 100)"),
			),
			mcp.WithNumber("offset",
				mcp.Description("Pagination offset (default: 0)"),
			),
		),
		s.instrument("attio_search", s.handleSearch),
	)

	srv.AddTool(
		mcp.NewTool("attio_batch_search",
			mcp.WithDescription("Run several searches against one resource type concurrently. Each query succeeds or fails on its own; results come back in query order."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithArray("queries",
				mcp.Required(),
				mcp.Description("Search queries, e.g. [\"acme\", \"jane@example.com\"]"),
			),
			mcp.WithString("resource",
				mcp.Required(),
				mcp.Description("Resource type the queries run against"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Max results per query (default: 20, max: 100)"),
			),
		),
		s.instrument("attio_batch_search", s.handleBatchSearch),
	)

	srv.AddTool(
		mcp.NewTool("attio_get_record",
			mcp.WithDescription("Fetch one record by its Attio record ID."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithString("resource", mcp.Required(), mcp.Description("Resource type of the record")),
			mcp.WithString("record_id", mcp.Required(), mcp.Description("Attio record ID")),
		),
		s.instrument("attio_get_record", s.handleGetRecord),
	)

	srv.AddTool(
		mcp.NewTool("attio_create_record",
			mcp.WithDescription("Create a record. Attribute keys accept common aliases (website, email, first_name/last_name); company categories are validated against the canonical options before the API is called."),
			mcp.WithString("resource", mcp.Required(), mcp.Description("Resource type to create")),
			mcp.WithObject("values",
				mcp.Required(),
				mcp.Description("Attribute values, e.g. {\"name\": \"Acme\", \"domains\": \"acme.com\"}"),
			),
		),
		s.instrument("attio_create_record", s.handleCreateRecord),
	)

	srv.AddTool(
		mcp.NewTool("attio_update_record",
			mcp.WithDescription("Update attribute values on an existing record. Same alias handling and category validation as attio_create_record."),
			mcp.WithString("resource", mcp.Required(), mcp.Description("Resource type of the record")),
			mcp.WithString("record_id", mcp.Required(), mcp.Description("Attio record ID")),
			mcp.WithObject("values", mcp.Required(), mcp.Description("Attribute values to set")),
		),
		s.instrument("attio_update_record", s.handleUpdateRecord),
	)

	srv.AddTool(
		mcp.NewTool("attio_delete_record",
			mcp.WithDescription("Delete a record permanently."),
			mcp.WithDestructiveHintAnnotation(true),
			mcp.WithString("resource", mcp.Required(), mcp.Description("Resource type of the record")),
			mcp.WithString("record_id", mcp.Required(), mcp.Description("Attio record ID")),
		),
		s.instrument("attio_delete_record", s.handleDeleteRecord),
	)

	srv.AddTool(
		mcp.NewTool("attio_list_entries",
			mcp.WithDescription("Read one page of entries from an Attio list."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithString("list", mcp.Required(), mcp.Description("List slug or ID")),
			mcp.WithNumber("limit", mcp.Description("Max entries (default: 20, max: 100)")),
			mcp.WithNumber("offset", mcp.Description("Pagination offset (default: 0)")),
		),
		s.instrument("attio_list_entries", s.handleListEntries),
	)

	srv.AddTool(
		mcp.NewTool("attio_add_to_list",
			mcp.WithDescription("Add a record to a list."),
			mcp.WithString("list", mcp.Required(), mcp.Description("List slug or ID")),
			mcp.WithString("parent_object", mcp.Required(), mcp.Description("Object slug of the record, e.g. companies")),
			mcp.WithString("record_id", mcp.Required(), mcp.Description("Attio record ID to add")),
		),
		s.instrument("attio_add_to_list", s.handleAddToList),
	)

	srv.AddTool(
		mcp.NewTool("attio_remove_from_list",
			mcp.WithDescription("Remove an entry from a list. The underlying record is not deleted."),
			mcp.WithDestructiveHintAnnotation(true),
			mcp.WithString("list", mcp.Required(), mcp.Description("List slug or ID")),
			mcp.WithString("entry_id", mcp.Required(), mcp.Description("List entry ID to remove")),
		),
		s.instrument("attio_remove_from_list", s.handleRemoveFromList),
	)

	srv.AddTool(
		mcp.NewTool("attio_validate_categories",
			mcp.WithDescription("Check company category values against the canonical options without calling the API. Suggests close matches for typos."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithArray("categories",
				mcp.Required(),
				mcp.Description("Category values to check; a single string is accepted too"),
			),
		),
		s.instrument("attio_validate_categories", s.handleValidateCategories),
	)
}

// instrument wraps a handler with tool metrics and a one-line call log. The
// tool-scoped logger rides the context so handlers can add detail on failure
// paths.
func (s *Server) instrument(tool string, h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		ctx = logger.ContextWithLogger(ctx, s.log.With(zap.String("tool", tool)))
		res, err := h(ctx, req)

		status := "ok"
		if err != nil || (res != nil && res.IsError) {
			status = "error"
		}
		elapsed := time.Since(start)
		metrics.ToolCallsTotal.WithLabelValues(tool, status).Inc()
		metrics.ToolCallDuration.WithLabelValues(tool).Observe(elapsed.Seconds())

		s.log.Info("tool call",
			zap.String("tool", tool),
			zap.String("status", status),
			zap.Duration("duration", elapsed),
		)
		return res, err
	}
}
