package attio

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kailas-cloud/attiodex/internal/domain/record"
	"github.com/kailas-cloud/attiodex/internal/domain/resource"
	"github.com/kailas-cloud/attiodex/internal/domain/search/filter"
	"github.com/kailas-cloud/attiodex/internal/metrics"
)

// observe records one API call on the Attio metrics. Deferred with a pointer
// so the final error value is seen.
func observe(op, res string, start time.Time, err *error) {
	status := "ok"
	if *err != nil {
		status = "error"
	}
	metrics.AttioRequestsTotal.WithLabelValues(op, res, status).Inc()
	metrics.AttioRequestDuration.WithLabelValues(op, res).Observe(time.Since(start).Seconds())
}

// Repo implements the repository contracts of the search, record, list, and
// health usecases on top of the Attio v2 API.
type Repo struct {
	client *Client
}

// New creates an Attio repository over the given client.
func New(c *Client) *Repo {
	return &Repo{client: c}
}

// QueryRecords runs a filtered record query against one object.
func (r *Repo) QueryRecords(
	ctx context.Context, rt resource.Type, f filter.Node, limit, offset int,
) (_ []record.Record, err error) {
	defer observe("query_records", rt.Slug(), time.Now(), &err)

	path := fmt.Sprintf("/v2/objects/%s/records/query", url.PathEscape(rt.Slug()))
	req := queryRequest{Filter: f, Limit: limit, Offset: offset}

	var resp recordListEnvelope
	if err := r.client.doJSON(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("query %s records: %w", rt.Slug(), err)
	}
	return toRecords(resp.Data), nil
}

// GetRecord fetches one record by ID.
func (r *Repo) GetRecord(ctx context.Context, rt resource.Type, id string) (_ record.Record, err error) {
	defer observe("get_record", rt.Slug(), time.Now(), &err)

	path := fmt.Sprintf("/v2/objects/%s/records/%s", url.PathEscape(rt.Slug()), url.PathEscape(id))

	var resp recordEnvelope
	if err := r.client.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return record.Record{}, fmt.Errorf("get %s record %s: %w", rt.Slug(), id, err)
	}
	return toRecord(resp.Data), nil
}

// CreateRecord creates a record with the given attribute values.
func (r *Repo) CreateRecord(
	ctx context.Context, rt resource.Type, values map[string]any,
) (_ record.Record, err error) {
	defer observe("create_record", rt.Slug(), time.Now(), &err)

	path := fmt.Sprintf("/v2/objects/%s/records", url.PathEscape(rt.Slug()))

	var resp recordEnvelope
	if err := r.client.doJSON(ctx, http.MethodPost, path, newMutateRequest(values), &resp); err != nil {
		return record.Record{}, fmt.Errorf("create %s record: %w", rt.Slug(), err)
	}
	return toRecord(resp.Data), nil
}

// UpdateRecord patches the given attribute values on an existing record.
func (r *Repo) UpdateRecord(
	ctx context.Context, rt resource.Type, id string, values map[string]any,
) (_ record.Record, err error) {
	defer observe("update_record", rt.Slug(), time.Now(), &err)

	path := fmt.Sprintf("/v2/objects/%s/records/%s", url.PathEscape(rt.Slug()), url.PathEscape(id))

	var resp recordEnvelope
	if err := r.client.doJSON(ctx, http.MethodPatch, path, newMutateRequest(values), &resp); err != nil {
		return record.Record{}, fmt.Errorf("update %s record %s: %w", rt.Slug(), id, err)
	}
	return toRecord(resp.Data), nil
}

// DeleteRecord removes a record permanently.
func (r *Repo) DeleteRecord(ctx context.Context, rt resource.Type, id string) (err error) {
	defer observe("delete_record", rt.Slug(), time.Now(), &err)

	path := fmt.Sprintf("/v2/objects/%s/records/%s", url.PathEscape(rt.Slug()), url.PathEscape(id))

	if err := r.client.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete %s record %s: %w", rt.Slug(), id, err)
	}
	return nil
}

// ListEntries queries the entries of a list.
func (r *Repo) ListEntries(ctx context.Context, list string, limit, offset int) (_ []record.Record, err error) {
	defer observe("list_entries", list, time.Now(), &err)

	path := fmt.Sprintf("/v2/lists/%s/entries/query", url.PathEscape(list))
	req := queryRequest{Limit: limit, Offset: offset}

	var resp recordListEnvelope
	if err := r.client.doJSON(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("query list %s entries: %w", list, err)
	}
	return toRecords(resp.Data), nil
}

// AddToList appends a parent record to a list and returns the new entry.
func (r *Repo) AddToList(
	ctx context.Context, list, parentObject, recordID string,
) (_ record.Record, err error) {
	defer observe("add_to_list", list, time.Now(), &err)

	path := fmt.Sprintf("/v2/lists/%s/entries", url.PathEscape(list))

	var req entryRequest
	req.Data.ParentObject = parentObject
	req.Data.ParentRecordID = recordID

	var resp recordEnvelope
	if err := r.client.doJSON(ctx, http.MethodPost, path, req, &resp); err != nil {
		return record.Record{}, fmt.Errorf("add record %s to list %s: %w", recordID, list, err)
	}
	return toRecord(resp.Data), nil
}

// RemoveFromList deletes one entry from a list.
func (r *Repo) RemoveFromList(ctx context.Context, list, entryID string) (err error) {
	defer observe("remove_from_list", list, time.Now(), &err)

	path := fmt.Sprintf("/v2/lists/%s/entries/%s", url.PathEscape(list), url.PathEscape(entryID))

	if err := r.client.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("remove entry %s from list %s: %w", entryID, list, err)
	}
	return nil
}

// Ping verifies credentials and connectivity via the self endpoint.
func (r *Repo) Ping(ctx context.Context) (err error) {
	defer observe("self", "workspace", time.Now(), &err)

	if err := r.client.doJSON(ctx, http.MethodGet, "/v2/self", nil, nil); err != nil {
		return fmt.Errorf("attio self check: %w", err)
	}
	return nil
}
