package attio

import (
	"encoding/json"
	"strconv"

	"github.com/kailas-cloud/attiodex/internal/domain/record"
	"github.com/kailas-cloud/attiodex/internal/domain/search/filter"
)

// queryRequest is the body of POST /v2/objects/{slug}/records/query. A zero
// filter marshals to an empty object, which Attio treats as match-all, so it
// is always included.
type queryRequest struct {
	Filter filter.Node `json:"filter"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// mutateRequest is the body of record create and update calls.
type mutateRequest struct {
	Data struct {
		Values map[string]any `json:"values"`
	} `json:"data"`
}

func newMutateRequest(values map[string]any) mutateRequest {
	var req mutateRequest
	req.Data.Values = values
	return req
}

// entryRequest is the body of POST /v2/lists/{list}/entries.
type entryRequest struct {
	Data struct {
		ParentObject   string `json:"parent_object"`
		ParentRecordID string `json:"parent_record_id"`
	} `json:"data"`
}

// wireRecord is the provider-native record shape. Each attribute holds an
// array of value objects whose inner key depends on the attribute type
// (value, email_address, domain, phone_number, full_name, option, ...).
type wireRecord struct {
	ID struct {
		RecordID string `json:"record_id"`
		EntryID  string `json:"entry_id"`
	} `json:"id"`
	Values map[string][]json.RawMessage `json:"values"`
}

type recordEnvelope struct {
	Data wireRecord `json:"data"`
}

type recordListEnvelope struct {
	Data []wireRecord `json:"data"`
}

// valueKeys are the inner keys carrying the display value of a typed value
// object, in priority order.
var valueKeys = []string{
	"value",
	"full_name",
	"email_address",
	"domain",
	"phone_number",
	"currency_value",
	"target_record_id",
}

// toRecord flattens a wire record into the domain form: each attribute maps
// to the display strings of its value objects, unparseable entries dropped.
func toRecord(w wireRecord) record.Record {
	id := w.ID.RecordID
	if id == "" {
		id = w.ID.EntryID
	}

	values := make(map[string][]string, len(w.Values))
	for attr, raws := range w.Values {
		var flat []string
		for _, raw := range raws {
			if s, ok := flattenValue(raw); ok && s != "" {
				flat = append(flat, s)
			}
		}
		if len(flat) > 0 {
			values[attr] = flat
		}
	}
	return record.New(id, values)
}

// flattenValue extracts the display string from one value object. Bare JSON
// strings and numbers are accepted too; Attio emits them for some actor and
// timestamp attributes.
func flattenValue(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", false
	}
	for _, key := range valueKeys {
		if v, ok := obj[key]; ok {
			switch t := v.(type) {
			case string:
				return t, true
			case float64:
				return strconv.FormatFloat(t, 'f', -1, 64), true
			case bool:
				if t {
					return "true", true
				}
				return "false", true
			}
		}
	}
	// select attributes nest the title one level down
	if opt, ok := obj["option"].(map[string]any); ok {
		if title, ok := opt["title"].(string); ok {
			return title, true
		}
	}
	if status, ok := obj["status"].(map[string]any); ok {
		if title, ok := status["title"].(string); ok {
			return title, true
		}
	}
	return "", false
}

func toRecords(ws []wireRecord) []record.Record {
	if len(ws) == 0 {
		return nil
	}
	out := make([]record.Record, 0, len(ws))
	for _, w := range ws {
		out = append(out, toRecord(w))
	}
	return out
}
