package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/containersecurity/pkg/cs"
)

// getRecord issues a GET and decodes the body as a single record.
func getRecord(ctx context.Context, api Requester, path string, query url.Values) (cs.Record, error) {
	resp, err := api.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var record cs.Record

	err = decodeJSON(resp.Body, &record)
	if err != nil {
		return nil, &cs.ParseError{Path: path, Err: err}
	}

	return record, nil
}

// getRecords issues a GET and decodes the body as a list of records.
func getRecords(ctx context.Context, api Requester, path string, query url.Values) (*cs.Page[cs.Record], error) {
	resp, err := api.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	page, err := decodePage(resp.Body)
	if err != nil {
		return nil, &cs.ParseError{Path: path, Err: err}
	}

	return page, nil
}

// decodePage accepts either a bare JSON array or an object carrying the
// records under "items".
func decodePage(body []byte) (*cs.Page[cs.Record], error) {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []cs.Record

		err := decodeJSON(trimmed, &items)
		if err != nil {
			return nil, err
		}

		return &cs.Page[cs.Record]{Items: items}, nil
	}

	var envelope struct {
		Items      *[]cs.Record           `json:"items"`
		Pagination *cs.ResponsePagination `json:"pagination"`
	}

	err := decodeJSON(trimmed, &envelope)
	if err != nil {
		return nil, err
	}

	if envelope.Items == nil {
		return nil, fmt.Errorf("%w: no items array", cs.ErrUnexpectedResponse)
	}

	page := &cs.Page[cs.Record]{Items: *envelope.Items}
	if envelope.Pagination != nil {
		page.Total = envelope.Pagination.Total
	}

	return page, nil
}

// decodeJSON keeps numbers as json.Number so records pass through unchanged.
func decodeJSON(body []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	err := decoder.Decode(target)
	if err != nil {
		return fmt.Errorf("decoding JSON: %w", err)
	}

	return nil
}
