package lafaom

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Envelope is the one canonical response shape handed to callers. The API is
// inconsistent on the wire: most endpoints answer {data, total_number}, some
// nest {success, data} and a few return a bare array. normalizeEnvelope folds
// all three into this struct so no component downstream ever duck-types a
// response.
type Envelope struct {
	Data        json.RawMessage
	TotalNumber int
	Page        int
}

type wireEnvelope struct {
	Success     *bool           `json:"success"`
	Data        json.RawMessage `json:"data"`
	TotalNumber int             `json:"total_number"`
	Page        int             `json:"page"`
}

func normalizeEnvelope(body []byte) (*Envelope, error) {

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return &Envelope{Data: trimmed}, nil
	}

	var wire wireEnvelope
	if err := json.Unmarshal(trimmed, &wire); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}

	if wire.Data == nil {
		// Detail endpoints sometimes answer with the record at the top level.
		return &Envelope{Data: trimmed}, nil
	}

	return &Envelope{Data: wire.Data, TotalNumber: wire.TotalNumber, Page: wire.Page}, nil
}

// Page is a decoded collection page plus the ceiling page count derived from
// the envelope's total.
type Page[T any] struct {
	Items      []T
	Total      int
	TotalPages int
}

func decodePage[T any](body []byte, pageSize int) (*Page[T], error) {

	envelope, err := normalizeEnvelope(body)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(envelope.Data, &items); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}

	total := envelope.TotalNumber
	if total == 0 {
		total = len(items)
	}

	return &Page[T]{
		Items:      items,
		Total:      total,
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

func decodeRecord[T any](body []byte) (*T, error) {

	envelope, err := normalizeEnvelope(body)
	if err != nil {
		return nil, err
	}

	var record T
	if err := json.Unmarshal(envelope.Data, &record); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}
	return &record, nil
}
