package client

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// envelope is a decoded reply. The API has answered with several shapes over
// time, so fields are kept raw and probed by key.
type envelope struct {
	status int
	fields map[string]json.RawMessage
}

// parseEnvelope accepts an object, a bare array (treated as data) or an empty
// body.
func parseEnvelope(status int, payload []byte) (envelope, error) {
	env := envelope{status: status, fields: map[string]json.RawMessage{}}
	payload = bytes.TrimSpace(payload)
	switch {
	case len(payload) == 0:
		return env, nil
	case payload[0] == '[':
		env.fields["data"] = payload
		return env, nil
	}
	if err := json.Unmarshal(payload, &env.fields); err != nil {
		return env, err
	}
	return env, nil
}

func (e envelope) boolField(key string) (value, present bool) {
	raw, ok := e.fields[key]
	if !ok {
		return false, false
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return false, false
	}
	return value, true
}

func (e envelope) stringField(key string) string {
	var s string
	if raw, ok := e.fields[key]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

// ok is false for HTTP errors, success:false and error:true.
func (e envelope) ok() bool {
	if e.status >= http.StatusBadRequest {
		return false
	}
	if success, present := e.boolField("success"); present {
		return success
	}
	if failed, present := e.boolField("error"); present && failed {
		return false
	}
	return true
}

func (e envelope) message() string {
	if m := e.stringField("message"); m != "" {
		return m
	}
	// Some failures carry the text under "error".
	return e.stringField("error")
}

func (e envelope) apiError() *APIError {
	err := &APIError{Status: e.status, Message: e.message()}
	if err.Status < http.StatusBadRequest {
		// success:false on a 2xx is still a bad request from the user's side.
		err.Status = http.StatusBadRequest
	}
	if err.Message == "" {
		err.Message = http.StatusText(err.Status)
	}
	if raw, ok := e.fields["errors"]; ok {
		_ = json.Unmarshal(raw, &err.Fields)
	}
	return err
}

func (e envelope) meta() *models.Pagination {
	raw, ok := e.fields["meta"]
	if !ok {
		return nil
	}
	var p models.Pagination
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	return &p
}

// list finds the collection under data or one of keys, also one level down
// inside an object-valued data. Anything that is not an array is empty.
func (e envelope) list(keys ...string) []json.RawMessage {
	if items, ok := asArray(e.fields["data"]); ok {
		return items
	}
	for _, k := range keys {
		if items, ok := asArray(e.fields[k]); ok {
			return items
		}
	}
	var nested map[string]json.RawMessage
	if err := json.Unmarshal(e.fields["data"], &nested); err == nil {
		for _, k := range keys {
			if items, ok := asArray(nested[k]); ok {
				return items
			}
		}
	}
	return nil
}

// object finds a single entity under data or key.
func (e envelope) object(key string) (json.RawMessage, bool) {
	for _, k := range []string{"data", key} {
		if raw, ok := asObject(e.fields[k]); ok {
			// {"data": {"product": {...}}}
			var nested map[string]json.RawMessage
			if err := json.Unmarshal(raw, &nested); err == nil {
				if inner, ok := asObject(nested[key]); ok {
					return inner, true
				}
			}
			return raw, true
		}
	}
	return nil, false
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

func asObject(raw json.RawMessage) (json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}
	return raw, true
}
