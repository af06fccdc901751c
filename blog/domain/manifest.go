package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Status is the lifecycle state of a manifest record
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// PostRecord is a single entry of the publishing manifest.
// A record read from JSON keeps its original object; writing it back replaces only
// status and id, so every other key keeps its value, spelling and position.
type PostRecord struct {
	FileName   string   `json:"file_name"`
	Title      string   `json:"title"`
	Tags       []string `json:"tags"`
	HeroImage  string   `json:"hero_image,omitempty"`
	Author     string   `json:"author"`
	Type       string   `json:"type,omitempty"`
	IsFeatured bool     `json:"is_featured,omitempty"`
	Status     Status   `json:"status"`
	ID         string   `json:"id,omitempty"`

	raw *rawObject
}

// postRecordFields is PostRecord without its custom (un)marshalling
type postRecordFields PostRecord

// rawObject is a JSON object with its keys in source order
type rawObject struct {
	keys   []string
	values map[string]json.RawMessage
}

// IsDraft reports whether the record is waiting to be published
func (r *PostRecord) IsDraft() bool {
	return r.Status == StatusDraft
}

// PostType returns the record's type, falling back to DefaultPostType
func (r *PostRecord) PostType() string {
	if r.Type == "" {
		return DefaultPostType
	}
	return r.Type
}

// MarkPublished flips the record to published under the given document ID
func (r *PostRecord) MarkPublished(id string) {
	r.Status = StatusPublished
	r.ID = id
}

func (r *PostRecord) UnmarshalJSON(data []byte) error {
	var fields postRecordFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	raw, err := decodeRawObject(data)
	if err != nil {
		return err
	}

	*r = PostRecord(fields)
	r.raw = raw
	return nil
}

func (r PostRecord) MarshalJSON() ([]byte, error) {
	if r.raw == nil {
		return json.Marshal(postRecordFields(r))
	}

	status, err := json.Marshal(r.Status)
	if err != nil {
		return nil, err
	}
	overrides := map[string]json.RawMessage{"status": status}

	// an empty ID leaves whatever the source had (nothing, "" or null) alone
	if r.ID != "" {
		id, err := json.Marshal(r.ID)
		if err != nil {
			return nil, err
		}
		overrides["id"] = id
	}

	keys := r.raw.keys
	for _, key := range []string{"status", "id"} {
		if _, ok := overrides[key]; ok {
			if _, had := r.raw.values[key]; !had {
				keys = append(keys[:len(keys):len(keys)], key)
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')

		value, ok := overrides[key]
		if !ok {
			value = r.raw.values[key]
		}
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// decodeRawObject splits a JSON object into its members, remembering key order.
// A repeated key keeps its first position and its last value, as encoding/json does.
func decodeRawObject(data []byte) (*rawObject, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("manifest record must be a JSON object")
	}

	obj := &rawObject{values: make(map[string]json.RawMessage)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in manifest record", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}

		if _, seen := obj.values[key]; !seen {
			obj.keys = append(obj.keys, key)
		}
		obj.values[key] = value
	}

	return obj, nil
}

type ManifestRepository interface {
	// Load reads every record of the manifest in order
	Load(ctx context.Context) ([]*PostRecord, error)

	// Save overwrites the manifest with the given records
	Save(ctx context.Context, records []*PostRecord) error
}
