package gstile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// inputRecordSchemaText is the JSON Schema for the wire form of an
// InputRecord (spec §3, §6), used by DecodeInputRecord to reject
// malformed queue payloads before they reach the comparator. One of
// "text" or "tokens" must be present; supplying neither or both is a
// schema violation rather than a silent default.
const inputRecordSchemaText = `{
	"$id": "https://gstile.invalid/schema/input-record.json",
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["id"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"text": {"type": "string"},
		"tokens": {
			"type": "array",
			"items": {"type": "integer", "minimum": 0}
		},
		"ignore_marks": {"type": "string", "pattern": "^[01]*$"},
		"checksum": {"type": "string"},
		"authored_token_count": {"type": "integer", "minimum": 0},
		"longest_authored_tile": {"type": "integer", "minimum": 0}
	},
	"oneOf": [
		{"required": ["text"]},
		{"required": ["tokens"]}
	],
	"additionalProperties": false
}`

var (
	inputRecordSchemaOnce sync.Once
	inputRecordSchema     *jsonschema.Schema
	inputRecordSchemaErr  error
)

func compiledInputRecordSchema() (*jsonschema.Schema, error) {
	inputRecordSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("input-record.json", bytes.NewReader([]byte(inputRecordSchemaText))); err != nil {
			inputRecordSchemaErr = fmt.Errorf("gstile: loading input record schema: %w", err)
			return
		}
		inputRecordSchema, inputRecordSchemaErr = compiler.Compile("input-record.json")
	})
	return inputRecordSchema, inputRecordSchemaErr
}

// ValidateInputRecordJSON checks data against the input record schema
// without decoding it into an InputRecord. Callers that only need a
// yes/no gate (the queue's intake path, SPEC_FULL §12) can use this
// directly; DecodeInputRecord calls it internally.
func ValidateInputRecordJSON(data []byte) error {
	schema, err := compiledInputRecordSchema()
	if err != nil {
		return err
	}

	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return nil
}

// recordDocument is the wire shape ValidateInputRecordJSON checks and
// DecodeInputRecord unmarshals.
type recordDocument struct {
	ID                  string   `json:"id"`
	Text                string   `json:"text"`
	Tokens              []uint64 `json:"tokens"`
	IgnoreMarks         string   `json:"ignore_marks"`
	Checksum            string   `json:"checksum"`
	HasChecksum         bool     `json:"-"`
	AuthoredTokenCount  int      `json:"authored_token_count"`
	LongestAuthoredTile int      `json:"longest_authored_tile"`
}

// DecodeInputRecord validates and parses one JSON input record document.
// A "text" document is tokenized rune-by-rune via TokensFromString; a
// "tokens" document is taken as literal token values, letting callers
// that already tokenized upstream (e.g. with a domain-specific lexer)
// bypass gstile's own tokenization entirely.
func DecodeInputRecord(data []byte) (*InputRecord, error) {
	if err := ValidateInputRecordJSON(data); err != nil {
		return nil, err
	}

	var raw struct {
		recordDocument
		Checksum *string `json:"checksum"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	var tokens Sequence
	if raw.Text != "" {
		tokens = TokensFromString(raw.Text)
	} else {
		tokens = make(Sequence, len(raw.Tokens))
		for i, t := range raw.Tokens {
			tokens[i] = Token(t)
		}
	}

	rec := &InputRecord{
		ID:                  raw.ID,
		Tokens:              tokens,
		IgnoreMarks:         raw.IgnoreMarks,
		AuthoredTokenCount:  raw.AuthoredTokenCount,
		LongestAuthoredTile: raw.LongestAuthoredTile,
	}
	if raw.Checksum != nil {
		rec.Checksum = *raw.Checksum
		rec.HasChecksum = true
	}
	return rec, nil
}
