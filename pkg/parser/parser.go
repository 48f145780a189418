package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// InputError is reported for any failure to read or parse a source
// document. The underlying cause is available via errors.Unwrap.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("reading input '%s': %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// LoadFile reads a document from disk and parses it into the normalized
// value model. The format is chosen by extension: .yaml/.yml is parsed as
// YAML, everything else as JSON.
func LoadFile(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}

	var doc map[string]interface{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err = ParseYAML(data)
	default:
		doc, err = Parse(data)
	}
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}

	return doc, nil
}

// Parse decodes a JSON document whose root is an object. Numbers are
// decoded as json.Number so literals survive the round trip exactly.
func Parse(data []byte) (map[string]interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var root interface{}
	if err := decoder.Decode(&root); err != nil {
		return nil, fmt.Errorf("unmarshaling JSON: %w", err)
	}

	doc, ok := root.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("document root must be an object, got %T", root)
	}

	return doc, nil
}

// ParseYAML decodes a YAML document whose root is a mapping and
// normalizes it into the same value model Parse produces, so comparisons
// across formats see one representation.
func ParseYAML(data []byte) (map[string]interface{}, error) {
	var root interface{}
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("unmarshaling YAML: %w", err)
	}

	normalized := normalize(root)
	doc, ok := normalized.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("document root must be a mapping, got %T", root)
	}

	return doc, nil
}

// normalize converts a decoded YAML tree into the JSON value model:
// numeric scalars become json.Number, maps and slices are rebuilt
// recursively. Other scalar kinds pass through unchanged.
func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, child := range val {
			out[k] = normalize(child)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, child := range val {
			out[fmt.Sprintf("%v", k)] = normalize(child)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, child := range val {
			out[i] = normalize(child)
		}
		return out
	case int:
		return json.Number(strconv.Itoa(val))
	case int64:
		return json.Number(strconv.FormatInt(val, 10))
	case uint64:
		return json.Number(strconv.FormatUint(val, 10))
	case float64:
		return json.Number(strconv.FormatFloat(val, 'g', -1, 64))
	default:
		return val
	}
}
