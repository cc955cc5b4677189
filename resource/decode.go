package resource

import (
	"fmt"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// YAML reads the resource and unmarshals it into out.
func (r *Reader) YAML(name string, out any) error {
	data, err := r.Bytes(name)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode yaml resource %s: %w", name, err)
	}
	return nil
}

// JSON reads the resource and parses it for gjson path queries.
func (r *Reader) JSON(name string) (gjson.Result, error) {
	data, err := r.Bytes(name)
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("resource %s is not valid JSON", name)
	}
	return gjson.ParseBytes(data), nil
}
