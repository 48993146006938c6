package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Parser decodes the raw contents of a settings file into flat key/value
// pairs. Implementations must reject nested structures.
type Parser interface {
	Parse(filename string, data []byte) (map[string]string, error)
}

// ParserFunc adapts an ordinary function to the [Parser] interface.
type ParserFunc func(filename string, data []byte) (map[string]string, error)

// Parse calls f(filename, data).
func (f ParserFunc) Parse(filename string, data []byte) (map[string]string, error) {
	return f(filename, data)
}

var errNestedValue = errors.New("nested values are not supported")

func defaultParsers() map[string]Parser {
	return map[string]Parser{
		".json": ParserFunc(parseJSON),
		".yaml": ParserFunc(parseYAML),
		".yml":  ParserFunc(parseYAML),
		".hcl":  ParserFunc(parseHCL),
	}
}

// parseFile picks a parser by file extension. Files with an unregistered
// extension are tried as JSON first, then as YAML.
func (r *Registry) parseFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigurationParseFailure, path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if p, ok := r.parsers[ext]; ok {
		values, err := p.Parse(path, data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrConfigurationParseFailure, path, err)
		}
		return values, nil
	}

	values, jsonErr := parseJSON(path, data)
	if jsonErr == nil {
		return values, nil
	}
	values, yamlErr := parseYAML(path, data)
	if yamlErr == nil {
		return values, nil
	}

	return nil, fmt.Errorf("%w: %s: %w", ErrConfigurationParseFailure, path, errors.Join(jsonErr, yamlErr))
}

func parseJSON(_ string, data []byte) (map[string]string, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("error decoding json settings: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("error decoding json settings: unexpected data after top-level object")
	}

	return flatten(raw)
}

// parseYAML walks the node tree instead of decoding into Go values so that
// scalars keep their literal text (0x1F stays 0x1F).
func parseYAML(_ string, data []byte) (map[string]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding yaml settings: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return map[string]string{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("error decoding yaml settings: top level is not a mapping")
	}

	values := make(map[string]string, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("yaml key at line %d: %w", key.Line, errNestedValue)
		}

		s, err := yamlScalar(value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key.Value, err)
		}
		values[key.Value] = s
	}

	return values, nil
}

func yamlScalar(n *yaml.Node) (string, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	switch {
	case n.Kind != yaml.ScalarNode:
		return "", errNestedValue
	case n.ShortTag() == "!!null":
		return "", errors.New("value is null")
	default:
		return n.Value, nil
	}
}

func parseHCL(filename string, data []byte) (map[string]string, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("error decoding hcl settings: %w", diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("error decoding hcl settings: %w", diags)
	}

	values := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("error evaluating hcl attribute %q: %w", name, diags)
		}

		s, err := ctyToString(val)
		if err != nil {
			return nil, fmt.Errorf("hcl attribute %q: %w", name, err)
		}
		values[name] = s
	}

	return values, nil
}

func ctyToString(val cty.Value) (string, error) {
	if val.IsNull() || !val.IsKnown() {
		return "", errors.New("value is null")
	}

	switch ty := val.Type(); {
	case ty.Equals(cty.String):
		return val.AsString(), nil
	case ty.Equals(cty.Number):
		return val.AsBigFloat().Text('f', -1), nil
	case ty.Equals(cty.Bool):
		return strconv.FormatBool(val.True()), nil
	default:
		return "", fmt.Errorf("%w: %s", errNestedValue, ty.FriendlyName())
	}
}

// flatten converts decoded JSON scalars to their textual form.
func flatten(raw map[string]any) (map[string]string, error) {
	values := make(map[string]string, len(raw))
	for key, v := range raw {
		s, err := scalarToString(v)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		values[key] = s
	}

	return values, nil
}

func scalarToString(v any) (string, error) {
	switch value := v.(type) {
	case string:
		return value, nil
	case json.Number:
		return value.String(), nil
	case bool:
		return strconv.FormatBool(value), nil
	case nil:
		return "", errors.New("value is null")
	case map[string]any, []any:
		return "", errNestedValue
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}
