package api

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrNoSamples is returned when the data path does not resolve to an array
var ErrNoSamples = errors.New("no samples array")

// ExtractSamples reads the array at path (the whole document when path is
// empty or ".") as floats. Numbers and numeric strings are accepted; null,
// blank and NaN entries are dropped and counted.
func ExtractSamples(body []byte, path string) ([]float64, int, error) {
	if !gjson.ValidBytes(body) {
		return nil, 0, fmt.Errorf("invalid JSON document")
	}

	var result gjson.Result
	if path == "" || path == "." {
		result = gjson.ParseBytes(body)
	} else {
		result = gjson.GetBytes(body, path)
	}
	if !result.Exists() {
		return nil, 0, fmt.Errorf("%w: path '%s' not found", ErrNoSamples, path)
	}
	if !result.IsArray() {
		return nil, 0, fmt.Errorf("%w: path '%s' is not an array", ErrNoSamples, path)
	}

	return FromResults(result.Array())
}

// FromResults converts gjson array elements to sample values
func FromResults(items []gjson.Result) ([]float64, int, error) {
	values := make([]float64, 0, len(items))
	dropped := 0
	for i, item := range items {
		switch item.Type {
		case gjson.Number:
			v := item.Float()
			if math.IsInf(v, 0) {
				dropped++
				continue
			}
			values = append(values, v)
		case gjson.String:
			s := strings.TrimSpace(item.Str)
			if s == "" {
				dropped++
				continue
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, 0, fmt.Errorf("sample %d: %q is not numeric", i, item.Str)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				dropped++
				continue
			}
			values = append(values, v)
		case gjson.Null:
			dropped++
		default:
			return nil, 0, fmt.Errorf("sample %d: unsupported JSON value %s", i, item.Raw)
		}
	}
	return values, dropped, nil
}
