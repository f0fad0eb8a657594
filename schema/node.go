package schema

import (
	"encoding/json"
	"math"
	"strconv"
)

// Node kinds as reported in TypeMismatchError.Found.
const (
	KindObject  = "object"
	KindArray   = "array"
	KindString  = "string"
	KindNumber  = "number"
	KindBoolean = "boolean"
	KindNull    = "null"
)

// maxSafeFloat is the largest integer a float64 holds without rounding.
const maxSafeFloat = 1 << 53

// KindOf names the document kind of node.
func KindOf(node any) string {
	switch node.(type) {
	case nil:
		return KindNull
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	case string:
		return KindString
	case bool:
		return KindBoolean
	case json.Number, float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindNumber
	default:
		return "unknown"
	}
}

func IsNull(node any) bool {
	return node == nil
}

func String(node any) (string, error) {
	if s, ok := node.(string); ok {
		return s, nil
	}

	return "", Mismatch("string", node)
}

func Bool(node any) (bool, error) {
	if b, ok := node.(bool); ok {
		return b, nil
	}

	return false, Mismatch("boolean", node)
}

func Array(node any) ([]any, error) {
	if a, ok := node.([]any); ok {
		return a, nil
	}

	return nil, Mismatch("array", node)
}

func Object(node any) (map[string]any, error) {
	if o, ok := node.(map[string]any); ok {
		return o, nil
	}

	return nil, Mismatch("object", node)
}

// Int64 accepts only integral numbers that fit in an int64.
func Int64(node any) (int64, error) {
	switch v := node.(type) {
	case json.Number:
		i, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return 0, &TypeMismatchError{Expected: "integer", Found: KindNumber, Err: err}
		}

		return i, nil
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > maxSafeFloat {
			return 0, &TypeMismatchError{Expected: "integer", Found: KindNumber}
		}

		return int64(v), nil
	case float32:
		return Int64(float64(v))
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return Int64(uint64(v))
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, &TypeMismatchError{Expected: "integer", Found: KindNumber}
		}

		return int64(v), nil
	}

	return 0, Mismatch("integer", node)
}

// Uint64 accepts only non-negative integral numbers.
func Uint64(node any) (uint64, error) {
	if n, ok := node.(json.Number); ok {
		u, err := strconv.ParseUint(string(n), 10, 64)
		if err != nil {
			return 0, &TypeMismatchError{Expected: "unsigned integer", Found: KindNumber, Err: err}
		}

		return u, nil
	}

	if u, ok := node.(uint64); ok {
		return u, nil
	}

	i, err := Int64(node)
	if err != nil {
		return 0, Mismatch("unsigned integer", node)
	}

	if i < 0 {
		return 0, &TypeMismatchError{Expected: "unsigned integer", Found: KindNumber}
	}

	return uint64(i), nil
}

func Float64(node any) (float64, error) {
	switch v := node.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, &TypeMismatchError{Expected: "number", Found: KindNumber, Err: err}
		}

		return f, nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	}

	if i, err := Int64(node); err == nil {
		return float64(i), nil
	}

	if u, err := Uint64(node); err == nil {
		return float64(u), nil
	}

	return 0, Mismatch("number", node)
}

// IntegerText returns the exact decimal digits of an integral number node.
// Identifiers received as numbers keep their original text this way.
func IntegerText(node any) (string, bool) {
	if n, ok := node.(json.Number); ok {
		if _, err := strconv.ParseUint(string(n), 10, 64); err == nil {
			return string(n), true
		}

		return "", false
	}

	if i, err := Int64(node); err == nil && i >= 0 {
		return strconv.FormatInt(i, 10), true
	}

	if u, ok := node.(uint64); ok {
		return strconv.FormatUint(u, 10), true
	}

	return "", false
}
