package v1

import (
	"fmt"
	"strconv"

	"github.com/WelcomerTeam/Sandwich-Ready/discord"
	"github.com/WelcomerTeam/Sandwich-Ready/sandwichjson"
	"github.com/WelcomerTeam/Sandwich-Ready/schema"
)

// ExperimentKind is the variant held by an ExperimentValue.
type ExperimentKind uint8

// Variants are tried in declaration order. The first one the node matches
// wins.
const (
	ExperimentNull ExperimentKind = iota
	ExperimentBool
	ExperimentInteger
	ExperimentString
	ExperimentRange
	ExperimentOverride
	ExperimentList
)

var experimentKindNames = [...]string{
	ExperimentNull:     "null",
	ExperimentBool:     "bool",
	ExperimentInteger:  "integer",
	ExperimentString:   "string",
	ExperimentRange:    "range",
	ExperimentOverride: "override",
	ExperimentList:     "list",
}

func (k ExperimentKind) String() string {
	if int(k) < len(experimentKindNames) {
		return experimentKindNames[k]
	}

	return "ExperimentKind(" + strconv.Itoa(int(k)) + ")"
}

// ExperimentRangeValue is a bucket range, {"s": start, "e": end}.
type ExperimentRangeValue struct {
	Start int64 `json:"s"`
	End   int64 `json:"e"`
}

// ExperimentOverrideValue assigns a bucket to a set of keys, {"k": [...], "b": bucket}.
type ExperimentOverrideValue struct {
	Keys   discord.StringList `json:"k"`
	Bucket int64              `json:"b"`
}

// ExperimentRow is one guild experiment as sent in guild_experiments.
type ExperimentRow = discord.List[ExperimentValue]

// ExperimentValue is a node of a guild experiment tree. Lists nest to any
// depth.
type ExperimentValue struct {
	Kind         ExperimentKind
	BoolValue    bool
	IntegerValue int64
	StringValue  string
	Range        *ExperimentRangeValue
	Override     *ExperimentOverrideValue
	List         []ExperimentValue
}

func (v *ExperimentValue) UnmarshalDocument(node any) error {
	decoded, err := decodeExperiment(node)
	if err != nil {
		return err
	}

	*v = decoded

	return nil
}

func decodeExperiment(node any) (ExperimentValue, error) {
	switch schema.KindOf(node) {
	case schema.KindNull:
		return ExperimentValue{Kind: ExperimentNull}, nil
	case schema.KindBoolean:
		b, _ := schema.Bool(node)

		return ExperimentValue{Kind: ExperimentBool, BoolValue: b}, nil
	case schema.KindNumber:
		i, err := schema.Int64(node)
		if err != nil {
			return ExperimentValue{}, schema.NoVariant("ExperimentValue", node)
		}

		return ExperimentValue{Kind: ExperimentInteger, IntegerValue: i}, nil
	case schema.KindString:
		s, _ := schema.String(node)

		return ExperimentValue{Kind: ExperimentString, StringValue: s}, nil
	case schema.KindObject:
		var r ExperimentRangeValue
		if schema.Decode(node, &r) == nil {
			return ExperimentValue{Kind: ExperimentRange, Range: &r}, nil
		}

		var o ExperimentOverrideValue
		if schema.Decode(node, &o) == nil {
			return ExperimentValue{Kind: ExperimentOverride, Override: &o}, nil
		}

		return ExperimentValue{}, schema.NoVariant("ExperimentValue", node)
	case schema.KindArray:
		items, _ := schema.Array(node)
		list := make([]ExperimentValue, len(items))

		for i, item := range items {
			decoded, err := decodeExperiment(item)
			if err != nil {
				return ExperimentValue{}, schema.Prefix(err, "["+strconv.Itoa(i)+"]")
			}

			list[i] = decoded
		}

		return ExperimentValue{Kind: ExperimentList, List: list}, nil
	}

	return ExperimentValue{}, schema.NoVariant("ExperimentValue", node)
}

func (v ExperimentValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ExperimentNull:
		return []byte("null"), nil
	case ExperimentBool:
		return strconv.AppendBool(nil, v.BoolValue), nil
	case ExperimentInteger:
		return strconv.AppendInt(nil, v.IntegerValue, 10), nil
	case ExperimentString:
		return sandwichjson.Marshal(v.StringValue)
	case ExperimentRange:
		if v.Range == nil {
			return nil, &schema.EncodingError{Err: fmt.Errorf("range experiment has no range")}
		}

		return sandwichjson.Marshal(v.Range)
	case ExperimentOverride:
		if v.Override == nil {
			return nil, &schema.EncodingError{Err: fmt.Errorf("override experiment has no override")}
		}

		return sandwichjson.Marshal(v.Override)
	case ExperimentList:
		return discord.List[ExperimentValue](v.List).MarshalJSON()
	}

	return nil, &schema.EncodingError{Err: fmt.Errorf("unknown experiment kind %d", v.Kind)}
}

// Depth returns how many lists deep the value nests. Scalars have depth 0.
func (v ExperimentValue) Depth() int {
	if v.Kind != ExperimentList {
		return 0
	}

	deepest := 0

	for _, item := range v.List {
		if d := item.Depth(); d > deepest {
			deepest = d
		}
	}

	return deepest + 1
}
