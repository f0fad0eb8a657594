package discord

import (
	"fmt"

	"github.com/WelcomerTeam/Sandwich-Ready/sandwichjson"
	"github.com/WelcomerTeam/Sandwich-Ready/schema"
)

// ShardID identifies a shard as [number, total].
type ShardID struct {
	Number uint32
	Total  uint32
}

func (s *ShardID) UnmarshalDocument(node any) error {
	var pair [2]uint32
	if err := schema.Decode(node, &pair); err != nil {
		return err
	}

	if pair[1] == 0 || pair[0] >= pair[1] {
		return &schema.TypeMismatchError{
			Expected: "shard id",
			Found:    schema.KindArray,
			Err:      fmt.Errorf("shard %d is out of range for %d shards", pair[0], pair[1]),
		}
	}

	*s = ShardID{Number: pair[0], Total: pair[1]}

	return nil
}

func (s ShardID) MarshalJSON() ([]byte, error) {
	if s.Total == 0 || s.Number >= s.Total {
		return nil, &schema.EncodingError{Err: fmt.Errorf("shard %d is out of range for %d shards", s.Number, s.Total)}
	}

	return sandwichjson.Marshal([2]uint32{s.Number, s.Total})
}

func (s ShardID) String() string {
	return fmt.Sprintf("[%d, %d]", s.Number, s.Total)
}
