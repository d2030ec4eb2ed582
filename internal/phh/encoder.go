package phh

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// EncodeSession writes the hands to w as a sectioned PHH session file,
// one [hand_N] table per hand in order.
func EncodeSession(w io.Writer, hands []*Hand) error {
	for i, hand := range hands {
		if hand == nil {
			return fmt.Errorf("phh: hand %d is nil", i+1)
		}
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[hand_%d]\n", i+1); err != nil {
			return err
		}
		if err := toml.NewEncoder(w).Encode(hand); err != nil {
			return fmt.Errorf("phh: encode hand %d: %w", i+1, err)
		}
	}
	return nil
}

// DecodeSession reads a sectioned PHH session file back into hands,
// ordered by section number.
func DecodeSession(r io.Reader) ([]*Hand, error) {
	var sections map[string]Hand
	if _, err := toml.NewDecoder(r).Decode(&sections); err != nil {
		return nil, fmt.Errorf("phh: decode session: %w", err)
	}

	keys := make([]string, 0, len(sections))
	for k := range sections {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return compareSectionKeys(keys[i], keys[j])
	})

	hands := make([]*Hand, 0, len(keys))
	for _, key := range keys {
		hand := sections[key]
		if hand.HandID == "" {
			hand.HandID = key
		}
		hands = append(hands, &hand)
	}
	return hands, nil
}

func compareSectionKeys(a, b string) bool {
	ai, errA := strconv.Atoi(strings.TrimPrefix(a, "hand_"))
	bi, errB := strconv.Atoi(strings.TrimPrefix(b, "hand_"))
	if errA == nil && errB == nil {
		return ai < bi
	}
	return a < b
}
