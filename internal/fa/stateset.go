package fa

import (
	"cmp"
	"encoding/binary"
	"slices"
	"strconv"
	"strings"
)

// StateSet is an immutable set of states kept sorted by id. Two sets with
// the same members have the same Key, which is what lets subset
// construction and NFA simulation deduplicate configurations.
type StateSet struct {
	ids []State
}

// NewStateSet builds a set from states given in any order, with duplicates.
func NewStateSet(states ...State) StateSet {
	ids := slices.Clone(states)
	slices.Sort(ids)
	return StateSet{ids: slices.Compact(ids)}
}

func (s StateSet) Len() int      { return len(s.ids) }
func (s StateSet) IsEmpty() bool { return len(s.ids) == 0 }

// States returns the members in ascending order.
func (s StateSet) States() []State { return slices.Clone(s.ids) }

func (s StateSet) Contains(st State) bool {
	_, ok := slices.BinarySearch(s.ids, st)
	return ok
}

func (s StateSet) Equal(o StateSet) bool { return slices.Equal(s.ids, o.ids) }

// Compare orders sets lexicographically by their sorted ids; a proper prefix
// sorts first.
func (s StateSet) Compare(o StateSet) int {
	return slices.CompareFunc(s.ids, o.ids, cmp.Compare[State])
}

// Key is a canonical encoding usable as a map key.
func (s StateSet) Key() string {
	buf := make([]byte, 0, len(s.ids)*2)
	for _, id := range s.ids {
		buf = binary.AppendUvarint(buf, uint64(id))
	}
	return string(buf)
}

func (s StateSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range s.ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	b.WriteByte('}')
	return b.String()
}
