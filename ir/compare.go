package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Object comparison is order-insensitive over keys.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank orders types: Null < Bool < Number < String < Array < Object.
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	av, aok := numberValue(a)
	bv, bok := numberValue(b)
	if !aok || !bok {
		if aok == bok {
			return 0
		}
		if !aok {
			return -1
		}
		return 1
	}
	return cmp.Compare(av, bv)
}

func numberValue(y *Node) (float64, bool) {
	if y.Int64 != nil {
		return float64(*y.Int64), true
	}
	if y.Float64 != nil {
		return *y.Float64, true
	}
	return 0, false
}

func compareArrays(a, b *Node) int {
	if d := cmp.Compare(len(a.Values), len(b.Values)); d != 0 {
		return d
	}
	for i := range a.Values {
		if d := Compare(a.Values[i], b.Values[i]); d != 0 {
			return d
		}
	}
	return 0
}

func compareObjects(a, b *Node) int {
	if d := cmp.Compare(len(a.Fields), len(b.Fields)); d != 0 {
		return d
	}
	aKeys := sortedKeys(a)
	bKeys := sortedKeys(b)
	for i := range aKeys {
		if d := strings.Compare(aKeys[i], bKeys[i]); d != 0 {
			return d
		}
	}
	for _, key := range aKeys {
		if d := Compare(Get(a, key), Get(b, key)); d != 0 {
			return d
		}
	}
	return 0
}

func sortedKeys(y *Node) []string {
	keys := make([]string, len(y.Fields))
	for i := range y.Fields {
		keys[i] = y.Fields[i].String
	}
	slices.Sort(keys)
	return keys
}
