// Package listview implements the pure list-processing core shared by every
// page: declarative filtering, stable multi-type sorting (including values
// pulled from denormalized snapshots), and pagination-window computation.
// Nothing in this package performs I/O or mutates its inputs.
package listview

import (
	"strings"
	"time"
)

type kind int

const (
	kindAbsent kind = iota
	kindBool
	kindNumber
	kindTime
	kindString
)

// Value is a closed tagged union of the types a sortable field can resolve
// to. Accessors return a Value instead of interface{} so every sortable key
// is an explicit, compile-time-checked extraction function.
type Value struct {
	kind kind
	s    string
	f    float64
	t    time.Time
	b    bool
}

func String(s string) Value  { return Value{kind: kindString, s: s} }
func Number(f float64) Value { return Value{kind: kindNumber, f: f} }
func Time(t time.Time) Value { return Value{kind: kindTime, t: t} }
func Bool(b bool) Value      { return Value{kind: kindBool, b: b} }
func Absent() Value          { return Value{kind: kindAbsent} }

// NullableString resolves an optional field: nil is absent, which sorts after
// every present value regardless of direction.
func NullableString(s *string) Value {
	if s == nil {
		return Absent()
	}
	return String(*s)
}

func (v Value) isAbsent() bool { return v.kind == kindAbsent }

// compare orders two present values of the same kind: strings
// case-insensitively, times chronologically, numbers and bools by value.
// Values of different kinds order by kind tag so the sort stays total.
func compare(a, b Value) int {
	if a.kind != b.kind {
		return int(a.kind) - int(b.kind)
	}
	switch a.kind {
	case kindString:
		return strings.Compare(strings.ToLower(a.s), strings.ToLower(b.s))
	case kindNumber:
		switch {
		case a.f < b.f:
			return -1
		case a.f > b.f:
			return 1
		}
		return 0
	case kindTime:
		switch {
		case a.t.Before(b.t):
			return -1
		case a.t.After(b.t):
			return 1
		}
		return 0
	case kindBool:
		switch {
		case !a.b && b.b:
			return -1
		case a.b && !b.b:
			return 1
		}
		return 0
	}
	return 0
}
