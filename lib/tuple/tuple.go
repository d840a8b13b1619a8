// Package tuple is a right-nested ordered tuple: a first field followed by
// the rest of the tuple, terminated by End.
//
//	Tuple[string, Tuple[int, End]]
//
// Every field is either present or absent (null). The zero value of a Tuple
// has all fields absent.
package tuple

import (
	"fmt"
	"strings"
)

// End is the empty tuple that terminates every chain.
type End struct{}

func (End) Len() int { return 0 }

func (End) String() string { return "()" }

// Tuple is a cons cell. R is End or another Tuple.
type Tuple[F, R any] struct {
	first   F
	present bool
	rest    R
}

// Named is implemented by every tuple type that is able to expose its
// right-nested shape R. Tuple itself and Single...Decuple implement it.
type Named[R any] interface {
	Tuple() R
}

func Prepend[F, R any](first F, rest R) Tuple[F, R] {
	return Tuple[F, R]{
		first:   first,
		present: true,
		rest:    rest,
	}
}

func PrependNull[F, R any](rest R) Tuple[F, R] {
	return Tuple[F, R]{
		rest: rest,
	}
}

// Extract decomposes the tuple positionally. When the first field is absent
// the returned value is the zero value of F and ok is false.
func (t Tuple[F, R]) Extract() (first F, ok bool, rest R) {
	return t.first, t.present, t.rest
}

func (t Tuple[F, R]) First() (F, bool) {
	return t.first, t.present
}

func (t Tuple[F, R]) Rest() R {
	return t.rest
}

func (t Tuple[F, R]) Tuple() Tuple[F, R] {
	return t
}

type lengther interface {
	Len() int
}

func (t Tuple[F, R]) Len() int {
	if l, ok := any(t.rest).(lengther); ok {
		return 1 + l.Len()
	}
	return 1
}

type fieldsWriter interface {
	writeFields(sb *strings.Builder)
}

func (t Tuple[F, R]) writeFields(sb *strings.Builder) {
	if t.present {
		_, _ = fmt.Fprintf(sb, "%v", t.first)
	} else {
		sb.WriteString("<nil>")
	}
	if w, ok := any(t.rest).(fieldsWriter); ok {
		sb.WriteString(", ")
		w.writeFields(sb)
	}
}

func (t Tuple[F, R]) String() string {
	sb := strings.Builder{}
	sb.WriteString("(")
	t.writeFields(&sb)
	sb.WriteString(")")
	return sb.String()
}
