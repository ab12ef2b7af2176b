package either

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Either holds a First value or a Second value, never both.
// The zero value is First holding the zero A.
type Either[A, B any] struct {
	first    A
	second   B
	isSecond bool
}

func First[A, B any](value A) Either[A, B] {
	return Either[A, B]{first: value}
}

func Second[A, B any](value B) Either[A, B] {
	return Either[A, B]{second: value, isSecond: true}
}

func (e Either[A, B]) IsFirst() bool {
	return !e.isSecond
}

func (e Either[A, B]) IsSecond() bool {
	return e.isSecond
}

// FirstValue returns the First value and true, or the zero A and false.
func (e Either[A, B]) FirstValue() (A, bool) {
	if e.isSecond {
		var zero A
		return zero, false
	}
	return e.first, true
}

// SecondValue returns the Second value and true, or the zero B and false.
func (e Either[A, B]) SecondValue() (B, bool) {
	if !e.isSecond {
		var zero B
		return zero, false
	}
	return e.second, true
}

// Swap turns First into Second and Second into First.
func (e Either[A, B]) Swap() Either[B, A] {
	return Fold(e, Second[B, A], First[B, A])
}

// ToOption drops the First branch: ok is false when e is First.
func (e Either[A, B]) ToOption() (value B, ok bool) {
	return e.SecondValue()
}

// Equal reports whether both values are the same variant holding deeply equal
// values. Pointers and interfaces are followed and unexported fields compared,
// so Equal may be true where == is false (two distinct errors.New("x")).
func (e Either[A, B]) Equal(other Either[A, B]) bool {
	if e.isSecond != other.isSecond {
		return false
	}
	if e.isSecond {
		return cmp.Equal(e.second, other.second, exportAll)
	}
	return cmp.Equal(e.first, other.first, exportAll)
}

func (e Either[A, B]) String() string {
	if e.isSecond {
		return fmt.Sprintf("Second(%v)", e.second)
	}
	return fmt.Sprintf("First(%v)", e.first)
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Fold calls exactly one of onFirst or onSecond and returns its result.
func Fold[A, B, C any](e Either[A, B], onFirst func(A) C, onSecond func(B) C) C {
	if e.isSecond {
		return onSecond(e.second)
	}
	return onFirst(e.first)
}

// Map applies f to a Second value. A First is returned unchanged and f is not called.
func Map[A, B, C any](e Either[A, B], f func(B) C) Either[A, C] {
	if e.isSecond {
		return Second[A](f(e.second))
	}
	return First[A, C](e.first)
}

// MapLeft applies f to a First value. A Second is returned unchanged and f is not called.
func MapLeft[A, B, C any](e Either[A, B], f func(A) C) Either[C, B] {
	if e.isSecond {
		return Second[C](e.second)
	}
	return First[C, B](f(e.first))
}

// FlatMap passes a Second value to f and returns whatever f returns.
// A First short-circuits: it is returned unchanged and f is not called.
func FlatMap[A, B, C any](e Either[A, B], f func(B) Either[A, C]) Either[A, C] {
	if e.isSecond {
		return f(e.second)
	}
	return First[A, C](e.first)
}
