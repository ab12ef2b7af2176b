package rop

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/either/pkg/either"
)

// Result is a railway value: an error on the First track or a T on the Second.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     either.Either[error, T]
}

func Success[T any](r T) Result[T] {
	return FromEither(either.Second[error](r))
}

func Fail[T any](err error) Result[T] {
	return FromEither(either.First[error, T](err))
}

func FromEither[T any](e either.Either[error, T]) Result[T] {
	return Result[T]{
		value:     e,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Either returns the underlying union.
func (r Result[T]) Either() either.Either[error, T] {
	return r.value
}

func (r Result[T]) Result() T {
	v, _ := r.value.SecondValue()
	return v
}

func (r Result[T]) Err() error {
	err, _ := r.value.FirstValue()
	return err
}

func (r Result[T]) IsSuccess() bool {
	return r.value.IsSecond()
}

func (r Result[T]) IsFailure() bool {
	return r.value.IsFirst()
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
