package chain

import (
	"context"

	"github.com/ib-77/either/pkg/either"
	"github.com/ib-77/either/pkg/rop"
	"github.com/ib-77/either/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) Chain[T] {
	return Start(ctx, rop.Success(value))
}

// FromEither creates a new chain from an error-or-value union
func FromEither[T any](ctx context.Context, e either.Either[error, T]) Chain[T] {
	return Start(ctx, rop.FromEither(e))
}

// Result returns the underlying rop.Result
func (c Chain[T]) Result() rop.Result[T] {
	return c.result
}

func (c Chain[T]) Either() either.Either[error, T] {
	return c.result.Either()
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c Chain[T], onSuccess func(context.Context, T) rop.Result[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, result: solo.Switch(c.ctx, c.result, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], tryOnSuccess func(context.Context, T) (U, error)) Chain[U] {
	return Chain[U]{ctx: c.ctx, result: solo.Try(c.ctx, c.result, tryOnSuccess)}
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, result: solo.Map(c.ctx, c.result, onSuccess)}
}

// Then is the same-type form of the package-level Then.
func (c Chain[T]) Then(onSuccess func(context.Context, T) rop.Result[T]) Chain[T] {
	if c.result.IsFailure() {
		return c
	}
	return Then(c, onSuccess)
}

func (c Chain[T]) Map(onSuccess func(context.Context, T) T) Chain[T] {
	if c.result.IsFailure() {
		return c
	}
	return Map(c, onSuccess)
}

// RepeatUntil runs onSuccess at least once and repeats it while until holds.
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Result[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.result.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.result.IsFailure() || !until(c.ctx, c.result.Result()) {
			return c
		}
	}
}

// While runs onSuccess as long as the chain succeeds and while holds.
func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) rop.Result[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.result.IsSuccess() && while(c.ctx, c.result.Result()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first successful chain, or the first failure if none succeeded.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.result.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.result.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain, or the last chain if all succeeded.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.result.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects for success/failure without changing the result.
// Nil handlers are skipped.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if onSuccess == nil {
		onSuccess = func(context.Context, T) {}
	}
	if onFailure == nil {
		onFailure = func(context.Context, error) {}
	}
	return Chain[T]{ctx: c.ctx, result: solo.DoubleTee(c.ctx, c.result, onSuccess, onFailure)}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
