package solo

import (
	"context"
	"errors"

	"github.com/ib-77/either/pkg/either"
	"github.com/ib-77/either/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	return FailOnError(ctx, input, func(ctx context.Context, in T) error {
		if isValid, errMsg := validate(ctx, in); !isValid {
			return errors.New(errMsg)
		}
		return nil
	})
}

func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	validators ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if len(validators) == 0 || input.IsFailure() || !rop.IsNil(ctx.Err()) {
		return input
	}

	var errs []error
	var failure rop.Result[T]
	failed := false
	current := input
	for _, validate := range validators {
		if !rop.IsNil(ctx.Err()) {
			break
		}

		next := validate(ctx, current)
		if next.IsFailure() {
			if !failed {
				failure = next
				failed = true
			}
			errs = append(errs, rop.GetErrors(next.Err())...)
			if breakOnError {
				break
			}
			continue
		}
		current = next
	}

	switch {
	case !failed:
		return current
	case len(errs) == 0:
		// failed without an error value
		return failure
	default:
		return rop.Fail[T](errors.Join(errs...))
	}
}

// Switch moves a success onto onSuccess, which may itself fail.
func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	return rop.FromEither(either.FlatMap(input.Either(), func(r In) either.Either[error, Out] {
		return onSuccess(ctx, r).Either()
	}))
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	return rop.FromEither(either.Map(input.Either(), func(r In) Out {
		return onSuccess(ctx, r)
	}))
}

// Try calls a (value, error) function and puts a non-nil error on the failure track.
func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	return Switch(ctx, input, func(ctx context.Context, r In) rop.Result[Out] {
		out, err := onTryExecute(ctx, r)
		if err != nil {
			return rop.Fail[Out](err)
		}
		return rop.Success(out)
	})
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {

	if input.IsFailure() {
		return input
	}
	if err := maybeErr(ctx, input.Result()); err != nil {
		return rop.Fail[T](err)
	}
	return input
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input rop.Result[T],
	condition func(ctx context.Context, r T) bool,
	onSuccessAndCondition func(ctx context.Context, r T)) rop.Result[T] {

	return Tee(ctx, input, func(ctx context.Context, r T) {
		if condition(ctx, r) {
			onSuccessAndCondition(ctx, r)
		}
	})
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) rop.Result[T] {

	either.Fold(input.Either(),
		func(err error) struct{} { onError(ctx, err); return struct{}{} },
		func(r T) struct{} { onSuccess(ctx, r); return struct{}{} })

	return input
}

// DoubleMap maps a success and reports a failure to onError, keeping the failure.
func DoubleMap[In any, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error)) rop.Result[Out] {

	return Map(ctx, DoubleTee(ctx, input, func(context.Context, In) {}, onError), onSuccess)
}

// MapErr rewrites the error of a failure; a success passes through.
func MapErr[T any](ctx context.Context, input rop.Result[T],
	onError func(ctx context.Context, err error) error) rop.Result[T] {

	return rop.FromEither(either.MapLeft(input.Either(), func(err error) error {
		return onError(ctx, err)
	}))
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	return either.Fold(input.Either(),
		func(err error) Out { return onError(ctx, err) },
		func(r In) Out { return onSuccess(ctx, r) })
}
