// Package rop builds Railway-Oriented results on top of either.Either.
// A Result[T] keeps an error on the First track and a T on the Second,
// tagged with an id and a UTC creation time. Pipeline steps live in
// package solo.
package rop
