// Package chain provides a fluent wrapper around rop.Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Each step runs only while the chain is on the success track; the first
// failure is carried unchanged to the end, exactly like either.FlatMap.
//
// Key operations:
// - Start/FromValue/FromEither: begin a chain
// - Then/ThenTry/Map: move to a new value type (package functions)
// - Chain.Then/Chain.Map: same-type steps as methods
// - Chain.While/Chain.RepeatUntil: loop a step on the success track
// - Chain.Or/Chain.And: first success / first failure of several chains
// - Chain.Ensure: side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
