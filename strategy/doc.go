// Package strategy provides built-in assignment strategy implementations.
//
// Assignment strategies turn a group snapshot into giver → recipient pairs.
// The package currently ships one strategy:
//
//   - BasketDraw: emulates drawing names from a basket, one giver at a time,
//     and throws the whole draw away on conflict (bounded retries)
//
// BasketDraw is not a complete search. With dense constraints it may return
// ErrResolutionFailed even though a valid assignment exists.
//
// Custom strategies can be implemented by satisfying the types.AssignmentStrategy interface.
package strategy
