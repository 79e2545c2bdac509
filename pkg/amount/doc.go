// Package amount holds a shared numeric accumulator and the strategies used to
// add to it concurrently.
//
// [Accumulator] offers no safety of its own. [UnsynchronizedModifier] performs
// a plain read, add and write, and loses updates when calls overlap.
// [SynchronizedModifier] runs the same sequence under a lock keyed on the
// accumulator, so every add is applied exactly once regardless of scheduling.
package amount
