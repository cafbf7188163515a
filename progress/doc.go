// Package progress defines the observability hook a connectivity build calls
// after every round, with no-op, function and structured-log implementations.
//
// A Reporter never influences the build; it only observes. The builder calls
// Start once with the expected total, Report after each round with the
// current progress value, and Finish once when the build ends (on success or
// failure).
//
// Bounded-rounds builds report rounds completed out of the round budget.
// Full-connectivity builds report the largest circuit size out of the point count.
package progress
