// Package stats derives figures from a profile and its progress log: BMI,
// goal progress, aggregate totals and unlocked achievements.
//
// Every function is pure and recomputes from its inputs. Nothing here is
// persisted. Entry order does not matter; functions that need "first" or
// "latest" sort by date themselves.
package stats
