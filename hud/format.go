// Package hud formats game state for display and keeps on-screen text in sync
// with a gamestate.Store.
package hud

import (
	"fmt"
	"math"
)

// FormatScore renders the score as six zero-padded digits.
func FormatScore(score int) string {
	return fmt.Sprintf("%06d", score)
}

// FormatCoins renders the coin count as "×" plus two zero-padded digits.
func FormatCoins(coins int) string {
	return fmt.Sprintf("×%02d", coins)
}

// FormatLives renders the life count as "×" plus the number.
func FormatLives(lives int) string {
	return fmt.Sprintf("×%d", lives)
}

// DisplaySeconds rounds the remaining time up to whole seconds.
func DisplaySeconds(remaining float64) int {
	return int(math.Ceil(remaining))
}

// FormatTime renders the remaining time rounded up to whole seconds.
func FormatTime(remaining float64) string {
	return fmt.Sprintf("%d", DisplaySeconds(remaining))
}

// TimeWarning reports whether the timer should be drawn in the warning colour.
// Below the threshold the colour alternates every second: even seconds warn,
// odd seconds do not. Zero never warns.
func TimeWarning(remaining float64, threshold int) bool {
	secs := DisplaySeconds(remaining)
	return secs > 0 && secs <= threshold && secs%2 == 0
}
