// Package tui provides the Bubble Tea front end for hive.
// It handles the terminal UI loop, input mapping and hive rendering.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the letter pad animation. Seq identifies the
// model that scheduled it, so a stale loop cannot drive a newer puzzle.
type TickMsg struct {
	Time time.Time
	Seq  uint64
}

var tickSeq atomic.Uint64

// nextTickSeq returns a fresh tick loop identifier.
func nextTickSeq() uint64 {
	return tickSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, seq uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Seq: seq}
	})
}
