// Package tui provides the terminal output layer for cashflowctl.
//
// It handles:
//   - Interactive confirmation prompts (using survey)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
package tui
