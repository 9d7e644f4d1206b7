package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Check completed successfully
	SymbolFail    = "✗" // Check failed
	SymbolWarn    = "!" // Non-fatal problem
)
