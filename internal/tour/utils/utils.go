// --- syntour/internal/tour/utils/utils.go ---

// Package utils is the nested namespace the tour calls into by qualified name.
package utils

// Helper returns a fixed greeting.
func Helper() string {
	return "Helper function"
}
