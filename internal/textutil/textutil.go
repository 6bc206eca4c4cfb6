package textutil

// ContainsChinese checks if a string contains a character in the CJK
// Unified Ideographs block (U+4E00 to U+9FFF). The extended Han blocks
// are deliberately excluded to keep parity with existing store files.
func ContainsChinese(s string) bool {
	for _, r := range s {
		if r >= 0x4e00 && r <= 0x9fff {
			return true
		}
	}
	return false
}

// AnyChinese reports whether any of the given values contains Chinese.
func AnyChinese(values ...string) bool {
	for _, v := range values {
		if ContainsChinese(v) {
			return true
		}
	}
	return false
}

// Truncate shortens a string to maxLen, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
