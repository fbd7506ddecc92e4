package entityres

// asciiLower lower-cases the ASCII letters in s and leaves every other
// byte untouched. Unicode case-folding is explicitly out of scope
// (spec §9): the source this engine was distilled from performs
// byte-level ASCII folding only, so that is the contract here too.
func asciiLower(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}

	return string(b)
}

// normalize folds s per the case-sensitivity setting. It is applied
// identically to both column values and incomparables entries, so a
// case-insensitive comparison is consistent in both directions.
func normalize(s string, caseSensitive bool) string {
	if caseSensitive {
		return s
	}

	return asciiLower(s)
}
