package search

// SubstringDistance returns the smallest Levenshtein distance between query
// and any substring of text. Leading and trailing text is skipped for free,
// so a query that appears verbatim anywhere in text scores 0.
func SubstringDistance(query, text []rune) int {
	m, n := len(query), len(text)
	if m == 0 {
		return 0
	}
	if n == 0 {
		return m
	}

	prev := make([]int, n+1)
	curr := make([]int, n+1)
	// prev row is all zeros: the alignment may start at any text offset.

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if query[i-1] == text[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j-1]+cost, // substitute or match
				prev[j]+1,      // skip a query rune
				curr[j-1]+1,    // skip a text rune inside the window
			)
		}
		prev, curr = curr, prev
	}

	best := prev[0]
	for j := 1; j <= n; j++ {
		if prev[j] < best {
			best = prev[j]
		}
	}
	return best
}

// LevenshteinDistance calculates the classic edit distance between two strings.
func LevenshteinDistance(s1, s2 string) int {
	a, b := []rune(s1), []rune(s2)
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j-1]+cost, prev[j]+1, curr[j-1]+1)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
