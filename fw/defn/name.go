package defn

// CommonPrefixLen returns the length of the longest common leading byte run of a and b.
// Segment boundaries are ignored: "/edu.umich" and "/edu.uchicago" share 6 bytes.
func CommonPrefixLen(a, b string) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
