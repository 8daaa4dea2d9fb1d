package coords

// Cluster classification used by word-wise motion and deletion. Cells
// fall into three classes: word characters, whitespace, and everything
// else. A run of the same class forms one motion unit, except that
// "other" cells only group with identical clusters.

// IsWordCluster reports whether the cluster belongs to a word. Any
// multi-byte cluster counts, plus ASCII letters, digits and underscore.
func IsWordCluster(cl string) bool {
	if len(cl) > 1 {
		return true
	}
	if len(cl) == 0 {
		return false
	}
	ch := cl[0]
	return ch >= 'a' && ch <= 'z' ||
		ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9' ||
		ch == '_'
}

// IsSpaceCluster reports whether the cluster is ASCII whitespace.
func IsSpaceCluster(cl string) bool {
	if len(cl) != 1 {
		return false
	}
	switch cl[0] {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// SameWordClass reports whether two clusters belong to the same motion
// unit, given the class of the first.
func SameWordClass(initial, other string) bool {
	initialWord := IsWordCluster(initial)
	initialSpace := IsSpaceCluster(initial)
	otherWord := IsWordCluster(other)
	otherSpace := IsSpaceCluster(other)
	if initialSpace {
		return otherSpace
	}
	if initialWord {
		return otherWord
	}
	return initial == other
}
