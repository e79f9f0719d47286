package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// typeParams is the type parameter list of an n-ary binder.
func typeParams(n int) string {
	if n == 0 {
		return "T comparable"
	}
	return prefixedStrings("A", n) + " any, T comparable"
}
