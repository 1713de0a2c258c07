package usecase

import (
	"strconv"
	"strings"
)

const codeSuffixWidth = 3

// maxCodeSequence bounds the probe loop to the 3-wide base-36 suffix space
// (36^3 - 1). The original behavior was an unbounded loop; exhausting the
// space now fails with a store-level error instead.
const maxCodeSequence = 36*36*36 - 1

// codeBase derives the fixed 3-character code base from a product's name
// and SKU. The same (name, sku) pair always yields the same base; only the
// numeric suffix varies between generated codes.
func codeBase(name, sku string) string {
	name = strings.TrimSpace(name)

	var prefix string
	if tokens := strings.Fields(name); len(tokens) >= 2 {
		prefix = firstChar(tokens[0]) + firstChar(tokens[1])
	} else {
		r := []rune(name)
		if len(r) > 2 {
			r = r[:2]
		}
		prefix = string(r)
	}
	for len([]rune(prefix)) < 2 {
		prefix += "X"
	}
	prefix = strings.ToUpper(prefix)

	mid := "0"
	if sku != "" {
		mid = strings.ToUpper(firstChar(sku))
	}

	return prefix + mid
}

func firstChar(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// codeSuffix renders a sequence number as upper-case base 36, zero-padded
// to the suffix width.
func codeSuffix(seq int) string {
	s := strings.ToUpper(strconv.FormatInt(int64(seq), 36))
	for len(s) < codeSuffixWidth {
		s = "0" + s
	}
	return s
}
