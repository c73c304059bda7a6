package assets

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// noNumber sorts names without digits after every numbered name.
const noNumber = 99999

// Order is a canonical sort order for style names.
type Order int

const (
	// NaturalOrder compares digit runs as numbers and other runs case-insensitively.
	NaturalOrder Order = iota

	// NumericOrder sorts by the first digit run in the name, then lexicographically.
	NumericOrder
)

// Sort sorts names in place.
func (o Order) Sort(names []string) {
	switch o {
	case NumericOrder:
		slices.SortStableFunc(names, compareNumeric)
	default:
		slices.SortStableFunc(names, compareNatural)
	}
}

func compareNumeric(a, b string) int {
	return cmp.Or(
		cmp.Compare(firstNumber(a), firstNumber(b)),
		strings.Compare(a, b),
	)
}

// firstNumber returns the value of the first run of digits in s.
func firstNumber(s string) int {
	start := strings.IndexFunc(s, isDigit)
	if start < 0 {
		return noNumber
	}
	end := start
	for end < len(s) && isDigit(rune(s[end])) {
		end++
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return noNumber
	}
	return n
}

// chunk is a run of digits or non-digits.
type chunk struct {
	text    string
	number  int
	numeric bool
}

func splitChunks(s string) []chunk {
	var chunks []chunk
	for len(s) > 0 {
		numeric := isDigit(rune(s[0]))
		end := 1
		for end < len(s) && isDigit(rune(s[end])) == numeric {
			end++
		}
		c := chunk{text: s[:end], numeric: numeric}
		if numeric {
			n, err := strconv.Atoi(c.text)
			if err != nil {
				c.numeric = false
			}
			c.number = n
		} else {
			c.text = strings.ToLower(c.text)
		}
		chunks = append(chunks, c)
		s = s[end:]
	}
	return chunks
}

func compareNatural(a, b string) int {
	ca, cb := splitChunks(a), splitChunks(b)
	for i := 0; i < len(ca) && i < len(cb); i++ {
		x, y := ca[i], cb[i]
		var c int
		switch {
		case x.numeric && y.numeric:
			c = cmp.Compare(x.number, y.number)
		case x.numeric != y.numeric:
			// Numbers sort before text.
			if x.numeric {
				c = -1
			} else {
				c = 1
			}
		default:
			c = strings.Compare(x.text, y.text)
		}
		if c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ca), len(cb))
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
