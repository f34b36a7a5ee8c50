package table

import (
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"griddle/internal/domain"
)

// Comparator provides the total ordering used for sorting. Numeric
// pairs order arithmetically; everything else is lower-cased and
// compared with a locale-aware collator. Missing values coerce to the
// empty string, so they sort first ascending.
type Comparator struct {
	collator *collate.Collator
}

// NewComparator creates a comparator with locale-neutral collation
func NewComparator() *Comparator {
	return &Comparator{collator: collate.New(language.Und)}
}

// Compare returns -1, 0 or 1 ordering a against b, ascending.
func (c *Comparator) Compare(a, b any) int {
	af, aok := numericValue(a)
	bf, bok := numericValue(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}

	as := strings.ToLower(cast.ToString(a))
	bs := strings.ToLower(cast.ToString(b))
	return c.collator.CompareString(as, bs)
}

// CompareField orders two rows by one field. Descending is the exact
// negation of ascending, never a separate comparison.
func (c *Comparator) CompareField(a, b domain.Row, field string, dir domain.SortDirection) int {
	cmp := c.Compare(a[field], b[field])
	if dir == domain.SortDesc {
		cmp = -cmp
	}
	return cmp
}

// numericValue unwraps genuinely numeric types. Strings that merely
// look numeric are left to the string path; the loader already typed
// every cell it could parse.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
