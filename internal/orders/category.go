package orders

import "fmt"

// Category is the closed product category enumeration.
type Category int

const (
	CategoryA Category = iota + 1
	CategoryB
	CategoryC
)

var categoryTags = []string{"A", "B", "C"}

func (c Category) String() string {
	if c < CategoryA || c > CategoryC {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryTags[c-CategoryA]
}

// CategoryNames lists the declared category tags. Enum-membership checks
// in validation are parameterized over this list.
func CategoryNames() []string {
	out := make([]string, len(categoryTags))
	copy(out, categoryTags)
	return out
}

// ParseCategory maps a tag to its Category. Anything undeclared fails.
func ParseCategory(tag string) (Category, error) {
	for i, t := range categoryTags {
		if t == tag {
			return CategoryA + Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", tag)
}
