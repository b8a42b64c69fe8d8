package enums

import "fmt"

// BookCondition describes the physical grade of a catalog book.
type BookCondition string

const (
	BookConditionNew     BookCondition = "NEW"
	BookConditionLikeNew BookCondition = "LIKE_NEW"
	BookConditionGood    BookCondition = "GOOD"
	BookConditionFair    BookCondition = "FAIR"
)

var validBookConditions = []BookCondition{
	BookConditionNew,
	BookConditionLikeNew,
	BookConditionGood,
	BookConditionFair,
}

// String implements fmt.Stringer.
func (b BookCondition) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BookCondition.
func (b BookCondition) IsValid() bool {
	for _, candidate := range validBookConditions {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBookCondition converts raw input into a BookCondition.
func ParseBookCondition(value string) (BookCondition, error) {
	for _, candidate := range validBookConditions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid book condition %q", value)
}
