package array

//go:generate mockgen -source strategy.go -destination strategy_mocks.go -package array

// Kind identifies the storage strategy backing an array.
type Kind uint8

//nolint:revive
const (
	Linked Kind = iota
	Dense
)

func (k Kind) String() string {
	switch k {
	case Linked:
		return "linked"
	case Dense:
		return "dense"
	default:
		return "unknown"
	}
}

// ParseKind returns the Kind corresponding to the provided name, as returned
// by Kind.String. The boolean is false if the name is not a valid kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "linked":
		return Linked, true
	case "dense":
		return Dense, true
	}
	return 0, false
}

// A Strategy is the storage backend of an Array. Implementations own every
// element they store. The Array validates arguments before calling a
// Strategy, so implementations may assume that indices passed to Insert are
// non-negative, that shift counts are positive and that ShiftRight does not
// overflow.
type Strategy interface {
	// Kind returns the kind of the strategy.
	Kind() Kind

	// Insert sets the value at index, overwriting it in place if it already
	// exists.
	Insert(index int64, value string)

	// Remove removes the element at index and returns its value. The boolean
	// is false if there was no such element.
	Remove(index int64) (string, bool)

	// Reference returns the value at index. The boolean is false if there is
	// no such element.
	Reference(index int64) (string, bool)

	// Len returns the number of elements.
	Len() int

	// MaxIndex returns the highest index, or -1 if there are no elements.
	MaxIndex() int64

	// MinIndex returns the lowest index, or -1 if there are no elements.
	MinIndex() int64

	// Flush removes all elements.
	Flush()

	// Clone returns an independent copy of the strategy and its elements.
	Clone() Strategy

	// Slice returns a new strategy of the same kind holding copies of the
	// elements with start <= index < end, with their index unchanged.
	Slice(start, end int64) Strategy

	// ShiftLeft removes the first n elements in ascending index order and
	// subtracts n from the index of all remaining elements. If dispose is
	// false, the removed elements are returned in ascending index order.
	ShiftLeft(n int64, dispose bool) []Element

	// ShiftRight adds n to the index of all elements.
	ShiftRight(n int64)

	// Walk calls fn for each element with index >= start, in ascending index
	// order, until fn returns false.
	Walk(start int64, fn func(Element) bool)
}
