package cu2qu

// option is a value that may be absent, such as a moveTo that hasn't been
// forwarded yet.
type option[T any] struct {
	value T
	isSet bool
}

func (opt *option[T]) set(v T) { *opt = option[T]{value: v, isSet: true} }

func (opt *option[T]) clear() { *opt = option[T]{} }

func (opt *option[T]) unwrap() T {
	if !opt.isSet {
		panic("option isn't set")
	}
	return opt.value
}
