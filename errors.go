package hxstyle

import "errors"

// ErrUnserializable reports a style object or props value with no
// canonical textual form (functions, channels, cyclic data). Composer
// functions panic with an error wrapping this sentinel; the panic aborts
// the current render's style computation - there is no best-effort output.
var ErrUnserializable = errors.New("hxstyle: value cannot be serialized")

// IsSerializationError checks if err stems from an unserializable style
// object or props value.
func IsSerializationError(err error) bool {
	return errors.Is(err, ErrUnserializable)
}
