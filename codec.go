package wscodec

// FrameCodec converts values of one type to and from frames. A codec is a
// pure, stateless value: any number of goroutines may call Encode and
// Decode concurrently without coordination.
//
// Decode distinguishes two failure classes. A frame of the wrong kind is a
// structural mismatch and returns ok == false with a nil error; the caller
// may try another codec or drop the frame. A frame of the right kind whose
// payload does not parse returns a non-nil error (usually a *DecodeError
// embedding the offending input) and must not be mistaken for a mismatch.
type FrameCodec[T any] struct {
	name   string
	encode func(T) Frame
	decode func(Frame) (T, bool, error)
}

// New builds a codec from an encode/decode pair. The name identifies the
// expected frame variant and payload format in diagnostics.
func New[T any](name string, encode func(T) Frame, decode func(Frame) (T, bool, error)) FrameCodec[T] {
	return FrameCodec[T]{name: name, encode: encode, decode: decode}
}

// Name reports the codec's diagnostic label.
func (c FrameCodec[T]) Name() string { return c.name }

// Encode converts v to a frame.
func (c FrameCodec[T]) Encode(v T) Frame { return c.encode(v) }

// Decode converts a frame back to a value. ok is false on a frame-kind
// mismatch; err is non-nil on malformed content.
func (c FrameCodec[T]) Decode(f Frame) (T, bool, error) { return c.decode(f) }

// Transform derives a codec for B from an existing codec for A plus a pair
// of conversion functions: to feeds Encode, from maps decoded values back.
// Mismatches and errors from the inner codec propagate unchanged; from may
// fail, and its error propagates as malformed content. Transform composes
// associatively and introduces no state.
func Transform[A, B any](c FrameCodec[A], name string, to func(B) A, from func(A) (B, error)) FrameCodec[B] {
	return FrameCodec[B]{
		name: name,
		encode: func(b B) Frame {
			return c.encode(to(b))
		},
		decode: func(f Frame) (B, bool, error) {
			var zero B
			a, ok, err := c.decode(f)
			if err != nil || !ok {
				return zero, ok, err
			}
			b, err := from(a)
			if err != nil {
				return zero, false, err
			}
			return b, true, nil
		},
	}
}

// Text is the identity codec over text frames. Decoding a binary frame is
// a mismatch.
func Text() FrameCodec[string] {
	return New("text",
		TextFrame,
		func(f Frame) (string, bool, error) {
			if f.Kind != KindText {
				return "", false, nil
			}
			return f.Text, true, nil
		},
	)
}

// Bytes is the identity codec over binary frames. Decoding a text frame is
// a mismatch.
func Bytes() FrameCodec[[]byte] {
	return New("bytes",
		BinaryFrame,
		func(f Frame) ([]byte, bool, error) {
			if f.Kind != KindBinary {
				return nil, false, nil
			}
			return f.Data, true, nil
		},
	)
}
