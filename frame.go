// Package wscodec converts application values to and from WebSocket
// frames. Codecs are pure value pairs of an encode and a decode function;
// new codecs are derived from existing ones with Transform. The package
// performs no I/O: a transport layer hands it already-framed messages and
// sends the frames it produces.
package wscodec

// Kind identifies which of the two WebSocket data frame variants a Frame
// carries.
type Kind uint8

const (
	// KindText marks a frame carrying UTF-8 text.
	KindText Kind = iota + 1
	// KindBinary marks a frame carrying opaque bytes.
	KindBinary
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBinary:
		return "binary"
	default:
		return "invalid"
	}
}

// Frame is a single transport-level message. Exactly one payload field is
// meaningful, selected by Kind. Frames are immutable values; callers must
// not mutate Data after constructing a frame.
type Frame struct {
	Kind Kind
	Text string // payload when Kind == KindText
	Data []byte // payload when Kind == KindBinary
}

// TextFrame wraps s in a text frame.
func TextFrame(s string) Frame {
	return Frame{Kind: KindText, Text: s}
}

// BinaryFrame wraps b in a binary frame.
func BinaryFrame(b []byte) Frame {
	return Frame{Kind: KindBinary, Data: b}
}
