package wscodec

import "fmt"

// DecodeError reports a frame whose kind matched the codec but whose
// payload failed to parse or did not fit the target shape. The message
// includes the raw input so callers can see why their chosen codec
// rejected the frame.
type DecodeError struct {
	Codec string // codec name
	Input string // offending payload
	Err   error  // underlying parse error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: cannot decode %q: %v", e.Codec, e.Input, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
