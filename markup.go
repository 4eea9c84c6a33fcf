package wscodec

// Tagged string types for rendered template output. The tag records what
// the body is, so a handler returning HTML cannot be wired to a codec
// expecting script text by accident. The codecs below are total and
// lossless: any text frame decodes.
type (
	// HTML is a rendered HTML document or fragment.
	HTML string
	// XML is a rendered XML document.
	XML string
	// Plain is rendered plain text.
	Plain string
	// Script is rendered JavaScript source.
	Script string
)

// HTMLCodec converts HTML bodies to and from text frames.
func HTMLCodec() FrameCodec[HTML] { return wrapperCodec[HTML]("html") }

// XMLCodec converts XML bodies to and from text frames.
func XMLCodec() FrameCodec[XML] { return wrapperCodec[XML]("xml") }

// PlainCodec converts plain-text bodies to and from text frames.
func PlainCodec() FrameCodec[Plain] { return wrapperCodec[Plain]("plain") }

// ScriptCodec converts script bodies to and from text frames.
func ScriptCodec() FrameCodec[Script] { return wrapperCodec[Script]("script") }

func wrapperCodec[T ~string](name string) FrameCodec[T] {
	return Transform(Text(), name,
		func(v T) string { return string(v) },
		func(s string) (T, error) { return T(s), nil },
	)
}
