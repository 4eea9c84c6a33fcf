package wscodec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type yamlMarshaler[T any] struct{}

func (yamlMarshaler[T]) Marshal(v T) ([]byte, error) { return yaml.Marshal(v) }

func (yamlMarshaler[T]) Unmarshal(data []byte) (T, error) {
	var v T
	err := yaml.Unmarshal(data, &v)
	return v, err
}

// YAML converts values of T to and from text frames holding their YAML
// form. Text that is not valid YAML for T yields a *DecodeError with the
// input embedded.
func YAML[T any]() FrameCodec[T] {
	name := fmt.Sprintf("yaml[%T]", *new(T))
	return FromMarshaler[T](name, yamlMarshaler[T]{}, KindText)
}
