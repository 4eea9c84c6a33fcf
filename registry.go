package wscodec

import (
	"reflect"
	"sync"

	"github.com/wscodec/wscodec/internal/logx"
)

// Registry maps Go types to their frame codecs. It replaces ambient codec
// resolution with explicit registration: populate it at startup, then look
// codecs up by type where frames are handled. Safe for concurrent use;
// registering again for the same type replaces the earlier codec.
type Registry struct {
	mu     sync.RWMutex
	codecs map[reflect.Type]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[reflect.Type]any)}
}

// Default returns a registry preloaded with the built-in codecs: text,
// bytes, form (UTF-8), JSON values and the markup wrapper types.
func Default() *Registry {
	r := NewRegistry()
	Register(r, Text())
	Register(r, Bytes())
	Register(r, Form())
	Register(r, JSONValue())
	Register(r, HTMLCodec())
	Register(r, XMLCodec())
	Register(r, PlainCodec())
	Register(r, ScriptCodec())
	return r
}

// Register stores c as the codec for T.
func Register[T any](r *Registry, c FrameCodec[T]) {
	key := reflect.TypeOf((*T)(nil)).Elem()
	r.mu.Lock()
	r.codecs[key] = c
	r.mu.Unlock()
	logx.Log.Trace().Str("codec", c.Name()).Str("type", key.String()).Msg("codec registered")
}

// Lookup returns the codec registered for T, or ok == false when none is.
func Lookup[T any](r *Registry) (FrameCodec[T], bool) {
	key := reflect.TypeOf((*T)(nil)).Elem()
	r.mu.RLock()
	v, ok := r.codecs[key]
	r.mu.RUnlock()
	if !ok {
		return FrameCodec[T]{}, false
	}
	c, ok := v.(FrameCodec[T])
	return c, ok
}

// Len reports how many codecs are registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.codecs)
}
