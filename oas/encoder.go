package oas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"

	"github.com/erraggy/oaswire/internal/pathutil"
	"github.com/erraggy/oaswire/keys"
	"github.com/erraggy/oaswire/oaserrors"
)

// CallbackMode selects how a callback expression that does not map to
// exactly one path is handled.
type CallbackMode int

const (
	// CallbackStrict fails the encode with an *oaserrors.CallbackConstraintError.
	CallbackStrict CallbackMode = iota
	// CallbackLegacy drops the offending expression and logs a warning.
	CallbackLegacy
)

// DefaultMaxDepth is the schema nesting depth allowed by default.
const DefaultMaxDepth = 64

// Encoder writes Documents in the OpenAPI 3.0.0 JSON wire shape.
//
// An Encoder holds only configuration, so one instance may be shared by
// concurrent callers.
type Encoder struct {
	callbackMode CallbackMode
	maxDepth     int
	logger       Logger
	validate     bool
	prefix       string
	indent       string
	configErr    error
}

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithCallbackMode selects strict (default) or legacy callback handling.
func WithCallbackMode(mode CallbackMode) EncoderOption {
	return func(e *Encoder) {
		if mode != CallbackStrict && mode != CallbackLegacy {
			e.configErr = &oaserrors.ConfigError{Option: "CallbackMode", Value: int(mode), Message: "unknown callback mode"}
			return
		}
		e.callbackMode = mode
	}
}

// WithMaxDepth bounds how deeply schemas may nest.
func WithMaxDepth(depth int) EncoderOption {
	return func(e *Encoder) {
		if depth <= 0 {
			e.configErr = &oaserrors.ConfigError{Option: "MaxDepth", Value: depth, Message: "must be positive"}
			return
		}
		e.maxDepth = depth
	}
}

// WithLogger sets the logger. A nil logger restores the no-op default.
func WithLogger(l Logger) EncoderOption {
	return func(e *Encoder) {
		if l == nil {
			l = NopLogger{}
		}
		e.logger = l
	}
}

// WithValidation runs Document.Validate before encoding when enabled.
func WithValidation(enabled bool) EncoderOption {
	return func(e *Encoder) {
		e.validate = enabled
	}
}

// WithIndent makes Encode produce indented JSON, as json.Indent does.
func WithIndent(prefix, indent string) EncoderOption {
	return func(e *Encoder) {
		e.prefix = prefix
		e.indent = indent
	}
}

// NewEncoder returns an Encoder with the given options applied.
// Invalid option values are reported by the first call to Encode.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{
		callbackMode: CallbackStrict,
		maxDepth:     DefaultMaxDepth,
		logger:       NopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode writes doc as compact JSON using a default Encoder.
func Encode(doc *Document) ([]byte, error) {
	return NewEncoder().Encode(doc)
}

// Encode returns the JSON encoding of doc.
func (e *Encoder) Encode(doc *Document) ([]byte, error) {
	data, err := e.encode(doc)
	if err != nil {
		return nil, err
	}
	if e.indent == "" && e.prefix == "" {
		return data, nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, e.prefix, e.indent); err != nil {
		return nil, &oaserrors.EncodingError{Message: "indenting output", Cause: err}
	}
	return out.Bytes(), nil
}

func (e *Encoder) encode(doc *Document) ([]byte, error) {
	if e.configErr != nil {
		return nil, e.configErr
	}
	if doc == nil || doc.info == nil {
		return nil, &oaserrors.EncodingError{Field: "info", Message: "required field is missing"}
	}
	if doc.paths == nil {
		return nil, &oaserrors.EncodingError{Field: "paths", Message: "required field is missing"}
	}
	if e.validate {
		if err := doc.Validate(); err != nil {
			return nil, err
		}
	}

	s := &encodeState{enc: e, path: pathutil.Get()}
	defer pathutil.Put(s.path)

	e.logger.Debug("encoding document", "title", doc.info.Title, "paths", doc.paths.Len())
	if err := s.writeDocument(doc); err != nil {
		e.logger.Debug("encoding failed", "error", err)
		return nil, err
	}
	e.logger.Debug("encoded document", "bytes", s.buf.Len())
	return s.buf.Bytes(), nil
}

// encodeState is the per-call output buffer and position.
type encodeState struct {
	enc   *Encoder
	buf   bytes.Buffer
	path  *pathutil.PathBuilder
	depth int
}

// object writes the members of one JSON object, inserting separators.
type object struct {
	s     *encodeState
	count int
}

func (s *encodeState) beginObject() *object {
	s.buf.WriteByte('{')
	return &object{s: s}
}

func (o *object) end() {
	o.s.buf.WriteByte('}')
}

// key writes the member name and colon; the caller writes the value.
func (o *object) key(name string) {
	if o.count > 0 {
		o.s.buf.WriteByte(',')
	}
	o.count++
	o.s.writeString(name)
	o.s.buf.WriteByte(':')
}

// str writes an optional string member, omitted when empty.
func (o *object) str(name, v string) {
	if v == "" {
		return
	}
	o.reqStr(name, v)
}

// reqStr writes a required string member, even when empty.
func (o *object) reqStr(name, v string) {
	o.key(name)
	o.s.writeString(v)
}

// flag writes a boolean member only when it is true.
func (o *object) flag(name string, v bool) {
	if !v {
		return
	}
	o.key(name)
	o.s.buf.WriteString("true")
}

// optBool writes a tri-state boolean member when it is set.
func (o *object) optBool(name string, v *bool) {
	if v == nil {
		return
	}
	o.key(name)
	o.s.buf.WriteString(strconv.FormatBool(*v))
}

func (o *object) optInt(name string, v *int) {
	if v == nil {
		return
	}
	o.key(name)
	o.s.buf.WriteString(strconv.Itoa(*v))
}

func (o *object) optFloat(name string, v *float64) error {
	if v == nil {
		return nil
	}
	return o.value(name, *v)
}

// strs writes a string array member, omitted when empty.
func (o *object) strs(name string, v []string) {
	if len(v) == 0 {
		return
	}
	o.key(name)
	o.s.writeStrings(v)
}

// value writes an arbitrary JSON value, omitted when nil. A typed nil
// pointer, map, slice or interface counts as nil.
func (o *object) value(name string, v any) error {
	if isNil(v) {
		return nil
	}
	o.key(name)
	o.s.path.Push(name)
	defer o.s.path.Pop()
	return o.s.writeJSON(v)
}

// nested writes a member whose value is produced by write.
func (o *object) nested(name string, write func() error) error {
	o.key(name)
	o.s.path.Push(name)
	defer o.s.path.Pop()
	return write()
}

func (s *encodeState) writeString(v string) {
	// Marshaling a string cannot fail.
	data, _ := json.Marshal(v)
	s.buf.Write(data)
}

func (s *encodeState) writeStrings(v []string) {
	s.buf.WriteByte('[')
	for i, item := range v {
		if i > 0 {
			s.buf.WriteByte(',')
		}
		s.writeString(item)
	}
	s.buf.WriteByte(']')
}

func (s *encodeState) writeJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return s.errorf(err, "cannot encode value of type %T", v)
	}
	s.buf.Write(data)
	return nil
}

// errorf builds an EncodingError at the current position.
func (s *encodeState) errorf(cause error, format string, args ...any) error {
	return &oaserrors.EncodingError{
		Path:    s.path.String(),
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// missing reports an absent required field below the current position.
func (s *encodeState) missing(field string) error {
	return &oaserrors.EncodingError{
		Path:    s.path.String(),
		Field:   field,
		Message: "required field is missing",
	}
}

func notNil[T any](v *T) bool { return v != nil }

// isNil reports whether v would marshal as JSON null.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func always[V any](V) bool { return true }

// writeEntries flattens m into the open object o: every present entry
// becomes a member named by its raw key, in insertion order.
func writeEntries[V any](o *object, m *keys.Map[V], present func(V) bool, write func(V) error) error {
	for k, v := range m.All() {
		if !present(v) {
			continue
		}
		if err := o.nested(k.String(), func() error { return write(v) }); err != nil {
			return err
		}
	}
	return nil
}

// flatten writes m as one JSON object whose members are m's entries.
func flatten[V any](s *encodeState, m *keys.Map[V], present func(V) bool, write func(V) error) error {
	o := s.beginObject()
	if err := writeEntries(o, m, present, write); err != nil {
		return err
	}
	o.end()
	return nil
}

// keyedField writes an optional dynamic-key member, omitted when m is empty.
func keyedField[V any](o *object, name string, m *keys.Map[V], present func(V) bool, write func(V) error) error {
	if m.Len() == 0 {
		return nil
	}
	return o.nested(name, func() error {
		return flatten(o.s, m, present, write)
	})
}

// sortedField writes an optional plain map member with its keys sorted.
func sortedField[V any](o *object, name string, m map[string]V, present func(V) bool, write func(V) error) error {
	if len(m) == 0 {
		return nil
	}
	return o.nested(name, func() error {
		return writeSorted(o.s, m, present, write)
	})
}

func writeSorted[V any](s *encodeState, m map[string]V, present func(V) bool, write func(V) error) error {
	inner := s.beginObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v := m[k]
		if !present(v) {
			continue
		}
		if err := inner.nested(k, func() error { return write(v) }); err != nil {
			return err
		}
	}
	inner.end()
	return nil
}

// list writes an array member whose nil elements are skipped.
func list[T any](o *object, name string, items []*T, write func(*T) error) error {
	return o.nested(name, func() error {
		s := o.s
		s.buf.WriteByte('[')
		n := 0
		for i, item := range items {
			if item == nil {
				continue
			}
			if n > 0 {
				s.buf.WriteByte(',')
			}
			n++
			s.path.PushIndex(i)
			err := write(item)
			s.path.Pop()
			if err != nil {
				return err
			}
		}
		s.buf.WriteByte(']')
		return nil
	})
}

// optList writes an array member only when items is non-empty.
func optList[T any](o *object, name string, items []*T, write func(*T) error) error {
	if len(items) == 0 {
		return nil
	}
	return list(o, name, items, write)
}
