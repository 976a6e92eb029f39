package spec

type valueKind int

const (
	kindAbsent valueKind = iota
	kindString
	kindBool
)

// Value is a rendering context value: a string, a bool or an absent marker.
// Consumers must treat an absent value and a missing key identically.
type Value struct {
	kind valueKind
	str  string
	b    bool
}

// StringValue returns a string context value.
func StringValue(v string) Value {
	return Value{kind: kindString, str: v}
}

// BoolValue returns a boolean context value.
func BoolValue(v bool) Value {
	return Value{kind: kindBool, b: v}
}

// AbsentValue returns the absent marker value.
func AbsentValue() Value {
	return Value{kind: kindAbsent}
}

// IsAbsent reports whether the value is absent.
func (v Value) IsAbsent() bool {
	return v.kind == kindAbsent
}

// Interface returns the underlying string or bool, or nil when absent.
func (v Value) Interface() interface{} {
	switch v.kind {
	case kindString:
		return v.str
	case kindBool:
		return v.b
	}
	return nil
}

// Context is an ordered string-keyed mapping of rendering values. It is
// built fresh for every instantiation run and never persisted.
type Context struct {
	keys   []string
	values map[string]Value
}

// NewContext creates an empty rendering context.
func NewContext() *Context {
	return &Context{values: make(map[string]Value)}
}

// Set sets key to value. Later Set calls win, so layering built-ins, then
// substitutions, then parameter values gives parameters precedence.
// Setting an absent value removes the key: downstream evaluators see no
// difference between the two, so the key is simply not kept.
func (c *Context) Set(key string, value Value) {
	if value.IsAbsent() {
		if _, found := c.values[key]; found {
			delete(c.values, key)
			for i, k := range c.keys {
				if k == key {
					c.keys = append(c.keys[:i], c.keys[i+1:]...)
					break
				}
			}
		}
		return
	}
	if _, found := c.values[key]; !found {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Get returns the value stored for key, or an absent value.
func (c *Context) Get(key string) Value {
	if v, found := c.values[key]; found {
		return v
	}
	return AbsentValue()
}

// Keys returns context keys in insertion order.
func (c *Context) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Data returns the context as a plain map for template engines.
func (c *Context) Data() map[string]interface{} {
	data := make(map[string]interface{}, len(c.keys))
	for _, key := range c.keys {
		data[key] = c.values[key].Interface()
	}
	return data
}
