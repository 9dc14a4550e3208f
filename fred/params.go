package fred

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// WireDateLayout is the date representation the service expects.
const WireDateLayout = "2006-01-02"

// Param is a single query parameter before assembly. An empty Value means
// the parameter is absent and will not be sent.
type Param struct {
	Name  string
	Value string
}

// P is shorthand for building a Param.
func P(name, value string) Param {
	return Param{Name: name, Value: value}
}

// Params is an ordered query parameter mapping with unique keys.
type Params struct {
	keys   []string
	values map[string]string
}

// Assemble builds a Params from the given tuples, dropping absent values.
// When a name repeats, the later value wins and keeps the earlier position.
func Assemble(params ...Param) *Params {
	p := &Params{values: make(map[string]string, len(params))}
	for _, param := range params {
		if param.Name == "" || param.Value == "" {
			continue
		}
		p.Set(param.Name, param.Value)
	}
	return p
}

// Set stores value under name, overwriting any previous value.
func (p *Params) Set(name, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[name]; !ok {
		p.keys = append(p.keys, name)
	}
	p.values[name] = value
}

// Get returns the value for name, or "" when it is not present.
func (p *Params) Get(name string) string {
	if p == nil {
		return ""
	}
	return p.values[name]
}

// Has reports whether name is present.
func (p *Params) Has(name string) bool {
	if p == nil {
		return false
	}
	_, ok := p.values[name]
	return ok
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns parameter names in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Clone returns an independent copy of p. A nil receiver yields an empty mapping.
func (p *Params) Clone() *Params {
	c := &Params{values: make(map[string]string, p.Len())}
	if p == nil {
		return c
	}
	for _, k := range p.keys {
		c.Set(k, p.values[k])
	}
	return c
}

// Encode renders the mapping as a URL-encoded query string in insertion order.
func (p *Params) Encode() string {
	if p.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	for i, k := range p.keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.values[k]))
	}
	return sb.String()
}

// DateToWire renders t as YYYY-MM-DD using its UTC calendar fields.
// A nil date is absent and yields "".
func DateToWire(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(WireDateLayout)
}

// Date returns a pointer to midnight UTC on the given day, for option fields.
func Date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func dateParam(name string, t *time.Time) Param {
	return Param{Name: name, Value: DateToWire(t)}
}

// intParam treats zero as absent so the service default applies.
func intParam(name string, v int) Param {
	if v == 0 {
		return Param{Name: name}
	}
	return Param{Name: name, Value: strconv.Itoa(v)}
}

func boolParam(name string, v bool) Param {
	return Param{Name: name, Value: strconv.FormatBool(v)}
}

// listParam joins values with the semicolon separator used for tag lists.
func listParam(name string, values []string) Param {
	return Param{Name: name, Value: strings.Join(values, ";")}
}

func enumParam(name string, v enumValue) Param {
	return Param{Name: name, Value: v.String()}
}
