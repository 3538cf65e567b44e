package record

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind discriminates the two canonical answer shapes
type ValueKind string

const (
	KindScalar ValueKind = "scalar"
	KindMulti  ValueKind = "multi"
)

// Value is the canonical representation of one answer. Upstream sources may
// deliver a bare string, a single option object or a list of options; the
// import boundary normalizes all of them into this tagged shape so the engines
// never branch on shape again.
type Value struct {
	kind   ValueKind
	scalar string
	list   []string
}

// Scalar builds a single-valued answer
func Scalar(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// Multi builds a multi-select answer. The input slice is copied.
func Multi(options []string) Value {
	list := make([]string, len(options))
	copy(list, options)
	return Value{kind: KindMulti, list: list}
}

// Kind returns the shape discriminator
func (v Value) Kind() ValueKind {
	if v.kind == "" {
		return KindScalar
	}
	return v.kind
}

// IsEmpty reports whether the answer carries no data
func (v Value) IsEmpty() bool {
	if v.Kind() == KindMulti {
		return len(v.list) == 0
	}
	return strings.TrimSpace(v.scalar) == ""
}

// String returns the scalar text, or the options joined by "، " for
// multi-select answers (the display convention of the source forms)
func (v Value) String() string {
	if v.Kind() == KindMulti {
		return strings.Join(v.list, "، ")
	}
	return v.scalar
}

// List returns the answer as a list of options. Scalar answers yield a
// single-element list; empty answers yield nil. The result is a copy.
func (v Value) List() []string {
	if v.Kind() == KindMulti {
		if len(v.list) == 0 {
			return nil
		}
		out := make([]string, len(v.list))
		copy(out, v.list)
		return out
	}
	if strings.TrimSpace(v.scalar) == "" {
		return nil
	}
	return []string{v.scalar}
}

// Number parses the scalar text as a finite number
func (v Value) Number() (float64, bool) {
	if v.Kind() != KindScalar {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(v.scalar), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// Contains reports whether the answer includes the given option.
// Scalar answers match by equality, multi-select by membership.
func (v Value) Contains(option string) bool {
	if v.Kind() == KindMulti {
		for _, o := range v.list {
			if o == option {
				return true
			}
		}
		return false
	}
	return v.scalar == option
}

// Intersects reports whether any accepted option appears in the answer
func (v Value) Intersects(accepted []string) bool {
	for _, a := range accepted {
		if v.Contains(a) {
			return true
		}
	}
	return false
}

// NormalizeValue coerces any shape an import step may deliver into a Value.
// Supported shapes: string, fmt.Stringer, numbers, []string and []interface{}
// of the same. Anything else falls back to fmt.Sprint.
func NormalizeValue(raw interface{}) Value {
	switch t := raw.(type) {
	case nil:
		return Scalar("")
	case string:
		return Scalar(strings.TrimSpace(t))
	case []string:
		return Multi(t)
	case []interface{}:
		options := make([]string, 0, len(t))
		for _, item := range t {
			s := strings.TrimSpace(fmt.Sprint(item))
			if s != "" {
				options = append(options, s)
			}
		}
		return Multi(options)
	case float64:
		return Scalar(strconv.FormatFloat(t, 'f', -1, 64))
	case int:
		return Scalar(strconv.Itoa(t))
	default:
		return Scalar(strings.TrimSpace(fmt.Sprint(t)))
	}
}
