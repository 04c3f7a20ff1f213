package dyn

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the discriminant of a Value.
type Kind int8

// The kinds a Value can hold.
const (
	KindNone Kind = iota
	KindBool
	KindUint
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
	KindCsvArray
	KindCsvObject
	numKinds
)

var kindStrings = [numKinds]string{
	"None", "Bool", "Uint", "Int", "Float", "String",
	"Array", "Object", "CsvArray", "CsvObject",
}

// String returns the name of the kind, or "<unknown>" for an out-of-range value.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "<unknown>"
	}
	return kindStrings[k]
}

// Value is the tagged-sum result of parsing JSON or CSV. The zero Value is
// a None.
type Value struct {
	kind Kind
	b    bool
	u    uint64
	i    int64
	f    float64
	s    string
	arr  []Value
	obj  map[string]Value
	ca   [][]Value
	co   []map[string]Value
}

// None is the canonical null/missing Value.
var None = Value{kind: KindNone}

// NewBool wraps a bool in a Value.
func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

// NewUint wraps a non-negative integer in a Value.
func NewUint(u uint64) Value { return Value{kind: KindUint, u: u} }

// NewInt wraps a strictly negative integer in a Value. Passing a
// non-negative number is a caller error; parsers never do this.
func NewInt(i int64) Value { return Value{kind: KindInt, i: i} }

// NewFloat wraps a float64 in a Value.
func NewFloat(f float64) Value { return Value{kind: KindFloat, f: f} }

// NewString wraps a string in a Value.
func NewString(s string) Value { return Value{kind: KindString, s: s} }

// NewArray wraps a JSON array in a Value.
func NewArray(vs []Value) Value { return Value{kind: KindArray, arr: vs} }

// NewObject wraps a JSON object in a Value.
func NewObject(m map[string]Value) Value { return Value{kind: KindObject, obj: m} }

// NewCsvArray wraps a headless CSV result in a Value.
func NewCsvArray(rows [][]Value) Value { return Value{kind: KindCsvArray, ca: rows} }

// NewCsvObject wraps a headed CSV result in a Value.
func NewCsvObject(rows []map[string]Value) Value { return Value{kind: KindCsvObject, co: rows} }

// Kind returns the variant this Value holds.
func (v Value) Kind() Kind { return v.kind }

// --- predicates ---

func (v Value) IsNone() bool      { return v.kind == KindNone }
func (v Value) IsNull() bool      { return v.IsNone() }
func (v Value) IsBool() bool      { return v.kind == KindBool }
func (v Value) IsUint() bool      { return v.kind == KindUint }
func (v Value) IsInt() bool       { return v.kind == KindInt }
func (v Value) IsFloat() bool     { return v.kind == KindFloat }
func (v Value) IsString() bool    { return v.kind == KindString }
func (v Value) IsArray() bool     { return v.kind == KindArray }
func (v Value) IsObject() bool    { return v.kind == KindObject }
func (v Value) IsCsvArray() bool  { return v.kind == KindCsvArray }
func (v Value) IsCsvObject() bool { return v.kind == KindCsvObject }

// IsNumber is true for Uint, Int, or Float.
func (v Value) IsNumber() bool {
	return v.kind == KindUint || v.kind == KindInt || v.kind == KindFloat
}

// IsTrue is true only for Bool(true).
func (v Value) IsTrue() bool { return v.kind == KindBool && v.b }

// IsFalse is true only for Bool(false).
func (v Value) IsFalse() bool { return v.kind == KindBool && !v.b }

// --- strict (As*) accessors: exact-kind only, no coercion ---

func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

func (v Value) AsUint() (uint64, bool) {
	if v.kind != KindUint {
		return 0, false
	}
	return v.u, true
}

func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

func (v Value) AsObject() (map[string]Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

func (v Value) AsCsvArray() ([][]Value, bool) {
	if v.kind != KindCsvArray {
		return nil, false
	}
	return v.ca, true
}

func (v Value) AsCsvObject() ([]map[string]Value, bool) {
	if v.kind != KindCsvObject {
		return nil, false
	}
	return v.co, true
}

// --- coercing (To*) accessors ---

// ToNone reports whether this Value is None.
func (v Value) ToNone() bool { return v.kind == KindNone }

// ToBool coerces to bool. Only Bool coerces.
func (v Value) ToBool() (bool, bool) {
	return v.AsBool()
}

// ToUint coerces to uint64: Uint passes through, Float coerces if integral,
// non-negative, and in range, String re-parses as an unsigned integer.
func (v Value) ToUint() (uint64, bool) {
	switch v.kind {
	case KindUint:
		return v.u, true
	case KindFloat:
		if v.f < 0 || v.f != math.Trunc(v.f) || v.f >= math.MaxUint64 {
			return 0, false
		}
		return uint64(v.f), true
	case KindString:
		u, err := strconv.ParseUint(v.s, 10, 64)
		if err != nil {
			return 0, false
		}
		return u, true
	default:
		return 0, false
	}
}

// ToInt coerces to int64: Int passes through, Uint coerces if it fits,
// Float coerces if integral and in range, String re-parses.
func (v Value) ToInt() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindUint:
		if v.u > math.MaxInt64 {
			return 0, false
		}
		return int64(v.u), true
	case KindFloat:
		if v.f != math.Trunc(v.f) || v.f < math.MinInt64 || v.f >= math.MaxInt64 {
			return 0, false
		}
		return int64(v.f), true
	case KindString:
		i, err := strconv.ParseInt(v.s, 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// ToFloat coerces to float64: any numeric or number-shaped string.
func (v Value) ToFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindUint:
		return float64(v.u), true
	case KindInt:
		return float64(v.i), true
	case KindString:
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// ToString renders a textual form for every variant. It always succeeds.
func (v Value) ToString() (string, bool) {
	return v.render(false), true
}

// String implements fmt.Stringer with a canonical debug display. It is not
// a JSON or CSV serializer.
func (v Value) String() string {
	return v.render(false)
}

// render produces the display form. When embedded is true, strings are
// quoted, matching how they appear nested inside a container's display.
func (v Value) render(embedded bool) string {
	switch v.kind {
	case KindNone:
		return "null"
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		if embedded {
			return strconv.Quote(v.s)
		}
		return v.s
	case KindArray:
		var b strings.Builder
		b.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.render(true))
		}
		b.WriteByte(']')
		return b.String()
	case KindObject:
		var b strings.Builder
		b.WriteByte('{')
		i := 0
		for k, e := range v.obj {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(k))
			b.WriteString(": ")
			b.WriteString(e.render(true))
			i++
		}
		b.WriteByte('}')
		return b.String()
	case KindCsvArray:
		var b strings.Builder
		b.WriteByte('[')
		for i, row := range v.ca {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('[')
			for j, e := range row {
				if j > 0 {
					b.WriteString(", ")
				}
				b.WriteString(e.render(true))
			}
			b.WriteByte(']')
		}
		b.WriteByte(']')
		return b.String()
	case KindCsvObject:
		var b strings.Builder
		b.WriteByte('[')
		for i, rec := range v.co {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('{')
			j := 0
			for k, e := range rec {
				if j > 0 {
					b.WriteString(", ")
				}
				b.WriteString(strconv.Quote(k))
				b.WriteString(": ")
				b.WriteString(e.render(true))
				j++
			}
			b.WriteByte('}')
		}
		b.WriteByte(']')
		return b.String()
	}
	return "<unknown>"
}

// Equal reports deep structural equality between two Values. Object and
// CsvObject comparisons are order-independent in their key iteration, as
// the data model does not define an order for them.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNone:
		return true
	case KindBool:
		return v.b == o.b
	case KindUint:
		return v.u == o.u
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	case KindString:
		return v.s == o.s
	case KindArray:
		return equalSlices(v.arr, o.arr)
	case KindObject:
		return equalMaps(v.obj, o.obj)
	case KindCsvArray:
		if len(v.ca) != len(o.ca) {
			return false
		}
		for i := range v.ca {
			if !equalSlices(v.ca[i], o.ca[i]) {
				return false
			}
		}
		return true
	case KindCsvObject:
		if len(v.co) != len(o.co) {
			return false
		}
		for i := range v.co {
			if !equalMaps(v.co[i], o.co[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func equalSlices(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func equalMaps(a, b map[string]Value) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !av.Equal(bv) {
			return false
		}
	}
	return true
}
