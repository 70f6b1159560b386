// Package models defines data structures for allocation lookups.
package models

import (
	"strconv"
	"time"
)

// Kind identifies the variant held by a Cell.
type Kind int

const (
	// KindEmpty is a cell with no value.
	KindEmpty Kind = iota
	// KindBool is a boolean cell.
	KindBool
	// KindInt is an integral numeric cell.
	KindInt
	// KindFloat is a fractional numeric cell.
	KindFloat
	// KindDateTime is a numeric cell formatted as a date or time.
	KindDateTime
	// KindText is a string cell.
	KindText
	// KindError is a cell holding a spreadsheet error such as #N/A.
	KindError

	// KindNumber and KindDate only appear as the expected side of a
	// TypeMismatchError; no Cell carries them.
	KindNumber
	KindDate
)

var kindNames = map[Kind]string{
	KindEmpty:    "Empty",
	KindBool:     "Boolean",
	KindInt:      "Integer",
	KindFloat:    "Float",
	KindDateTime: "DateTime",
	KindText:     "Text",
	KindError:    "Error",
	KindNumber:   "Number",
	KindDate:     "Date",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// CellKinds lists every variant a Cell can hold.
var CellKinds = []Kind{KindBool, KindInt, KindFloat, KindDateTime, KindText, KindEmpty, KindError}

// DateTimeLayout is the rendering used for DateTime cells with a time of day.
const DateTimeLayout = "2006-01-02 15:04:05"

// Cell is a single immutable spreadsheet value. The zero value is an empty cell.
type Cell struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	t    time.Time
	s    string
}

// Empty returns an empty cell.
func Empty() Cell { return Cell{kind: KindEmpty} }

// Bool returns a boolean cell.
func Bool(v bool) Cell { return Cell{kind: KindBool, b: v} }

// Int returns an integer cell.
func Int(v int64) Cell { return Cell{kind: KindInt, i: v} }

// Float returns a float cell.
func Float(v float64) Cell { return Cell{kind: KindFloat, f: v} }

// DateTime returns a date/time cell.
func DateTime(v time.Time) Cell { return Cell{kind: KindDateTime, t: v} }

// Text returns a string cell.
func Text(v string) Cell { return Cell{kind: KindText, s: v} }

// Error returns an error cell carrying the spreadsheet error text.
func Error(msg string) Cell { return Cell{kind: KindError, s: msg} }

// Kind returns the variant held by the cell.
func (c Cell) Kind() Kind { return c.kind }

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool { return c.kind == KindEmpty }

// AsText returns the string of a Text cell.
func (c Cell) AsText() (string, error) {
	if c.kind != KindText {
		return "", newTypeMismatch(KindText, c.kind)
	}
	return c.s, nil
}

// AsInteger returns the value of a numeric cell. Floats are truncated toward zero.
func (c Cell) AsInteger() (int64, error) {
	switch c.kind {
	case KindInt:
		return c.i, nil
	case KindFloat:
		return int64(c.f), nil
	default:
		return 0, newTypeMismatch(KindNumber, c.kind)
	}
}

// AsDate returns the calendar date of a DateTime cell, dropping the time of day.
func (c Cell) AsDate() (Date, error) {
	if c.kind != KindDateTime {
		return Date{}, newTypeMismatch(KindDate, c.kind)
	}
	return DateOf(c.t), nil
}

// DisplayString renders any cell as text. It never fails.
func (c Cell) DisplayString() string {
	switch c.kind {
	case KindBool:
		return strconv.FormatBool(c.b)
	case KindInt:
		return strconv.FormatInt(c.i, 10)
	case KindFloat:
		return strconv.FormatFloat(c.f, 'f', -1, 64)
	case KindDateTime:
		h, m, s := c.t.Clock()
		if h == 0 && m == 0 && s == 0 && c.t.Nanosecond() == 0 {
			return DateOf(c.t).String()
		}
		return c.t.Format(DateTimeLayout)
	case KindText:
		return c.s
	case KindEmpty:
		return ""
	case KindError:
		return "#ERROR: " + c.s
	}
	panic("models: unhandled cell kind " + c.kind.String())
}

func (c Cell) String() string {
	if c.kind == KindText {
		return strconv.Quote(c.s)
	}
	return c.DisplayString()
}
