package cpu

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// ValueKind is the type of a Value.
type ValueKind int

//go:generate go tool stringer -linecomment -type=ValueKind
const (
	VALUE_NONE      = ValueKind(0) // none
	VALUE_NUMBER    = ValueKind(1) // number
	VALUE_CHARACTER = ValueKind(2) // character
)

// Value is a number or a character held by the register, a memory cell,
// or a tape. The zero Value holds nothing.
type Value struct {
	Kind      ValueKind
	Number    int
	Character rune
}

// Number makes a numeric Value.
func Number(n int) Value {
	return Value{Kind: VALUE_NUMBER, Number: n}
}

// Character makes a character Value.
func Character(c rune) Value {
	return Value{Kind: VALUE_CHARACTER, Character: c}
}

// Empty is true if the Value holds nothing.
func (v Value) Empty() bool {
	return v.Kind == VALUE_NONE
}

// IsNumber is true if the Value is a number.
func (v Value) IsNumber() bool {
	return v.Kind == VALUE_NUMBER
}

// IsCharacter is true if the Value is a character.
func (v Value) IsCharacter() bool {
	return v.Kind == VALUE_CHARACTER
}

func (v Value) String() string {
	switch v.Kind {
	case VALUE_NUMBER:
		return fmt.Sprintf("%d", v.Number)
	case VALUE_CHARACTER:
		return fmt.Sprintf("'%c'", v.Character)
	}
	return "-"
}

// MarshalJSON encodes numbers as JSON numbers, characters as one character
// strings, and the empty value as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case VALUE_NUMBER:
		return json.Marshal(v.Number)
	case VALUE_CHARACTER:
		return json.Marshal(string(v.Character))
	}
	return []byte("null"), nil
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) (err error) {
	var raw any
	err = json.Unmarshal(data, &raw)
	if err != nil {
		return
	}

	*v, err = ValueOf(raw)
	return
}

// ValueOf converts a decoded JSON, TOML or YAML scalar to a Value.
// nil and the empty string are the empty Value.
func ValueOf(raw any) (v Value, err error) {
	switch n := raw.(type) {
	case nil:
	case int:
		v = Number(n)
	case int64:
		v = Number(int(n))
	case uint64:
		v = Number(int(n))
	case float64:
		if n != float64(int(n)) {
			err = ErrParseNumber(fmt.Sprintf("%v", n))
			return
		}
		v = Number(int(n))
	case string:
		if len(n) == 0 {
			return
		}
		c, size := utf8.DecodeRuneInString(n)
		if size != len(n) || c == utf8.RuneError {
			err = ErrParseValue(n)
			return
		}
		v = Character(c)
	default:
		err = ErrParseValue(fmt.Sprintf("%v", raw))
	}

	return
}
