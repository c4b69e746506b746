package cpu

const (
	ALPHA_MIN = 10 // Letter value of 'a'.
	ALPHA_MAX = 35 // Letter value of 'z'.
)

// alpha returns the base-36 value of a letter, 'a' (or 'A') being 10.
func alpha(c rune) (value int, err error) {
	switch {
	case c >= 'a' && c <= 'z':
		value = int(c-'a') + ALPHA_MIN
	case c >= 'A' && c <= 'Z':
		value = int(c-'A') + ALPHA_MIN
	default:
		err = ErrCharacterInvalid(c)
	}
	return
}

// letter converts a base-36 value back to a letter, in the case of like.
func letter(value int, like rune) Value {
	base := 'a'
	if like >= 'A' && like <= 'Z' {
		base = 'A'
	}
	return Character(base + rune(value-ALPHA_MIN))
}

// toLetter range checks a base-36 value and converts it to a letter in
// the case of like.
func toLetter(value int, like rune, a Value, op string, b Value) (result Value, err error) {
	switch {
	case value > ALPHA_MAX:
		err = ErrOverflow{A: a, Op: op, B: b}
	case value < ALPHA_MIN:
		err = ErrUnderflow{A: a, Op: op, B: b}
	default:
		result = letter(value, like)
	}

	return
}

// shiftLetter moves character c by n letters.
func shiftLetter(c rune, n int, a Value, op string, b Value) (result Value, err error) {
	value, err := alpha(c)
	if err != nil {
		return
	}

	return toLetter(value+n, c, a, op, b)
}

// doAdd returns a + b.
//
//	number    + number    = number
//	number    + character = character
//	character + number    = character
//	character + character is an error
func doAdd(a, b Value) (result Value, err error) {
	switch {
	case a.IsNumber() && b.IsNumber():
		result = Number(a.Number + b.Number)
	case a.IsNumber() && b.IsCharacter():
		result, err = shiftLetter(b.Character, a.Number, a, "+", b)
	case a.IsCharacter() && b.IsNumber():
		result, err = shiftLetter(a.Character, b.Number, a, "+", b)
	default:
		err = ErrSumOfCharacters
	}

	return
}

// doSub returns a - b, where a is the register and b the memory operand.
//
//	number    - number    = number
//	character - character = number, the distance between the letters
//	number    - character = character, alpha(b) letters below a
//	character - number    is an error
func doSub(a, b Value) (result Value, err error) {
	switch {
	case a.IsNumber() && b.IsNumber():
		result = Number(a.Number - b.Number)
	case a.IsCharacter() && b.IsCharacter():
		var va, vb int
		va, err = alpha(a.Character)
		if err != nil {
			return
		}
		vb, err = alpha(b.Character)
		if err != nil {
			return
		}
		result = Number(va - vb)
	case a.IsNumber() && b.IsCharacter():
		var vb int
		vb, err = alpha(b.Character)
		if err != nil {
			return
		}
		result, err = toLetter(a.Number-vb, b.Character, a, "-", b)
	default:
		err = ErrNumberMinusCharacter
	}

	return
}
