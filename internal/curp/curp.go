// Package curp computes the Clave Única de Registro de Población, the
// 18-character Mexican population registry code, from a person's name,
// sex, birth date and birth state.
//
// Encode is total: missing or malformed fields degrade to filler
// characters ('X' for letters, '0' for digits) instead of failing.
package curp

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Length is the size of a well-formed code.
const Length = 18

const (
	letterFiller = 'X'
	digitFiller  = '0'
	vowels       = "AEIOUaeiou"

	// homoclave stands in for the disambiguation digit, which is assigned
	// by the registry and cannot be derived from personal data.
	homoclave = '0'
)

// Sex is the single-letter sex marker at position 11.
type Sex rune

const (
	Male   Sex = 'H' // hombre
	Female Sex = 'M' // mujer
)

func (s Sex) String() string {
	return string(rune(s))
}

// PersonalData holds the inputs of the code. Values are used as given;
// nothing is validated beyond what the layout needs.
type PersonalData struct {
	GivenNames      string `json:"given_names"`
	PaternalSurname string `json:"paternal_surname"`
	MaternalSurname string `json:"maternal_surname"`
	Sex             Sex    `json:"sex"`
	BirthDate       string `json:"birth_date"` // YYYY-MM-DD
	BirthState      string `json:"birth_state"`
}

// Encode builds the code for d. The result is uppercase and has the
// offensive-word filter applied.
func Encode(d PersonalData) string {
	var b strings.Builder
	b.Grow(Length)

	b.WriteRune(initial(d.PaternalSurname))
	b.WriteRune(internalVowel(d.PaternalSurname))
	b.WriteRune(initial(d.MaternalSurname))
	b.WriteRune(initial(d.GivenNames))

	parts := strings.Split(d.BirthDate, "-")
	if len(parts) == 3 {
		b.WriteString(yearDigits(parts[0]))
		b.WriteString(parts[1])
		b.WriteString(parts[2])
	} else {
		b.WriteString("000000")
	}

	b.WriteRune(rune(d.Sex))
	b.WriteString(strings.ToUpper(d.BirthState))

	b.WriteRune(internalConsonant(d.PaternalSurname))
	b.WriteRune(internalConsonant(d.MaternalSurname))
	b.WriteRune(internalConsonant(d.GivenNames))

	b.WriteRune(centuryMarker(parts[0]))
	b.WriteRune(homoclave)

	return FilterOffensive(strings.ToUpper(b.String()))
}

// initial returns the first rune of s, or the letter filler when s is empty.
func initial(s string) rune {
	if s == "" {
		return letterFiller
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// internalVowel returns the first vowel after the first rune of s.
func internalVowel(s string) rune {
	return scanInternal(s, isVowel)
}

// internalConsonant returns the first letter after the first rune of s
// that is not a vowel.
func internalConsonant(s string) rune {
	return scanInternal(s, func(r rune) bool {
		return !isVowel(r) && unicode.IsLetter(r)
	})
}

// scanInternal looks for the first rune matching fn, skipping the first
// rune of s. It never revisits the initial.
func scanInternal(s string, fn func(rune) bool) rune {
	first := true
	for _, r := range s {
		if first {
			first = false
			continue
		}
		if fn(r) {
			return r
		}
	}
	return letterFiller
}

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

// yearDigits returns the runes at index 2 and 3 of year, padding with the
// digit filler when the segment is too short.
func yearDigits(year string) string {
	out := []rune{digitFiller, digitFiller}
	i := 0
	for _, r := range year {
		switch i {
		case 2:
			out[0] = r
		case 3:
			out[1] = r
		}
		i++
		if i > 3 {
			break
		}
	}
	return string(out)
}

// centuryMarker returns '0' for births before 2000 and 'A' from 2000 on.
// An unparseable year counts as 1900.
func centuryMarker(year string) rune {
	y, err := strconv.Atoi(year)
	if err != nil {
		y = 1900
	}
	if y < 2000 {
		return '0'
	}
	return 'A'
}
