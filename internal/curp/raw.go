package curp

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrNilRecord is returned when no record is supplied at all.
	ErrNilRecord = errors.New("nil personal data record")

	// ErrInvalidEncoding is returned when a text field is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid utf-8")
)

// FieldError names the field that failed validation.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// RawPersonalData is personal data as it arrives from outside the process:
// untrusted byte buffers that may not hold valid text.
type RawPersonalData struct {
	GivenNames      []byte
	PaternalSurname []byte
	MaternalSurname []byte
	Sex             byte
	BirthDate       []byte
	BirthState      []byte
}

// Decode validates every text field of raw and copies it into an owned
// PersonalData. The first invalid field stops decoding.
func Decode(raw *RawPersonalData) (PersonalData, error) {
	if raw == nil {
		return PersonalData{}, ErrNilRecord
	}

	var d PersonalData
	fields := []struct {
		name string
		src  []byte
		dst  *string
	}{
		{"given_names", raw.GivenNames, &d.GivenNames},
		{"paternal_surname", raw.PaternalSurname, &d.PaternalSurname},
		{"maternal_surname", raw.MaternalSurname, &d.MaternalSurname},
		{"birth_date", raw.BirthDate, &d.BirthDate},
		{"birth_state", raw.BirthState, &d.BirthState},
	}

	for _, f := range fields {
		if !utf8.Valid(f.src) {
			return PersonalData{}, &FieldError{Field: f.name, Err: ErrInvalidEncoding}
		}
		*f.dst = string(f.src)
	}

	// the sex marker is a single byte and is passed through uninterpreted
	d.Sex = Sex(raw.Sex)
	return d, nil
}

// EncodeRaw decodes raw and returns its code.
func EncodeRaw(raw *RawPersonalData) (string, error) {
	d, err := Decode(raw)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	return Encode(d), nil
}
