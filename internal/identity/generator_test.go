package identity

import (
	"regexp"
	"testing"
	"time"

	"github.com/zarlcorp/zcurp/internal/curp"
)

// codeRe describes a well-formed code as produced by the encoder.
var codeRe = regexp.MustCompile(`^[A-ZÑ]{4}\d{6}[HM][A-Z]{2}[A-ZÑ]{3}[0A]0$`)

func TestGenerate(t *testing.T) {
	g := New()
	r := g.Generate()

	tests := []struct {
		name  string
		check func() bool
	}{
		{"ID length", func() bool { return len(r.ID) == 8 }},
		{"ID is hex", func() bool { return regexp.MustCompile(`^[0-9a-f]{8}$`).MatchString(r.ID) }},
		{"given names non-empty", func() bool { return r.Data.GivenNames != "" }},
		{"paternal surname non-empty", func() bool { return r.Data.PaternalSurname != "" }},
		{"maternal surname non-empty", func() bool { return r.Data.MaternalSurname != "" }},
		{"sex is H or M", func() bool { return r.Data.Sex == curp.Male || r.Data.Sex == curp.Female }},
		{"birth date layout", func() bool { return regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`).MatchString(r.Data.BirthDate) }},
		{"state is known", func() bool { return StateName(r.Data.BirthState) != "" }},
		{"code matches encoder", func() bool { return r.Code == curp.Encode(r.Data) }},
		{"CreatedAt non-zero", func() bool { return !r.CreatedAt.IsZero() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check() {
				t.Errorf("check failed for record: %+v", r)
			}
		})
	}
}

func TestGenerateCodesWellFormed(t *testing.T) {
	g := New()
	for range 200 {
		r := g.Generate()
		if !codeRe.MatchString(r.Code) {
			t.Errorf("code %q for %+v is not well formed", r.Code, r.Data)
		}
	}
}

func TestGenerateRandomness(t *testing.T) {
	g := New()
	a := g.Generate()
	b := g.Generate()

	// IDs should always differ (8 hex chars = 32 bits of randomness)
	if a.ID == b.ID {
		t.Errorf("consecutive IDs should differ: got %q twice", a.ID)
	}
}

func TestNameFolded(t *testing.T) {
	g := New()
	foldedRe := regexp.MustCompile(`^[A-Z ]+$`)
	for range 100 {
		given, paternal, maternal := g.Name(g.Sex())
		for _, n := range []string{given, paternal, maternal} {
			if !foldedRe.MatchString(n) {
				t.Errorf("name %q should be folded to plain uppercase", n)
			}
		}
	}
}

func TestBirthDateRange(t *testing.T) {
	g := New()
	now := time.Now()
	earliest := now.AddDate(-maxAge-1, 0, 0) // slightly wider to avoid edge cases
	latest := now.AddDate(-minAge, 0, 1)

	for range 100 {
		d := g.BirthDate()
		if d.Before(earliest) || d.After(latest) {
			t.Errorf("birth date %s out of range", d.Format(dateLayout))
		}
	}
}

func TestNewRecord(t *testing.T) {
	d := curp.PersonalData{
		GivenNames:      "RAUL EDUARDO",
		PaternalSurname: "GONZALEZ",
		MaternalSurname: "ARGOTE",
		Sex:             curp.Male,
		BirthDate:       "1988-11-03",
		BirthState:      "DF",
	}

	r := NewRecord(d)
	if r.Code != "GOAR881103HDFNRL00" {
		t.Errorf("code = %s, want GOAR881103HDFNRL00", r.Code)
	}
	if r.FullName() != "RAUL EDUARDO GONZALEZ ARGOTE" {
		t.Errorf("full name = %q", r.FullName())
	}
}

func TestFullNameSkipsEmpty(t *testing.T) {
	r := Record{Data: curp.PersonalData{GivenNames: "ANA", PaternalSurname: "LUNA"}}
	if got := r.FullName(); got != "ANA LUNA" {
		t.Errorf("FullName() = %q, want %q", got, "ANA LUNA")
	}
}

func TestStateName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"DF", "Ciudad de México"},
		{"NE", "Nacido en el extranjero"},
		{"JC", "Jalisco"},
		{"XX", ""},
		{"df", ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := StateName(tt.code); got != tt.want {
				t.Errorf("StateName(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestStateCodes(t *testing.T) {
	codes := StateCodes()
	if len(codes) != 33 {
		t.Fatalf("got %d state codes, want 33", len(codes))
	}
	seen := make(map[string]bool)
	for _, c := range codes {
		if len(c) != 2 {
			t.Errorf("state code %q is not two letters", c)
		}
		if seen[c] {
			t.Errorf("duplicate state code %q", c)
		}
		seen[c] = true
	}
}
