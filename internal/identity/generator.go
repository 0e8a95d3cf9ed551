package identity

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"time"

	"github.com/zarlcorp/zcurp/internal/curp"
	"github.com/zarlcorp/zcurp/internal/names"
)

const (
	minAge = 18
	maxAge = 90

	dateLayout = "2006-01-02"
)

// Generator produces random fictional personas using crypto/rand.
type Generator struct{}

// New creates a generator.
func New() *Generator {
	return &Generator{}
}

// Generate produces a complete random persona with its code.
func (g *Generator) Generate() Record {
	sex := g.Sex()
	given, paternal, maternal := g.Name(sex)
	return NewRecord(curp.PersonalData{
		GivenNames:      given,
		PaternalSurname: paternal,
		MaternalSurname: maternal,
		Sex:             sex,
		BirthDate:       g.BirthDate().Format(dateLayout),
		BirthState:      pickState().code,
	})
}

// Sex picks male or female.
func (g *Generator) Sex() curp.Sex {
	if randIntn(2) == 0 {
		return curp.Male
	}
	return curp.Female
}

// Name returns a folded given name and two surnames suited to sex.
func (g *Generator) Name(sex curp.Sex) (given, paternal, maternal string) {
	pool := maleNames
	if sex == curp.Female {
		pool = femaleNames
	}
	return names.Fold(pick(pool)), names.Fold(pick(surnames)), names.Fold(pick(surnames))
}

// BirthDate returns a date between minAge and maxAge years ago.
func (g *Generator) BirthDate() time.Time {
	now := time.Now()
	age := minAge + randIntn(maxAge-minAge+1)
	// subtract years, then randomize day within that year
	base := now.AddDate(-age, 0, 0)
	dayOffset := randIntn(365)
	return base.AddDate(0, 0, -dayOffset).Truncate(24 * time.Hour)
}

// StateName returns the jurisdiction name for a state code, or "" when the
// code is not in the catalog.
func StateName(code string) string {
	for _, s := range states {
		if s.code == code {
			return s.name
		}
	}
	return ""
}

// StateCodes returns every known state code in catalog order.
func StateCodes() []string {
	codes := make([]string, len(states))
	for i, s := range states {
		codes[i] = s.code
	}
	return codes
}

// hexID generates an 8-character hex string.
func hexID() string {
	b := make([]byte, 4)
	mustRead(b)
	return hex.EncodeToString(b)
}

func pickState() state {
	return states[randIntn(len(states))]
}

// pick returns a random element from a string slice.
func pick(s []string) string {
	return s[randIntn(len(s))]
}

// randIntn returns a cryptographically random int in [0, n).
func randIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}

// mustRead fills b with cryptographically random bytes.
func mustRead(b []byte) {
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand: " + err.Error())
	}
}
