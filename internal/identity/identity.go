// Package identity holds CURP records and generates fictional personas.
// All generation uses crypto/rand, no math/rand.
package identity

import (
	"strings"
	"time"

	"github.com/zarlcorp/zcurp/internal/curp"
)

// Record is personal data together with the code computed from it.
type Record struct {
	ID        string            `json:"id"`
	Data      curp.PersonalData `json:"data"`
	Code      string            `json:"code"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewRecord encodes d and wraps it in a record with a fresh ID.
func NewRecord(d curp.PersonalData) Record {
	return Record{
		ID:        hexID(),
		Data:      d,
		Code:      curp.Encode(d),
		CreatedAt: time.Now(),
	}
}

// FullName returns given names followed by both surnames.
func (r Record) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{r.Data.GivenNames, r.Data.PaternalSurname, r.Data.MaternalSurname} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
