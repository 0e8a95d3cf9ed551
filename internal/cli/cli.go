// Package cli implements zcurp's command-line subcommands.
package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zcurp/internal/curp"
	"github.com/zarlcorp/zcurp/internal/identity"
	"github.com/zarlcorp/zcurp/internal/names"
	"github.com/zarlcorp/zcurp/internal/store"
	"golang.org/x/term"
)

// DataDir returns the data directory for zcurp. ZCURP_DATA_DIR wins over
// XDG_DATA_HOME.
func DataDir() string {
	if d := os.Getenv("ZCURP_DATA_DIR"); d != "" {
		return d
	}
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d + "/zcurp"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zcurp"
	}
	return home + "/.local/share/zcurp"
}

// ReadPassword prompts for a password on w and reads it without echo.
func ReadPassword(prompt string, w io.Writer) ([]byte, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return b, nil
}

// ReadNewPassword prompts for a new password with confirmation.
func ReadNewPassword(w io.Writer) ([]byte, error) {
	pass, err := ReadPassword("master password: ", w)
	if err != nil {
		return nil, err
	}
	confirm, err := ReadPassword("confirm password: ", w)
	if err != nil {
		return nil, err
	}
	if string(pass) != string(confirm) {
		return nil, errors.New("passwords do not match")
	}
	return pass, nil
}

// IsFirstRun checks whether the store has been initialized.
func IsFirstRun(dir string) bool {
	_, err := os.Stat(dir + "/salt")
	return err != nil
}

// OpenStore prompts for the master password and opens the record store.
func OpenStore(dir string) (*store.Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	var pass []byte
	var err error
	if IsFirstRun(dir) {
		pass, err = ReadNewPassword(os.Stderr)
	} else {
		pass, err = ReadPassword("master password: ", os.Stderr)
	}
	if err != nil {
		return nil, err
	}

	return store.Open(zfilesystem.NewOSFileSystem(dir), pass)
}

// CmdEncode computes the code for the personal data given as flags.
func CmdEncode(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(stderr)

	given := fs.String("given", "", "given names")
	paternal := fs.String("paternal", "", "paternal surname")
	maternal := fs.String("maternal", "", "maternal surname")
	sex := fs.String("sex", "", "sex marker: H or M")
	dob := fs.String("dob", "", "birth date as YYYY-MM-DD")
	state := fs.String("state", "", "two-letter birth state code")
	fold := fs.Bool("fold", false, "strip accents and collapse spaces in names")
	asJSON := fs.Bool("json", false, "print as JSON")
	save := fs.Bool("save", false, "save to the encrypted store")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *sex == "" {
		return errors.New("encode: --sex is required (H or M)")
	}

	raw := &curp.RawPersonalData{
		GivenNames:      []byte(*given),
		PaternalSurname: []byte(*paternal),
		MaternalSurname: []byte(*maternal),
		Sex:             sexByte(*sex),
		BirthDate:       []byte(*dob),
		BirthState:      []byte(*state),
	}

	d, err := curp.Decode(raw)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if *fold {
		d.GivenNames = names.Fold(d.GivenNames)
		d.PaternalSurname = names.Fold(d.PaternalSurname)
		d.MaternalSurname = names.Fold(d.MaternalSurname)
	}

	return emit(identity.NewRecord(d), *asJSON, *save, stdout, stderr)
}

// CmdGenerate generates and prints a random persona with its code.
func CmdGenerate(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "print as JSON")
	save := fs.Bool("save", false, "save to the encrypted store")

	if err := fs.Parse(args); err != nil {
		return err
	}

	return emit(identity.New().Generate(), *asJSON, *save, stdout, stderr)
}

// CmdList lists all saved records.
func CmdList(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "print as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := OpenStore(DataDir())
	if err != nil {
		return err
	}
	defer s.Close()

	rs, err := s.List()
	if err != nil {
		return err
	}

	return printList(stdout, rs, *asJSON)
}

// CmdForget deletes a saved record by ID.
func CmdForget(id string, stdout io.Writer) error {
	s, err := OpenStore(DataDir())
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Delete(id); err != nil {
		return fmt.Errorf("forget: %w", err)
	}
	fmt.Fprintf(stdout, "deleted %s\n", id)
	return nil
}

func emit(r identity.Record, asJSON, save bool, stdout, stderr io.Writer) error {
	if asJSON {
		if err := printJSON(stdout, r); err != nil {
			return err
		}
	} else {
		printRecord(stdout, r)
	}

	if !save {
		return nil
	}

	s, err := OpenStore(DataDir())
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Save(r); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	fmt.Fprintln(stderr, "saved")
	return nil
}

func printRecord(w io.Writer, r identity.Record) {
	d := r.Data
	fmt.Fprintf(w, "  curp:     %s\n", r.Code)
	fmt.Fprintf(w, "  name:     %s\n", r.FullName())
	fmt.Fprintf(w, "  sex:      %s\n", d.Sex)
	fmt.Fprintf(w, "  born:     %s\n", d.BirthDate)
	if name := identity.StateName(d.BirthState); name != "" {
		fmt.Fprintf(w, "  state:    %s (%s)\n", d.BirthState, name)
	} else {
		fmt.Fprintf(w, "  state:    %s\n", d.BirthState)
	}
}

func printList(w io.Writer, rs []identity.Record, asJSON bool) error {
	if len(rs) == 0 {
		fmt.Fprintln(w, "no saved records")
		return nil
	}

	if asJSON {
		return printJSON(w, rs)
	}

	for _, r := range rs {
		fmt.Fprintf(w, "  %-10s %-20s %-40s %s\n",
			r.ID,
			r.Code,
			r.FullName(),
			r.CreatedAt.Format("2006-01-02"),
		)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// sexByte takes the first byte of the flag value; anything past it is
// ignored and an empty value yields zero.
func sexByte(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}
