package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/zarlcorp/zcurp/internal/curp"
	"github.com/zarlcorp/zcurp/internal/identity"
)

func TestDataDir(t *testing.T) {
	tests := []struct {
		name     string
		override string
		xdg      string
		want     string
	}{
		{
			name:     "override wins",
			override: "/srv/zcurp",
			xdg:      "/custom/data",
			want:     "/srv/zcurp",
		},
		{
			name: "xdg set",
			xdg:  "/custom/data",
			want: "/custom/data/zcurp",
		},
		{
			name: "xdg empty falls back to home",
			want: "/.local/share/zcurp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ZCURP_DATA_DIR", tt.override)
			t.Setenv("XDG_DATA_HOME", tt.xdg)

			got := DataDir()
			if tt.override != "" || tt.xdg != "" {
				if got != tt.want {
					t.Errorf("DataDir() = %s, want %s", got, tt.want)
				}
			} else {
				if !strings.HasSuffix(got, tt.want) {
					t.Errorf("DataDir() = %s, want suffix %s", got, tt.want)
				}
			}
		})
	}
}

func TestIsFirstRun(t *testing.T) {
	dir := t.TempDir()
	if !IsFirstRun(dir) {
		t.Error("expected first run for empty dir")
	}

	os.WriteFile(dir+"/salt", []byte("test"), 0o600)
	if IsFirstRun(dir) {
		t.Error("expected not first run after salt exists")
	}
}

var goldenArgs = []string{
	"--given", "RAUL EDUARDO",
	"--paternal", "GONZALEZ",
	"--maternal", "ARGOTE",
	"--sex", "H",
	"--dob", "1988-11-03",
	"--state", "DF",
}

func TestCmdEncode(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := CmdEncode(goldenArgs, &out, &errOut); err != nil {
		t.Fatalf("CmdEncode: %v", err)
	}

	view := out.String()
	for _, want := range []string{"GOAR881103HDFNRL00", "RAUL EDUARDO GONZALEZ ARGOTE", "Ciudad de México"} {
		if !strings.Contains(view, want) {
			t.Errorf("output missing %q:\n%s", want, view)
		}
	}
}

func TestCmdEncodeJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	args := append([]string{"--json"}, goldenArgs...)
	if err := CmdEncode(args, &out, &errOut); err != nil {
		t.Fatalf("CmdEncode: %v", err)
	}

	var r identity.Record
	if err := json.Unmarshal(out.Bytes(), &r); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out.String())
	}
	if r.Code != "GOAR881103HDFNRL00" {
		t.Errorf("code = %s, want GOAR881103HDFNRL00", r.Code)
	}
	if r.Data.Sex != curp.Male {
		t.Errorf("sex = %s, want H", r.Data.Sex)
	}
}

func TestCmdEncodeFold(t *testing.T) {
	var out, errOut bytes.Buffer
	args := []string{
		"--fold", "--json",
		"--given", "  raúl   eduardo",
		"--paternal", "González",
		"--maternal", "Argote",
		"--sex", "H",
		"--dob", "1988-11-03",
		"--state", "df",
	}
	if err := CmdEncode(args, &out, &errOut); err != nil {
		t.Fatalf("CmdEncode: %v", err)
	}

	var r identity.Record
	if err := json.Unmarshal(out.Bytes(), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Code != "GOAR881103HDFNRL00" {
		t.Errorf("code = %s, want GOAR881103HDFNRL00", r.Code)
	}
	if r.Data.GivenNames != "RAUL EDUARDO" {
		t.Errorf("given names = %q, want folded", r.Data.GivenNames)
	}
}

func TestCmdEncodeInvalidUTF8(t *testing.T) {
	var out, errOut bytes.Buffer
	args := []string{"--paternal", "GONZ\xffLEZ", "--sex", "H", "--dob", "1988-11-03", "--state", "DF"}

	err := CmdEncode(args, &out, &errOut)
	if !errors.Is(err, curp.ErrInvalidEncoding) {
		t.Fatalf("err = %v, want ErrInvalidEncoding", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be printed on error, got %q", out.String())
	}
}

func TestCmdEncodeUnknownFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := CmdEncode([]string{"--nope"}, &out, &errOut); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestCmdEncodeRequiresSex(t *testing.T) {
	var out, errOut bytes.Buffer
	err := CmdEncode([]string{"--given", "ANA"}, &out, &errOut)
	if err == nil || !strings.Contains(err.Error(), "--sex is required") {
		t.Fatalf("err = %v, want missing sex error", err)
	}
}

func TestCmdEncodeEmpty(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := CmdEncode([]string{"--sex", "M", "--state", "NE"}, &out, &errOut); err != nil {
		t.Fatalf("CmdEncode: %v", err)
	}
	if !strings.Contains(out.String(), "XXXX000000MNEXXX00") {
		t.Errorf("output should contain filler code:\n%s", out.String())
	}
}

func TestCmdGenerateJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := CmdGenerate([]string{"--json"}, &out, &errOut); err != nil {
		t.Fatalf("CmdGenerate: %v", err)
	}

	var r identity.Record
	if err := json.Unmarshal(out.Bytes(), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Code != curp.Encode(r.Data) {
		t.Errorf("code %s does not match data %+v", r.Code, r.Data)
	}
}

func TestPrintList(t *testing.T) {
	var buf bytes.Buffer
	if err := printList(&buf, nil, false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "no saved records") {
		t.Errorf("empty list output = %q", buf.String())
	}

	buf.Reset()
	r := identity.NewRecord(curp.PersonalData{
		GivenNames:      "ANA",
		PaternalSurname: "LUNA",
		Sex:             curp.Female,
		BirthDate:       "2001-02-03",
		BirthState:      "JC",
	})
	r.CreatedAt = time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	if err := printList(&buf, []identity.Record{r}, false); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{r.ID, r.Code, "ANA LUNA", "2025-01-02"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("list output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestSexByte(t *testing.T) {
	tests := []struct {
		in   string
		want byte
	}{
		{"H", 'H'},
		{"m", 'm'},
		{"Mujer", 'M'},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := sexByte(tt.in); got != tt.want {
				t.Errorf("sexByte(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
