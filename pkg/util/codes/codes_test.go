package codes

import (
	"fmt"
	"regexp"
	"testing"
	"time"
)

func TestGenerateInvoiceNumber(t *testing.T) {
	inv, err := GenerateInvoiceNumber()
	if err != nil {
		t.Fatalf("GenerateInvoiceNumber: %v", err)
	}

	want := regexp.MustCompile(fmt.Sprintf(`^INV-%d-\d{6}$`, time.Now().Year()))
	if !want.MatchString(inv) {
		t.Errorf("invoice number %q does not match %s", inv, want)
	}
}

func TestGenerateTempPassword(t *testing.T) {
	p, err := GenerateTempPassword()
	if err != nil {
		t.Fatalf("GenerateTempPassword: %v", err)
	}
	if len(p) != TempPasswordLength {
		t.Errorf("length = %d, want %d", len(p), TempPasswordLength)
	}
	for _, r := range p {
		switch r {
		case 'I', 'L', 'O', 'i', 'l', 'o', '0', '1':
			t.Errorf("password %q contains ambiguous character %q", p, r)
		}
	}
}

func TestGenerateNumericCode(t *testing.T) {
	code, err := GenerateNumericCode(6)
	if err != nil {
		t.Fatalf("GenerateNumericCode: %v", err)
	}
	if len(code) != 6 {
		t.Errorf("length = %d, want 6", len(code))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Errorf("code %q contains non-digit %q", code, r)
		}
	}
}

func TestFormatAndParseCode(t *testing.T) {
	formatted := FormatCode("ABCD1234", 4)
	if formatted != "ABCD-1234" {
		t.Errorf("FormatCode = %q", formatted)
	}
	if got := ParseCode(formatted); got != "ABCD1234" {
		t.Errorf("ParseCode = %q", got)
	}
}

func TestGenerateCodeInvalidInput(t *testing.T) {
	if _, err := GenerateCode(0, "abc"); err == nil {
		t.Error("expected error for zero length")
	}
	if _, err := GenerateCode(5, ""); err == nil {
		t.Error("expected error for empty charset")
	}
}
