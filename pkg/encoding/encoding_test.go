package encoding

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestNewReader(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		input    []byte
		want     string
	}{
		{"utf-8 passthrough", "utf-8", []byte("o caf\xc3\xa9"), "o café"},
		{"empty passthrough", "", []byte("v 1 2 3"), "v 1 2 3"},
		{"latin1", "iso-8859-1", []byte("# caf\xe9"), "# café"},
		{"windows-1252", "Windows-1252", []byte("# \x80"), "# €"},
		{"euc-kr", "euc-kr", UTF8ToEUCKR("# 프론테라"), "# 프론테라"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(bytes.NewReader(tt.input), tt.encoding)
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}
			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("read failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNewReader_Unknown(t *testing.T) {
	_, err := NewReader(bytes.NewReader(nil), "klingon")
	if !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("expected ErrUnknownEncoding, got %v", err)
	}
}

func TestEUCKRRoundTrip(t *testing.T) {
	s := "프론테라"
	if got := EUCKRToUTF8(UTF8ToEUCKR(s)); got != s {
		t.Errorf("expected %q, got %q", s, got)
	}
}
