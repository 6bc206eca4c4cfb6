package encfile

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names reported by Read, matching the historical attempt order.
const (
	EncodingUTF8    = "utf-8"
	EncodingUTF8BOM = "utf-8-sig"
	EncodingLatin1  = "latin-1"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Read decodes a manifest file, trying UTF-8 first, then UTF-8 with a
// byte-order mark, then ISO-8859-1. The last attempt accepts any byte
// sequence, so Read only fails when the file itself cannot be read.
// It returns the decoded text and the name of the encoding used.
func Read(path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read manifest: %w", err)
	}

	// A UTF-8 file that starts with a BOM is still valid UTF-8; the BOM
	// survives in the decoded text and round-trips on write.
	if utf8.Valid(data) {
		return string(data), EncodingUTF8, nil
	}

	// The x/text UTF-8 decoder substitutes U+FFFD rather than failing, so
	// the payload bytes are validated before the BOM strip is trusted.
	if bytes.HasPrefix(data, utf8BOM) && utf8.Valid(data[len(utf8BOM):]) {
		if text, decErr := decode(data, unicode.UTF8BOM.NewDecoder()); decErr == nil {
			return text, EncodingUTF8BOM, nil
		}
	}

	text, err := decode(data, charmap.ISO8859_1.NewDecoder())
	if err != nil {
		return "", "", fmt.Errorf("decode %s: %w", EncodingLatin1, err)
	}
	return text, EncodingLatin1, nil
}

// Write saves text as plain UTF-8 without a byte-order mark, whatever
// encoding the file was originally read with.
func Write(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

func decode(data []byte, dec *encoding.Decoder) (string, error) {
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
