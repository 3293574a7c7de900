package files

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"browsd/internal/errors"
)

// Byte order marks recognized at the start of a file.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decodeText turns raw file bytes into a string. UTF-8 is the default;
// UTF-16 input is converted when it announces itself with a byte order
// mark. Anything that is not valid text, including content with NUL
// bytes, is rejected.
func decodeText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	switch {
	case bytes.HasPrefix(data, bomUTF8):
		data = data[len(bomUTF8):]
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeUTF16(data, unicode.LittleEndian)
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeUTF16(data, unicode.BigEndian)
	}

	if bytes.IndexByte(data, 0x00) >= 0 {
		return "", errors.New("content contains NUL bytes")
	}
	if !utf8.Valid(data) {
		return "", errors.New("content is not valid UTF-8")
	}
	return string(data), nil
}

// decodeUTF16 converts UTF-16 bytes with a leading byte order mark to a
// UTF-8 string.
func decodeUTF16(data []byte, endianness unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endianness, unicode.ExpectBOM).NewDecoder()
	decoded, err := decoder.Bytes(data)
	if err != nil {
		return "", errors.Wrap(err, "cannot decode UTF-16 content")
	}
	if bytes.IndexByte(decoded, 0x00) >= 0 {
		return "", errors.New("content contains NUL bytes")
	}
	return string(decoded), nil
}
