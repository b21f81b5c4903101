package docfs

import "golang.org/x/text/encoding/unicode"

// normalizeText converts BOM-marked content to plain UTF-8 so the renderer
// only ever sees UTF-8 text. Content without a recognized BOM is passed
// through unchanged.
func normalizeText(content []byte) string {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return string(content[3:])
	}
	if len(content) >= 2 {
		switch {
		case content[0] == 0xFF && content[1] == 0xFE:
			return decodeUTF16(content, unicode.LittleEndian)
		case content[0] == 0xFE && content[1] == 0xFF:
			return decodeUTF16(content, unicode.BigEndian)
		}
	}
	return string(content)
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}
