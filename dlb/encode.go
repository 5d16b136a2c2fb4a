package dlb

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// bytesPerLine is how many payload bytes a Standard DATA: line holds.
const bytesPerLine = 16

// EncodeEntry writes one complete entry block for name and payload to w
// using the given variant. The name must not contain a newline; it is
// otherwise written verbatim, colons included.
func EncodeEntry(w io.Writer, name string, payload []byte, v Variant) error {
	if strings.ContainsRune(name, '\n') {
		return fmt.Errorf("entry name contains a newline: %q", name)
	}

	m := markers[v]
	var b strings.Builder
	fmt.Fprintln(&b, m.start)
	fmt.Fprintf(&b, "NAME:%s\n", name)
	fmt.Fprintf(&b, "SIZE:%d\n", len(payload))

	switch v {
	case Quantum:
		fmt.Fprintf(&b, "[DEC] %s\n", joinBytes(payload, 10))
		fmt.Fprintf(&b, "[OCT] %s\n", joinBytes(payload, 8))
		fmt.Fprintf(&b, "[HEX] %s\n", joinBytes(payload, 16))
	default:
		writeDataLines(&b, payload)
	}

	fmt.Fprintln(&b, m.end)
	_, err := io.WriteString(w, b.String())
	return err
}

// AppendEntry opens the archive at path for appending, creating it if
// absent, and writes one entry block. Existing content is never read or
// modified; the file only grows.
func AppendEntry(path, name string, payload []byte, v Variant) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	err = EncodeEntry(f, name, payload, v)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeDataLines(b *strings.Builder, payload []byte) {
	if len(payload) == 0 {
		fmt.Fprintln(b, "DATA:")
		return
	}
	for i := 0; i < len(payload); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(payload) {
			end = len(payload)
		}
		fmt.Fprintf(b, "DATA: %s\n", joinBytes(payload[i:end], 16))
	}
}

// joinBytes renders payload as space-separated tokens in the given base.
// Hex tokens are two uppercase digits; decimal and octal tokens carry no
// padding or prefix.
func joinBytes(payload []byte, base int) string {
	toks := make([]string, len(payload))
	for i, c := range payload {
		switch base {
		case 16:
			toks[i] = fmt.Sprintf("%02X", c)
		case 8:
			toks[i] = strconv.FormatUint(uint64(c), 8)
		default:
			toks[i] = strconv.Itoa(int(c))
		}
	}
	return strings.Join(toks, " ")
}
