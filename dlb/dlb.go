// Package dlb implements the catch archive format: a flat, append-only
// text file holding named byte payloads. Entries are delimited by marker
// lines and encoded in one of two variants, selected per write; a single
// archive may mix both, and the decoder recognizes either marker style.
//
// Writers append whole entry blocks and never rewrite prior content.
// There is no locking: concurrent appends to the same archive may
// interleave their lines and corrupt marker pairing. Lookup is a linear
// scan from the start of the file on every call.
package dlb

// A Variant selects the textual encoding used when writing an entry.
type Variant int

const (
	// Standard brackets an entry with ---ENTRY---/---END--- and writes
	// the payload as DATA: lines of space-separated hex bytes, sixteen
	// bytes per line.
	Standard Variant = iota
	// Quantum brackets an entry with ###ENTRY###/###END### and writes
	// the payload three times, as [DEC], [OCT] and [HEX] lines. Only the
	// [HEX] line is ever read back; the other two exist for human
	// inspection of the archive.
	Quantum
)

var markers = [...]struct {
	start, end string
}{
	Standard: {"---ENTRY---", "---END---"},
	Quantum:  {"###ENTRY###", "###END###"},
}

func (v Variant) String() string {
	switch v {
	case Quantum:
		return "quantum"
	default:
		return "standard"
	}
}

// An Info describes one archive entry as encountered by a scan.
type Info struct {
	// Name of the entry, verbatim from its NAME: line.
	Name string
	// Size as recorded on the SIZE: line at write time. It is purely
	// informational and is never checked against the decoded payload.
	Size int
	// Bytes actually decoded from the entry's payload lines.
	Bytes int
	// Variant of the start marker that opened the entry.
	Variant Variant
}
