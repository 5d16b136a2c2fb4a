package dlb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNotFound reports that a requested entry name was not present in the
// archive. It is distinct from I/O failures, which propagate as-is.
var ErrNotFound = errors.New("entry not found in archive")

// A NotFoundError records which entry name a scan failed to locate. It
// unwraps to ErrNotFound.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("target `%s` not found in archive", e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

type scanState int

const (
	outside scanState = iota
	insideEntry
)

// Decode scans r line by line, once, and returns the payload of the first
// entry whose name equals target exactly. Later entries are never
// examined, even if they carry the same name. Only DATA: and [HEX] lines
// contribute payload bytes; the redundant [DEC] and [OCT] lines of the
// quantum encoding are skipped entirely.
func Decode(r io.Reader, target string) ([]byte, error) {
	state := outside
	var name string
	var payload []byte
	var found bool

	err := forEachLine(r, func(l string) (bool, error) {
		switch {
		case isStartMarker(l):
			state = insideEntry
			name = ""
			payload = payload[:0]
		case state == insideEntry && strings.HasPrefix(l, "NAME:"):
			// everything after the first colon, verbatim
			name = l[len("NAME:"):]
		case state == insideEntry && strings.HasPrefix(l, "DATA:"):
			payload = appendHexTokens(payload, l[len("DATA:"):])
		case state == insideEntry && strings.HasPrefix(l, "[HEX]"):
			payload = appendHexTokens(payload, l[len("[HEX]"):])
		case state == insideEntry && isEndMarker(l):
			if name == target {
				found = true
				return true, nil
			}
			state = outside
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Name: target}
	}
	return payload, nil
}

// Extract locates the first entry named target in the archive at path and
// writes its payload to out. The output file is created (or truncated)
// only after a match is found; a not-found result leaves out untouched.
func Extract(path, target, out string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	payload, err := Decode(f, target)
	if err != nil {
		return err
	}
	return os.WriteFile(out, payload, 0644)
}

// List scans r and returns metadata for every entry, in file order. The
// reported byte count comes from the same hex-only decode path Extract
// uses, so it can disagree with the recorded size.
func List(r io.Reader) ([]Info, error) {
	var entries []Info
	state := outside
	var cur Info

	err := forEachLine(r, func(l string) (bool, error) {
		switch {
		case isStartMarker(l):
			v, _ := startVariant(l)
			state = insideEntry
			cur = Info{Variant: v}
		case state == insideEntry && strings.HasPrefix(l, "NAME:"):
			cur.Name = l[len("NAME:"):]
		case state == insideEntry && strings.HasPrefix(l, "SIZE:"):
			cur.Size, _ = strconv.Atoi(l[len("SIZE:"):])
		case state == insideEntry && strings.HasPrefix(l, "DATA:"):
			cur.Bytes += countHexTokens(l[len("DATA:"):])
		case state == insideEntry && strings.HasPrefix(l, "[HEX]"):
			cur.Bytes += countHexTokens(l[len("[HEX]"):])
		case state == insideEntry && isEndMarker(l):
			entries = append(entries, cur)
			state = outside
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListEntries opens the archive at path and lists its entries.
func ListEntries(path string) ([]Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return List(f)
}

// forEachLine feeds r to fn one line at a time, with line endings
// stripped. fn returning done stops the scan early.
func forEachLine(r io.Reader, fn func(line string) (done bool, err error)) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			done, ferr := fn(strings.TrimRight(line, "\r\n"))
			if ferr != nil {
				return ferr
			}
			if done {
				return nil
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func isStartMarker(line string) bool {
	_, ok := startVariant(line)
	return ok
}

func startVariant(line string) (Variant, bool) {
	for v, m := range markers {
		if line == m.start {
			return Variant(v), true
		}
	}
	return 0, false
}

func isEndMarker(line string) bool {
	for _, m := range markers {
		if line == m.end {
			return true
		}
	}
	return false
}

// appendHexTokens parses each whitespace-separated token on a payload
// line as a two-digit hex byte and appends it to dst. Tokens that do not
// parse as hex are skipped without error; they contribute nothing.
func appendHexTokens(dst []byte, rest string) []byte {
	for _, tok := range strings.Fields(rest) {
		b, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			continue
		}
		dst = append(dst, byte(b))
	}
	return dst
}

func countHexTokens(rest string) int {
	n := 0
	for _, tok := range strings.Fields(rest) {
		if _, err := strconv.ParseUint(tok, 16, 8); err == nil {
			n++
		}
	}
	return n
}
