package dlb

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeStandard(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeEntry(&buf, "greeting.txt", []byte("ABC"), Standard)
	require.NoError(t, err)

	want := "---ENTRY---\n" +
		"NAME:greeting.txt\n" +
		"SIZE:3\n" +
		"DATA: 41 42 43\n" +
		"---END---\n"
	assert.Equal(t, want, buf.String())
}

func TestEncodeStandardWrapsAtSixteen(t *testing.T) {
	payload := make([]byte, 17)
	for i := range payload {
		payload[i] = byte(i)
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeEntry(&buf, "wrap", payload, Standard))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "DATA: 00 01 02 03 04 05 06 07 08 09 0A 0B 0C 0D 0E 0F", lines[3])
	assert.Equal(t, "DATA: 10", lines[4])
}

func TestEncodeQuantum(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeEntry(&buf, "q.bin", []byte{65, 8, 255}, Quantum)
	require.NoError(t, err)

	want := "###ENTRY###\n" +
		"NAME:q.bin\n" +
		"SIZE:3\n" +
		"[DEC] 65 8 255\n" +
		"[OCT] 101 10 377\n" +
		"[HEX] 41 08 FF\n" +
		"###END###\n"
	assert.Equal(t, want, buf.String())
}

func TestEncodeEmptyPayload(t *testing.T) {
	var std bytes.Buffer
	require.NoError(t, EncodeEntry(&std, "empty", nil, Standard))
	assert.Equal(t, "---ENTRY---\nNAME:empty\nSIZE:0\nDATA:\n---END---\n", std.String())

	var q bytes.Buffer
	require.NoError(t, EncodeEntry(&q, "empty", nil, Quantum))
	assert.Equal(t, "###ENTRY###\nNAME:empty\nSIZE:0\n[DEC] \n[OCT] \n[HEX] \n###END###\n", q.String())
}

func TestEncodeNameWithColon(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeEntry(&buf, "a:b:c", []byte{1}, Standard))
	assert.Contains(t, buf.String(), "NAME:a:b:c\n")
}

func TestEncodeRejectsNewlineInName(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeEntry(&buf, "bad\nname", []byte{1}, Standard)
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestAppendEntryGrowsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.dlb")

	require.NoError(t, AppendEntry(path, "first", []byte("one"), Standard))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, AppendEntry(path, "second", []byte("two"), Quantum))
	after, err := os.ReadFile(path)
	require.NoError(t, err)

	// the first block is still there, byte for byte
	assert.True(t, bytes.HasPrefix(after, before))
	assert.Greater(t, len(after), len(before))
}

func TestAppendEntryCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.dqb")
	require.NoError(t, AppendEntry(path, "x", []byte{0xDE, 0xAD}, Quantum))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[HEX] DE AD\n")
}
