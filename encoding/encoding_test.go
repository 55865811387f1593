package encoding

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	for _, name := range []string{"UTF-8", "utf8", "ISO-8859-1", "windows-1252", "Shift_JIS", "euc-kr"} {
		require.NotNil(t, Load(name), "Load(%q) should succeed", name)
	}
	require.Nil(t, Load("no-such-encoding"), "unknown labels yield nil")
}

func TestCharsetReader(t *testing.T) {
	// 0xE9 is 'é' in ISO-8859-1
	r, err := CharsetReader("ISO-8859-1", strings.NewReader("Caf\xe9"))
	require.NoError(t, err, "CharsetReader should succeed")

	b, err := io.ReadAll(r)
	require.NoError(t, err, "reading decoded input should succeed")
	require.Equal(t, "Café", string(b))

	_, err = CharsetReader("no-such-encoding", strings.NewReader(""))
	require.Error(t, err, "unknown charsets are rejected")
}

func TestISO88591RoundTrip(t *testing.T) {
	e := Load("iso-8859-1")
	dec := e.NewDecoder()
	enc := e.NewEncoder()
	for i := 0x20; i <= 0x7e; i++ {
		v := string([]byte{byte(i)})
		s, err := dec.String(v)
		require.NoError(t, err, "decode %#x", i)
		back, err := enc.String(s)
		require.NoError(t, err, "encode %q", s)
		require.Equal(t, v, back)
	}
}
