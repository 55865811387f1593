package units_test

import (
	"context"
	"encoding/xml"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/lestrrat-go/gdtf/deparse"
	"github.com/lestrrat-go/gdtf/units"
	"github.com/stretchr/testify/require"
)

const nameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 !\"#$%&'()*+,-/:;<=>?@[\\]^_`|~"

func randomName(r *rand.Rand, alphabet string, n int) string {
	var sb strings.Builder
	for range n {
		sb.WriteByte(alphabet[r.IntN(len(alphabet))])
	}
	return sb.String()
}

func TestNewName(t *testing.T) {
	t.Run("valid names round trip", func(t *testing.T) {
		r := rand.New(rand.NewPCG(1, 2))
		for range 500 {
			s := randomName(r, nameAlphabet, r.IntN(units.MaxNameLength+1))
			n, err := units.NewName(s)
			require.NoError(t, err, "NewName(%q) should succeed", s)
			require.Equal(t, s, n.String())
		}
	})
	t.Run("every allowed character", func(t *testing.T) {
		n, err := units.NewName(nameAlphabet)
		require.NoError(t, err)
		require.Equal(t, units.Name(nameAlphabet), n)
	})
	t.Run("invalid characters", func(t *testing.T) {
		r := rand.New(rand.NewPCG(3, 4))
		for _, bad := range []string{".", "{", "}", "é", "\t", "\n", "\x00", "日本"} {
			prefix := randomName(r, nameAlphabet, r.IntN(10))
			suffix := randomName(r, nameAlphabet, r.IntN(10))
			s := prefix + bad + suffix

			_, err := units.NewName(s)
			require.Error(t, err, "NewName(%q) should fail", s)
			require.True(t, errors.Is(err, deparse.ErrInvalidIdentifier), "error should be InvalidIdentifier")

			require.Equal(t, s, string(units.UncheckedName(s)), "UncheckedName keeps %q verbatim", s)
		}
	})
	t.Run("length limit", func(t *testing.T) {
		_, err := units.NewName(strings.Repeat("a", units.MaxNameLength))
		require.NoError(t, err)

		_, err = units.NewName(strings.Repeat("a", units.MaxNameLength+1))
		require.Error(t, err)
		require.Equal(t, deparse.InvalidIdentifier, deparse.KindOf(err))
	})
	t.Run("empty name", func(t *testing.T) {
		n, err := units.NewName("")
		require.NoError(t, err)
		require.Equal(t, units.NoName, n)
	})
}

func TestAttrName(t *testing.T) {
	attr := xml.Attr{Name: xml.Name{Local: "Name"}, Value: "Gobo{1}"}

	lax := deparse.NewCursorBytes(context.Background(), nil)
	n, err := units.AttrName(lax, attr)
	require.NoError(t, err, "names are not validated by default")
	require.Equal(t, units.Name("Gobo{1}"), n)

	strict := deparse.NewCursorBytes(context.Background(), nil, deparse.WithStrictNames(true))
	_, err = units.AttrName(strict, attr)
	require.True(t, errors.Is(err, deparse.ErrInvalidIdentifier), "strict mode validates names")

	n, err = units.AttrName(strict, xml.Attr{Value: "Gobo1"})
	require.NoError(t, err)
	require.Equal(t, units.Name("Gobo1"), n)
}
