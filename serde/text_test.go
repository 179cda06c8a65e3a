package serde_test

import (
	"net/netip"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	textserde "github.com/get-eventually/go-textserde"
	"github.com/get-eventually/go-textserde/serde"
)

func TestText(t *testing.T) {
	addrSerde := serde.NewText[netip.Addr]()

	t.Run("it round-trips through the text form", func(t *testing.T) {
		addr := netip.MustParseAddr("127.0.0.1")

		s, err := addrSerde.Serialize(addr)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1", s)

		deserialized, err := addrSerde.Deserialize(s)
		require.NoError(t, err)
		assert.Equal(t, addr, deserialized)
	})

	t.Run("it fails on malformed text", func(t *testing.T) {
		deserialized, err := addrSerde.Deserialize("not-an-ip")

		var parseErr *textserde.ParseError
		assert.ErrorAs(t, err, &parseErr)
		assert.Zero(t, deserialized)
	})

	t.Run("it works with uuids", func(t *testing.T) {
		idSerde := serde.NewText[uuid.UUID]()
		id := uuid.New()

		s, err := idSerde.Serialize(id)
		require.NoError(t, err)
		assert.Equal(t, id.String(), s)

		deserialized, err := idSerde.Deserialize(s)
		require.NoError(t, err)
		assert.Equal(t, id, deserialized)
	})
}

func TestOptionalText(t *testing.T) {
	optSerde := serde.NewOptionalText[netip.Addr]()

	t.Run("it maps absence to nil", func(t *testing.T) {
		s, err := optSerde.Serialize(textserde.None[netip.Addr]())
		require.NoError(t, err)
		assert.Nil(t, s)

		deserialized, err := optSerde.Deserialize(nil)
		require.NoError(t, err)
		assert.False(t, deserialized.Valid)
	})

	t.Run("it round-trips present values", func(t *testing.T) {
		opt := textserde.Some(netip.MustParseAddr("fe80::1"))

		s, err := optSerde.Serialize(opt)
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, "fe80::1", *s)

		deserialized, err := optSerde.Deserialize(s)
		require.NoError(t, err)
		assert.Equal(t, opt, deserialized)
	})

	t.Run("it keeps empty text distinct from absence", func(t *testing.T) {
		s, err := optSerde.Serialize(textserde.Some(netip.Addr{}))
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Empty(t, *s)
	})

	t.Run("it fails on malformed text", func(t *testing.T) {
		malformed := "not-an-ip"

		deserialized, err := optSerde.Deserialize(&malformed)
		assert.Error(t, err)
		assert.False(t, deserialized.Valid)
	})
}
