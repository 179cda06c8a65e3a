package textserde_test

import (
	"encoding/json"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	textserde "github.com/get-eventually/go-textserde"
)

type route struct {
	Gateway textserde.OptionalText[netip.Addr] `json:"gateway" yaml:"gateway" msgpack:"gateway"`
}

func TestOptionalText_JSON(t *testing.T) {
	t.Run("it encodes a present value as a json string", func(t *testing.T) {
		data, err := json.Marshal(route{Gateway: textserde.Some(localhost)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"gateway":"127.0.0.1"}`, string(data))
	})

	t.Run("it encodes an absent value as null", func(t *testing.T) {
		data, err := json.Marshal(route{Gateway: textserde.None[netip.Addr]()})
		require.NoError(t, err)
		assert.JSONEq(t, `{"gateway":null}`, string(data))
	})

	t.Run("it round-trips present and absent values", func(t *testing.T) {
		for _, expected := range []route{
			{Gateway: textserde.Some(localhost)},
			{Gateway: textserde.None[netip.Addr]()},
		} {
			data, err := json.Marshal(expected)
			require.NoError(t, err)

			var actual route
			require.NoError(t, json.Unmarshal(data, &actual))
			assert.Equal(t, expected, actual)
		}
	})

	t.Run("it resets to absent on null", func(t *testing.T) {
		r := route{Gateway: textserde.Some(localhost)}
		require.NoError(t, json.Unmarshal([]byte(`{"gateway":null}`), &r))
		assert.False(t, r.Gateway.Valid)
	})

	t.Run("it keeps an empty text distinct from absence", func(t *testing.T) {
		empty, err := json.Marshal(textserde.Some(netip.Addr{}))
		require.NoError(t, err)

		absent, err := json.Marshal(textserde.None[netip.Addr]())
		require.NoError(t, err)

		assert.Equal(t, `""`, string(empty))
		assert.Equal(t, "null", string(absent))

		var decoded textserde.OptionalText[netip.Addr]
		require.NoError(t, json.Unmarshal(empty, &decoded))
		assert.True(t, decoded.Valid)
	})

	t.Run("it returns a parse error on malformed text", func(t *testing.T) {
		var r route
		err := json.Unmarshal([]byte(`{"gateway":"not-an-ip"}`), &r)

		var parseErr *textserde.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "not-an-ip", parseErr.Text)
		assert.False(t, r.Gateway.Valid)
	})
}

func TestOptionalText_YAML(t *testing.T) {
	t.Run("it encodes values as yaml scalars and null", func(t *testing.T) {
		data, err := yaml.Marshal(route{Gateway: textserde.Some(localhost)})
		require.NoError(t, err)
		assert.Equal(t, "gateway: 127.0.0.1\n", string(data))

		data, err = yaml.Marshal(route{Gateway: textserde.None[netip.Addr]()})
		require.NoError(t, err)
		assert.Equal(t, "gateway: null\n", string(data))
	})

	t.Run("it decodes present and absent values", func(t *testing.T) {
		var r route
		require.NoError(t, yaml.Unmarshal([]byte("gateway: 127.0.0.1\n"), &r))
		assert.Equal(t, textserde.Some(localhost), r.Gateway)

		r = route{}
		require.NoError(t, yaml.Unmarshal([]byte("gateway: null\n"), &r))
		assert.False(t, r.Gateway.Valid)

		r = route{}
		require.NoError(t, yaml.Unmarshal([]byte("gateway: \"\"\n"), &r))
		assert.True(t, r.Gateway.Valid)
	})

	t.Run("it resets to absent on explicit null nodes", func(t *testing.T) {
		opt := textserde.Some(localhost)
		require.NoError(t, opt.UnmarshalYAML(&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "~"}))
		assert.False(t, opt.Valid)
	})

	t.Run("it returns a parse error on malformed text", func(t *testing.T) {
		var r route
		err := yaml.Unmarshal([]byte("gateway: not-an-ip\n"), &r)

		var parseErr *textserde.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}

func TestOptionalText_MsgPack(t *testing.T) {
	t.Run("it encodes absence as nil", func(t *testing.T) {
		data, err := msgpack.Marshal(textserde.None[netip.Addr]())
		require.NoError(t, err)
		assert.Equal(t, []byte{0xc0}, data)

		empty, err := msgpack.Marshal(textserde.Some(netip.Addr{}))
		require.NoError(t, err)
		assert.NotEqual(t, data, empty)
	})

	t.Run("it round-trips present and absent values", func(t *testing.T) {
		for _, expected := range []route{
			{Gateway: textserde.Some(localhost)},
			{Gateway: textserde.None[netip.Addr]()},
		} {
			data, err := msgpack.Marshal(expected)
			require.NoError(t, err)

			var actual route
			require.NoError(t, msgpack.Unmarshal(data, &actual))
			assert.Equal(t, expected, actual)
		}
	})
}

func TestOptionalText_SQL(t *testing.T) {
	value, err := textserde.None[netip.Addr]().Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	value, err = textserde.Some(localhost).Value()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", value)

	opt := textserde.Some(localhost)
	require.NoError(t, opt.Scan(nil))
	assert.False(t, opt.Valid)

	require.NoError(t, opt.Scan("10.0.0.1"))
	assert.Equal(t, textserde.Some(netip.MustParseAddr("10.0.0.1")), opt)

	assert.Error(t, opt.Scan("not-an-ip"))
}

func TestOptionalText_Text(t *testing.T) {
	_, err := textserde.None[netip.Addr]().MarshalText()
	assert.ErrorIs(t, err, textserde.ErrAbsent)

	text, err := textserde.Some(localhost).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", string(text))

	var opt textserde.OptionalText[netip.Addr]
	require.NoError(t, opt.UnmarshalText([]byte("127.0.0.1")))
	assert.Equal(t, textserde.Some(localhost), opt)
}

func TestOptionalText_Accessors(t *testing.T) {
	assert.Nil(t, textserde.None[netip.Addr]().Ptr())
	assert.True(t, textserde.None[netip.Addr]().IsZero())
	assert.Equal(t, "<absent>", textserde.None[netip.Addr]().String())

	opt := textserde.FromPtr(&localhost)
	v, ok := opt.Get()
	assert.True(t, ok)
	assert.Equal(t, localhost, v)
	assert.Equal(t, localhost, *opt.Ptr())
	assert.Equal(t, "127.0.0.1", opt.String())

	assert.Equal(t, textserde.None[netip.Addr](), textserde.FromPtr[netip.Addr](nil))
}
