package codec_test

import (
	"testing"

	"github.com/arloliu/asn1der/codec"
	"github.com/arloliu/asn1der/internal/outbuf"
	"github.com/stretchr/testify/require"
)

func TestEncodeOID_PKCS7(t *testing.T) {
	want := []byte{0x06, 0x06, 0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D}

	size, err := codec.SizeOID("1.2.840.113549")
	require.NoError(t, err)
	require.Equal(t, len(want), size)

	out, required, err := codec.EncodeOID(outbuf.Request{Alloc: true}, "1.2.840.113549")
	require.NoError(t, err)
	require.Equal(t, len(want), required)
	require.Equal(t, want, out)
}

func TestEncodeOID_SizingQuery(t *testing.T) {
	out, required, err := codec.EncodeOID(outbuf.Request{}, "1.2.840.113549")
	require.NoError(t, err)
	require.Nil(t, out)
	require.Equal(t, 8, required)
}

func TestDecodeOID_PKCS7(t *testing.T) {
	data := []byte{0x06, 0x06, 0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D}
	oid, consumed, err := codec.DecodeOID(data)
	require.NoError(t, err)
	require.Equal(t, codec.OID("1.2.840.113549"), oid)
	require.Equal(t, len(data), consumed)
}

func TestOID_RoundTripBoundaryComponents(t *testing.T) {
	cases := []string{
		"0.0",
		"1.39",
		"2.5.4.3",
		"1.2.0.127.128.16383.16384.2097151.2097152.268435455.268435456",
	}

	for _, oid := range cases {
		out, _, err := codec.EncodeOID(outbuf.Request{Alloc: true}, codec.OID(oid))
		require.NoError(t, err)

		got, consumed, err := codec.DecodeOID(out)
		require.NoError(t, err)
		require.Equal(t, len(out), consumed)
		require.Equal(t, oid, string(got))
	}
}

func TestEncodeOID_InvalidParameter(t *testing.T) {
	_, _, err := codec.EncodeOID(outbuf.Request{Alloc: true}, "not-an-oid")
	require.Error(t, err)
}
