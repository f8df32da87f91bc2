package codec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/algharieb/ghareeb-app/internal/codec"
	"github.com/algharieb/ghareeb-app/internal/domain/types"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	in := []types.Message{
		{
			ID:          1,
			SenderID:    2,
			ReceiverID:  3,
			Content:     "مرحبا",
			ContentType: types.ContentTypeText,
			Metadata:    types.Metadata{"title": "t", "amount": 50.0},
			Timestamp:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		{ID: 2, SenderID: 3, ReceiverID: 2, Content: "hi", ContentType: types.ContentTypeText},
	}

	blob, err := codec.Encode(in)
	require.NoError(t, err)
	require.NotContains(t, blob, "مرحبا", "blob must be opaque")

	var out []types.Message
	require.True(t, codec.Decode(blob, &out))
	require.Equal(t, in, out)
}

func TestDecode_Garbage_ReturnsFalse(t *testing.T) {
	var out []types.User
	for _, blob := range []string{"", "not base64 ~~~", "Z2FyYmFnZQ==", "{}"} {
		require.False(t, codec.Decode(blob, &out), "blob %q", blob)
	}
}

func TestDecode_Tampered_ReturnsFalse(t *testing.T) {
	blob, err := codec.Encode([]types.ID{1, 2, 3})
	require.NoError(t, err)

	tampered := []byte(blob)
	tampered[len(tampered)/2] ^= 0x01
	var out []types.ID
	require.False(t, codec.Decode(string(tampered), &out))
}

func TestEncode_SaltsEveryBlob(t *testing.T) {
	a, err := codec.Encode("same value")
	require.NoError(t, err)
	b, err := codec.Encode("same value")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
