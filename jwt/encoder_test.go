package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	ed := NewEncodeDecoder([]byte("test key"))

	token, err := ed.Encode("a@x.com")
	require.NoError(t, err)

	email, err := ed.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestDecode_WrongKey(t *testing.T) {
	token, err := NewEncodeDecoder([]byte("one key")).Encode("a@x.com")
	require.NoError(t, err)

	_, err = NewEncodeDecoder([]byte("another key")).Decode(token)
	assert.Error(t, err)
}
