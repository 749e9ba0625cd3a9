package pagination

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/cash_book_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	date := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(date, "txn-42")
	assert.NotEmpty(t, token, "Token should not be empty")

	cursor, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, date.Equal(cursor.Date), "Date should match after decode")
	assert.Equal(t, "txn-42", cursor.ID)

	// Non-UTC input comes back as the same instant.
	pkt := time.FixedZone("PKT", 5*60*60)
	local := time.Date(2024, 1, 2, 3, 4, 5, 0, pkt)
	cursor, err = DecodeToken(EncodeToken(local, "x"))
	require.NoError(t, err)
	assert.True(t, local.Equal(cursor.Date))

	// IDs containing the separator survive.
	cursor, err = DecodeToken(EncodeToken(date, "a|b"))
	require.NoError(t, err)
	assert.Equal(t, "a|b", cursor.ID)
}

func TestDecodeTokenError(t *testing.T) {
	_, err := DecodeToken("this is not base64!")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z"))
	_, err = DecodeToken(noSeparator)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.URLEncoding.EncodeToString([]byte("notadate|txn-1"))
	_, err = DecodeToken(badDate)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Contains(t, err.Error(), "date parse")
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 20, ClampLimit(0, 20, 100))
	assert.Equal(t, 20, ClampLimit(-5, 20, 100))
	assert.Equal(t, 7, ClampLimit(7, 20, 100))
	assert.Equal(t, 100, ClampLimit(1000, 20, 100))
}
