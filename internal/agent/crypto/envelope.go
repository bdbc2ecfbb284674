package crypto

import (
	"encoding/base64"
	"fmt"

	serr "github.com/IvanChernomyrdin/fastfill/internal/shared/errors"
)

// MinEnvelopeSize - минимальная длина декодированного конверта: salt + iv.
const MinEnvelopeSize = SaltSize + BlockSize

// EncodeEnvelope собирает конверт из соли, IV и ciphertext.
//
// Формат:
//
//	base64.StdEncoding( salt(16) || iv(16) || ciphertext )
//
// Строка печатаемая и хранится как одно значение item{N}_content.
func EncodeEnvelope(salt, iv, ciphertext []byte) (string, error) {
	if len(salt) != SaltSize || len(iv) != BlockSize {
		return "", fmt.Errorf("%w: envelope needs %d-byte salt and %d-byte iv", serr.ErrInvalidInput, SaltSize, BlockSize)
	}

	raw := make([]byte, 0, len(salt)+len(iv)+len(ciphertext))
	raw = append(raw, salt...)
	raw = append(raw, iv...)
	raw = append(raw, ciphertext...)

	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeEnvelope - точная обратная операция к EncodeEnvelope.
//
// Ошибки:
//   - serr.ErrDecode, если строка не base64 или короче salt+iv.
func DecodeEnvelope(envelope string) (salt, iv, ciphertext []byte, err error) {
	raw, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: envelope is not valid base64", serr.ErrDecode)
	}
	if len(raw) < MinEnvelopeSize {
		return nil, nil, nil, fmt.Errorf("%w: envelope is %d bytes, need at least %d", serr.ErrDecode, len(raw), MinEnvelopeSize)
	}

	salt = raw[:SaltSize]
	iv = raw[SaltSize:MinEnvelopeSize]
	ciphertext = raw[MinEnvelopeSize:]
	return salt, iv, ciphertext, nil
}
