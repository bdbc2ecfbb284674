package crypto

import (
	"errors"
	"unicode/utf8"

	serr "github.com/IvanChernomyrdin/fastfill/internal/shared/errors"
)

// DecryptContent расшифровывает конверт, созданный EncryptContent.
//
// Ожидаемый формат:
//
//	base64( salt(16) + iv(16) + ciphertext )
//
// Ошибки:
//   - serr.ErrDecode если конверт повреждён (не base64, короткий, длина не кратна блоку);
//   - serr.ErrWrongPassword если паддинг не прошёл проверку или результат не UTF-8;
//   - ErrInvalidKDFParams при некорректных параметрах KDF.
func DecryptContent(password, envelope string, p KDFParams) (string, error) {
	salt, iv, ciphertext, err := DecodeEnvelope(envelope)
	if err != nil {
		return "", err
	}

	key, err := DeriveKey(password, salt, p)
	if err != nil {
		return "", err
	}
	defer zeroBytes(key)

	plain, err := DecryptCBC(key, iv, ciphertext)
	if err != nil {
		if errors.Is(err, ErrInvalidPadding) {
			return "", serr.ErrWrongPassword
		}
		return "", err
	}

	// текстовое поле не может содержать не-UTF-8 байты, значит ключ не тот
	if !utf8.Valid(plain) {
		return "", serr.ErrWrongPassword
	}
	return string(plain), nil
}
