package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	serr "github.com/IvanChernomyrdin/fastfill/internal/shared/errors"
)

// BlockSize - размер блока AES и IV (байты).
const BlockSize = aes.BlockSize

// ErrInvalidPadding возвращается, если после расшифровки паддинг не проходит проверку.
// Чаще всего это означает неверный ключ, т.е. неверный пароль.
var ErrInvalidPadding = fmt.Errorf("%w: invalid padding", serr.ErrDecode)

// NewIV генерирует случайный вектор инициализации для CBC.
func NewIV() ([]byte, error) {
	iv := make([]byte, BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("rand iv: %w", err)
	}
	return iv, nil
}

// Pad дополняет данные до кратности BlockSize по схеме PKCS#7:
// значение каждого байта паддинга равно его длине, длина всегда 1..BlockSize.
func Pad(data []byte) []byte {
	n := BlockSize - len(data)%BlockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// Unpad снимает PKCS#7-паддинг.
//
// Длина паддинга берётся из последнего байта и должна быть в [1, BlockSize],
// все байты паддинга должны быть равны ей. Иначе возвращается ErrInvalidPadding.
func Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%BlockSize != 0 {
		return nil, ErrInvalidPadding
	}
	n := int(data[len(data)-1])
	if n < 1 || n > BlockSize {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-n], nil
}

// EncryptCBC шифрует plaintext ключом AES-256 в режиме CBC.
// Паддинг добавляется внутри, результат всегда кратен BlockSize.
func EncryptCBC(key, iv, plaintext []byte) ([]byte, error) {
	mode, err := newMode(key, iv, true)
	if err != nil {
		return nil, err
	}
	padded := Pad(plaintext)
	out := make([]byte, len(padded))
	mode.CryptBlocks(out, padded)
	return out, nil
}

// DecryptCBC расшифровывает ciphertext и снимает паддинг.
//
// Ошибки:
//   - serr.ErrInvalidInput при ключе/IV неправильной длины;
//   - serr.ErrDecode если ciphertext пустой или не кратен BlockSize;
//   - ErrInvalidPadding если паддинг не прошёл проверку.
func DecryptCBC(key, iv, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d", serr.ErrDecode, len(ciphertext))
	}
	mode, err := newMode(key, iv, false)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(ciphertext))
	mode.CryptBlocks(out, ciphertext)
	return Unpad(out)
}

func newMode(key, iv []byte, encrypt bool) (cipher.BlockMode, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key is %d bytes, want %d", serr.ErrInvalidInput, len(key), KeySize)
	}
	if len(iv) != BlockSize {
		return nil, fmt.Errorf("%w: iv is %d bytes, want %d", serr.ErrInvalidInput, len(iv), BlockSize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes: %w", err)
	}
	if encrypt {
		return cipher.NewCBCEncrypter(block, iv), nil
	}
	return cipher.NewCBCDecrypter(block, iv), nil
}
