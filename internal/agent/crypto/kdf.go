// Package crypto содержит шифрование отдельных записей FastFill паролем.
//
// Состав:
//   - KDF: пароль + соль(16) -> ключ(32) (Argon2id или legacy PBKDF2-SHA256);
//   - AES-256-CBC с PKCS#7-паддингом и проверкой паддинга при расшифровке;
//   - конверт base64(salt || iv || ciphertext), который хранится одной строкой в INI.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"

	serr "github.com/IvanChernomyrdin/fastfill/internal/shared/errors"
)

const (
	// SaltSize - размер соли (байты).
	SaltSize = 16

	// KeySize - размер симметричного ключа (байты).
	// Для AES-256 используется 32 байта.
	KeySize = 32

	// AlgorithmArgon2id - memory-hard KDF, используется по умолчанию.
	AlgorithmArgon2id = "argon2id"
	// AlgorithmPBKDF2 - PBKDF2-HMAC-SHA256, как в хранилищах FastFill 2.x.
	AlgorithmPBKDF2 = "pbkdf2-sha256"

	// LegacyPBKDF2Iterations - число итераций, с которым писались старые хранилища.
	LegacyPBKDF2Iterations = 100000
)

// ErrInvalidKDFParams возвращается, если параметры KDF не позволяют получить стойкий ключ.
var ErrInvalidKDFParams = fmt.Errorf("%w: kdf parameters", serr.ErrInvalidInput)

// KDFParams описывает параметры derivation ключа.
//
// Поля:
//   - Algorithm: argon2id | pbkdf2-sha256
//   - Time, MemoryKiB, Threads: стоимость Argon2id
//   - Iterations: число итераций PBKDF2
//   - KeyLen: длина выводимого ключа в байтах
//   - SaltLen: длина соли в байтах
//
// Конверт не хранит параметры KDF, поэтому они общие для всего хранилища
// и задаются в настройках.
type KDFParams struct {
	Algorithm  string
	Time       uint32
	MemoryKiB  uint32
	Threads    uint8
	Iterations int
	KeyLen     uint32
	SaltLen    int
}

// DefaultKDFParams возвращает параметры Argon2id по умолчанию.
//
// Достаточно дорого для перебора, но приемлемо для интерактивного копирования.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Algorithm: AlgorithmArgon2id,
		Time:      2,
		MemoryKiB: 64 * 1024, // 64 MiB
		Threads:   2,
		KeyLen:    KeySize,
		SaltLen:   SaltSize,
	}
}

// LegacyKDFParams возвращает параметры PBKDF2, совместимые со старыми хранилищами.
func LegacyKDFParams() KDFParams {
	return KDFParams{
		Algorithm:  AlgorithmPBKDF2,
		Iterations: LegacyPBKDF2Iterations,
		KeyLen:     KeySize,
		SaltLen:    SaltSize,
	}
}

// Validate проверяет, что параметры задают поддерживаемый и ненулевой по стоимости KDF.
func (p KDFParams) Validate() error {
	if p.KeyLen != KeySize {
		return fmt.Errorf("%w: key length %d, want %d", ErrInvalidKDFParams, p.KeyLen, KeySize)
	}
	if p.SaltLen != SaltSize {
		return fmt.Errorf("%w: salt length %d, want %d", ErrInvalidKDFParams, p.SaltLen, SaltSize)
	}
	switch p.Algorithm {
	case AlgorithmArgon2id:
		if p.Time == 0 || p.MemoryKiB == 0 || p.Threads == 0 {
			return fmt.Errorf("%w: argon2id cost must be non-zero", ErrInvalidKDFParams)
		}
	case AlgorithmPBKDF2:
		if p.Iterations <= 0 {
			return fmt.Errorf("%w: pbkdf2 iterations must be positive", ErrInvalidKDFParams)
		}
	default:
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidKDFParams, p.Algorithm)
	}
	return nil
}

// NewSalt генерирует криптографически стойкую соль длиной n байт.
func NewSalt(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("rand salt: %w", err)
	}
	return b, nil
}

// DeriveKey выводит симметричный ключ из password и salt.
//
// Функция детерминирована: одинаковые (password, salt, p) дают одинаковый ключ.
// При невалидных параметрах или соли неправильной длины возвращается ошибка,
// слабый ключ не выдаётся никогда.
func DeriveKey(password string, salt []byte, p KDFParams) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(salt) != p.SaltLen {
		return nil, fmt.Errorf("%w: salt is %d bytes, want %d", ErrInvalidKDFParams, len(salt), p.SaltLen)
	}

	switch p.Algorithm {
	case AlgorithmPBKDF2:
		return pbkdf2.Key([]byte(password), salt, p.Iterations, int(p.KeyLen), sha256.New), nil
	default:
		return argon2.IDKey([]byte(password), salt, p.Time, p.MemoryKiB, p.Threads, p.KeyLen), nil
	}
}

// zeroBytes затирает ключевой материал после использования.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
