package crypto

// EncryptContent шифрует содержимое записи паролем и возвращает конверт.
//
// Алгоритм:
//  1. генерирует новую соль и новый IV (никогда не переиспользуются);
//  2. выводит ключ DeriveKey(password, salt, p);
//  3. шифрует AES-256-CBC с PKCS#7-паддингом;
//  4. кодирует base64(salt || iv || ciphertext).
//
// Пароль нигде не сохраняется: он нужен при каждой расшифровке и перешифровке.
func EncryptContent(password, plaintext string, p KDFParams) (string, error) {
	salt, err := NewSalt(SaltSize)
	if err != nil {
		return "", err
	}
	iv, err := NewIV()
	if err != nil {
		return "", err
	}

	key, err := DeriveKey(password, salt, p)
	if err != nil {
		return "", err
	}
	defer zeroBytes(key)

	ciphertext, err := EncryptCBC(key, iv, []byte(plaintext))
	if err != nil {
		return "", err
	}
	return EncodeEnvelope(salt, iv, ciphertext)
}
