package config

import "crypto/rand"

func randomSecret() []byte {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// rand nunca deve falhar; chave fixa apenas para dev
		return []byte("balcao-dev-secret")
	}
	return b
}
