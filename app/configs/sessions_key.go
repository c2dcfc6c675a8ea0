package configs

import (
	"encoding/base64"
	"fmt"

	"github.com/gorilla/securecookie"
)

// GenerateAndPrintSessionKeys prints fresh cookie auth/encryption keys for
// the .env file.
func GenerateAndPrintSessionKeys() error {
	authKey := securecookie.GenerateRandomKey(64)
	if authKey == nil {
		return fmt.Errorf("failed to generate auth key")
	}
	encKey := securecookie.GenerateRandomKey(32)
	if encKey == nil {
		return fmt.Errorf("failed to generate encryption key")
	}

	fmt.Printf("APP_AUTH_KEY=%s\n", base64.StdEncoding.EncodeToString(authKey))
	fmt.Printf("APP_ENC_KEY=%s\n", base64.StdEncoding.EncodeToString(encKey))
	return nil
}
