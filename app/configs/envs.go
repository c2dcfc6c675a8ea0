package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string

	SessionKey string
	AppAuthKey string
	AppEncKey  string

	MidtransMerchantKey string
	MidtransClientKey   string
	MidtransServerKey   string

	AppURL string
	AppEnv string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found")
	}

	return ENV{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Port:       os.Getenv("APP_PORT"),

		SessionKey: os.Getenv("SESSION_KEY"),
		AppAuthKey: os.Getenv("APP_AUTH_KEY"),
		AppEncKey:  os.Getenv("APP_ENC_KEY"),

		MidtransMerchantKey: os.Getenv("MIDTRANS_MERCHANT_KEY"),
		MidtransClientKey:   os.Getenv("MIDTRANS_CLIENT_KEY"),
		MidtransServerKey:   os.Getenv("MIDTRANS_SERVER_KEY"),

		AppURL: os.Getenv("APP_URL"),
		AppEnv: os.Getenv("APP_ENV"),
	}

}

var LoadENV = LoadEnv()
