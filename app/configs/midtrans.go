package configs

import (
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// NewSnapClient builds the Midtrans Snap client from the loaded env.
// Sandbox unless APP_ENV=production.
func NewSnapClient() snap.Client {
	env := midtrans.Sandbox
	if LoadENV.AppEnv == "production" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(LoadENV.MidtransServerKey, env)

	midtrans.ServerKey = LoadENV.MidtransServerKey
	midtrans.ClientKey = LoadENV.MidtransClientKey
	midtrans.Environment = env

	return client
}
