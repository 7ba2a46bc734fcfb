package config

import "os"

func IsDebug() bool {
	return os.Getenv("IMEIBOT_DEBUG") == "1"
}
