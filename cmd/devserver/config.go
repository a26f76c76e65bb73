package main

import "time"

type Config struct {
	Host          string        `env:"HOST,default=localhost"`
	Port          int           `env:"PORT,default=5000"`
	SessionSecret string        `env:"SESSION_SECRET,required=true"`
	SessionTTL    time.Duration `env:"SESSION_TTL,default=24h"`
	OtpTTL        time.Duration `env:"OTP_TTL,default=1m"`
	OtpHashMemory int           `env:"OTP_HASH_MEMORY_KIB,default=16384"`
	OtpHashPasses int           `env:"OTP_HASH_PASSES,default=2"`
	LogLevel      string        `env:"LOG_LEVEL,default=INFO"`
}
