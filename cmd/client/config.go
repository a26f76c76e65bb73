package main

import "time"

type Config struct {
	BackendURL     string        `env:"CHAT_BACKEND_URL,default=http://localhost:5000"`
	Timeout        time.Duration `env:"CHAT_TIMEOUT,default=30s"`
	ConfirmReset   bool          `env:"CHAT_CONFIRM_RESET,default=true"`
	BufferSize     int           `env:"CHAT_BUFFER_SIZE,default=16"`
	BadgerFilepath string        `env:"BADGER_FILEPATH,default=.hr-chat"`
	LogLevel       string        `env:"LOG_LEVEL,default=WARN"`
	Colors         bool          `env:"COLORS,default=true"`
}
