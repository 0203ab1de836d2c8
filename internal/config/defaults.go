package config

import (
	"runtime"
	"time"
)

// Argon2 defaults. They match the cost of hashes already stored by the
// previous deployment (m=15000,t=2,p=1).
const (
	DefaultHashMemory      uint32 = 15000
	DefaultHashIterations  uint32 = 2
	DefaultHashParallelism uint8  = 1
	DefaultHashSaltLength  uint32 = 16
	DefaultHashKeyLength   uint32 = 32
	DefaultRealm                  = "user"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "dev",
		},
		Auth: Auth{
			HashMemory:      DefaultHashMemory,
			HashIterations:  DefaultHashIterations,
			HashParallelism: DefaultHashParallelism,
			HashSaltLength:  DefaultHashSaltLength,
			HashKeyLength:   DefaultHashKeyLength,
			Realm:           DefaultRealm,
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: 10},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Workers: Workers{
			VerifyPoolSize:  runtime.NumCPU(),
			VerifyQueueSize: 64,
		},
	}
}
