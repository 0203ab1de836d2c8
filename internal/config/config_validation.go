// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] can be used at
// startup. It returns one of the ErrInvalid*Configs sentinels wrapped with
// the offending detail.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.MaxOpenConns < 0 {
		return fmt.Errorf("%w: max open connections is negative", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: HTTP address is empty", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Workers.VerifyPoolSize <= 0 || cfg.Workers.VerifyQueueSize <= 0 {
		return fmt.Errorf("%w: pool size %d and queue size %d must be positive",
			ErrInvalidWorkerConfigs, cfg.Workers.VerifyPoolSize, cfg.Workers.VerifyQueueSize)
	}

	a := cfg.Auth
	if a.HashMemory == 0 || a.HashIterations == 0 || a.HashParallelism == 0 {
		return fmt.Errorf("%w: hash memory, iterations and parallelism must be positive", ErrInvalidAuthConfigs)
	}
	if a.HashMemory < 8*uint32(a.HashParallelism) {
		return fmt.Errorf("%w: hash memory must be at least 8 KiB per lane", ErrInvalidAuthConfigs)
	}
	if a.HashSaltLength < 8 || a.HashKeyLength < 16 {
		return fmt.Errorf("%w: salt must be at least 8 bytes and key at least 16 bytes", ErrInvalidAuthConfigs)
	}
	if a.Realm == "" {
		return fmt.Errorf("%w: realm is empty", ErrInvalidAuthConfigs)
	}

	return nil
}
