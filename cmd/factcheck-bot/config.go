// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/factcheck-bot/pkg/types"
)

// configValue resolves a credential: flags and environment (via viper)
// take precedence over the config file, which takes precedence over a
// file in the secrets directory.
func configValue(viperKey, secretKey string) string {
	if v := viper.GetString(viperKey); v != "" {
		return v
	}
	return loadedSecrets[secretKey]
}

// loadConfig assembles the full bot configuration from viper and the
// loaded secrets. Defaults are registered in initConfig.
func loadConfig() types.BotConfig {
	httpCfg := types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: viper.GetString("http.user_agent"),
	}

	model := configValue("scoring.model", "scoring-model")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return types.BotConfig{
		Search: types.SearchConfig{
			HTTPConfig: httpCfg,
			APIKey:     configValue("search.api_key", "search-api-key"),
			EngineID:   configValue("search.engine_id", "search-engine-id"),
			MaxResults: viper.GetInt("search.max_results"),
		},
		Scoring: types.ScoringConfig{
			HTTPConfig:  httpCfg,
			APIKey:      configValue("scoring.api_key", "scoring-api-key"),
			Model:       model,
			BaseURL:     configValue("scoring.base_url", "scoring-base-url"),
			MaxClaimLen: viper.GetInt("scoring.max_claim_len"),
		},
		Telegram: types.TelegramConfig{
			HTTPConfig:  httpCfg,
			Token:       configValue("telegram.token", "telegram-bot-token"),
			APIBase:     viper.GetString("telegram.api_base"),
			MaxAttempts: viper.GetInt("telegram.max_attempts"),
			RetryDelay:  viper.GetDuration("telegram.retry_delay"),
		},
		Pipeline: types.PipelineConfig{
			MaxQueryLen: viper.GetInt("pipeline.max_query_len"),
			MinScore:    viper.GetInt("pipeline.min_score"),
			MaxSources:  viper.GetInt("pipeline.max_sources"),
		},
		Server: types.ServerConfig{
			Addr:              viper.GetString("server.addr"),
			MaxConcurrentRuns: viper.GetInt("server.max_concurrent_runs"),
		},
	}
}
