package config

import (
	"encoding/json"
	"log"
	"os"
)

type Configuration struct {
	ApiPort string `json:"api_port"`
	LogPath string `json:"log_path"`

	Database string `json:"database"` // "sqlite3" ou "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	// Endpoint da API da LINE. As credenciais do canal NÃO ficam aqui:
	// vivem na tabela Setting, mutáveis só pelo /admin/config.
	LineEndpoint string `json:"line_endpoint"`

	ReplyMode     string `json:"reply_mode"` // "echo" ou "quote"
	QuoteEndpoint string `json:"quote_endpoint"`

	Dispatcher struct {
		BaseURL       string `json:"base_url"` // onde estão os endpoints /tasks/*
		PollMs        int    `json:"poll_ms"`
		MaxAttempts   int    `json:"max_attempts"`
		ClaimTimeoutS int    `json:"claim_timeout_seconds"`
	} `json:"dispatcher"`
}

func Get(path string) Configuration {
	var c Configuration

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("config file %s not found, using defaults", path)
	} else if err != nil {
		log.Fatal(err)
	} else if err := json.Unmarshal(b, &c); err != nil {
		log.Fatal(err)
	}

	// defaults (pra evitar nil/zero chato)
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.LineEndpoint == "" {
		c.LineEndpoint = "https://trialbot-api.line.me"
	}
	if c.ReplyMode == "" {
		c.ReplyMode = "echo"
	}
	if c.Dispatcher.BaseURL == "" {
		c.Dispatcher.BaseURL = "http://127.0.0.1:" + c.ApiPort
	}
	if c.Dispatcher.PollMs <= 0 {
		c.Dispatcher.PollMs = 1000
	}
	if c.Dispatcher.MaxAttempts <= 0 {
		c.Dispatcher.MaxAttempts = 5
	}
	if c.Dispatcher.ClaimTimeoutS <= 0 {
		c.Dispatcher.ClaimTimeoutS = 120
	}

	return c
}
