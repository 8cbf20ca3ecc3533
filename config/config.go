package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port              string
	DBPath            string
	ProfilesCSV       string
	ProfilesXLSX      string
	NoiseSeed         uint64
	BatchLimit        int
	LogLevel          string
	KBAllowedDomains  []string
	KBMaxBytesPerPage int
}

// Load reads .env when present, then the process environment. An empty
// DB_PATH disables persistence.
func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}
	cfg := FromEnv(os.LookupEnv)
	log.Printf("[cfg] %+v", cfg)
	return cfg
}

// FromEnv builds the config from lookup, which has the shape of os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) AppConfig {
	get := func(k, def string) string {
		if v, ok := lookup(k); ok && v != "" {
			return v
		}
		return def
	}
	atoi := func(k string, def int) int {
		n, err := strconv.Atoi(get(k, ""))
		if err != nil {
			return def
		}
		return n
	}

	cfg := AppConfig{
		Port:              get("PORT", "8080"),
		DBPath:            "cropyield.db",
		ProfilesCSV:       get("CROP_PROFILES_CSV", ""),
		ProfilesXLSX:      get("CROP_PROFILES_XLSX", ""),
		BatchLimit:        atoi("BATCH_LIMIT", 8),
		LogLevel:          strings.ToLower(get("LOG_LEVEL", "info")),
		KBMaxBytesPerPage: atoi("KB_MAX_BYTES_PER_PAGE", 1500000),
	}
	if v, ok := lookup("DB_PATH"); ok {
		cfg.DBPath = strings.TrimSpace(v)
	}
	if s, err := strconv.ParseUint(get("NOISE_SEED", "0"), 10, 64); err == nil {
		cfg.NoiseSeed = s
	}
	for _, h := range strings.Split(get("KB_ALLOWED_DOMAINS", ""), ",") {
		if h = strings.TrimSpace(h); h != "" {
			cfg.KBAllowedDomains = append(cfg.KBAllowedDomains, h)
		}
	}
	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = 1
	}
	return cfg
}
