package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port                string
	DBPath              string
	WorkbookDir         string
	AdminUIDs           map[string]bool
	GuideAllowedDomains []string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	admins := map[string]bool{}
	for _, u := range strings.Split(get("ADMIN_UIDS", "U_DEV_DEFAULT"), ",") {
		if u = strings.TrimSpace(u); u != "" {
			admins[u] = true
		}
	}
	var domains []string
	for _, d := range strings.Split(get("GUIDE_ALLOWED_DOMAINS", ""), ",") {
		if d = strings.TrimSpace(d); d != "" {
			domains = append(domains, strings.ToLower(d))
		}
	}
	cfg := AppConfig{
		Port:                get("PORT", "8080"),
		DBPath:              get("DB_PATH", "cropbook.db"),
		WorkbookDir:         get("WORKBOOK_DIR", "./workbooks"),
		AdminUIDs:           admins,
		GuideAllowedDomains: domains,
	}
	log.Printf("[cfg] port=%s db=%s workbooks=%s admins=%d", cfg.Port, cfg.DBPath, cfg.WorkbookDir, len(cfg.AdminUIDs))
	return cfg
}
