package Config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// Settings is the runtime configuration. Values come from .env (or the
// process environment), with an optional config.json5 overlay for local
// tweaks that should not live in the environment.
type Settings struct {
	APIBaseURL     string        `json:"apiBaseUrl"`
	ListenAddr     string        `json:"listenAddr"`
	DBPath         string        `json:"dbPath"`
	SessionSecret  string        `json:"sessionSecret"`
	SyncSpec       string        `json:"syncSpec"`
	DigestSpec     string        `json:"digestSpec"`
	SlackToken     string        `json:"slackToken"`
	SlackChannel   string        `json:"slackChannel"`
	RequestTimeout time.Duration `json:"-"`
	LogFile        string        `json:"logFile"`
}

// Load reads .env, the environment and an optional config.json5 file.
// A missing .env is fine; a malformed json5 file is not.
func Load() (Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment")
	}

	settings := Settings{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:5000/api"),
		ListenAddr:     getEnv("LISTEN_ADDR", ":3001"),
		DBPath:         getEnv("DB_PATH", "momentum.db"),
		SessionSecret:  getEnv("SESSION_SECRET", ""),
		SyncSpec:       getEnv("SYNC_SPEC", "0 */15 * * * *"),
		DigestSpec:     getEnv("DIGEST_SPEC", "0 0 8 * * *"),
		SlackToken:     getEnv("SLACK_BOT_TOKEN", ""),
		SlackChannel:   getEnv("SLACK_CHANNEL_ID", ""),
		RequestTimeout: 30 * time.Second,
		LogFile:        getEnv("LOG_FILE", ""),
	}

	if path := getEnv("CONFIG_FILE", "config.json5"); path != "" {
		if err := overlayFile(path, &settings); err != nil {
			return Settings{}, err
		}
	}

	return settings, nil
}

func overlayFile(path string, settings *Settings) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	return json5.NewDecoder(f).Decode(settings)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
