package config

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is read from flags, falling back to environment variables (loaded
// from .env by main) and then to the defaults below.
type Config struct {
	Port        int    `help:"HTTP listen port." env:"PORT" default:"5000"`
	Environment string `help:"Deployment mode; controls session cookie policy." env:"APP_ENV" enum:"development,production" default:"development"`
	LogLevel    string `help:"zerolog level." env:"LOG_LEVEL" enum:"trace,debug,info,warn,error" default:"info"`

	DBDriver    string `name:"db-driver" help:"Store driver." env:"DB_DRIVER" enum:"postgres,sqlite" default:"postgres"`
	DatabaseURL string `name:"database-url" help:"Postgres DSN or SQLite file path." env:"DATABASE_URL" default:"host=localhost user=postgres password=password dbname=jobportal port=5432 sslmode=disable"`

	JWTSecret  string        `name:"jwt-secret" help:"HMAC secret for session tokens." env:"JWT_SECRET" required:""`
	SessionTTL time.Duration `name:"session-ttl" help:"Session token lifetime." env:"SESSION_TTL" default:"1h"`

	AllowedOrigins []string `name:"cors-origins" help:"Origins allowed to call the API with credentials." env:"CORS_ORIGINS" default:"http://localhost:5173,https://job-portal-522ac.web.app,https://job-portal-522ac.firebaseapp.com"`

	GeminiAPIKey string `name:"gemini-api-key" help:"Enables POST /jobs/extract when set." env:"GEMINI_API_KEY"`
	GeminiModel  string `name:"gemini-model" env:"GEMINI_MODEL" default:"gemini-2.5-flash"`
}

func (c Config) Production() bool { return c.Environment == EnvProduction }

func (c Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }

// Load parses args (usually os.Args[1:]) into a Config.
func Load(args []string) (Config, error) {
	var cfg Config
	parser, err := kong.New(&cfg,
		kong.Name("job-portal-api"),
		kong.Description("Job portal HTTP API."),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		return cfg, err
	}
	if _, err := parser.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}
