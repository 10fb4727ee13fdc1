package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	SessionSecret       string
	DatabaseURL         string
	RedisURL            string
	SupabaseURL         string // e.g. https://<project>.supabase.co — storage API and public URLs
	SupabaseSecretKey   string // must be the service_role key (Dashboard → API), not the anon key
	StorageBucket       string // bucket holding the rendered PDFs
	PublicBaseURL       string // base of the public verification site, embedded in QR codes
	TemplatePath        string // path to the certificate template PDF
	BulkDelayMs         int      // inter-row delay for bulk issuance
	AllowedOrigins      []string // browser origins allowed by CORS
	AllowCrossSiteDev   bool
	AdminEmail          string // seed admin account
	AdminPassword       string
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	bucket := viper.GetString("STORAGE_BUCKET")
	if bucket == "" {
		bucket = "constancias"
	}
	templatePath := viper.GetString("TEMPLATE_PATH")
	if templatePath == "" {
		templatePath = "assets/constancia.pdf"
	}
	bulkDelay := viper.GetInt("BULK_DELAY_MS")
	if bulkDelay <= 0 {
		bulkDelay = 100
	}

	return &Config{
		Env:                 env,
		Port:                port,
		SessionSecret:       viper.GetString("SESSION_SECRET"),
		DatabaseURL:         viper.GetString("DATABASE_URL"),
		RedisURL:            viper.GetString("REDIS_URL"),
		SupabaseURL:         viper.GetString("SUPABASE_URL"),
		SupabaseSecretKey:   viper.GetString("SUPABASE_SECRET_KEY"),
		StorageBucket:       bucket,
		PublicBaseURL:       viper.GetString("PUBLIC_BASE_URL"),
		TemplatePath:        templatePath,
		BulkDelayMs:         bulkDelay,
		AllowedOrigins:      splitOrigins(viper.GetString("CORS_ORIGINS")),
		AllowCrossSiteDev:   strings.EqualFold(viper.GetString("ALLOW_CROSS_SITE_DEV"), "true"),
		AdminEmail:          viper.GetString("ADMIN_EMAIL"),
		AdminPassword:       viper.GetString("ADMIN_PASSWORD"),
	}, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
