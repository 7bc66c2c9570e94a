package config

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/linesmerrill/storefront-api/logging"
	"github.com/linesmerrill/storefront-api/models"
)

// Config holds the project config values
type Config struct {
	Env     string
	Port    string
	BaseURL string

	// StoreBackend picks the key/value backend: mongo, redis, sqlite or memory
	StoreBackend string
	URL          string
	DatabaseName string
	RedisAddr    string
	SQLitePath   string

	AdminPasscode  string
	Business       models.Business
	RequestTimeout time.Duration

	CloudinaryURL    string
	CloudinaryFolder string
	Minio            MinioConfig
}

// MinioConfig holds the optional S3 compatible image bucket settings
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// New sets up all config related services
func New() *Config {
	// a missing .env is fine, the environment wins anyway
	envErr := godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	logger, err := setLogger(v.GetString("ENV"))
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)
	if envErr != nil {
		zap.S().Debugw("no .env file loaded", "error", envErr)
	}

	return &Config{
		Env:            v.GetString("ENV"),
		Port:           v.GetString("PORT"),
		BaseURL:        v.GetString("BASE_URL"),
		StoreBackend:   v.GetString("STORE_BACKEND"),
		URL:            v.GetString("DB_URI"),
		DatabaseName:   v.GetString("DB_NAME"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		SQLitePath:     v.GetString("SQLITE_PATH"),
		AdminPasscode:  v.GetString("ADMIN_PASSCODE"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
		Business: models.Business{
			Name:           v.GetString("BUSINESS_NAME"),
			Town:           v.GetString("BUSINESS_TOWN"),
			Address:        v.GetString("BUSINESS_ADDRESS"),
			CompanyReg:     v.GetString("COMPANY_REG"),
			WhatsAppNumber: v.GetString("WHATSAPP_NUMBER"),
		},
		CloudinaryURL:    v.GetString("CLOUDINARY_URL"),
		CloudinaryFolder: v.GetString("CLOUDINARY_FOLDER"),
		Minio: MinioConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "local")
	v.SetDefault("PORT", "8080")
	v.SetDefault("BASE_URL", "http://localhost:8080")
	v.SetDefault("STORE_BACKEND", "mongo")
	v.SetDefault("DB_URI", "mongodb://127.0.0.1:27017")
	v.SetDefault("DB_NAME", "storefront")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("SQLITE_PATH", "storefront.db")
	v.SetDefault("ADMIN_PASSCODE", "admin")
	v.SetDefault("REQUEST_TIMEOUT", "15s")
	v.SetDefault("BUSINESS_NAME", "Argyll Vehicles Ltd")
	v.SetDefault("BUSINESS_TOWN", "Helensburgh")
	v.SetDefault("BUSINESS_ADDRESS", "Argyll Vehicles Ltd. Pladda Way, Helensburgh, G84 9SE")
	v.SetDefault("COMPANY_REG", "SC856735")
	v.SetDefault("WHATSAPP_NUMBER", "+447950604363")
	v.SetDefault("CLOUDINARY_FOLDER", "storefront")
	v.SetDefault("MINIO_BUCKET", "storefront-images")
}

func setLogger(env string) (*zap.Logger, error) {
	return logging.New(env)
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	resp := models.ErrorMessageResponse{Response: models.MessageError{Message: message}}
	if err != nil {
		resp.Response.Error = err.Error()
		zap.S().With("error", err).Warn(message)
	} else {
		zap.S().Warn(message)
	}
	b, _ := json.Marshal(resp)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	w.Write(b)
}
