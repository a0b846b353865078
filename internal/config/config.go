package config

import "os"

type Config struct {
	Addr      string
	MongoURI  string
	MongoName string
}

// Load reads configuration from the environment with local-development defaults.
// The connection string carries any credentials; nothing is stored elsewhere.
func Load() Config {
	return Config{
		Addr:      getEnv("ADDR", ":8080"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoName: getEnv("MONGO_DB_NAME", "ecommerce_db"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
