package constants

import "os"

func getEnv(name string, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// GetFingeringsPath is empty when the embedded table should be used.
func GetFingeringsPath() string {
	return os.Getenv("FINGERINGS_PATH")
}

func GetInstrument() string {
	return getEnv("INSTRUMENT", "trumpet")
}

func GetDynamoTable() string {
	return os.Getenv("DYNAMO_TABLE")
}

func GetDynamoEndpoint() string {
	return getEnv("DYNAMO_ENDPOINT", "http://localhost:8000")
}

func GetDynamoRegion() string {
	return getEnv("DYNAMO_REGION", "localhost")
}

func GetPort() string {
	return getEnv("PORT", "8080")
}

func GetLogLevel() string {
	return getEnv("LOG_LEVEL", "info")
}

// items requested per Query page
const DynamoPageSize = 100
