package conf

import (
	"os"
	"time"
)

// Env-based configuration in the style of the rest of this package. Every
// getter has a sane default so local development works with a minimal .env.

func GetS3Region() string {
	return getEnvOr("S3_REGION", "eu-central-1")
}

func GetSubmBucket() string {
	return getEnvOr("S3_SUBM_BUCKET", "newmoodle-uploads")
}

func GetOpenAIBaseURL() string {
	return getEnvOr("OPENAI_BASE_URL", "https://api.openai.com")
}

func GetOpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func GetOpenAITextModel() string {
	return getEnvOr("OPENAI_TEXT_MODEL", "gpt-4o-mini")
}

func GetOpenAIVisionModel() string {
	return getEnvOr("OPENAI_VISION_MODEL", "gpt-4o-mini")
}

func GetVisionEndpoint() string {
	return getEnvOr("VISION_ENDPOINT", "https://vision.googleapis.com/v1/images:annotate")
}

func GetVisionKey() string {
	return os.Getenv("VISION_API_KEY")
}

func GetLLMTimeout() time.Duration {
	return getDurationOr("LLM_TIMEOUT", 60*time.Second)
}

func GetOCRTimeout() time.Duration {
	return getDurationOr("OCR_TIMEOUT", 30*time.Second)
}

// GetFeedbackOCRMode reports whether image submissions should be run through
// the OCR provider and reviewed as text instead of being attached to a
// vision-capable model.
func GetFeedbackOCRMode() bool {
	return os.Getenv("FEEDBACK_OCR_MODE") == "true"
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
