package resend

// DefaultBaseURL is the Resend API endpoint.
const DefaultBaseURL = "https://api.resend.com"

// Config holds Resend email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey      string `env:"RESEND_API_KEY"`
	SenderEmail string `env:"MAIL_FROM"`
	SenderName  string `env:"MAIL_FROM_NAME"`
	BaseURL     string `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com"`
}
