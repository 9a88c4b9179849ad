package application

import (
	"github.com/spf13/viper"
)

// Config holds the notification dispatcher settings. The api key is
// deliberately allowed to be empty at load time so the rest of the api can
// start without it - the dispatcher rejects requests until it is set.
type Config struct {
	APIKey    string
	ToEmail   string
	FromName  string
	FromEmail string
	SiteURL   string
}

func LoadConfig() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APPLICATIONS_TO_EMAIL", "apply@letme.com")
	v.SetDefault("FROM_NAME", "LetMe")
	v.SetDefault("FROM_EMAIL", "applications@letme.com")

	return Config{
		APIKey:    v.GetString("SENDGRID_API_KEY"),
		ToEmail:   v.GetString("APPLICATIONS_TO_EMAIL"),
		FromName:  v.GetString("FROM_NAME"),
		FromEmail: v.GetString("FROM_EMAIL"),
		SiteURL:   v.GetString("SITE_URL"),
	}
}
