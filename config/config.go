package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App holds all runtime settings, loaded from the environment.
type App struct {
	Port      string `envconfig:"PORT" default:"8080"`
	DBURL     string `envconfig:"DB_URL" required:"true"`
	UploadDir string `envconfig:"UPLOAD_DIR" default:"./uploads"`

	// Super-admin credential checked before any salon/staff lookup on login.
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@salonbook.mn"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

var Cfg App

func Load() error {
	return envconfig.Process("", &Cfg)
}
