package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	db, err := gorm.Open(postgres.Open(Cfg.DBURL), &gorm.Config{})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}
