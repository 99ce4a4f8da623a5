// Package production contains production configuration of the app
package production

import (
	"os"
	"strings"

	"homegnome/config"
)

type prodconf struct{}

func New() config.AppConfiger {
	return prodconf{}
}

func (pc prodconf) GetPort() string {
	appPort := os.Getenv("HG_APP_PORT")
	if strings.TrimSpace(appPort) == "" {
		appPort = "8080"
	}
	return appPort
}

func (pc prodconf) GetDBURL() string {
	dbURL := os.Getenv("HG_DB_URL")
	if strings.TrimSpace(dbURL) == "" {
		dbURL = "file:/var/lib/homegnome/storage/homegnome.db"
	}
	return dbURL
}

func (pc prodconf) GetServerURL() string {
	serverURL := os.Getenv("HG_SERVER_URL")
	if strings.TrimSpace(serverURL) == "" {
		serverURL = "http://localhost:8080"
	}
	return serverURL
}
