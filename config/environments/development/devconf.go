// Package development contains development configuration of the app
package development

import (
	"fmt"
	"os"
	"strings"

	"homegnome/config"
)

type devconf struct{}

func New() config.AppConfiger {
	return devconf{}
}

func (dc devconf) GetPort() string {
	appPort := os.Getenv("HG_APP_PORT")
	if strings.TrimSpace(appPort) == "" {
		appPort = "8080"
	}
	return appPort
}

func (dc devconf) getHost() string {
	host := os.Getenv("HG_SERVER_HOST")
	if strings.TrimSpace(host) == "" {
		host = "localhost"
	}
	return host
}

func (dc devconf) GetDBURL() string {
	dbURL := os.Getenv("HG_DB_URL")
	if strings.TrimSpace(dbURL) == "" {
		dbURL = "file:homegnome.db"
	}
	return dbURL
}

func (dc devconf) GetServerURL() string {
	serverURL := os.Getenv("HG_SERVER_URL")
	if strings.TrimSpace(serverURL) == "" {
		serverURL = fmt.Sprintf("http://%s:%s", dc.getHost(), dc.GetPort())
	}
	return serverURL
}
