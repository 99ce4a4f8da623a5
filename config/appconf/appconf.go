// Package appconf contains app related configurations
package appconf

import (
	"os"

	"homegnome/config"
	devconf "homegnome/config/environments/development"
	prodconf "homegnome/config/environments/production"
)

var appconf config.AppConfiger

func Port() string {
	return appconf.GetPort()
}

func DBURL() string {
	return appconf.GetDBURL()
}

func ServerURL() string {
	return appconf.GetServerURL()
}

func init() {
	switch os.Getenv("APP_ENV") {
	case "production":
		appconf = prodconf.New()
	case "development":
		appconf = devconf.New()
	default:
		appconf = devconf.New()
	}
}
