package main

import (
	"fmt"
	"log"

	"homegnome/app"
	"homegnome/app/jobs/sessionjob"
	"homegnome/config"
	"homegnome/config/appconf"
	"homegnome/internal/dbconn"
	"homegnome/internal/validator"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	db, err := dbconn.GetConn(
		dbconn.WithURL(appconf.DBURL()),
	)
	if err != nil {
		log.Fatal("db connection failed", err)
	}

	defer dbconn.Close()

	container := app.NewContainer(db)

	if err := container.Migrate(); err != nil {
		log.Fatal("migration failed", err)
	}

	e := echo.New()
	e.Validator = validator.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	config.AddRoutes(e, container)

	sessionjob.Register(container.Sessions)

	log.Fatal(e.Start(fmt.Sprintf(":%s", appconf.Port())))
}
