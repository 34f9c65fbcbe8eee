package main

import (
	"flag"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yfei-chen/circlefeed/server"
	"github.com/yfei-chen/circlefeed/utils"
	"github.com/yfei-chen/circlefeed/utils/dotenv"
	. "github.com/yfei-chen/circlefeed/utils/log"
)

func main() {
	flag.Parse()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	config := server.ConfigFromEnv()
	if len(config.JWTSecret) == 0 {
		Log.Fatal("JWT_SECRET_KEY must be set")
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		Log.Fatal("fail to connect to DB: ", err)
	}
	utils.DatabaseSetupAndMigration(db)

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()
	router.Use(cors.Default())

	s := server.NewServer(config, db)
	s.RegisterRoutes(router)

	Log.Info("api server starts up on ", config.ListenAddr)
	router.Run(config.ListenAddr)
}
