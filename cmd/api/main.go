package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/hwprobe/hwprobe/internal/api"
	"github.com/hwprobe/hwprobe/internal/collect"
	"github.com/hwprobe/hwprobe/internal/privilege"
)

func main() {
	if err := privilege.Check(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	viper.SetDefault("listen_addr", ":8080")
	viper.BindEnv("listen_addr", "HWPROBE_LISTEN_ADDR")

	apiHandler := api.NewAPIHandler(collect.New())

	r := gin.Default()

	reportGroup := r.Group("/report")
	{
		reportGroup.GET("", apiHandler.GetReport)
		reportGroup.GET("/sections/:name", apiHandler.GetSection)
	}
	r.GET("/health", apiHandler.Health)

	if err := r.Run(viper.GetString("listen_addr")); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
