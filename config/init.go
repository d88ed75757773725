package config

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"

	"hotelcart/middleware"
)

// InitApp tạo router (kèm CORS), melody cho websocket và bộ lập lịch cron
func InitApp(s *Settings) (*gin.Engine, *melody.Melody, *cron.Cron) {
	if s.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders(middleware.SessionHeader)
	configCors.AddExposeHeaders(middleware.SessionHeader)
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	m := melody.New()
	c := cron.New()
	return router, m, c
}
