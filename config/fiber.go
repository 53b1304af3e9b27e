package config

import (
	"os"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

func GetFiberHttpPort() string {
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

func GetFiberListenAddress() string {
	return ":" + GetFiberHttpPort()
}

func NewFiberConfig() fiber.Config {
	return fiber.Config{
		AppName:     "schoolhub",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	}
}
