package handler

import (
	"littlelemon/internal/app/redis"
	"littlelemon/internal/app/repository"
)

type Handler struct {
	Repository  *repository.Repository
	RedisClient *redis.Client
	JWTSecret   string
}

func NewHandler(r *repository.Repository, redisClient *redis.Client, jwtSecret string) *Handler {
	return &Handler{
		Repository:  r,
		RedisClient: redisClient,
		JWTSecret:   jwtSecret,
	}
}
