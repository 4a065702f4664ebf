package main

import (
	"log"

	"littlelemon/internal/pkg"
)

// @title Little Lemon Restaurant API
// @version 1.0
// @description API ресторана Little Lemon: меню, корзина, заказы и бронирование столиков
// @host 127.0.0.1:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Введите JWT токен в формате: Bearer {token}

func main() {
	log.Println("Application start!")
	pkg.App()
	log.Println("Application terminated!")
}
