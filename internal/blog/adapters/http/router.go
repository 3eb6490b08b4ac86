// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"goblog/internal/blog/adapters/http/auth"
	"goblog/internal/blog/adapters/http/blog"
	"goblog/internal/blog/adapters/http/middleware"
	"goblog/internal/blog/adapters/http/session"
	svc "goblog/internal/blog/ports/services"
	"goblog/internal/blog/ports/view"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	users svc.UserService,
	posts svc.PostService,
	signer svc.CookieSigner,
	renderer view.Renderer,
	cookieName string,
) {
	sessions := session.NewManager(signer, cookieName)
	authHandler := auth.NewHandler(users, sessions, renderer)
	blogHandler := blog.NewHandler(posts, renderer)

	// Middleware для всех запросов. Формат идет до сеанса: он переписывает
	// путь до маршрутизации, срезая суффикс ".json".
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(middleware.NewFormatMiddleware())
	app.Use(middleware.NewSessionMiddleware(signer, users, cookieName))

	app.Get("/", blogHandler.Root)

	// Учетные записи.
	app.Get("/signup", authHandler.SignupForm)
	app.Post("/signup", authHandler.Signup)
	app.Get("/login", authHandler.LoginForm)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)
	app.Get("/welcome", authHandler.Welcome)

	// Блог. Маршрут с параметром регистрируется последним, чтобы
	// /blog/newpost и /blog/flush не съедались как :post_id.
	blogRoutes := app.Group("/blog")
	blogRoutes.Get("/", blogHandler.Front)
	blogRoutes.Get("/newpost", blogHandler.NewPostForm)
	blogRoutes.Post("/newpost", blogHandler.CreatePost)
	blogRoutes.Get("/flush", blogHandler.Flush)
	blogRoutes.Get("/:post_id", blogHandler.Show)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
