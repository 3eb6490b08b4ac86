// Package auth содержит HTTP обработчики регистрации и входа.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goblog/internal/blog/adapters/http/middleware"
	"goblog/internal/blog/adapters/http/session"
	"goblog/internal/blog/domain/entities"
	svc "goblog/internal/blog/ports/services"
	"goblog/internal/blog/ports/view"
	"goblog/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerSignup  = "auth handler: signup"
	LogHandlerLogin   = "auth handler: login"
	LogHandlerLogout  = "auth handler: logout"
	LogHandlerWelcome = "auth handler: welcome"

	ErrorFailedToServeRequest = "failed to serve request"
)

// Сообщения формы регистрации и входа.
const (
	msgInvalidUsername  = "That's not a valid username."
	msgInvalidPassword  = "That wasn't a valid password."
	msgPasswordMismatch = "Your passwords didn't match."
	msgInvalidEmail     = "That's not a valid email."
	msgUserExists       = "That user already exists."
	msgInvalidLogin     = "Invalid login"
)

// Имена шаблонов.
const (
	templateSignup  = "signup-form.html"
	templateLogin   = "login-form.html"
	templateWelcome = "welcome.html"
)

// signupForm - состояние формы регистрации для повторного рендеринга.
type signupForm struct {
	Username      string
	Email         string
	ErrorUsername string
	ErrorPassword string
	ErrorVerify   string
	ErrorEmail    string
}

// loginForm - состояние формы входа.
type loginForm struct {
	Username string
	Error    string
}

// Handler содержит HTTP обработчики учетных записей.
type Handler struct {
	users    svc.UserService
	sessions *session.Manager
	renderer view.Renderer
}

// NewHandler создает новый экземпляр обработчика учетных записей.
func NewHandler(users svc.UserService, sessions *session.Manager, renderer view.Renderer) *Handler {
	return &Handler{
		users:    users,
		sessions: sessions,
		renderer: renderer,
	}
}

func (h *Handler) sendPage(ctx fiber.Ctx, name string, data any) error {
	body, err := h.renderer.Render(name, data)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	if err := ctx.Send(body); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// SignupForm отдает пустую форму регистрации.
func (h *Handler) SignupForm(ctx fiber.Ctx) error {
	return h.sendPage(ctx, templateSignup, signupForm{})
}

// Signup обрабатывает отправку формы регистрации. Ошибки валидации
// возвращают форму с пометками по полям; username и email сохраняются,
// пароли - никогда. Успех начинает сеанс и уводит на страницу приветствия.
func (h *Handler) Signup(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerSignup)

	username := ctx.FormValue("username")
	password := ctx.FormValue("password")
	verify := ctx.FormValue("verify")
	email := ctx.FormValue("email")

	form := signupForm{Username: username, Email: email}

	if password != verify {
		form.ErrorVerify = msgPasswordMismatch
		return h.sendPage(ctx, templateSignup, form)
	}

	user, err := h.users.Register(requestCtx, username, password, email)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrInvalidUsername):
			form.ErrorUsername = msgInvalidUsername
		case errors.Is(err, entities.ErrInvalidPassword):
			form.ErrorPassword = msgInvalidPassword
		case errors.Is(err, entities.ErrInvalidEmail):
			form.ErrorEmail = msgInvalidEmail
		case errors.Is(err, entities.ErrUserAlreadyExists):
			form.ErrorUsername = msgUserExists
		default:
			log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
			return fmt.Errorf("registering user: %w", err)
		}
		return h.sendPage(ctx, templateSignup, form)
	}

	h.sessions.Start(ctx, user.ID)
	return ctx.Redirect().Status(http.StatusFound).To("/welcome")
}

// LoginForm отдает пустую форму входа.
func (h *Handler) LoginForm(ctx fiber.Ctx) error {
	return h.sendPage(ctx, templateLogin, loginForm{})
}

// Login обрабатывает отправку формы входа. Неизвестное имя и неверный
// пароль неразличимы: оба дают одну и ту же пометку на форме.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	username := ctx.FormValue("username")
	password := ctx.FormValue("password")

	user, err := h.users.Authenticate(requestCtx, username, password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return fmt.Errorf("authenticating user: %w", err)
	}
	if user == nil {
		return h.sendPage(ctx, templateLogin, loginForm{Username: username, Error: msgInvalidLogin})
	}

	h.sessions.Start(ctx, user.ID)
	return ctx.Redirect().Status(http.StatusFound).To("/welcome")
}

// Logout завершает сеанс и возвращает на форму регистрации.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerLogout)

	h.sessions.End(ctx)
	return ctx.Redirect().Status(http.StatusFound).To("/signup")
}

// Welcome приветствует вошедшего пользователя; аноним уходит на регистрацию.
func (h *Handler) Welcome(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerWelcome)

	user := middleware.CurrentUser(ctx)
	if user == nil {
		return ctx.Redirect().Status(http.StatusFound).To("/signup")
	}

	return h.sendPage(ctx, templateWelcome, fiber.Map{"Username": user.Name})
}
