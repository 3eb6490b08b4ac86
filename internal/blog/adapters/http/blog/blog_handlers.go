// Package blog содержит HTTP обработчики ленты и постов.
package blog

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goblog/internal/blog/adapters/http/middleware"
	"goblog/internal/blog/domain/entities"
	svc "goblog/internal/blog/ports/services"
	"goblog/internal/blog/ports/view"
	"goblog/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerFront      = "blog handler: front page"
	LogHandlerShow       = "blog handler: permalink"
	LogHandlerCreatePost = "blog handler: create post"
	LogHandlerFlush      = "blog handler: flush cache"

	ErrorFailedToServeRequest = "failed to serve request"
)

const (
	msgMissingFields = "subject and content, please!"
	msgNotFound      = "404 Not Found"
	rootGreeting     = "Hello, and welcome to the blog!"
)

// Имена шаблонов.
const (
	templateFront     = "front.html"
	templatePermalink = "permalink.html"
	templateNewPost   = "newpost.html"
)

// frontItem - пост ленты для HTML шаблона: представление плюс
// идентификатор для ссылки на постоянную страницу.
type frontItem struct {
	ID int64
	entities.PostView
}

// newPostForm - состояние формы нового поста для повторного рендеринга.
type newPostForm struct {
	Subject string
	Content string
	Error   string
}

// Handler содержит HTTP обработчики блога.
type Handler struct {
	posts    svc.PostService
	renderer view.Renderer
}

// NewHandler создает новый экземпляр обработчика блога.
func NewHandler(posts svc.PostService, renderer view.Renderer) *Handler {
	return &Handler{
		posts:    posts,
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

func sendNotFound(ctx fiber.Ctx) error {
	if middleware.ResponseFormat(ctx) == middleware.FormatJSON {
		if err := ctx.Status(http.StatusNotFound).JSON(fiber.Map{"error": msgNotFound}); err != nil {
			return fmt.Errorf("sending not found response: %w", err)
		}
		return nil
	}
	if err := ctx.Status(http.StatusNotFound).SendString(msgNotFound); err != nil {
		return fmt.Errorf("sending not found response: %w", err)
	}
	return nil
}

// Root отдает приветствие корневой страницы.
func (h *Handler) Root(ctx fiber.Ctx) error {
	if err := ctx.SendString(rootGreeting); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Front отдает ленту постов, новые первыми, с возрастом кэша в секундах.
// JSON вариант возвращает список структурированных представлений без возраста.
func (h *Handler) Front(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerFront)

	posts, age, err := h.posts.FrontPosts(requestCtx, false)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return fmt.Errorf("loading front posts: %w", err)
	}

	if middleware.ResponseFormat(ctx) == middleware.FormatJSON {
		views := make([]entities.PostView, 0, len(posts))
		for _, post := range posts {
			views = append(views, post.View())
		}
		if err := ctx.JSON(views); err != nil {
			return fmt.Errorf("sending response: %w", err)
		}
		return nil
	}

	items := make([]frontItem, 0, len(posts))
	for _, post := range posts {
		items = append(items, frontItem{ID: post.ID, PostView: post.View()})
	}

	return h.sendPage(ctx, templateFront, fiber.Map{
		"Posts":       items,
		"Age":         int64(age.Seconds()),
		"CurrentUser": middleware.CurrentUser(ctx),
	})
}

// Show отдает страницу одного поста. Нечисловой и несуществующий
// идентификаторы неразличимы для клиента: оба дают 404.
func (h *Handler) Show(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerShow)

	postID, err := strconv.ParseInt(ctx.Params("post_id"), 10, 64)
	if err != nil {
		return sendNotFound(ctx)
	}

	post, age, err := h.posts.GetPost(requestCtx, postID)
	if err != nil {
		if errors.Is(err, entities.ErrPostNotFound) {
			return sendNotFound(ctx)
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return fmt.Errorf("loading post: %w", err)
	}

	if middleware.ResponseFormat(ctx) == middleware.FormatJSON {
		if err := ctx.JSON(post.View()); err != nil {
			return fmt.Errorf("sending response: %w", err)
		}
		return nil
	}

	return h.sendPage(ctx, templatePermalink, fiber.Map{
		"Post": post.View(),
		"Age":  int64(age.Seconds()),
	})
}

// NewPostForm отдает форму нового поста; аноним уходит на вход.
func (h *Handler) NewPostForm(ctx fiber.Ctx) error {
	if middleware.CurrentUser(ctx) == nil {
		return ctx.Redirect().Status(http.StatusFound).To("/login")
	}
	return h.sendPage(ctx, templateNewPost, newPostForm{})
}

// CreatePost публикует новый пост и уводит на его страницу.
// Пустые subject или content возвращают форму с введенными значениями.
func (h *Handler) CreatePost(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreatePost)

	if middleware.CurrentUser(ctx) == nil {
		return ctx.Redirect().Status(http.StatusFound).To("/login")
	}

	subject := ctx.FormValue("subject")
	content := ctx.FormValue("content")

	post, err := h.posts.Publish(requestCtx, subject, content)
	if err != nil {
		if errors.Is(err, entities.ErrEmptySubject) || errors.Is(err, entities.ErrEmptyContent) {
			return h.sendPage(ctx, templateNewPost, newPostForm{
				Subject: subject,
				Content: content,
				Error:   msgMissingFields,
			})
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return fmt.Errorf("publishing post: %w", err)
	}

	return ctx.Redirect().Status(http.StatusFound).To(fmt.Sprintf("/blog/%d", post.ID))
}

// Flush очищает бэкенд кэша целиком и возвращает на ленту.
func (h *Handler) Flush(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerFlush)

	if err := h.posts.FlushCache(requestCtx); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return fmt.Errorf("flushing cache: %w", err)
	}

	return ctx.Redirect().Status(http.StatusFound).To("/blog")
}
