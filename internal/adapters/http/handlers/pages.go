package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/portfolio/internal/adapters/http/dto"
	"github.com/jsamuelsen/portfolio/internal/app"
	"github.com/jsamuelsen/portfolio/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// homePosts is how many recent posts the landing page lists.
const homePosts = 3

// PageHandler renders the server-side HTML pages.
type PageHandler struct {
	service   *app.ContentService
	templates *template.Template
}

// NewPageHandler parses the embedded templates. It panics if they are
// malformed, which only a broken build can cause. The engine serving the
// pages must be given Templates with SetHTMLTemplate.
func NewPageHandler(service *app.ContentService) *PageHandler {
	return &PageHandler{
		service:   service,
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

type page struct {
	Title   string
	Profile domain.Profile
}

type homePage struct {
	page
	Projects []domain.Item
	Posts    []domain.Item
}

type blogPage struct {
	page
	Filter     domain.FilterState
	Categories []string
	Posts      []domain.Item
}

type postPage struct {
	page
	Post domain.Item
	Body template.HTML
}

type errorPage struct {
	page
	Heading string
	Message string
}

// Templates returns the parsed page templates.
func (h *PageHandler) Templates() *template.Template {
	return h.templates
}

// Home handles GET /.
func (h *PageHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	projects := make([]domain.Item, 0)
	for _, p := range h.service.Items(domain.KindProject) {
		if p.Featured {
			projects = append(projects, p)
		}
	}

	posts := h.service.List(ctx, domain.KindPost, domain.DefaultFilterState())
	if len(posts) > homePosts {
		posts = posts[:homePosts]
	}

	c.HTML(http.StatusOK, "home", homePage{
		page:     h.page("Home"),
		Projects: projects,
		Posts:    posts,
	})
}

// Blog handles GET /blog with optional category and q parameters.
func (h *PageHandler) Blog(c *gin.Context) {
	var q dto.ListQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		h.renderError(c, http.StatusBadRequest, "Search not possible",
			"That search could not be run. Check the query and try again.")

		return
	}

	filter := q.FilterState()

	c.HTML(http.StatusOK, "blog", blogPage{
		page:       h.page("Blog"),
		Filter:     filter,
		Categories: h.service.Categories(domain.KindPost),
		Posts:      h.service.List(c.Request.Context(), domain.KindPost, filter),
	})
}

// Post handles GET /blog/:slug. Unknown slugs render the not-found page.
func (h *PageHandler) Post(c *gin.Context) {
	post, err := h.service.Get(c.Request.Context(), domain.KindPost, c.Param("slug"))
	if err != nil {
		if domain.IsNotFound(err) {
			h.NotFound(c)
			return
		}

		h.renderError(c, http.StatusInternalServerError, "Something went wrong",
			"The post could not be loaded. Please try again later.")

		return
	}

	c.HTML(http.StatusOK, "post", postPage{
		page: h.page(post.Title),
		Post: post,
		// Rendered by goldmark without raw HTML passthrough.
		Body: template.HTML(post.BodyHTML), //nolint:gosec // trusted, rendered at load
	})
}

// NotFound renders the 404 page.
func (h *PageHandler) NotFound(c *gin.Context) {
	h.renderError(c, http.StatusNotFound, "Page not found", "The page you were looking for does not exist.")
}

func (h *PageHandler) page(title string) page {
	return page{Title: title, Profile: h.service.Profile()}
}

func (h *PageHandler) renderError(c *gin.Context, status int, heading, message string) {
	c.HTML(status, "error", errorPage{
		page:    h.page(heading),
		Heading: heading,
		Message: message,
	})
}

// RegisterRoutes registers the HTML pages on rg.
func (h *PageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Home)
	rg.GET("/blog", h.Blog)
	rg.GET("/blog/:slug", h.Post)
}
