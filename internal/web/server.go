// Package web serves the portfolio over HTTP with gin and writes the same
// views as a static site.
package web

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kubelouislu/sre-portfolio/internal/article"
	"github.com/kubelouislu/sre-portfolio/internal/content"
	"github.com/kubelouislu/sre-portfolio/internal/lang"
	"github.com/kubelouislu/sre-portfolio/internal/site"
)

const langCookie = "lang"

// Options configures a Server.
type Options struct {
	DefaultLanguage lang.Language
	// VisitorLog enables hashed-IP visit logging.
	VisitorLog  bool
	VisitorSalt string
	// VisitorLogger receives visit lines; nil means the standard logger.
	VisitorLogger *log.Logger
}

type Server struct {
	holder *Holder
	opts   Options
	tmpl   *template.Template
	engine *gin.Engine
}

// NewServer builds the router. gin's mode must be set by the caller.
func NewServer(h *Holder, opts Options) (*Server, error) {
	if _, ok := lang.Parse(string(opts.DefaultLanguage)); !ok {
		opts.DefaultLanguage = lang.Default
	}
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	s := &Server{holder: h, opts: opts, tmpl: tmpl}
	s.engine = s.routes()
	return s, nil
}

func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), RequestID())
	if s.opts.VisitorLog {
		r.Use(NewVisitorLogger(s.opts.VisitorSalt, s.opts.VisitorLogger).Middleware())
		log.Println("Privacy: visit logging enabled with hashed IP addresses")
	}
	r.SetHTMLTemplate(s.tmpl)
	r.StaticFS("/static", http.FS(staticFiles()))

	r.GET("/", s.handleIndex)
	r.GET("/tabs/:tab", s.handleTab)
	r.GET("/thinking", s.handleThinking)
	r.GET("/thinking/:id", s.handleArticle)
	r.POST("/lang/toggle", s.handleToggleLanguage)

	api := r.Group("/api")
	api.GET("/articles", s.handleAPIArticles)
	api.GET("/articles/:id/plan", s.handleAPIPlan)
	api.GET("/tags", s.handleAPITags)
	api.GET("/tokenize", s.handleAPITokenize)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		s.notFound(c, "page not found")
	})
	return r
}

// requestLanguage resolves the language of a request: ?lang=, then the
// lang cookie, then Accept-Language.
func requestLanguage(c *gin.Context, fallback lang.Language) lang.Language {
	if l, ok := lang.Parse(c.Query("lang")); ok {
		return l
	}
	if v, err := c.Cookie(langCookie); err == nil {
		if l, ok := lang.Parse(v); ok {
			return l
		}
	}
	return lang.Negotiate(c.GetHeader("Accept-Language"), fallback)
}

// session builds the view state of one request from its cookie and query.
func (s *Server) session(c *gin.Context) *site.Session {
	selector := lang.New(s.holder.Store(), requestLanguage(c, s.opts.DefaultLanguage))
	return site.NewSession(selector, article.NewTagFilter(c.Query("tag")))
}

func (s *Server) render(c *gin.Context, name string, sess *site.Session) {
	page := buildPage(sess, serverLinks{}, false)
	page.RequestID = c.GetString(requestIDKey)
	c.HTML(http.StatusOK, name, page)
}

func (s *Server) notFound(c *gin.Context, msg string) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": msg})
		return
	}
	c.HTML(http.StatusNotFound, "error", gin.H{
		"Status": http.StatusNotFound,
		"Error":  msg,
	})
}

func (s *Server) handleIndex(c *gin.Context) {
	sess := s.session(c)
	if id := c.Query("article"); id != "" {
		if err := sess.SelectArticle(id); err != nil {
			s.notFound(c, "article not found")
			return
		}
		s.render(c, "page", sess)
		return
	}
	if name := c.Query("tab"); name != "" {
		tab, ok := site.ParseTab(name)
		if !ok {
			s.notFound(c, "unknown tab")
			return
		}
		sess.SelectTab(tab)
	}
	s.render(c, "page", sess)
}

func (s *Server) handleTab(c *gin.Context) {
	tab, ok := site.ParseTab(c.Param("tab"))
	if !ok {
		s.notFound(c, "unknown tab")
		return
	}
	sess := s.session(c)
	sess.SelectTab(tab)
	s.render(c, "tab", sess)
}

func (s *Server) handleThinking(c *gin.Context) {
	sess := s.session(c)
	sess.SelectTab(site.TabThinking)
	s.render(c, "tab", sess)
}

func (s *Server) handleArticle(c *gin.Context) {
	sess := s.session(c)
	if err := sess.SelectArticle(c.Param("id")); err != nil {
		s.notFound(c, "article not found")
		return
	}
	s.render(c, "tab", sess)
}

func (s *Server) handleToggleLanguage(c *gin.Context) {
	next := requestLanguage(c, s.opts.DefaultLanguage).Other()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(langCookie, string(next), 365*24*3600, "/", "", false, true)

	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusSeeOther, safeReturn(c.PostForm("return")))
}

// safeReturn only allows local absolute paths as redirect targets. Browsers
// strip tabs and newlines from URLs, so any control character is refused.
func safeReturn(target string) string {
	if strings.IndexFunc(target, isControl) >= 0 {
		return "/"
	}
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return target
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

func (s *Server) handleAPIArticles(c *gin.Context) {
	sess := s.session(c)
	c.JSON(http.StatusOK, gin.H{
		"language": sess.Lang.Language(),
		"tag":      sess.Tags.Active(),
		"articles": sess.VisibleArticles(),
	})
}

func (s *Server) handleAPIPlan(c *gin.Context) {
	sess := s.session(c)
	a, err := sess.Content().Article(c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			s.notFound(c, err.Error())
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       a.ID,
		"language": sess.Lang.Language(),
		"items":    article.RenderPlan(a, sess.PlanOptions()),
	})
}

func (s *Server) handleAPITags(c *gin.Context) {
	sess := s.session(c)
	c.JSON(http.StatusOK, gin.H{
		"language": sess.Lang.Language(),
		"tags":     sess.AllTags(),
	})
}

func (s *Server) handleAPITokenize(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"runs": article.Tokenize(c.Query("text"))})
}
