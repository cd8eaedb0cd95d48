// Package responder serves the hello page.
package responder

import (
	"html/template"
	"net/http"
	"time"

	"hellodock/internal/config"
	"hellodock/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RouteRoot is the only route the responder defines.
const RouteRoot = "/"

const greetingTemplateName = "greeting"

var greetingTemplate = template.Must(template.New(greetingTemplateName).Parse(`
    <h1>🐳 Docker 학습 애플리케이션</h1>
    <p>안녕하세요! Docker 컨테이너에서 실행 중입니다.</p>
    <p>현재 시간: {{.Time}}</p>
{{- if .ShowEnvironment}}
    <p>환경: {{.Environment}}</p>
{{- end}}
    <p>포트: {{.Port}}</p>
`))

// Greeting is the data rendered into the hello page.
type Greeting struct {
	Time            string
	Environment     string
	Port            string
	ShowEnvironment bool
}

type options struct {
	now func() time.Time
}

// Option customises the router.
type Option func(*options)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// GinMode maps an environment name to a gin mode. The mode is process-global
// in gin, so it is set once by the serve command and never by NewRouter.
func GinMode(environment string) string {
	switch environment {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// NewRouter builds the gin engine answering GET /. Anything else gets gin's
// default 404.
func NewRouter(cfg *config.Config, log logrus.FieldLogger, opts ...Option) *gin.Engine {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))
	router.SetHTMLTemplate(greetingTemplate)

	router.GET(RouteRoot, func(c *gin.Context) {
		c.HTML(http.StatusOK, greetingTemplateName, Greeting{
			Time:            FormatKoreanTime(o.now()),
			Environment:     cfg.EnvironmentName(),
			Port:            cfg.PortValue(),
			ShowEnvironment: cfg.ShowEnvironment,
		})
	})

	return router
}

func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			logging.FieldMethod:   c.Request.Method,
			logging.FieldPath:     c.Request.URL.Path,
			logging.FieldStatus:   c.Writer.Status(),
			logging.FieldLatency:  time.Since(start).String(),
			logging.FieldClientIP: c.ClientIP(),
		}).Info("request served")
	}
}
