package server

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"quwastudio/internal/middleware"
	"quwastudio/internal/modules/booking"
	"quwastudio/internal/web"
	"quwastudio/internal/web/handlers"
)

type Options struct {
	SubmitTimeout  time.Duration
	AdminToken     string
	CORSOrigins    []string
	CSRFAuthKey    []byte
	CookieSecure   bool
	RequestLogging bool
}

// NewHandler builds the gin engine and wraps it in CSRF protection.
func NewHandler(svc *booking.Service, opts Options) (http.Handler, error) {
	r := gin.New()
	r.Use(middleware.RequestID())
	if opts.RequestLogging {
		r.Use(gin.Logger())
	}
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(opts.CORSOrigins))

	static, err := web.Static()
	if err != nil {
		return nil, err
	}
	r.StaticFS("/static", http.FS(static))

	handlers.NewPages(svc, opts.SubmitTimeout).RegisterRoutes(r)

	bookingHandler := booking.NewHandler(svc, opts.SubmitTimeout)

	v1 := r.Group("/api/v1")
	{
		bookingHandler.RegisterRoutes(v1)

		admin := v1.Group("/admin")
		admin.Use(middleware.AdminTokenAuth(opts.AdminToken))
		bookingHandler.RegisterAdminRoutes(admin)
	}

	protect := middleware.CSRF(opts.CSRFAuthKey, opts.CookieSecure, trustedOrigins(opts.CORSOrigins))
	return protect(r), nil
}

// trustedOrigins turns configured origins into the host form gorilla/csrf
// compares against.
func trustedOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			out = append(out, u.Host)
			continue
		}
		out = append(out, o)
	}
	return out
}
