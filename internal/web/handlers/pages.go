package handlers

import (
	"errors"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	g "maragu.dev/gomponents"

	"quwastudio/internal/modules/booking"
	"quwastudio/internal/web/components"
	"quwastudio/internal/web/ui"
)

type Pages struct {
	submitter     ui.Submitter
	submitTimeout time.Duration
	rng           func() *rand.Rand
}

func NewPages(submitter ui.Submitter, submitTimeout time.Duration) *Pages {
	return &Pages{
		submitter:     submitter,
		submitTimeout: submitTimeout,
		rng: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
}

func (p *Pages) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", p.LandingPage)
	r.POST("/booking", p.SubmitBooking)
	r.GET("/health", Health)
}

// LandingPage handles GET /
func (p *Pages) LandingPage(c *gin.Context) {
	modal := ui.NewModal(p.submitter)
	if c.Query("book") == "1" {
		modal.Open()
	}
	p.render(c, http.StatusOK, modal)
}

// SubmitBooking handles POST /booking for clients without script.
func (p *Pages) SubmitBooking(c *gin.Context) {
	var req booking.SubmitBookingRequest
	status := http.StatusOK

	modal := ui.NewModal(p.submitter)
	modal.Open()

	booking.LimitBody(c.Writer, c.Request)
	if err := c.ShouldBind(&req); err != nil {
		status = http.StatusBadRequest
		if booking.IsBodyTooLarge(err) {
			status = http.StatusRequestEntityTooLarge
		}
		p.render(c, status, modal)
		return
	}
	if err := modal.Fill(req); err != nil {
		_ = c.Error(err)
		p.render(c, http.StatusInternalServerError, modal)
		return
	}

	ctx, cancel := booking.SubmitContext(c.Request.Context(), p.submitTimeout)
	defer cancel()

	if err := modal.Submit(ctx, booking.SubmitMeta{IP: c.ClientIP(), UserAgent: c.Request.UserAgent()}); err != nil {
		var verr *booking.ValidationError
		switch {
		case errors.As(err, &verr):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, booking.ErrSubmissionInFlight):
			status = http.StatusConflict
		default:
			_ = c.Error(err)
			status = http.StatusInternalServerError
		}
	}
	p.render(c, status, modal)
}

func (p *Pages) render(c *gin.Context, status int, modal *ui.Modal) {
	page := components.LandingPage(components.PageData{
		CSRFToken: csrf.Token(c.Request),
		Navbar:    components.NavbarState{MenuOpen: c.Query("menu") == "open"},
		Particles: ui.GenerateParticles(p.rng(), ui.ParticleCount),
		Modal:     modal.View(),
		Toasts:    modal.Toasts(),
	})
	renderHTML(c, status, page)
}

func renderHTML(c *gin.Context, status int, node g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := node.Render(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
