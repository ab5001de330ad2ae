package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/Activities/internal/handler/dto"
	"github.com/stpnv0/Activities/internal/view"
	"github.com/wb-go/wbf/ginext"
)

const (
	IndexTemplate   = "index.html"
	invalidFormText = "Please select an activity and enter a valid email."
)

type ViewController interface {
	LoadCatalog(ctx context.Context)
	Signup(ctx context.Context, activity, email string)
	Unregister(ctx context.Context, activity, email string)
	Notify(text string, kind view.MessageKind)
}

type PageState interface {
	Snapshot() view.Snapshot
	FillForm(activity, email string)
}

type SessionStore interface {
	Open(id string) (ViewController, PageState)
}

// PageHandler serves the server-rendered activities page. Every visitor
// gets its own controller and page state.
type PageHandler struct {
	sessions SessionStore
}

func NewPageHandler(sessions SessionStore) *PageHandler {
	return &PageHandler{
		sessions: sessions,
	}
}

// Index is the page load: fetch the catalog, then render.
func (p *PageHandler) Index(c *ginext.Context) {
	controller, page := p.visitor(c)

	controller.LoadCatalog(c.Request.Context())
	c.HTML(http.StatusOK, IndexTemplate, page.Snapshot())
}

func (p *PageHandler) Signup(c *ginext.Context) {
	controller, page := p.visitor(c)
	page.FillForm(c.PostForm("activity"), c.PostForm("email"))

	var form dto.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		c.Set("error", err.Error())
		controller.Notify(invalidFormText, view.MessageError)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	controller.Signup(c.Request.Context(), form.Activity, form.Email)
	c.Redirect(http.StatusSeeOther, "/")
}

func (p *PageHandler) Unregister(c *ginext.Context) {
	controller, _ := p.visitor(c)

	var form dto.UnregisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.Set("error", err.Error())
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	controller.Unregister(c.Request.Context(), form.Activity, form.Email)
	c.Redirect(http.StatusSeeOther, "/")
}

// visitor resolves the session cookie, issuing a new one when it is missing
// or not a uuid.
func (p *PageHandler) visitor(c *ginext.Context) (ViewController, PageState) {
	id, err := c.Cookie(SessionCookie)
	if err == nil {
		_, err = uuid.Parse(id)
	}
	if err != nil {
		id = uuid.NewString()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, 0, "/", "", false, true)
	}
	return p.sessions.Open(id)
}
