package rest

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bluestock/ipoboard"
	"github.com/bluestock/ipoboard/internal/config"
	"github.com/bluestock/ipoboard/internal/domain"
	"github.com/bluestock/ipoboard/internal/infrastructure/repository"
	"github.com/bluestock/ipoboard/internal/present/rest/middleware"
	"github.com/bluestock/ipoboard/internal/present/rest/presenter"
	"github.com/bluestock/ipoboard/internal/service"
	"github.com/bluestock/ipoboard/internal/usecase"
)

const (
	subscriptionSummaryKey = "summary:subscriptions"
	allotmentSummaryKey    = "summary:allotments"
)

type Handler struct {
	site          config.Site
	sessions      *usecase.SessionUsecase
	auth          *service.AuthService
	signal        *service.SignalService
	ipos          *usecase.Collection[ipoboard.IPO]
	subscriptions *usecase.Collection[ipoboard.Subscription]
	allotments    *usecase.Collection[ipoboard.Allotment]
	faqs          *usecase.Collection[ipoboard.FAQ]
	resources     *usecase.Collection[ipoboard.ResourceLink]
	summaries     *repository.SummaryCache
}

func NewHandler(
	site config.Site,
	sessions *usecase.SessionUsecase,
	auth *service.AuthService,
	signal *service.SignalService,
	ipos *usecase.Collection[ipoboard.IPO],
	subscriptions *usecase.Collection[ipoboard.Subscription],
	allotments *usecase.Collection[ipoboard.Allotment],
	faqs *usecase.Collection[ipoboard.FAQ],
	resources *usecase.Collection[ipoboard.ResourceLink],
	summaries *repository.SummaryCache,
) *Handler {
	return &Handler{
		site:          site,
		sessions:      sessions,
		auth:          auth,
		signal:        signal,
		ipos:          ipos,
		subscriptions: subscriptions,
		allotments:    allotments,
		faqs:          faqs,
		resources:     resources,
		summaries:     summaries,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, authmw *middleware.AuthMiddleware) {
	e.GET("/api/v1/meta", h.handleMeta)

	auth := e.Group("/api/v1/auth")
	auth.POST("/login", h.handleLogin, authmw.Guard(domain.RouteLogin))
	auth.POST("/signup", h.handleSignup, authmw.Guard(domain.RouteSignup))
	auth.POST("/reset", h.handleResetPassword, authmw.Guard(domain.RouteForgotPassword))
	auth.POST("/logout", h.handleLogout)
	auth.GET("/session", h.handleSession, authmw.Guard(domain.RouteDashboard))

	dashboard := e.Group("/api/v1/dashboard", authmw.Guard(domain.RouteDashboard))
	registerCollection(dashboard, h.ipos, func() {})
	registerCollection(dashboard, h.subscriptions, func() { h.summaries.Invalidate(subscriptionSummaryKey) })
	registerCollection(dashboard, h.allotments, func() { h.summaries.Invalidate(allotmentSummaryKey) })
	registerCollection(dashboard, h.faqs, func() {})
	registerCollection(dashboard, h.resources, func() {})
	dashboard.GET("/subscriptions/summary", h.handleSubscriptionSummary)
	dashboard.GET("/allotments/summary", h.handleAllotmentSummary)

	e.GET("/realtime", h.handleRealtime)
}

// registerCollection wires the shared CRUD surface for one collection.
// Free function because methods cannot carry type parameters.
func registerCollection[T ipoboard.Record](g *echo.Group, uc *usecase.Collection[T], invalidate func()) {
	name := uc.Name()

	g.GET("/"+name, func(c echo.Context) error {
		records, err := uc.List(c.Request().Context())
		if err != nil {
			return presenter.InternalError(c, err)
		}
		return presenter.OK(c, records)
	})

	g.GET("/"+name+"/statuses", func(c echo.Context) error {
		return presenter.OK(c, uc.Statuses())
	})

	g.GET("/"+name+"/:id", func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return presenter.BadRequestMessage(c, "invalid id")
		}
		record, err := uc.Get(c.Request().Context(), id)
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "record not found")
		}
		if err != nil {
			return presenter.InternalError(c, err)
		}
		return presenter.OK(c, record)
	})

	g.POST("/"+name, func(c echo.Context) error {
		draft := uc.NewDraft()
		if err := c.Bind(&draft); err != nil {
			return presenter.BadRequest(c, err)
		}
		draft = uc.SetID(draft, 0)

		created, err := uc.Submit(c.Request().Context(), draft)
		if errors.Is(err, domain.ErrInvalidStatus) {
			return presenter.BadRequest(c, err)
		}
		if err != nil {
			return presenter.InternalError(c, err)
		}
		invalidate()
		return presenter.OK(c, created)
	})

	g.PUT("/"+name+"/:id", func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return presenter.BadRequestMessage(c, "invalid id")
		}
		draft := uc.NewDraft()
		if err := c.Bind(&draft); err != nil {
			return presenter.BadRequest(c, err)
		}
		draft = uc.SetID(draft, id)

		updated, err := uc.Submit(c.Request().Context(), draft)
		if errors.Is(err, domain.ErrInvalidStatus) {
			return presenter.BadRequest(c, err)
		}
		if err != nil {
			return presenter.InternalError(c, err)
		}
		invalidate()
		return presenter.OK(c, updated)
	})

	g.DELETE("/"+name+"/:id", func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return presenter.BadRequestMessage(c, "invalid id")
		}
		if err := uc.Delete(c.Request().Context(), id); err != nil {
			return presenter.InternalError(c, err)
		}
		invalidate()
		return presenter.OK(c, echo.Map{"status": "ok"})
	})
}

func (h *Handler) handleMeta(c echo.Context) error {
	return presenter.OK(c, echo.Map{
		"name":         h.site.Name,
		"supportEmail": h.site.SupportEmail,
		"supportPhone": h.site.SupportPhone,
		"collections": []string{
			ipoboard.CollectionIPOs,
			ipoboard.CollectionSubscriptions,
			ipoboard.CollectionAllotments,
			ipoboard.CollectionFAQs,
			ipoboard.CollectionResources,
		},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	session, ok, err := h.sessions.Login(ctx, req.Email, req.Password)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	if !ok {
		return presenter.BadRequestMessage(c, "email and password are required")
	}

	token, err := h.auth.IssueToken(session)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"token": token, "user": session})
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleSignup(c echo.Context) error {
	ctx := c.Request().Context()

	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	session, ok, err := h.sessions.Signup(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	if !ok {
		return presenter.BadRequestMessage(c, "name, email and password are required")
	}

	token, err := h.auth.IssueToken(session)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"token": token, "user": session})
}

type resetRequest struct {
	Email string `json:"email"`
}

func (h *Handler) handleResetPassword(c echo.Context) error {
	var req resetRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	if !h.sessions.ResetPassword(c.Request().Context(), req.Email) {
		return presenter.BadRequestMessage(c, "email is required")
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

// handleLogout clears the requester's session. It succeeds even without
// one; logout is unconditional and idempotent.
func (h *Handler) handleLogout(c echo.Context) error {
	ctx := c.Request().Context()

	if id, ok := ctx.Value(domain.RequesterIdCtxKey).(string); ok {
		if err := h.sessions.Logout(ctx, id); err != nil {
			return presenter.InternalError(c, err)
		}
		h.auth.Invalidate(id)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleSession(c echo.Context) error {
	ctx := c.Request().Context()

	id, ok := ctx.Value(domain.RequesterIdCtxKey).(string)
	if !ok {
		return presenter.Unauthorized(c, domain.RouteLogin)
	}

	session, err := h.sessions.Current(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return presenter.Unauthorized(c, domain.RouteLogin)
	}
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, session)
}

func (h *Handler) handleSubscriptionSummary(c echo.Context) error {
	var summary usecase.SubscriptionSummary
	if h.summaries.Get(subscriptionSummaryKey, &summary) {
		return presenter.OK(c, summary)
	}

	records, err := h.subscriptions.List(c.Request().Context())
	if err != nil {
		return presenter.InternalError(c, err)
	}
	summary = usecase.SummarizeSubscriptions(records)
	h.summaries.Set(subscriptionSummaryKey, summary)
	return presenter.OK(c, summary)
}

func (h *Handler) handleAllotmentSummary(c echo.Context) error {
	var summary usecase.AllotmentSummary
	if h.summaries.Get(allotmentSummaryKey, &summary) {
		return presenter.OK(c, summary)
	}

	records, err := h.allotments.List(c.Request().Context())
	if err != nil {
		return presenter.InternalError(c, err)
	}
	summary = usecase.SummarizeAllotments(records)
	h.summaries.Set(allotmentSummaryKey, summary)
	return presenter.OK(c, summary)
}

