package domain

const (
	RequesterIdCtxKey    = "ipo-requesterId"
	RequesterEmailCtxKey = "ipo-requesterEmail"
	SessionTokenCtxKey   = "ipo-sessionToken"
)

// Well-known routes the guard reasons about.
const (
	RouteLogin          = "/login"
	RouteSignup         = "/signup"
	RouteForgotPassword = "/forgot-password"
	RouteDashboard      = "/dashboard"
)
