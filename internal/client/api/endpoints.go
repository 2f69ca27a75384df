package api

// Endpoint path templates, grouped by resource. Positional {name}
// placeholders are resolved with BuildURL before dispatch.
const (
	EndpointAuthLogin          = "/auth/login"
	EndpointAuthSignup         = "/auth/signup"
	EndpointAuthLogout         = "/auth/logout"
	EndpointAuthVerifyEmail    = "/auth/verify-email"
	EndpointAuthForgotPassword = "/auth/forgot-password"
	EndpointAuthResetPassword  = "/auth/reset-password"
	EndpointAuthRefreshToken   = "/auth/refresh-token"
	EndpointAuthCheckEmail     = "/auth/check-email-exists"
	EndpointAuthValidateToken  = "/auth/validate-token"

	EndpointUsersProfile = "/users/profile"
	EndpointUsersGet     = "/users/{id}"

	EndpointDonationsCreate        = "/donations/create"
	EndpointDonationsFeatured      = "/donations/featured"
	EndpointDonationsNearby        = "/donations/nearby"
	EndpointDonationsDetail        = "/donations/{id}"
	EndpointDonationsMine          = "/donations/my-donations"
	EndpointDonationsRequestPickup = "/donations/{id}/request-pickup"
	EndpointDonationsUploadImage   = "/donations/upload-image"
	EndpointDonationsRequests      = "/donations/{id}/requests"

	EndpointNGOsAll        = "/ngos/all"
	EndpointNGOsNearby     = "/ngos/nearby"
	EndpointNGOsSearch     = "/ngos/search"
	EndpointNGOsDetail     = "/ngos/{id}"
	EndpointNGOsFollow     = "/ngos/{id}/follow"
	EndpointNGOsStatistics = "/ngos/{id}/statistics"

	EndpointStatsDashboard = "/statistics/dashboard"
	EndpointStatsUser      = "/statistics/user/{id}"
	EndpointStatsNGO       = "/statistics/ngo/{id}"

	EndpointNewsletterSubscribe   = "/newsletter/subscribe"
	EndpointNewsletterUnsubscribe = "/newsletter/unsubscribe"
)
