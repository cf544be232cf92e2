package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/maemanahmaemanah39-collab/venaules/internal/middleware"
	"github.com/maemanahmaemanah39-collab/venaules/internal/view"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/jwtutil"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/security"
	"github.com/maemanahmaemanah39-collab/venaules/prometheus"
)

// RegisterRoutes wires every route group onto the echo instance. Entity
// groups sit behind JWT auth plus the per-view permission gate; public
// form submissions sit behind the rate limiter instead.
func RegisterRoutes(e *echo.Echo, jwt *jwtutil.JWTUtil, limiter *security.RateLimiter) {
	e.GET("/health", HealthCheck)
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))

	auth := e.Group("/api/auth")
	auth.POST("/register", Register)
	auth.POST("/login", Login)
	auth.POST("/logout", Logout, middleware.JWTAuthMiddleware(jwt))

	e.GET("/api/navigation/resolve", ResolveNavigation)

	public := e.Group("/public")
	public.GET("/packages", GetPublicPackages)
	public.GET("/promo-codes/validate", ValidatePublicPromoCode)

	limited := public.Group("", middleware.RateLimitMiddleware(limiter))
	limited.POST("/leads", SubmitPublicLead)
	limited.POST("/suggestions", SubmitPublicSuggestion)
	limited.POST("/bookings", SubmitPublicBooking)
	limited.POST("/feedback", CreateClientFeedback)

	e.GET("/portal/:accessId", GetClientPortal)
	e.GET("/freelancer-portal/:accessId", GetFreelancerPortal)

	api := e.Group("/api", middleware.JWTAuthMiddleware(jwt))
	api.GET("/session", GetSession)

	clients := api.Group("/clients", middleware.RequireView(view.Clients))
	clients.GET("", ListClients)
	clients.POST("", CreateClient)
	clients.PATCH("/:id", UpdateClient)
	clients.DELETE("/:id", DeleteClient)
	clients.GET("/export", ExportClientsCSV)

	projects := api.Group("/projects", middleware.RequireView(view.Projects))
	projects.GET("", ListProjects)
	projects.POST("", CreateProject)
	projects.PATCH("/:id", UpdateProject)
	projects.DELETE("/:id", DeleteProject)

	leads := api.Group("/leads", middleware.RequireView(view.Prospek))
	leads.GET("", ListLeads)
	leads.POST("", CreateLead)
	leads.PATCH("/:id", UpdateLead)
	leads.DELETE("/:id", DeleteLead)
	leads.GET("/export", ExportLeadsCSV)

	team := api.Group("", middleware.RequireView(view.Team))
	team.GET("/team-members", ListTeamMembers)
	team.POST("/team-members", CreateTeamMember)
	team.PATCH("/team-members/:id", UpdateTeamMember)
	team.DELETE("/team-members/:id", DeleteTeamMember)
	team.GET("/team-project-payments", ListTeamProjectPayments)
	team.POST("/team-project-payments", CreateTeamProjectPayment)
	team.PATCH("/team-project-payments/:id", UpdateTeamProjectPayment)
	team.DELETE("/team-project-payments/:id", DeleteTeamProjectPayment)
	team.GET("/team-payment-records", ListTeamPaymentRecords)
	team.POST("/team-payment-records", CreateTeamPaymentRecord)
	team.PATCH("/team-payment-records/:id", UpdateTeamPaymentRecord)
	team.DELETE("/team-payment-records/:id", DeleteTeamPaymentRecord)
	team.GET("/reward-ledger-entries", ListRewardLedgerEntries)
	team.POST("/reward-ledger-entries", CreateRewardLedgerEntry)
	team.DELETE("/reward-ledger-entries/:id", DeleteRewardLedgerEntry)

	finance := api.Group("", middleware.RequireView(view.Finance))
	finance.GET("/transactions", ListTransactions)
	finance.POST("/transactions", CreateTransaction)
	finance.PATCH("/transactions/:id", UpdateTransaction)
	finance.DELETE("/transactions/:id", DeleteTransaction)
	finance.GET("/transactions/export", ExportTransactionsCSV)
	finance.GET("/cards", ListCards)
	finance.POST("/cards", CreateCard)
	finance.PATCH("/cards/:id", UpdateCard)
	finance.DELETE("/cards/:id", DeleteCard)
	finance.GET("/financial-pockets", ListFinancialPockets)
	finance.POST("/financial-pockets", CreateFinancialPocket)
	finance.PATCH("/financial-pockets/:id", UpdateFinancialPocket)
	finance.DELETE("/financial-pockets/:id", DeleteFinancialPocket)

	packages := api.Group("", middleware.RequireView(view.Packages))
	packages.GET("/packages", ListPackages)
	packages.POST("/packages", CreatePackage)
	packages.PATCH("/packages/:id", UpdatePackage)
	packages.DELETE("/packages/:id", DeletePackage)
	packages.GET("/add-ons", ListAddOns)
	packages.POST("/add-ons", CreateAddOn)
	packages.PATCH("/add-ons/:id", UpdateAddOn)
	packages.DELETE("/add-ons/:id", DeleteAddOn)

	assets := api.Group("/assets", middleware.RequireView(view.Assets))
	assets.GET("", ListAssets)
	assets.POST("", CreateAsset)
	assets.PATCH("/:id", UpdateAsset)
	assets.DELETE("/:id", DeleteAsset)

	contracts := api.Group("/contracts", middleware.RequireView(view.Contracts))
	contracts.GET("", ListContracts)
	contracts.POST("", CreateContract)
	contracts.PATCH("/:id", UpdateContract)
	contracts.DELETE("/:id", DeleteContract)

	promos := api.Group("/promo-codes", middleware.RequireView(view.PromoCodes))
	promos.GET("", ListPromoCodes)
	promos.POST("", CreatePromoCode)
	promos.PATCH("/:id", UpdatePromoCode)
	promos.DELETE("/:id", DeletePromoCode)

	sops := api.Group("/sops", middleware.RequireView(view.SOP))
	sops.GET("", ListSOPs)
	sops.POST("", CreateSOP)
	sops.PATCH("/:id", UpdateSOP)
	sops.DELETE("/:id", DeleteSOP)

	social := api.Group("/social-media-posts", middleware.RequireView(view.SocialMediaPlanner))
	social.GET("", ListSocialMediaPosts)
	social.POST("", CreateSocialMediaPost)
	social.PATCH("/:id", UpdateSocialMediaPost)
	social.DELETE("/:id", DeleteSocialMediaPost)

	feedback := api.Group("/client-feedback", middleware.RequireView(view.ClientReports))
	feedback.GET("", ListClientFeedback)
	feedback.POST("", CreateClientFeedback)
	feedback.DELETE("/:id", DeleteClientFeedback)

	notifications := api.Group("/notifications")
	notifications.GET("", ListNotifications)
	notifications.POST("", CreateNotification)
	notifications.PATCH("/:id/read", MarkNotificationAsRead)
	notifications.POST("/mark-all-read", MarkAllNotificationsAsRead)
	notifications.DELETE("/:id", DeleteNotification)

	settings := api.Group("", middleware.RequireView(view.Settings))
	settings.GET("/users", ListUsers)
	settings.PATCH("/users/:id", UpdateUser)
	settings.DELETE("/users/:id", DeleteUser)
	settings.GET("/profiles", ListProfiles)
	settings.GET("/profiles/primary", GetPrimaryProfile)
	settings.POST("/profiles", CreateProfile)
	settings.PATCH("/profiles/:id", UpdateProfile)
}
