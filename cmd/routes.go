package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	// Auth
	mux.Post("/registration", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/login", standardMiddleware.ThenFunc(app.userHandler.SignIn))

	// Profiles
	mux.Get("/profile/:id", authMiddleware.ThenFunc(app.userHandler.GetProfile))
	mux.Add("PATCH", "/profile/:id", authMiddleware.ThenFunc(app.userHandler.UpdateProfile))
	mux.Post("/profile/:id/file", authMiddleware.ThenFunc(app.userHandler.UploadProfileFile))
	mux.Get("/profiles/business", authMiddleware.ThenFunc(app.userHandler.GetBusinessProfiles))
	mux.Get("/profiles/customer", authMiddleware.ThenFunc(app.userHandler.GetCustomerProfiles))

	// Offers
	mux.Get("/offers", standardMiddleware.ThenFunc(app.offerHandler.GetOffers))
	mux.Post("/offers", authMiddleware.ThenFunc(app.offerHandler.CreateOffer))
	mux.Get("/offers/:id", authMiddleware.ThenFunc(app.offerHandler.GetOfferByID))
	mux.Add("PATCH", "/offers/:id", authMiddleware.ThenFunc(app.offerHandler.UpdateOffer))
	mux.Del("/offers/:id", authMiddleware.ThenFunc(app.offerHandler.DeleteOffer))
	mux.Post("/offers/:id/image", authMiddleware.ThenFunc(app.offerHandler.UploadOfferImage))
	mux.Get("/offerdetails/:id", standardMiddleware.ThenFunc(app.offerHandler.GetOfferDetailByID))

	// Orders
	mux.Get("/orders", authMiddleware.ThenFunc(app.orderHandler.GetOrders))
	mux.Post("/orders", authMiddleware.ThenFunc(app.orderHandler.CreateOrder))
	mux.Add("PATCH", "/orders/:id", authMiddleware.ThenFunc(app.orderHandler.UpdateOrderStatus))
	mux.Del("/orders/:id", adminAuthMiddleware.ThenFunc(app.orderHandler.DeleteOrder))
	mux.Get("/order-count/:business_user_id", authMiddleware.ThenFunc(app.orderHandler.GetOrderCount))
	mux.Get("/completed-order-count/:business_user_id", standardMiddleware.ThenFunc(app.orderHandler.GetCompletedOrderCount))

	// Reviews
	mux.Get("/reviews", authMiddleware.ThenFunc(app.reviewHandler.GetReviews))
	mux.Post("/reviews", authMiddleware.ThenFunc(app.reviewHandler.CreateReview))
	mux.Get("/reviews/:id", authMiddleware.ThenFunc(app.reviewHandler.GetReviewByID))
	mux.Add("PATCH", "/reviews/:id", authMiddleware.ThenFunc(app.reviewHandler.UpdateReview))
	mux.Del("/reviews/:id", authMiddleware.ThenFunc(app.reviewHandler.DeleteReview))

	// Platform statistics
	mux.Get("/base-info", standardMiddleware.ThenFunc(app.baseInfoHandler.GetBaseInfo))

	return standardMiddleware.Then(mux)
}
