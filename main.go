package main

import (
	"log"
	"os"

	"github.com/AESiR-0/daftar-backend/routes"
	"github.com/AESiR-0/daftar-backend/storage"
	"github.com/AESiR-0/daftar-backend/utils"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	// Initialize services
	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	// JWT verifiers
	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	// Health check endpoint
	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	auth := app.Party("/auth")
	{
		auth.Post("/login", routes.Login)
		auth.Post("/register-phone", routes.RegisterPhone)
		auth.Post("/login-phone", routes.LoginPhone)
		auth.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
	}

	founder := app.Party("/founder")
	{
		founder.Get("/profile/{id:uint}", accessTokenVerifierMiddleware, routes.GetFounderProfile)
		founder.Get("/{id:uint}/pitches", accessTokenVerifierMiddleware, utils.FounderOnlyMiddleware, utils.UserIDMiddleware, routes.GetFounderPitches)
		founder.Get("/{id:uint}/questions/unanswered", accessTokenVerifierMiddleware, utils.FounderOnlyMiddleware, utils.UserIDMiddleware, routes.GetFounderUnansweredQuestions)
		founder.Get("/{id:uint}/pitches/{pitchID:uint}/questions", accessTokenVerifierMiddleware, utils.FounderOnlyMiddleware, utils.UserIDMiddleware, routes.GetFounderPitchQuestions)
		founder.Post("/{id:uint}/pitches/{pitchID:uint}/documents", accessTokenVerifierMiddleware, utils.FounderOnlyMiddleware, utils.UserIDMiddleware, routes.UploadFounderDocument)
		founder.Get("/{id:uint}/pitches/{pitchID:uint}/documents", accessTokenVerifierMiddleware, utils.FounderOnlyMiddleware, utils.UserIDMiddleware, routes.GetFounderPitchDocuments)
		founder.Post("/{id:uint}/pitches/{pitchID:uint}/meetings", accessTokenVerifierMiddleware, utils.FounderOnlyMiddleware, utils.UserIDMiddleware, routes.CreateFounderMeeting)
		founder.Get("/{id:uint}/pitches/{pitchID:uint}/meetings", accessTokenVerifierMiddleware, utils.FounderOnlyMiddleware, utils.UserIDMiddleware, routes.ListPitchMeetings)
		founder.Post("/feedback", accessTokenVerifierMiddleware, utils.FounderOnlyMiddleware, routes.CreateFeedback)
		founder.Post("/feature-requests", accessTokenVerifierMiddleware, utils.FounderOnlyMiddleware, routes.CreateFeatureRequest)
	}

	investor := app.Party("/investor")
	{
		investor.Get("/profile/{id:uint}", accessTokenVerifierMiddleware, routes.GetInvestorProfile)
	}

	app.Get("/daftar/profile/{id:uint}", accessTokenVerifierMiddleware, routes.GetDaftarProfile)

	daftars := app.Party("/daftars", accessTokenVerifierMiddleware, utils.InvestorOnlyMiddleware)
	{
		daftars.Post("/", routes.CreateDaftar)
		daftars.Post("/join", routes.JoinDaftar)
		daftars.Get("/{id:uint}/investors", routes.ListDaftarInvestors)
		daftars.Post("/{id:uint}/investors", routes.AddDaftarInvestor)
		daftars.Post("/{id:uint}/invites", routes.CreateDaftarInvite)
	}

	scouts := app.Party("/scouts", accessTokenVerifierMiddleware)
	{
		scouts.Post("/", utils.InvestorOnlyMiddleware, routes.CreateScout)
		scouts.Get("/{id:uint}", utils.ActorIDMiddleware, routes.GetScout)
		scouts.Put("/{id:uint}/details", utils.InvestorOnlyMiddleware, routes.UpdateScoutDetails)
		scouts.Put("/{id:uint}/audience", utils.InvestorOnlyMiddleware, routes.UpdateScoutAudience)
		scouts.Put("/{id:uint}/collaboration", utils.InvestorOnlyMiddleware, routes.UpdateScoutCollaboration)
		scouts.Put("/{id:uint}/submit", utils.InvestorOnlyMiddleware, routes.SubmitScout)
		scouts.Put("/{id:uint}/approve", utils.InvestorOnlyMiddleware, routes.ApproveScout)
		scouts.Put("/{id:uint}/reject", utils.InvestorOnlyMiddleware, routes.RejectScout)
		scouts.Put("/{id:uint}/archive", utils.InvestorOnlyMiddleware, routes.ArchiveScout)
		scouts.Get("/{id:uint}/pitches", utils.InvestorOnlyMiddleware, routes.GetScoutPitches)
		scouts.Get("/{id:uint}/sample-questions", utils.ActorIDMiddleware, routes.GetSampleQuestions)
		scouts.Post("/{id:uint}/custom-questions", utils.InvestorOnlyMiddleware, routes.CreateCustomQuestion)
		scouts.Get("/{id:uint}/custom-questions", utils.ActorIDMiddleware, routes.GetCustomQuestions)
		scouts.Post("/{id:uint}/faqs", utils.InvestorOnlyMiddleware, routes.CreateScoutFAQ)
		scouts.Get("/{id:uint}/faqs", utils.ActorIDMiddleware, routes.ListScoutFAQs)
	}

	pitches := app.Party("/pitches", accessTokenVerifierMiddleware)
	{
		pitches.Post("/", utils.FounderOnlyMiddleware, routes.CreatePitch)
		pitches.Get("/{id:uint}", utils.ActorIDMiddleware, routes.GetPitch)
		pitches.Patch("/{id:uint}", utils.FounderOnlyMiddleware, routes.UpdatePitch)
		pitches.Delete("/{id:uint}", utils.FounderOnlyMiddleware, routes.DeletePitch)
		pitches.Post("/{id:uint}/team/invite", utils.FounderOnlyMiddleware, routes.InviteTeamMember)
		pitches.Post("/{id:uint}/questions/{questionID:uint}/answers", utils.FounderOnlyMiddleware, routes.CreateQuestionAnswer)
		pitches.Post("/{id:uint}/documents", utils.InvestorOnlyMiddleware, routes.UploadInvestorDocument)
		pitches.Get("/{id:uint}/documents", utils.InvestorOnlyMiddleware, routes.GetInvestorPitchDocuments)
		pitches.Post("/{id:uint}/offers", utils.InvestorOnlyMiddleware, routes.CreateOffer)
		pitches.Get("/{id:uint}/offers", utils.InvestorOnlyMiddleware, routes.ListPitchOffers)
		pitches.Post("/{id:uint}/bills", utils.InvestorOnlyMiddleware, routes.CreateBill)
		pitches.Get("/{id:uint}/bills", utils.InvestorOnlyMiddleware, routes.ListPitchBills)
		pitches.Post("/{id:uint}/notes", utils.InvestorOnlyMiddleware, routes.CreateInvestorNote)
		pitches.Get("/{id:uint}/notes", utils.InvestorOnlyMiddleware, routes.ListInvestorNotes)
	}

	offers := app.Party("/offers", accessTokenVerifierMiddleware, utils.InvestorOnlyMiddleware)
	{
		offers.Post("/{id:uint}/action", routes.TakeOfferAction)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
