package utils

import (
	"strconv"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// UserIDMiddleware rejects requests whose {id} path parameter does not match
// the authenticated actor. Used on /founder/{id}/... and /investor/{id}/...
func UserIDMiddleware(ctx iris.Context) {
	params := ctx.Params()
	id := params.Get("id")

	claims := jwt.Get(ctx).(*AccessToken)

	userID := strconv.FormatUint(uint64(claims.ID), 10)

	if userID != id {
		ctx.StatusCode(iris.StatusForbidden)
		return
	}
	ctx.Next()
}

// ActorIDMiddleware extracts the actor ID from the JWT and stores it in the
// context. Use this for routes without an {id} parameter in the URL.
func ActorIDMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	ctx.Values().Set("actorID", claims.ID)
	ctx.Next()
}

// FounderOnlyMiddleware ensures the requester authenticated as a founder.
func FounderOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	if claims.Role != RoleFounder {
		ctx.StatusCode(iris.StatusForbidden)
		ctx.JSON(iris.Map{"error": "forbidden", "message": "founder access required"})
		return
	}
	ctx.Values().Set("actorID", claims.ID)
	ctx.Next()
}

// InvestorOnlyMiddleware ensures the requester authenticated as an investor.
func InvestorOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	if claims.Role != RoleInvestor {
		ctx.StatusCode(iris.StatusForbidden)
		ctx.JSON(iris.Map{"error": "forbidden", "message": "investor access required"})
		return
	}
	ctx.Values().Set("actorID", claims.ID)
	ctx.Next()
}

// ActorID reads the actor ID stored by the middlewares above; zero when the
// request was not authenticated.
func ActorID(ctx iris.Context) uint {
	if v := ctx.Values().Get("actorID"); v != nil {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
