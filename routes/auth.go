package routes

import (
	"strings"

	"github.com/AESiR-0/daftar-backend/models"
	"github.com/AESiR-0/daftar-backend/storage"
	"github.com/AESiR-0/daftar-backend/utils"
	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"
)

type GoogleLoginInput struct {
	Token    string `json:"token" validate:"required"`
	UserType string `json:"user_type" validate:"required"`
}

type RegisterPhoneInput struct {
	UserType  string `json:"user_type" validate:"required"`
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
	Gender    string `json:"gender" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,max=20"`
	Password  string `json:"password" validate:"required,min=8,max=256"`
}

type LoginPhoneInput struct {
	UserType string `json:"user_type" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login verifies a Google ID token and issues a session token pair for the
// requested role, creating the founder/investor row on first login.
func Login(ctx iris.Context) {
	var input GoogleLoginInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.UserType != utils.RoleFounder && input.UserType != utils.RoleInvestor {
		utils.CreateError(iris.StatusBadRequest, "Bad Request",
			"Invalid user type. Must be 'founder' or 'investor'", ctx)
		return
	}

	identity, verifyErr := utils.VerifyGoogleIDToken(input.Token)
	if verifyErr != nil {
		utils.CreateError(iris.StatusUnauthorized, "Unauthorized", "Invalid token", ctx)
		return
	}

	var actorID uint
	name := strings.TrimSpace(identity.GivenName + " " + identity.FamilyName)

	if input.UserType == utils.RoleFounder {
		var founder models.Founder
		exists, existsErr := getAndHandleFounderExists(&founder, identity.Email)
		if existsErr != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		if !exists {
			founder = models.Founder{
				FirstName: identity.GivenName,
				LastName:  identity.FamilyName,
				Email:     strings.ToLower(identity.Email),
			}
			if createErr := storage.DB.Create(&founder).Error; createErr != nil {
				utils.CreateInternalServerError(ctx)
				return
			}
		}
		actorID = founder.ID
	} else {
		var investor models.Investor
		exists, existsErr := getAndHandleInvestorExists(&investor, identity.Email)
		if existsErr != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		if !exists {
			investor = models.Investor{
				FirstName: identity.GivenName,
				LastName:  identity.FamilyName,
				Email:     strings.ToLower(identity.Email),
			}
			if createErr := storage.DB.Create(&investor).Error; createErr != nil {
				utils.CreateInternalServerError(ctx)
				return
			}
		}
		actorID = investor.ID
	}

	tokenPair, tokenErr := utils.CreateTokenPair(actorID, input.UserType)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"access_token":  string(tokenPair.AccessToken),
		"refresh_token": string(tokenPair.RefreshToken),
		"token_type":    "bearer",
		"user_type":     input.UserType,
		"email":         identity.Email,
		"name":          name,
		"picture":       identity.Picture,
	})
}

// RegisterPhone creates a founder or investor account with phone+password
// credentials.
func RegisterPhone(ctx iris.Context) {
	var input RegisterPhoneInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.UserType != utils.RoleFounder && input.UserType != utils.RoleInvestor {
		utils.CreateError(iris.StatusBadRequest, "Bad Request",
			"Invalid user type. Must be 'founder' or 'investor'", ctx)
		return
	}

	if !utils.ValidatePhoneNumber(input.Phone) {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid phone number", ctx)
		return
	}
	phone := utils.NormalizePhoneNumber(input.Phone)

	hashedPassword, hashErr := hashAndSaltPassword(input.Password)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if input.UserType == utils.RoleFounder {
		var existing models.Founder
		exists, existsErr := getAndHandleFounderExists(&existing, input.Email)
		if existsErr != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		if exists {
			utils.CreateEmailAlreadyRegistered(ctx)
			return
		}

		founder := models.Founder{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Gender:    input.Gender,
			Email:     strings.ToLower(input.Email),
			Phone:     phone,
			Password:  hashedPassword,
		}
		if createErr := storage.DB.Create(&founder).Error; createErr != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		returnActor(founder.ID, utils.RoleFounder, founder.Email, founder.FirstName, founder.LastName, ctx)
		return
	}

	var existing models.Investor
	exists, existsErr := getAndHandleInvestorExists(&existing, input.Email)
	if existsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if exists {
		utils.CreateEmailAlreadyRegistered(ctx)
		return
	}

	investor := models.Investor{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Gender:    input.Gender,
		Email:     strings.ToLower(input.Email),
		Phone:     phone,
		Password:  hashedPassword,
	}
	if createErr := storage.DB.Create(&investor).Error; createErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	returnActor(investor.ID, utils.RoleInvestor, investor.Email, investor.FirstName, investor.LastName, ctx)
}

// LoginPhone authenticates phone+password credentials for either role.
func LoginPhone(ctx iris.Context) {
	var input LoginPhoneInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.UserType != utils.RoleFounder && input.UserType != utils.RoleInvestor {
		utils.CreateError(iris.StatusBadRequest, "Bad Request",
			"Invalid user type. Must be 'founder' or 'investor'", ctx)
		return
	}

	phone := utils.NormalizePhoneNumber(input.Phone)

	if input.UserType == utils.RoleFounder {
		var founder models.Founder
		res := storage.DB.Where("phone = ?", phone).Limit(1).Find(&founder)
		if res.Error != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		if res.RowsAffected == 0 || bcrypt.CompareHashAndPassword([]byte(founder.Password), []byte(input.Password)) != nil {
			utils.CreateError(iris.StatusUnauthorized, "Credentials Error", "Invalid phone or password.", ctx)
			return
		}
		returnActor(founder.ID, utils.RoleFounder, founder.Email, founder.FirstName, founder.LastName, ctx)
		return
	}

	var investor models.Investor
	res := storage.DB.Where("phone = ?", phone).Limit(1).Find(&investor)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if res.RowsAffected == 0 || bcrypt.CompareHashAndPassword([]byte(investor.Password), []byte(input.Password)) != nil {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", "Invalid phone or password.", ctx)
		return
	}
	returnActor(investor.ID, utils.RoleInvestor, investor.Email, investor.FirstName, investor.LastName, ctx)
}

func getAndHandleFounderExists(founder *models.Founder, email string) (exists bool, err error) {
	query := storage.DB.Where("email = ?", strings.ToLower(email)).Limit(1).Find(founder)
	if query.Error != nil {
		return false, query.Error
	}
	return query.RowsAffected > 0, nil
}

func getAndHandleInvestorExists(investor *models.Investor, email string) (exists bool, err error) {
	query := storage.DB.Where("email = ?", strings.ToLower(email)).Limit(1).Find(investor)
	if query.Error != nil {
		return false, query.Error
	}
	return query.RowsAffected > 0, nil
}

func hashAndSaltPassword(password string) (hashedPassword string, err error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func returnActor(id uint, role, email, firstName, lastName string, ctx iris.Context) {
	tokenPair, tokenErr := utils.CreateTokenPair(id, role)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"ID":            id,
		"firstName":     firstName,
		"lastName":      lastName,
		"email":         email,
		"user_type":     role,
		"access_token":  string(tokenPair.AccessToken),
		"refresh_token": string(tokenPair.RefreshToken),
		"token_type":    "bearer",
	})
}
