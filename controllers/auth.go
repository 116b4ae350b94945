package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dhruvika404/jewel-ai-sub000/models"
	"github.com/dhruvika404/jewel-ai-sub000/repository"
	"github.com/dhruvika404/jewel-ai-sub000/utils"
)

// Login handles POST /api/auth/login. The caller identifies by email or
// userCode.
func Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	var query bson.M
	switch {
	case input.Email != "":
		query = bson.M{"email": input.Email}
	case input.UserCode != "":
		query = bson.M{"userCode": input.UserCode}
	default:
		utils.HandleError(c, utils.CreateBadRequestError("email or userCode is required"))
		return
	}

	ctx := repository.GetContext()
	var user models.SalesPerson
	err := repository.Collection(repository.SalesPersonsCollection).FindOne(ctx, query).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, "invalid credentials", http.StatusUnauthorized)
			return
		}
		utils.HandleError(c, err)
		return
	}

	if !user.IsActive {
		utils.ErrorResponse(c, "account is disabled", http.StatusForbidden)
		return
	}

	if !utils.VerifyPassword(input.Password, user.Password) {
		utils.LogInfo(map[string]interface{}{
			"userCode": user.UserCode,
		}, "login rejected: bad password")
		utils.ErrorResponse(c, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"userCode": user.UserCode,
		"role":     user.Role,
	}, "login succeeded")

	utils.SuccessResponse(c, models.LoginResponse{Token: token, User: user}, "")
}

// SetPassword handles PUT /api/auth/set-password. Admin only.
func SetPassword(c *gin.Context) {
	var input models.SetPasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	ctx := repository.GetContext()
	res, err := repository.Collection(repository.SalesPersonsCollection).UpdateOne(
		ctx,
		bson.M{"userCode": input.UserCode},
		bson.M{"$set": bson.M{
			"password":  utils.HashPassword(input.Password),
			"updatedAt": time.Now(),
		}},
	)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if res.MatchedCount == 0 {
		utils.HandleError(c, utils.CreateNotFoundError("sales person"))
		return
	}

	utils.LogInfo(map[string]interface{}{
		"userCode": input.UserCode,
	}, "password reset")

	utils.SuccessResponse(c, nil, "password updated")
}
