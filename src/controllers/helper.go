package controllers

import (
	"Backend-QuestForge/src/models"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func parseObjectID(hex string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(hex)
}

// parsePagination reads the paging query values. Page and limit are clamped
// to at least 1; `?limit=0` must not reach the skip/total-pages math.
func parsePagination(c *fiber.Ctx) models.PaginationParams {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 1
	}
	params.Search = c.Query("search", params.Search)
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)
	return params
}

// currentUserID reads the authenticated user's id set by the JWT middleware.
func currentUserID(localsValue interface{}) (primitive.ObjectID, bool) {
	hex, ok := localsValue.(string)
	if !ok || hex == "" {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
