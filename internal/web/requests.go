package web

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"parpass-api/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationMessage describes the first failing field.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return msgInvalidBody
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

type createCourseRequest struct {
	Name         string   `json:"name" validate:"required,max=255"`
	Address      string   `json:"address" validate:"required"`
	City         string   `json:"city" validate:"required"`
	State        string   `json:"state" validate:"required"`
	Zip          string   `json:"zip" validate:"required"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Holes        int      `json:"holes" validate:"omitempty,min=1,max=72"`
	TierRequired string   `json:"tier_required" validate:"omitempty,oneof=core premium"`
	Phone        *string  `json:"phone"`
}

type createMemberRequest struct {
	HealthPlanID string `json:"health_plan_id" validate:"required,uuid"`
	FirstName    string `json:"first_name" validate:"required,max=100"`
	LastName     string `json:"last_name" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email"`
}

type createHealthPlanRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	PlanTierID string `json:"plan_tier_id" validate:"required,uuid"`
	IsActive   *bool  `json:"is_active"`
}

type addFavoriteRequest struct {
	CourseID string `json:"course_id" validate:"required,uuid"`
}

// Rating bounds are enforced by the review service so the caller gets its
// message.
type submitReviewRequest struct {
	MemberID string  `json:"member_id" validate:"required,uuid"`
	Rating   int     `json:"rating"`
	Comment  *string `json:"comment"`
}

// checkInRequest is not validated: a refused member is refused whatever
// the rest of the body says. An absent holes_played means a full round.
type checkInRequest struct {
	MemberID    string `json:"member_id"`
	CourseID    string `json:"course_id"`
	HolesPlayed *int   `json:"holes_played"`
}

func (r checkInRequest) holesPlayed() int {
	if r.HolesPlayed == nil {
		return models.DefaultHolesPlayed
	}
	return *r.HolesPlayed
}
