package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peirisgrand/resort-api/internal/repository"
)

// ProfileHandler serves owner-only profile reads and partial updates.
type ProfileHandler struct {
	Users *repository.UserRepo
}

func NewProfileHandler(u *repository.UserRepo) *ProfileHandler {
	return &ProfileHandler{Users: u}
}

// updateProfileReq uses pointers so omitted fields are distinguishable from
// empty strings: only fields present in the body replace stored values.
type updateProfileReq struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

// ownProfile enforces the owner-only rule shared by both endpoints and
// returns the target user id.
func ownProfile(c echo.Context) (uint64, error) {
	callerID, err := authUserID(c)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	targetID, err := pathID(c)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if callerID != targetID {
		return 0, echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}
	return targetID, nil
}

// Get handles GET /api/profile/:id.
func (h *ProfileHandler) Get(c echo.Context) error {
	id, err := ownProfile(c)
	if err != nil {
		he := err.(*echo.HTTPError)
		return c.JSON(he.Code, echo.Map{"error": he.Message})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, publicUser(u))
}

// Update handles PUT /api/profile/:id with partial update semantics.
func (h *ProfileHandler) Update(c echo.Context) error {
	id, err := ownProfile(c)
	if err != nil {
		he := err.(*echo.HTTPError)
		return c.JSON(he.Code, echo.Map{"error": he.Message})
	}

	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	// Omitted fields keep their stored values.
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}

	if err := h.Users.UpdateProfile(ctx, id, u.FirstName, u.LastName, u.Phone); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	updated, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Profile updated successfully",
		"user":    publicUser(updated),
	})
}
