package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/httpx"
	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/user"
)

// registerHandler
// @Summary Register a new customer account
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body user.RegisterRequest true "registration"
// @Success 201 {object} user.TokenResponse
// @Router /auth/register [post]
func registerHandler(repo user.Repository, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}
		hash, err := user.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "hash error"})
			return
		}
		u := &user.User{
			Email:        req.Email,
			PasswordHash: hash,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
		}
		if err := repo.Create(c.Request.Context(), u); err != nil {
			if errors.Is(err, user.ErrAlreadyExist) {
				c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		token, err := user.IssueToken(secret, u)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
			return
		}
		c.JSON(http.StatusCreated, user.TokenResponse{Token: token, User: *u})
	}
}

// loginHandler
// @Summary Authenticate and obtain a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body user.LoginRequest true "credentials"
// @Success 200 {object} user.TokenResponse
// @Router /auth/login [post]
func loginHandler(repo user.Repository, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		u, err := repo.GetByEmail(c.Request.Context(), req.Email)
		if err != nil || !user.CheckPassword(u.PasswordHash, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		token, err := user.IssueToken(secret, u)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
			return
		}
		c.JSON(http.StatusOK, user.TokenResponse{Token: token, User: *u})
	}
}

// meHandler returns the authenticated user's profile.
func meHandler(repo user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := repo.GetByID(c.Request.Context(), httpx.CallerID(c))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// updateMeHandler applies a partial profile update; empty fields are kept.
func updateMeHandler(repo user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		updatePassword := false
		var hash string
		if req.Password != "" {
			h, err := user.HashPassword(req.Password)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "hash error"})
				return
			}
			hash = h
			updatePassword = true
		}
		u := &user.User{
			ID:           httpx.CallerID(c),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			PasswordHash: hash,
		}
		if err := repo.Update(c.Request.Context(), u, updatePassword); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		out, err := repo.GetByID(c.Request.Context(), u.ID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
