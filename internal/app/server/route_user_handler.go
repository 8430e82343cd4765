package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"fwadmin/internal/api/dto"
	"fwadmin/internal/auth"
	"fwadmin/internal/config"
	"fwadmin/internal/database"
	"fwadmin/internal/domain"
	"fwadmin/internal/support"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

func checkLogin(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func registerUser(w http.ResponseWriter, r *http.Request) {
	var credentials dto.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(credentials); err != nil {
		writeError(w, "Invalid email or password format", http.StatusBadRequest)
		return
	}
	// The validator's email tag accepts bare hostnames; registration
	// additionally requires a fully qualified address.
	if !auth.IsValidEmail(credentials.Email) {
		writeError(w, "Invalid email or password format", http.StatusBadRequest)
		return
	}

	user := domain.User{
		Email:    credentials.Email,
		Password: credentials.Password,
	}

	// Hash the password
	hashedPassword, err := support.HashPassword(user.Password)
	if err != nil {
		writeError(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}
	user.Password = hashedPassword

	// Check if email already exists
	var existingUser domain.User
	if err = database.DB.Where("email = ?", user.Email).First(&existingUser).Error; err == nil {
		writeError(w, "Email already in use", http.StatusConflict)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		writeError(w, "Failed to query database", http.StatusInternalServerError)
		return
	}

	userCount, err := database.CountUsers()
	if err != nil {
		writeError(w, "Failed to query database", http.StatusInternalServerError)
		return
	}

	if err = database.CreateUser(&user); err != nil {
		writeError(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	// The very first account bootstraps the instance: it becomes an allowed
	// user and a moderator. Later accounts only get the allowed group when
	// the instance is configured to hand it out.
	cfg := config.GetConfig()
	if userCount == 0 {
		for _, group := range []string{cfg.Registry.AllowedUserGroup, cfg.Registry.ModeratorsGroup} {
			if err := database.AddUserToGroup(user.ID, group); err != nil {
				log.Warn("Could not add first user to group", "group", group, "error", err)
			}
		}
	} else if cfg.Registry.AutoAllowNewUsers {
		if err := database.AddUserToGroup(user.ID, cfg.Registry.AllowedUserGroup); err != nil {
			log.Warn("Could not add user to allowed group", "error", err)
		}
	}

	token, err := auth.GenerateJWT(user.ID)
	if err != nil {
		writeError(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"token": token})
}

func loginUser(w http.ResponseWriter, r *http.Request) {
	var credentials dto.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	user, err := database.GetUserByEmail(credentials.Email)
	if err != nil {
		writeError(w, "User not found", http.StatusUnauthorized)
		return
	}

	// Compare passwords
	if !support.CheckPasswordHash(credentials.Password, user.Password) {
		writeError(w, "Invalid password", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateJWT(user.ID)
	if err != nil {
		writeError(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func changePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.GetUserIDFromRequest(r)
	if err != nil {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeError(w, "New password must be at least 8 characters long", http.StatusBadRequest)
		return
	}

	user := database.GetUserFromId(userID)
	if user.ID == 0 {
		writeError(w, "User not found", http.StatusNotFound)
		return
	}
	if !support.CheckPasswordHash(payload.CurrentPassword, user.Password) {
		writeError(w, "Invalid password", http.StatusUnauthorized)
		return
	}

	hashed, err := support.HashPassword(payload.NewPassword)
	if err != nil {
		writeError(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}
	if err := database.ChangePassword(userID, hashed); err != nil {
		writeError(w, "Failed to change password", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
