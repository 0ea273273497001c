package handler

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"shopkart/backend/internal/service"
)

type AccountHandler struct {
	svc *service.AccountService
}

func NewAccountHandler(svc *service.AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data.", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	if username == "" || email == "" || password == "" {
		http.Error(w, "Username, email and password are required.", http.StatusBadRequest)
		return
	}

	if err := h.svc.Register(r.Context(), username, email, password); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			http.Error(w, "Username already taken. Please choose another one.", http.StatusBadRequest)
			return
		}
		log.Printf("Error registering user: %v", err)
		http.Error(w, "Error registering user.", http.StatusInternalServerError)
		return
	}

	redirectToProducts(w, r, username)
}

func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data.", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if err := h.svc.Login(r.Context(), username, password); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			http.Error(w, "No user found with that username.", http.StatusNotFound)
		case errors.Is(err, service.ErrInvalidCredentials):
			http.Error(w, "Invalid credentials.", http.StatusUnauthorized)
		default:
			log.Printf("Error logging in: %v", err)
			http.Error(w, "Internal Server Error.", http.StatusInternalServerError)
		}
		return
	}

	redirectToProducts(w, r, username)
}

// redirectToProducts sends the client to the products page with the username
// in the query string. There is no session: the username itself is the
// identity the client carries on subsequent requests.
func redirectToProducts(w http.ResponseWriter, r *http.Request, username string) {
	http.Redirect(w, r, "/products.html?username="+url.QueryEscape(username), http.StatusFound)
}
