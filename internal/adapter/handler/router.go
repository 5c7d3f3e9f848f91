package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"github.com/srgjo27/cabin_portal/internal/core/services"
)

type RouterConfig struct {
	Cookie CookieConfig
	// CSRFKey enables CSRF protection when it holds 32 bytes.
	CSRFKey []byte
}

type Handlers struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Booking *BookingHandler
	Account *AccountHandler
	Admin   *AdminHandler
}

func NewRouter(cfg RouterConfig, auth *services.AuthService, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(Sessions(cfg.Cookie))

	csrfEnabled := len(cfg.CSRFKey) == 32
	if csrfEnabled {
		if !cfg.Cookie.Secure {
			r.Use(plaintext)
		}

		r.Use(csrf.Protect(cfg.CSRFKey,
			csrf.Secure(cfg.Cookie.Secure),
			csrf.Path("/"),
			csrf.SameSite(csrf.SameSiteLaxMode),
			csrf.ErrorHandler(http.HandlerFunc(csrfFailed)),
		))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/csrf", func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if csrfEnabled {
			token = csrf.Token(r)
		}

		writeJSON(w, http.StatusOK, map[string]string{"token": token})
	})

	r.Post("/login", h.Auth.Login)
	r.Post("/register", h.Auth.Register)
	r.Post("/logout", h.Auth.Logout)
	r.Get("/sesion", h.Auth.Me)

	r.Get("/cabanas", h.Catalog.ListCabins)
	r.Get("/cabanas/{id}", h.Catalog.CabinDetail)
	// The booking flow applies its own auth gate and sends guests to /register.
	r.Post("/cabanas/{id}/reservar", h.Booking.Reserve)
	r.Get("/buscar", h.Catalog.Search)
	r.Get("/buscar/ultima", h.Catalog.Prefill)
	r.Delete("/buscar/ultima", h.Catalog.ForgetSearch)
	r.Get("/servicios", h.Catalog.ListServices)

	r.Route("/cuenta", func(r chi.Router) {
		r.Use(RequireSession(auth))

		r.Get("/", h.Account.Overview)
		r.Route("/reservas/{id}", func(r chi.Router) {
			r.Post("/cancelar", h.Account.Cancel)
			r.Put("/fechas", h.Account.ChangeDates)
			r.Post("/servicios", h.Account.AddExtras)
			r.Get("/reservar-de-nuevo", h.Account.Rebook)
			r.Get("/huespedes", h.Account.ListGuests)
			r.Post("/huespedes", h.Account.AddGuest)
			r.Delete("/huespedes/{guestID}", h.Account.RemoveGuest)
			r.Post("/comprobante", h.Account.UploadReceipt)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(RequireAdmin(auth))

		r.Get("/", h.Admin.Reservations)
		r.Get("/reservas", h.Admin.Reservations)
		r.Post("/reservas/{id}/checkin", h.Admin.CheckIn)
		r.Post("/reservas/{id}/checkout", h.Admin.CheckOut)
		r.Post("/pagos/{id}/validar", h.Admin.ValidatePayment)
		r.Post("/pagos/{id}/rechazar", h.Admin.RejectPayment)
		r.Get("/reportes/ocupacion", h.Admin.OccupancyReport)

		r.Get("/cabanas", h.Admin.ListCabins)
		r.Post("/cabanas", h.Admin.CreateCabin)
		r.Put("/cabanas/{id}", h.Admin.UpdateCabin)
		r.Delete("/cabanas/{id}", h.Admin.DeleteCabin)
		r.Get("/cabanas/{id}/imagenes", h.Admin.ListImages)
		r.Post("/cabanas/{id}/imagenes", h.Admin.UploadImage)
		r.Delete("/cabanas/{id}/imagenes/{imageID}", h.Admin.DeleteImage)
		r.Post("/cabanas/{id}/imagenes/{imageID}/portada", h.Admin.SetCover)

		r.Get("/servicios", h.Admin.ListServices)
		r.Post("/servicios", h.Admin.CreateService)
		r.Post("/servicios/{id}", h.Admin.UpdateService)
		r.Delete("/servicios/{id}", h.Admin.DeleteService)
	})

	return r
}

func plaintext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}

func csrfFailed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusForbidden, "La sesión del formulario expiró. Recarga la página.")
}
