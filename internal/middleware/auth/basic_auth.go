package auth

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

const realm = "Manager Area"

// BasicAuth закрывает раздел менеджера. Если логин не задан в конфиге, доступ закрыт для всех.
func BasicAuth(log *slog.Logger, username, password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || username == "" {
				requireAuth(w)
				return
			}

			userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
			passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
			if !userMatch || !passMatch {
				log.Warn("неверные учётные данные менеджера",
					slog.String("user", user),
					slog.String("remote_addr", r.RemoteAddr),
				)
				requireAuth(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func requireAuth(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="`+realm+`", charset="UTF-8"`)
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}
