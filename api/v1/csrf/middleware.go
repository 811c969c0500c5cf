package csrf

import (
	"net/http"
	"time"

	"quillpost-api/internal/logger"
	"quillpost-api/pkg/status"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/sirupsen/logrus"
)

// Protect wraps gorilla/csrf for gin. A secure deployment serves a cross-site
// frontend, so the cookie is SameSite=None there and Strict otherwise.
func Protect(secret string, secure bool, maxAge time.Duration, log *logger.Logger) gin.HandlerFunc {
	sameSite := csrf.SameSiteStrictMode
	if secure {
		sameSite = csrf.SameSiteNoneMode
	}

	csrfMiddleware := csrf.Protect(
		[]byte(secret),
		csrf.Secure(secure),
		csrf.HttpOnly(true),
		csrf.Path("/"),
		csrf.CookieName("csrfToken"),
		csrf.MaxAge(int(maxAge.Seconds())),
		csrf.SameSite(sameSite),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fields := logrus.Fields{
				"path":      r.URL.Path,
				"method":    r.Method,
				"userAgent": r.UserAgent(),
			}
			if reason := csrf.FailureReason(r); reason != nil {
				fields["reason"] = reason.Error()
			}
			log.WithFields(fields).Error("CSRF token mismatch")

			c, _ := gin.CreateTestContext(w)
			c.JSON(http.StatusForbidden, NewErrorResponse(
				http.StatusForbidden,
				status.StatusCSRFTokenMismatch,
				"CSRF token mismatch",
			))
		})),
	)

	return func(c *gin.Context) {
		csrfMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})).ServeHTTP(c.Writer, c.Request)
		c.Abort()
	}
}
