package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/sangamhr/kyc-portal/internal"
	"github.com/sangamhr/kyc-portal/internal/access"
	"github.com/sangamhr/kyc-portal/internal/session"
	"github.com/sangamhr/kyc-portal/internal/transport/view"
)

type stubAuthService struct {
	result *User
	err    error
}

func (s *stubAuthService) Authenticate(_ context.Context, _ LoginDTO) (*User, error) {
	return s.result, s.err
}

func (s *stubAuthService) HashPassword(password string) (string, error) {
	return password, nil
}

func postLogin(handler *Handler, form url.Values) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.Login(w, r)
	return w
}

var _ = ginkgo.Describe("AuthHandler", func() {
	var (
		handler  *Handler
		stub     *stubAuthService
		sessions *session.Manager
	)

	ginkgo.BeforeEach(func() {
		stub = &stubAuthService{}
		sessions = session.NewManager(session.NewMemoryStore(), "test-session-secret-at-least-32-chars", "kyc_session", time.Hour)
		views, err := view.NewRenderer()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		handler = NewHandler(stub, sessions, views)
	})

	ginkgo.Describe("Login", func() {
		ginkgo.It("issues a session and routes a fresh employee to the form", func() {
			stub.result = &User{ID: 1, EmployeeCode: "E100"}

			w := postLogin(handler, url.Values{"employee_code": {"E100"}, "password": {"pw"}})

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusFound))
			gomega.Expect(w.Header().Get("Location")).To(gomega.Equal(access.PathSubmissionForm))

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			for _, c := range w.Result().Cookies() {
				if c.MaxAge >= 0 {
					r.AddCookie(c)
				}
			}
			sess, err := sessions.Resolve(context.Background(), r)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(sess.UserID).To(gomega.Equal(int64(1)))
		})

		ginkgo.It("routes a submitted employee to the user dashboard", func() {
			stub.result = &User{ID: 2, EmployeeCode: "E200", KYCSubmitted: true}

			w := postLogin(handler, url.Values{"employee_code": {"E200"}, "password": {"pw"}})
			gomega.Expect(w.Header().Get("Location")).To(gomega.Equal(access.PathUserDashboard))
		})

		ginkgo.It("routes an admin to the admin dashboard", func() {
			stub.result = &User{ID: 3, EmployeeCode: "HR001", IsAdmin: true}

			w := postLogin(handler, url.Values{"employee_code": {"HR001"}, "password": {"pw"}})
			gomega.Expect(w.Header().Get("Location")).To(gomega.Equal(access.PathAdminDashboard))
		})

		ginkgo.It("routes a submitted admin to the user dashboard", func() {
			stub.result = &User{ID: 3, EmployeeCode: "HR001", IsAdmin: true, KYCSubmitted: true}

			w := postLogin(handler, url.Values{"employee_code": {"HR001"}, "password": {"pw"}})
			gomega.Expect(w.Header().Get("Location")).To(gomega.Equal(access.PathUserDashboard))
		})

		ginkgo.It("flashes the failure reason and bounces back to login", func() {
			stub.err = internal.ErrInvalidPassword

			w := postLogin(handler, url.Values{"employee_code": {"E100"}, "password": {"wrong"}})

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusFound))
			gomega.Expect(w.Header().Get("Location")).To(gomega.Equal(access.PathLogin))

			// the flash lives on a fresh anonymous session
			r := httptest.NewRequest(http.MethodGet, "/login", nil)
			for _, c := range w.Result().Cookies() {
				r.AddCookie(c)
			}
			sess, err := sessions.Resolve(context.Background(), r)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(sess.UserID).To(gomega.BeZero())

			flash, err := sessions.PopFlash(context.Background(), sess)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(flash).To(gomega.Equal(internal.ErrInvalidPassword.Message))
		})

		ginkgo.It("flashes validation failures the same way", func() {
			stub.err = ValidationError{Msg: "employee code is required"}

			w := postLogin(handler, url.Values{"password": {"pw"}})
			gomega.Expect(w.Header().Get("Location")).To(gomega.Equal(access.PathLogin))
		})

		ginkgo.It("answers store failures with a generic 500", func() {
			stub.err = internal.NewStoreError("db down", nil)

			w := postLogin(handler, url.Values{"employee_code": {"E100"}, "password": {"pw"}})
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusInternalServerError))
			gomega.Expect(w.Body.String()).NotTo(gomega.ContainSubstring("db down"))
		})
	})

	ginkgo.Describe("ShowLogin", func() {
		ginkgo.It("renders the pending flash exactly once", func() {
			w := httptest.NewRecorder()
			sess, err := sessions.Issue(context.Background(), w, 0, "")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(sessions.SetFlash(context.Background(), sess, "incorrect password")).To(gomega.Succeed())

			// resolve the way the middleware would so the flash is visible
			resolve := func() session.Session {
				r := httptest.NewRequest(http.MethodGet, "/login", nil)
				for _, c := range w.Result().Cookies() {
					r.AddCookie(c)
				}
				stored, rerr := sessions.Resolve(context.Background(), r)
				gomega.Expect(rerr).NotTo(gomega.HaveOccurred())
				return stored
			}

			r := httptest.NewRequest(http.MethodGet, "/login", nil)
			r = r.WithContext(ContextWithIdentity(r.Context(), &Identity{Session: resolve()}))

			first := httptest.NewRecorder()
			handler.ShowLogin(first, r)
			gomega.Expect(first.Body.String()).To(gomega.ContainSubstring("incorrect password"))

			r2 := httptest.NewRequest(http.MethodGet, "/login", nil)
			r2 = r2.WithContext(ContextWithIdentity(r2.Context(), &Identity{Session: resolve()}))

			second := httptest.NewRecorder()
			handler.ShowLogin(second, r2)
			gomega.Expect(second.Body.String()).NotTo(gomega.ContainSubstring("incorrect password"))
		})
	})

	ginkgo.Describe("Root", func() {
		dispatch := func(identity *Identity) string {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r = r.WithContext(ContextWithIdentity(r.Context(), identity))
			w := httptest.NewRecorder()
			handler.Root(w, r)
			return w.Header().Get("Location")
		}

		ginkgo.It("sends anonymous requests to login", func() {
			gomega.Expect(dispatch(nil)).To(gomega.Equal(access.PathLogin))
		})

		ginkgo.It("sends pending employees to the form", func() {
			identity := &Identity{User: &User{ID: 1, EmployeeCode: "E100"}}
			gomega.Expect(dispatch(identity)).To(gomega.Equal(access.PathSubmissionForm))
		})

		ginkgo.It("sends submitted employees to their dashboard", func() {
			identity := &Identity{User: &User{ID: 1, EmployeeCode: "E100", KYCSubmitted: true}}
			gomega.Expect(dispatch(identity)).To(gomega.Equal(access.PathUserDashboard))
		})

		ginkgo.It("sends admins to the admin dashboard", func() {
			identity := &Identity{User: &User{ID: 3, EmployeeCode: "HR001", IsAdmin: true}}
			gomega.Expect(dispatch(identity)).To(gomega.Equal(access.PathAdminDashboard))
		})
	})

	ginkgo.Describe("Logout", func() {
		ginkgo.It("expires the cookie and redirects to login", func() {
			issueW := httptest.NewRecorder()
			_, err := sessions.Issue(context.Background(), issueW, 1, "E100")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			r := httptest.NewRequest(http.MethodGet, "/logout", nil)
			for _, c := range issueW.Result().Cookies() {
				r.AddCookie(c)
			}
			w := httptest.NewRecorder()
			handler.Logout(w, r)

			gomega.Expect(w.Header().Get("Location")).To(gomega.Equal(access.PathLogin))
			cookies := w.Result().Cookies()
			gomega.Expect(cookies).To(gomega.HaveLen(1))
			gomega.Expect(cookies[0].MaxAge).To(gomega.Equal(-1))
		})
	})
})
