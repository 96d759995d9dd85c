package kyc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sangamhr/kyc-portal/internal"
	"github.com/sangamhr/kyc-portal/internal/access"
	"github.com/sangamhr/kyc-portal/internal/auth"
	kycDatamodel "github.com/sangamhr/kyc-portal/internal/core/datamodel/kyc"
	"github.com/sangamhr/kyc-portal/internal/session"
	"github.com/sangamhr/kyc-portal/internal/transport/view"
)

type stubKYCService struct {
	submitErr        error
	submittedForCode string
	record           *kycDatamodel.Record
	recordErr        error
	records          []*kycDatamodel.Record
	recordsErr       error
}

func (s *stubKYCService) Submit(_ context.Context, employeeCode string, dto SubmitKYCDTO) (*kycDatamodel.Record, error) {
	s.submittedForCode = employeeCode
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return dto.ToRecord(employeeCode, time.Now()), nil
}

func (s *stubKYCService) RecordFor(_ context.Context, _ string) (*kycDatamodel.Record, error) {
	return s.record, s.recordErr
}

func (s *stubKYCService) AllRecords(_ context.Context) ([]*kycDatamodel.Record, error) {
	return s.records, s.recordsErr
}

var _ = Describe("KYCHandler", func() {
	var (
		handler  *Handler
		stub     *stubKYCService
		sessions *session.Manager
	)

	var cookieJar *httptest.ResponseRecorder

	identityFor := func(u *auth.User) *auth.Identity {
		cookieJar = httptest.NewRecorder()
		sess, err := sessions.Issue(context.Background(), cookieJar, u.ID, u.EmployeeCode)
		Expect(err).NotTo(HaveOccurred())
		return &auth.Identity{Session: sess, User: u}
	}

	// storedSession re-reads the issued session so flash changes made through
	// the store are visible.
	storedSession := func() session.Session {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range cookieJar.Result().Cookies() {
			r.AddCookie(c)
		}
		sess, err := sessions.Resolve(context.Background(), r)
		Expect(err).NotTo(HaveOccurred())
		return sess
	}

	withIdentity := func(r *http.Request, identity *auth.Identity) *http.Request {
		return r.WithContext(auth.ContextWithIdentity(r.Context(), identity))
	}

	BeforeEach(func() {
		stub = &stubKYCService{}
		sessions = session.NewManager(session.NewMemoryStore(), "test-session-secret-at-least-32-chars", "kyc_session", time.Hour)
		views, err := view.NewRenderer()
		Expect(err).NotTo(HaveOccurred())
		handler = NewHandler(stub, sessions, views)
	})

	Describe("ShowForm", func() {
		It("redirects anonymous requests to login", func() {
			r := httptest.NewRequest(http.MethodGet, access.PathSubmissionForm, nil)
			w := httptest.NewRecorder()
			handler.ShowForm(w, r)

			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal(access.PathLogin))
		})

		It("renders the form for a pending employee", func() {
			identity := identityFor(&auth.User{ID: 1, EmployeeCode: "E100", Name: "Rakesh Sharma"})
			r := withIdentity(httptest.NewRequest(http.MethodGet, access.PathSubmissionForm, nil), identity)
			w := httptest.NewRecorder()
			handler.ShowForm(w, r)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("E100"))
			Expect(w.Body.String()).To(ContainSubstring("Rakesh Sharma"))
		})

		It("bounces a submitted employee to thank-you with a flash", func() {
			identity := identityFor(&auth.User{ID: 1, EmployeeCode: "E100", KYCSubmitted: true})
			r := withIdentity(httptest.NewRequest(http.MethodGet, access.PathSubmissionForm, nil), identity)
			w := httptest.NewRecorder()
			handler.ShowForm(w, r)

			Expect(w.Header().Get("Location")).To(Equal(access.PathThankYou))

			flash, err := sessions.PopFlash(context.Background(), storedSession())
			Expect(err).NotTo(HaveOccurred())
			Expect(flash).To(Equal(internal.ErrAlreadySubmitted.Message))
		})
	})

	Describe("SubmitForm", func() {
		post := func(identity *auth.Identity, form url.Values) *httptest.ResponseRecorder {
			r := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(form.Encode()))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if identity != nil {
				r = withIdentity(r, identity)
			}
			w := httptest.NewRecorder()
			handler.SubmitForm(w, r)
			return w
		}

		It("redirects anonymous requests to login", func() {
			w := post(nil, url.Values{"name": {"Rakesh Sharma"}})
			Expect(w.Header().Get("Location")).To(Equal(access.PathLogin))
		})

		It("submits under the session's employee code and lands on thank-you", func() {
			identity := identityFor(&auth.User{ID: 1, EmployeeCode: "E100"})
			w := post(identity, url.Values{"name": {"Rakesh Sharma"}})

			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal(access.PathThankYou))
			Expect(stub.submittedForCode).To(Equal("E100"))
		})

		It("ignores an employee_code field in the body", func() {
			identity := identityFor(&auth.User{ID: 1, EmployeeCode: "E100"})
			post(identity, url.Values{"name": {"Rakesh Sharma"}, "employee_code": {"E999"}})

			Expect(stub.submittedForCode).To(Equal("E100"))
		})

		It("answers validation failures with a 400", func() {
			stub.submitErr = ValidationError{Msg: "name is required"}
			identity := identityFor(&auth.User{ID: 1, EmployeeCode: "E100"})
			w := post(identity, url.Values{})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("redirects a duplicate submission to thank-you with a flash", func() {
			stub.submitErr = internal.ErrAlreadySubmitted
			identity := identityFor(&auth.User{ID: 1, EmployeeCode: "E100"})
			w := post(identity, url.Values{"name": {"Rakesh Sharma"}})

			Expect(w.Header().Get("Location")).To(Equal(access.PathThankYou))

			flash, err := sessions.PopFlash(context.Background(), storedSession())
			Expect(err).NotTo(HaveOccurred())
			Expect(flash).To(Equal(internal.ErrAlreadySubmitted.Message))
		})

		It("keeps store failure details out of the response", func() {
			stub.submitErr = internal.NewStoreError("duplicate key value violates unique constraint", nil)
			identity := identityFor(&auth.User{ID: 1, EmployeeCode: "E100"})
			w := post(identity, url.Values{"name": {"Rakesh Sharma"}})

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).NotTo(ContainSubstring("unique constraint"))
		})
	})

	Describe("UserDashboard", func() {
		It("renders the employee's own record", func() {
			dept := "Finance"
			stub.record = &kycDatamodel.Record{
				EmployeeCode: "E100",
				Name:         "Rakesh Sharma",
				Department:   &dept,
				SubmittedAt:  time.Now(),
			}
			identity := identityFor(&auth.User{ID: 1, EmployeeCode: "E100", KYCSubmitted: true})
			r := withIdentity(httptest.NewRequest(http.MethodGet, access.PathUserDashboard, nil), identity)
			w := httptest.NewRecorder()
			handler.UserDashboard(w, r)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("Rakesh Sharma"))
			Expect(w.Body.String()).To(ContainSubstring("Finance"))
		})

		It("answers 404 when no record exists", func() {
			stub.recordErr = internal.ErrKYCRecordNotFound
			identity := identityFor(&auth.User{ID: 1, EmployeeCode: "E100", KYCSubmitted: true})
			r := withIdentity(httptest.NewRequest(http.MethodGet, access.PathUserDashboard, nil), identity)
			w := httptest.NewRecorder()
			handler.UserDashboard(w, r)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("AdminDashboard", func() {
		It("lists every submitted record", func() {
			stub.records = []*kycDatamodel.Record{
				{EmployeeCode: "E100", Name: "Rakesh Sharma", SubmittedAt: time.Now()},
				{EmployeeCode: "E101", Name: "Anita Desai", SubmittedAt: time.Now()},
			}
			identity := identityFor(&auth.User{ID: 3, EmployeeCode: "HR001", IsAdmin: true})
			r := withIdentity(httptest.NewRequest(http.MethodGet, access.PathAdminDashboard, nil), identity)
			w := httptest.NewRecorder()
			handler.AdminDashboard(w, r)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("Rakesh Sharma"))
			Expect(w.Body.String()).To(ContainSubstring("Anita Desai"))
		})

		It("answers 500 when the store fails", func() {
			stub.recordsErr = internal.NewStoreError("db down", nil)
			identity := identityFor(&auth.User{ID: 3, EmployeeCode: "HR001", IsAdmin: true})
			r := withIdentity(httptest.NewRequest(http.MethodGet, access.PathAdminDashboard, nil), identity)
			w := httptest.NewRecorder()
			handler.AdminDashboard(w, r)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("ThankYou", func() {
		It("renders the pending flash", func() {
			identity := identityFor(&auth.User{ID: 1, EmployeeCode: "E100", KYCSubmitted: true})
			Expect(sessions.SetFlash(context.Background(), identity.Session, "you have already submitted the KYC form")).To(Succeed())
			identity.Session.Flash = "you have already submitted the KYC form"

			r := withIdentity(httptest.NewRequest(http.MethodGet, access.PathThankYou, nil), identity)
			w := httptest.NewRecorder()
			handler.ThankYou(w, r)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("already submitted"))
		})
	})
})
