package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/sangamhr/kyc-portal/internal"
	"github.com/sangamhr/kyc-portal/pkg/logger"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock UserRepository for testing
type mockUserRepository struct {
	users         map[string]*User
	returnError   bool
	errorToReturn error
}

func newMockUserRepository() *mockUserRepository {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.MinCost)

	return &mockUserRepository{
		users: map[string]*User{
			"E100": {ID: 1, EmployeeCode: "E100", Name: "Rakesh Sharma", PasswordHash: string(hashedPassword)},
			"E200": {ID: 2, EmployeeCode: "E200", Name: "Anita Desai", PasswordHash: string(hashedPassword), KYCSubmitted: true},
			"HR001": {ID: 3, EmployeeCode: "HR001", Name: "HR Admin", PasswordHash: string(hashedPassword), IsAdmin: true},
		},
	}
}

func (m *mockUserRepository) GetByEmployeeCode(_ context.Context, employeeCode string) (*User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	if u, exists := m.users[employeeCode]; exists {
		return u, nil
	}
	return nil, internal.ErrUserNotFound
}

func (m *mockUserRepository) setError(err error) {
	m.returnError = true
	m.errorToReturn = err
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		mockRepo *mockUserRepository
		ctx      context.Context
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		service = NewService(mockRepo, Options{
			BCryptCost:                bcrypt.MinCost,
			AllowLoginAfterSubmission: true,
		}, logger.L())
		ctx = context.Background()
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.It("returns the user for valid credentials", func() {
			u, err := service.Authenticate(ctx, LoginDTO{EmployeeCode: "E100", Password: "correct_password"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(u.EmployeeCode).To(gomega.Equal("E100"))
			gomega.Expect(u.IsAdmin).To(gomega.BeFalse())
		})

		ginkgo.It("carries the admin and submission flags on the returned user", func() {
			u, err := service.Authenticate(ctx, LoginDTO{EmployeeCode: "HR001", Password: "correct_password"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(u.IsAdmin).To(gomega.BeTrue())
		})

		ginkgo.It("fails with ErrUnknownEmployeeCode for an unknown code", func() {
			_, err := service.Authenticate(ctx, LoginDTO{EmployeeCode: "E999", Password: "correct_password"})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrUnknownEmployeeCode))
		})

		ginkgo.It("fails with ErrInvalidPassword for a wrong password", func() {
			_, err := service.Authenticate(ctx, LoginDTO{EmployeeCode: "E100", Password: "wrong_password"})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidPassword))
		})

		ginkgo.It("keeps the two failure kinds distinct", func() {
			_, unknownErr := service.Authenticate(ctx, LoginDTO{EmployeeCode: "E999", Password: "x"})
			_, passwordErr := service.Authenticate(ctx, LoginDTO{EmployeeCode: "E100", Password: "x"})
			gomega.Expect(errors.Is(unknownErr, passwordErr)).To(gomega.BeFalse())
		})

		ginkgo.It("rejects an empty employee code before hitting the store", func() {
			mockRepo.setError(errors.New("should not be called"))
			_, err := service.Authenticate(ctx, LoginDTO{Password: "correct_password"})
			var vErr ValidationError
			gomega.Expect(errors.As(err, &vErr)).To(gomega.BeTrue())
		})

		ginkgo.It("rejects an empty password before hitting the store", func() {
			_, err := service.Authenticate(ctx, LoginDTO{EmployeeCode: "E100"})
			var vErr ValidationError
			gomega.Expect(errors.As(err, &vErr)).To(gomega.BeTrue())
		})

		ginkgo.It("wraps repository failures as store errors", func() {
			mockRepo.setError(errors.New("connection refused"))
			_, err := service.Authenticate(ctx, LoginDTO{EmployeeCode: "E100", Password: "correct_password"})
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeStore))
		})

		ginkgo.It("still authenticates a submitted user by default", func() {
			u, err := service.Authenticate(ctx, LoginDTO{EmployeeCode: "E200", Password: "correct_password"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(u.KYCSubmitted).To(gomega.BeTrue())
		})

		ginkgo.Context("when login after submission is disabled", func() {
			ginkgo.BeforeEach(func() {
				service = NewService(mockRepo, Options{
					BCryptCost:                bcrypt.MinCost,
					AllowLoginAfterSubmission: false,
				}, logger.L())
			})

			ginkgo.It("locks out a submitted user", func() {
				_, err := service.Authenticate(ctx, LoginDTO{EmployeeCode: "E200", Password: "correct_password"})
				gomega.Expect(err).To(gomega.MatchError(internal.ErrLoginLocked))
			})

			ginkgo.It("leaves unsubmitted users unaffected", func() {
				_, err := service.Authenticate(ctx, LoginDTO{EmployeeCode: "E100", Password: "correct_password"})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
			})
		})
	})

	ginkgo.Describe("HashPassword", func() {
		ginkgo.It("produces a hash that verifies against the password", func() {
			hash, err := service.HashPassword("s3cret")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret"))).To(gomega.Succeed())
		})
	})
})
