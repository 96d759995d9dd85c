package kyc

import (
	"context"
	"errors"
	"net/http"

	"github.com/sangamhr/kyc-portal/internal"
	"github.com/sangamhr/kyc-portal/internal/access"
	"github.com/sangamhr/kyc-portal/internal/auth"
	kycDatamodel "github.com/sangamhr/kyc-portal/internal/core/datamodel/kyc"
	"github.com/sangamhr/kyc-portal/internal/session"
	"github.com/sangamhr/kyc-portal/internal/transport"
	"github.com/sangamhr/kyc-portal/internal/transport/view"
	"github.com/sangamhr/kyc-portal/pkg/logger"
)

type ServiceAPI interface {
	Submit(ctx context.Context, employeeCode string, dto SubmitKYCDTO) (*kycDatamodel.Record, error)
	RecordFor(ctx context.Context, employeeCode string) (*kycDatamodel.Record, error)
	AllRecords(ctx context.Context) ([]*kycDatamodel.Record, error)
}

type Handler struct {
	*transport.BaseHandler
	Service  ServiceAPI
	Sessions *session.Manager
	Views    *view.Renderer
}

func NewHandler(svc ServiceAPI, sessions *session.Manager, views *view.Renderer) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
		Sessions:    sessions,
		Views:       views,
	}
}

// ShowForm handles GET /employee_kyc_detail. A user who already submitted is
// bounced to the thank-you page so the form cannot be re-rendered.
func (h *Handler) ShowForm(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())
	if identity == nil || identity.User == nil {
		h.Redirect(w, r, access.PathLogin)
		return
	}

	if identity.User.KYCSubmitted {
		h.flash(r, identity, internal.ErrAlreadySubmitted.Message)
		h.Redirect(w, r, access.PathThankYou)
		return
	}

	data := view.FormData{
		EmployeeCode: identity.User.EmployeeCode,
		Name:         identity.User.Name,
	}
	if err := h.Views.Render(w, "employee_kyc_detail.html", data); err != nil {
		h.Logger.Error("failed to render kyc form", "error", err)
	}
}

// SubmitForm handles POST /submit. The record is bound to the session's
// employee code; an employee_code field in the body is ignored.
func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())
	if identity == nil || identity.User == nil {
		h.Redirect(w, r, access.PathLogin)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	dto := SubmitKYCDTOFromForm(r.PostForm)
	_, err := h.Service.Submit(r.Context(), identity.User.EmployeeCode, dto)
	if err != nil {
		var vErr ValidationError
		switch {
		case errors.As(err, &vErr):
			h.WriteError(w, http.StatusBadRequest, vErr.Msg)
		case errors.Is(err, internal.ErrAlreadySubmitted):
			h.flash(r, identity, internal.ErrAlreadySubmitted.Message)
			h.Redirect(w, r, access.PathThankYou)
		default:
			// raw store error stays in the log
			h.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.Redirect(w, r, access.PathThankYou)
}

// UserDashboard handles GET /user-dashboard behind the RequireSubmitted guard.
func (h *Handler) UserDashboard(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())
	if identity == nil || identity.User == nil {
		h.Redirect(w, r, access.PathLogin)
		return
	}

	record, err := h.Service.RecordFor(r.Context(), identity.User.EmployeeCode)
	if err != nil {
		if errors.Is(err, internal.ErrKYCRecordNotFound) {
			// unreachable behind the guard, handled defensively
			h.WriteError(w, http.StatusNotFound, "KYC record not found")
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	data := view.UserDashboardData{
		Name:         record.Name,
		EmployeeCode: record.EmployeeCode,
		Sections:     recordSections(record),
	}
	if err := h.Views.Render(w, "user-dashboard.html", data); err != nil {
		h.Logger.Error("failed to render user dashboard", "error", err)
	}
}

// AdminDashboard handles GET /admin-dashboard behind the RequireAdmin guard.
func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.AllRecords(r.Context())
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	data := view.AdminDashboardData{Records: make([]view.AdminRow, 0, len(records))}
	for _, record := range records {
		data.Records = append(data.Records, view.AdminRow{
			EmployeeCode:  record.EmployeeCode,
			Name:          record.Name,
			Department:    deref(record.Department),
			Designation:   deref(record.Designation),
			PANNumber:     deref(record.PANNumber),
			DateOfJoining: deref(record.DateOfJoining),
			SubmittedAt:   record.SubmittedAt.Format("2006-01-02 15:04"),
		})
	}
	if err := h.Views.Render(w, "admin-dashboard.html", data); err != nil {
		h.Logger.Error("failed to render admin dashboard", "error", err)
	}
}

// ThankYou handles GET /thank-you.
func (h *Handler) ThankYou(w http.ResponseWriter, r *http.Request) {
	var message string
	if identity, ok := auth.IdentityFromContext(r.Context()); ok && identity != nil {
		if flash, err := h.Sessions.PopFlash(r.Context(), identity.Session); err == nil {
			message = flash
		}
	}

	if err := h.Views.Render(w, "thank-you.html", view.ThankYouData{Message: message}); err != nil {
		h.Logger.Error("failed to render thank-you page", "error", err)
	}
}

func (h *Handler) flash(r *http.Request, identity *auth.Identity, message string) {
	if err := h.Sessions.SetFlash(r.Context(), identity.Session, message); err != nil {
		h.Logger.Error("failed to set flash", "error", err)
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func recordSections(record *kycDatamodel.Record) []view.RowSection {
	return []view.RowSection{
		{
			Title: "Employee Details",
			Rows: []view.Row{
				{Label: "Department", Value: deref(record.Department)},
				{Label: "Designation", Value: deref(record.Designation)},
				{Label: "Date of Joining", Value: deref(record.DateOfJoining)},
				{Label: "Date of Birth", Value: deref(record.DateOfBirth)},
				{Label: "PAN Number", Value: deref(record.PANNumber)},
				{Label: "Aadhar Number", Value: deref(record.AadharNumber)},
				{Label: "UAN Number", Value: deref(record.UANNumber)},
				{Label: "Band", Value: deref(record.Band)},
				{Label: "Plant", Value: deref(record.Plant)},
				{Label: "Education", Value: deref(record.Education)},
				{Label: "Reporting Manager", Value: deref(record.ReportingTo)},
				{Label: "HOD", Value: deref(record.HOD)},
				{Label: "Permanent Address", Value: deref(record.PermanentAddress)},
				{Label: "Temporary Address", Value: deref(record.TemporaryAddress)},
			},
		},
		{
			Title: "Nominees",
			Rows: []view.Row{
				{Label: "Nominee 1", Value: deref(record.Nominee1)},
				{Label: "Nominee 1 Birthdate", Value: deref(record.Nominee1Birthdate)},
				{Label: "Nominee 1 Share %", Value: deref(record.Nominee1Percent)},
				{Label: "Nominee 2", Value: deref(record.Nominee2)},
				{Label: "Nominee 2 Birthdate", Value: deref(record.Nominee2Birthdate)},
				{Label: "Nominee 2 Share %", Value: deref(record.Nominee2Percent)},
				{Label: "Nominee 3", Value: deref(record.Nominee3)},
				{Label: "Nominee 3 Birthdate", Value: deref(record.Nominee3Birthdate)},
				{Label: "Nominee 3 Share %", Value: deref(record.Nominee3Percent)},
			},
		},
		{
			Title: "Family",
			Rows: []view.Row{
				{Label: "Father", Value: deref(record.FatherName)},
				{Label: "Father Birthdate", Value: deref(record.FatherBirthdate)},
				{Label: "Mother", Value: deref(record.MotherName)},
				{Label: "Mother Birthdate", Value: deref(record.MotherBirthdate)},
				{Label: "Father-in-law", Value: deref(record.FatherInLawName)},
				{Label: "Mother-in-law", Value: deref(record.MotherInLawName)},
				{Label: "Spouse", Value: deref(record.SpouseName)},
				{Label: "Spouse Birthdate", Value: deref(record.SpouseBirthdate)},
				{Label: "Child 1", Value: deref(record.Child1Name)},
				{Label: "Child 2", Value: deref(record.Child2Name)},
				{Label: "Child 3", Value: deref(record.Child3Name)},
				{Label: "Child 4", Value: deref(record.Child4Name)},
				{Label: "Child 5", Value: deref(record.Child5Name)},
			},
		},
		{
			Title: "Insurance Opt-in",
			Rows: []view.Row{
				{Label: "Self", Value: deref(record.SelfInsurance)},
				{Label: "Spouse", Value: deref(record.SpouseInsurance)},
				{Label: "Father", Value: deref(record.FatherInsurance)},
				{Label: "Mother", Value: deref(record.MotherInsurance)},
				{Label: "Father-in-law", Value: deref(record.FatherInLawInsurance)},
				{Label: "Mother-in-law", Value: deref(record.MotherInLawInsurance)},
				{Label: "Child 1", Value: deref(record.Child1Insurance)},
				{Label: "Child 2", Value: deref(record.Child2Insurance)},
				{Label: "Child 3", Value: deref(record.Child3Insurance)},
				{Label: "Child 4", Value: deref(record.Child4Insurance)},
				{Label: "Remarks", Value: deref(record.Remarks)},
			},
		},
	}
}
