// Package seller holds the application a user files to become a seller and
// the admin review that settles it.
package seller

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Sentinel errors for the application review flow, usable with errors.Is.
var (
	ErrApplicationAlreadySettled = errors.New("application already settled")

	// ErrApplicationIsNotConstructed is returned for applications not created
	// through a constructor.
	ErrApplicationIsNotConstructed = errors.New("seller application is not constructed")
)

// ApplicationStatus is the review state of a seller application.
type ApplicationStatus int

const (
	// ApplicationUnknown represents an invalid or undefined status.
	ApplicationUnknown ApplicationStatus = iota

	// ApplicationPending means the application awaits an admin.
	ApplicationPending

	// ApplicationUnderReview means an admin picked the application up.
	ApplicationUnderReview

	// ApplicationApproved means the applicant was promoted to seller.
	ApplicationApproved

	// ApplicationRejected means the application was turned down.
	ApplicationRejected
)

func applicationStatusStrings() map[ApplicationStatus]string {
	return map[ApplicationStatus]string{
		ApplicationPending:     "pending",
		ApplicationUnderReview: "under_review",
		ApplicationApproved:    "approved",
		ApplicationRejected:    "rejected",
	}
}

// ApplicationStatusFromString parses the wire representation of an
// application status.
func ApplicationStatusFromString(s string) (ApplicationStatus, error) {
	for status, str := range applicationStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ApplicationUnknown, errs.NewValueIsInvalidError(fmt.Sprintf("%q is not a valid application status", s))
}

// Validate returns an error for ApplicationUnknown and any other undefined
// value.
func (s ApplicationStatus) Validate() error {
	if _, ok := applicationStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError(fmt.Sprintf("%d is not a valid application status", s))
	}
	return nil
}

func (s ApplicationStatus) String() string {
	if str, ok := applicationStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsSettled reports whether the application was approved or rejected.
func (s ApplicationStatus) IsSettled() bool {
	return s == ApplicationApproved || s == ApplicationRejected
}

// Application is a user's request to sell on the marketplace. An admin
// approves or rejects it exactly once; the role promotion of the applicant
// happens in the same transaction, outside this aggregate.
type Application struct {
	id           kernel.UUID
	applicantID  kernel.UUID
	businessName string

	status     ApplicationStatus
	reviewedBy *kernel.UUID
	reviewedAt *time.Time
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewApplication files an application in pending status.
func NewApplication(id, applicantID kernel.UUID, businessName string, now time.Time) (*Application, error) {
	if err := errors.Join(
		id.Validate(),
		applicantID.Validate(),
	); err != nil {
		return nil, err
	}
	if businessName == "" {
		return nil, errs.NewValueIsRequiredError("businessName")
	}

	return &Application{
		id:           id,
		applicantID:  applicantID,
		businessName: businessName,
		status:       ApplicationPending,
		createdAt:    now,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreApplication reconstructs the application from persistence.
func RestoreApplication(
	id, applicantID kernel.UUID,
	businessName string,
	status ApplicationStatus,
	reviewedBy *kernel.UUID,
	reviewedAt *time.Time,
	createdAt time.Time,
) (*Application, error) {
	if err := errors.Join(
		id.Validate(),
		applicantID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if businessName == "" {
		return nil, errs.NewValueIsRequiredError("businessName")
	}

	return &Application{
		id:           id,
		applicantID:  applicantID,
		businessName: businessName,
		status:       status,
		reviewedBy:   reviewedBy,
		reviewedAt:   reviewedAt,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the application was created through a constructor.
func (a *Application) Validate() error {
	if a == nil {
		return ErrApplicationIsNotConstructed
	}
	return a.guard.Validate(ErrApplicationIsNotConstructed)
}

// ID returns the application identifier.
func (a *Application) ID() kernel.UUID {
	return a.id
}

// ApplicantID returns the user asking for the seller role.
func (a *Application) ApplicantID() kernel.UUID {
	return a.applicantID
}

// BusinessName returns the declared trading name.
func (a *Application) BusinessName() string {
	return a.businessName
}

// Status returns the review state.
func (a *Application) Status() ApplicationStatus {
	return a.status
}

// ReviewedBy returns the settling admin, or nil before settlement.
func (a *Application) ReviewedBy() *kernel.UUID {
	return a.reviewedBy
}

// ReviewedAt returns the settlement time, or nil before settlement.
func (a *Application) ReviewedAt() *time.Time {
	return a.reviewedAt
}

// CreatedAt returns when the application was filed.
func (a *Application) CreatedAt() time.Time {
	return a.createdAt
}

// StartReview moves a pending application under review.
func (a *Application) StartReview() error {
	if a.status.IsSettled() {
		return ErrApplicationAlreadySettled
	}
	a.status = ApplicationUnderReview
	return nil
}

// Approve settles the application in the applicant's favor. Settled
// applications cannot be reopened.
func (a *Application) Approve(admin user.Actor, now time.Time) error {
	return a.settle(ApplicationApproved, admin, now)
}

// Reject turns the application down. Settled applications cannot be reopened.
func (a *Application) Reject(admin user.Actor, now time.Time) error {
	return a.settle(ApplicationRejected, admin, now)
}

func (a *Application) settle(target ApplicationStatus, admin user.Actor, now time.Time) error {
	if err := admin.Validate(); err != nil {
		return err
	}
	if admin.Role() != user.RoleAdmin || !admin.IsActive() {
		return errs.NewValueIsInvalidError("only an active admin may settle an application")
	}
	if a.status.IsSettled() {
		return ErrApplicationAlreadySettled
	}

	adminID := admin.ID()
	a.status = target
	a.reviewedBy = &adminID
	a.reviewedAt = &now
	return nil
}
