package models

type UserRole string
type JobStatus string
type ApplicationStatus string
type PayoutStatus string
type VerificationStatus string
type TicketStatus string
type TicketPriority string
type Audience string
type TransactionType string
type TransactionStatus string
type PortfolioKind string

// Значения сравниваются строго и возвращаются клиенту без изменений.
const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleTalent   UserRole = "TALENT"
	UserRoleEmployer UserRole = "EMPLOYER"
	UserRoleUser     UserRole = "USER"

	JobStatusDraft     JobStatus = "DRAFT"
	JobStatusPending   JobStatus = "PENDING"
	JobStatusPublished JobStatus = "PUBLISHED"
	JobStatusRejected  JobStatus = "REJECTED"
	JobStatusClosed    JobStatus = "CLOSED"

	ApplicationStatusSubmitted   ApplicationStatus = "SUBMITTED"
	ApplicationStatusReviewing   ApplicationStatus = "REVIEWING"
	ApplicationStatusShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationStatusInterview   ApplicationStatus = "INTERVIEW"
	ApplicationStatusHired       ApplicationStatus = "HIRED"
	ApplicationStatusRejected    ApplicationStatus = "REJECTED"

	PayoutStatusPending  PayoutStatus = "PENDING"
	PayoutStatusApproved PayoutStatus = "APPROVED"
	PayoutStatusRejected PayoutStatus = "REJECTED"

	VerificationStatusPending  VerificationStatus = "PENDING"
	VerificationStatusRejected VerificationStatus = "REJECTED"
	VerificationStatusApproved VerificationStatus = "APPROVED"

	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"

	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"
	TicketPriorityUrgent TicketPriority = "URGENT"

	AudienceAll      Audience = "ALL"
	AudienceTalent   Audience = "TALENT"
	AudienceEmployer Audience = "EMPLOYER"

	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeCommission TransactionType = "COMMISSION"
	TransactionTypeJobFee     TransactionType = "JOB_FEE"

	TransactionStatusSuccessful TransactionStatus = "SUCCESSFUL"
	TransactionStatusPending    TransactionStatus = "PENDING"
	TransactionStatusFailed     TransactionStatus = "FAILED"

	PortfolioKindPhoto    PortfolioKind = "PHOTO"
	PortfolioKindVideo    PortfolioKind = "VIDEO"
	PortfolioKindAudio    PortfolioKind = "AUDIO"
	PortfolioKindDocument PortfolioKind = "DOCUMENT"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleTalent, UserRoleEmployer, UserRoleUser:
		return true
	}
	return false
}

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusDraft, JobStatusPending, JobStatusPublished, JobStatusRejected, JobStatusClosed:
		return true
	}
	return false
}

// IsModerationResult - админ может перевести вакансию только в эти статусы
func (s JobStatus) IsModerationResult() bool {
	return s == JobStatusPublished || s == JobStatusRejected
}

// IsOwnerSettable - статусы, которые работодатель выставляет сам
func (s JobStatus) IsOwnerSettable() bool {
	return s == JobStatusDraft || s == JobStatusPublished || s == JobStatusClosed
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusReviewing, ApplicationStatusShortlisted,
		ApplicationStatusInterview, ApplicationStatusHired, ApplicationStatusRejected:
		return true
	}
	return false
}

func (s PayoutStatus) IsValid() bool {
	switch s {
	case PayoutStatusPending, PayoutStatusApproved, PayoutStatusRejected:
		return true
	}
	return false
}

func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationStatusPending, VerificationStatusRejected, VerificationStatusApproved:
		return true
	}
	return false
}

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// IsFinal - тикет считается решенным
func (s TicketStatus) IsFinal() bool {
	return s == TicketStatusResolved || s == TicketStatusClosed
}

func (p TicketPriority) IsValid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

func (a Audience) IsValid() bool {
	switch a {
	case AudienceAll, AudienceTalent, AudienceEmployer:
		return true
	}
	return false
}

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeCommission, TransactionTypeJobFee:
		return true
	}
	return false
}

// IsRevenue - доход платформы, на кошелек пользователя не влияет
func (t TransactionType) IsRevenue() bool {
	return t == TransactionTypeCommission || t == TransactionTypeJobFee
}

func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusSuccessful, TransactionStatusPending, TransactionStatusFailed:
		return true
	}
	return false
}

func (k PortfolioKind) IsValid() bool {
	switch k {
	case PortfolioKindPhoto, PortfolioKindVideo, PortfolioKindAudio, PortfolioKindDocument:
		return true
	}
	return false
}
