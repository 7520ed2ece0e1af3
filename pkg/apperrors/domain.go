package apperrors

import "net/http"

/*
Предопределенные ошибки домена маркетплейса.
Сервисы возвращают их напрямую, хендлеры превращают в {"error": Message}.
*/

// --- Auth & User Status ---

var ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)

var ErrInvalidToken = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)

var ErrEmailAlreadyExists = New(CodeAlreadyExists, "auth", "Email already in use", http.StatusConflict)

// ErrUserSuspended - сообщение читает страница логина, поэтому оно ровно "Suspended"
var ErrUserSuspended = New(CodeSuspended, "auth", SuspendedMessage, http.StatusForbidden)

var ErrInvalidUserRole = New(CodeInvalidOperation, "auth", "Invalid user role for this operation", http.StatusBadRequest)

var ErrInsufficientPermissions = New(CodeForbidden, "auth", "Insufficient permissions", http.StatusForbidden)

var ErrCannotModifySelf = New(CodeForbidden, "admin", "Operation on self is not allowed", http.StatusForbidden)

var ErrUserNotFound = New(CodeNotFound, "user", "User not found", http.StatusNotFound)

// --- Profiles ---

var ErrProfileNotFound = New(CodeNotFound, "profile", "Profile not found", http.StatusNotFound)

var ErrPortfolioItemNotFound = New(CodeNotFound, "profile", "Portfolio item not found", http.StatusNotFound)

var ErrCreditNotFound = New(CodeNotFound, "profile", "Credit not found", http.StatusNotFound)

// --- Jobs ---

var ErrJobNotFound = New(CodeNotFound, "job", "Job not found", http.StatusNotFound)

var ErrJobNotOpen = New(CodeInvalidStatus, "job", "Job is not open for applications", http.StatusConflict)

var ErrInvalidAgeRange = New(CodeValidationFailed, "job", "Minimum age cannot be greater than maximum age", http.StatusBadRequest)

var ErrInvalidModerationStatus = New(CodeInvalidStatus, "job", "Moderation can only publish or reject a job", http.StatusBadRequest)

var ErrOwnerStatusNotAllowed = New(CodeInvalidStatus, "job", "Job status can only be set to DRAFT, PUBLISHED or CLOSED", http.StatusBadRequest)

// --- Applications ---

var ErrApplicationNotFound = New(CodeNotFound, "application", "Application not found", http.StatusNotFound)

var ErrAlreadyApplied = New(CodeAlreadyExists, "application", "You have already applied for this job", http.StatusConflict)

// ErrApplicationsNotOwned - часть ID в bulk-запросе не существует или чужая
var ErrApplicationsNotOwned = New(CodeForbidden, "application", "Some applications were not found or do not belong to you", http.StatusForbidden)

// --- Favorites & Shortlists ---

var ErrShortlistNotFound = New(CodeNotFound, "shortlist", "Shortlist not found", http.StatusNotFound)

var ErrAlreadyInShortlist = New(CodeAlreadyExists, "shortlist", "Talent is already in this shortlist", http.StatusConflict)

// --- Wallet & Payouts ---

var ErrInvalidAmount = New(CodeValidationFailed, "payout", "Amount must be greater than zero", http.StatusBadRequest)

var ErrInsufficientBalance = New(CodeInsufficientFund, "payout", "Insufficient balance", http.StatusConflict)

var ErrPayoutNotFound = New(CodeNotFound, "payout", "Payout request not found", http.StatusNotFound)

var ErrPayoutAlreadyProcessed = New(CodeInvalidStatus, "payout", "Payout request has already been processed", http.StatusConflict)

var ErrReasonRequired = New(CodeValidationFailed, "validation", "A reason is required", http.StatusBadRequest)

// --- Verification ---

var ErrAlreadyVerified = New(CodeInvalidStatus, "verification", "Account is already verified", http.StatusConflict)

var ErrVerificationPending = New(CodeInvalidStatus, "verification", "A verification request is already pending", http.StatusConflict)

var ErrVerificationNotFound = New(CodeNotFound, "verification", "Verification request not found", http.StatusNotFound)

var ErrVerificationResolved = New(CodeInvalidStatus, "verification", "Verification request has already been resolved", http.StatusConflict)

// --- Support & Content ---

var ErrTicketNotFound = New(CodeNotFound, "support", "Ticket not found", http.StatusNotFound)

var ErrContentNotFound = New(CodeNotFound, "content", "Content not found", http.StatusNotFound)

var ErrSlugTaken = New(CodeAlreadyExists, "content", "Slug is already in use", http.StatusConflict)
