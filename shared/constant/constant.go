package constant

import (
	"time"
)

const (
	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

const (
	FieldCreatedAt   = "created_at"
	FieldLastUpdated = "last_updated"
	FieldRoomNumber  = "room_number"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat        = time.RFC3339
	BookingDateLayout = "02/01/2006"
	StorageDateLayout = "2006-01-02"
	BookingIDLayout   = "20060102"
)

const (
	PaymentStatusPaid    = "PAID"
	PaymentStatusDeposit = "DEPOSIT"
	PaymentStatusUnpaid  = "UNPAID"
)

const (
	CleaningStatusClean = "CLEAN"
	CleaningStatusDirty = "DIRTY"
)

const (
	BookingIDPrefix       = "BK"
	BookingIDSuffixLength = 6
)

const (
	CachePrefixRoom     = "room"
	CachePrefixBooking  = "booking"
	CachePrefixCleaning = "cleaning"
	CachePrefixBranding = "branding"
	CacheKeyAll         = "all"

	// CachePrefixGeneration holds one invalidation counter per prefix, outside that prefix's keyspace.
	CachePrefixGeneration = "generation"
)

const (
	SettingKeyLogoURL = "logo_url"
	LogoObjectPrefix  = "branding/logo"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderUserAgent          = "User-Agent"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorInternal             = "Internal Server Error"
	ResponseErrorNotFound             = "Not Found"
	ResponseErrorMethodNotAllowed     = "Method Not Allowed"
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
