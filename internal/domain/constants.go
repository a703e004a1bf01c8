package domain

const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)

const (
	InterestPending  = 0
	InterestAccepted = 1
)

const (
	SegmentAll         = "all"
	SegmentRecommended = "recommended"
	SegmentNewlyJoined = "newly_joined"
)

const (
	LookingForMale   = 1
	LookingForFemale = 2
)

const (
	TicketOpen   = "OPEN"
	TicketClosed = "CLOSED"
)

const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
)

// Unlimited is the sentinel for a credit counter with no cap.
const Unlimited = -1

// DefaultPlanName is shown for members without a purchased package.
const DefaultPlanName = "FREE MATCH"

// RegistrationSteps is the number of profile sections (completed or skipped)
// required before profile_complete is set.
const RegistrationSteps = 6

// NewlyJoinedDays is the registration window for the newly_joined segment.
const NewlyJoinedDays = 15
