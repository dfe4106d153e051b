package loan

import (
	"math"
	"time"

	"gorm.io/gorm"

	"koperasi-backend/internal/domain/errs"
)

type State string

const (
	StatePendingReview State = "pending_review"
	StateNegotiating   State = "negotiating"
	StateActive        State = "active"
	StateRejected      State = "rejected"
	StateSettled       State = "settled"
)

type Event string

const (
	EventApprove Event = "approve"
	EventReject  Event = "reject"
	EventCounter Event = "counter_offer"
	EventSettle  Event = "settle"
)

// AllowedTenures is the fixed set of repayment periods an application may use.
var AllowedTenures = []int{6, 12, 18, 24, 36}

func ValidTenure(t int) bool {
	for _, v := range AllowedTenures {
		if t == v {
			return true
		}
	}
	return false
}

// transitions is the single source of truth for the lifecycle. Every status
// write goes through Transition; call sites never set State directly.
var transitions = map[State]map[Event]State{
	StatePendingReview: {
		EventApprove: StateActive,
		EventReject:  StateRejected,
		EventCounter: StateNegotiating,
	},
	StateNegotiating: {
		EventApprove: StateActive,
		EventReject:  StateRejected,
		EventCounter: StateNegotiating,
	},
	StateActive: {
		EventSettle: StateSettled,
	},
}

// Next returns the state reached by applying ev in from, or false when the
// lifecycle forbids it.
func Next(from State, ev Event) (State, bool) {
	to, ok := transitions[from][ev]
	return to, ok
}

// Installment computes the flat-rate monthly installment for principal p,
// tenure t periods and periodic rate r percent: ceil(p/t + p*r/100).
// Flat rate means interest is charged on the original principal each period,
// not on a declining balance.
func Installment(p int64, t int, r float64) int64 {
	if p <= 0 || t < 1 {
		return 0
	}
	return int64(math.Ceil(float64(p)/float64(t) + float64(p)*r/100))
}

// Loan is mutated only by the loan usecase; ProposedAmount keeps the
// previously agreed amount while a counter-offer is on the table.
type Loan struct {
	ID                 uint64         `gorm:"primaryKey;column:id" json:"-"`
	LoanID             string         `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	MemberID           string         `gorm:"size:32;index" json:"member_id"`
	MemberName         string         `gorm:"size:128;index:idx_loans_member_name" json:"member_name"`
	MemberEmail        string         `gorm:"size:128" json:"member_email,omitempty"`
	MemberPhone        string         `gorm:"size:32" json:"member_phone"`
	KTPNumber          string         `gorm:"size:16;column:ktp_number" json:"ktp_number"`
	Amount             int64          `gorm:"not null" json:"amount"`
	ProposedAmount     *int64         `gorm:"column:proposed_amount" json:"proposed_amount,omitempty"`
	InterestRate       float64        `gorm:"type:decimal(6,4)" json:"interest_rate"`
	TenureMonths       int            `gorm:"not null" json:"tenure_months"`
	MonthlyInstallment int64          `gorm:"not null" json:"monthly_installment"`
	State              State          `gorm:"size:16;default:'pending_review'" json:"state"`
	StateUpdatedAt     time.Time      `gorm:"autoCreateTime" json:"state_updated_at"`
	StartDate          time.Time      `gorm:"type:date" json:"start_date"`
	Notes              string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Transition applies ev, updating State and StateUpdatedAt together. A
// forbidden event leaves the loan untouched and reports the violation.
func (l *Loan) Transition(ev Event) error {
	to, ok := Next(l.State, ev)
	if !ok {
		return &errs.InvalidTransitionError{From: string(l.State), Attempted: string(ev)}
	}
	l.State = to
	l.StateUpdatedAt = time.Now().UTC()
	return nil
}

// CounterOffer moves the loan into negotiation: the current amount is kept as
// the audit trail in ProposedAmount, the amount becomes newAmount and the
// installment is recomputed with the loan's existing rate and tenure. Amount
// and installment always change together.
func (l *Loan) CounterOffer(newAmount int64) error {
	if newAmount <= 0 {
		return errs.NewValidation("amount")
	}
	prior := l.Amount
	if err := l.Transition(EventCounter); err != nil {
		return err
	}
	l.ProposedAmount = &prior
	l.Amount = newAmount
	l.MonthlyInstallment = Installment(newAmount, l.TenureMonths, l.InterestRate)
	return nil
}
