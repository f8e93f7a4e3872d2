package booking

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentPartial PaymentStatus = "partial"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentPartial:
		return true
	default:
		return false
	}
}

// PaymentPlan is the settlement method chosen at booking time. The checkout
// is sized to the plan's first charge; anything short of the full amount
// settles the booking as partial.
type PaymentPlan string

const (
	PlanFull    PaymentPlan = "full"
	PlanDeposit PaymentPlan = "deposit"
	// PlanInstallments is the "lipa mdogo mdogo" flexible-installment plan.
	PlanInstallments PaymentPlan = "lipa_mdogo_mdogo"
)

func (p PaymentPlan) String() string {
	return string(p)
}

func (p PaymentPlan) IsValid() bool {
	switch p {
	case PlanFull, PlanDeposit, PlanInstallments:
		return true
	default:
		return false
	}
}

func NewPaymentPlan(s string) (PaymentPlan, error) {
	p := PaymentPlan(s)
	if !p.IsValid() {
		return "", ErrInvalidPaymentPlan
	}
	return p, nil
}

// FirstChargeCents is the amount the external checkout is opened for:
// the full total, a 15% deposit, or the first of four installments.
func (p PaymentPlan) FirstChargeCents(totalCents int64) int64 {
	switch p {
	case PlanDeposit:
		return totalCents * 15 / 100
	case PlanInstallments:
		return totalCents / 4
	default:
		return totalCents
	}
}

// SettledStatus is the payment status a successful charge moves the booking
// to: paid for the full plan, partial for everything else.
func (p PaymentPlan) SettledStatus() PaymentStatus {
	if p == PlanFull {
		return PaymentPaid
	}
	return PaymentPartial
}
