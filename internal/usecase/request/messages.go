package request

import (
	"encoding/json"
	"fmt"
	"strings"

	"loan-request-service/internal/domain/decision"
	domain "loan-request-service/internal/domain/request"
)

type stateChangedEvent struct {
	RequestID uint64 `json:"request_id"`
	State     string `json:"state"`
	Amount    string `json:"amount"`
}

func stateChangedMessage(l *domain.LoanRequest) (string, error) {
	b, err := json.Marshal(stateChangedEvent{
		RequestID: l.ID,
		State:     string(l.State),
		Amount:    l.Amount.StringFixed(2),
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// capacityMessage renders the outcome and the payment plan for the applicant.
func capacityMessage(requestID uint64, email string, r *decision.Result) string {
	var b strings.Builder
	if requestID != 0 {
		fmt.Fprintf(&b, "Loan request %d for %s: %s\n", requestID, email, r.Decision)
	} else {
		fmt.Fprintf(&b, "Loan request for %s: %s\n", email, r.Decision)
	}
	fmt.Fprintf(&b, "Monthly installment: %s\n", r.MonthlyInstallment.StringFixed(2))
	fmt.Fprintf(&b, "Available capacity: %s\n", r.AvailableCapacity.StringFixed(2))
	fmt.Fprintf(&b, "Current debt load: %s\n", r.DebtLoad.StringFixed(2))
	b.WriteString("Payment plan:\n")
	for _, p := range r.PaymentPlan {
		fmt.Fprintf(&b, "  #%d capital=%s interest=%s remaining=%s\n",
			p.Number,
			p.CapitalPayment.StringFixed(2),
			p.InterestPayment.StringFixed(2),
			p.RemainingBalance.StringFixed(2))
	}
	return b.String()
}
