package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bibbank/creditrisk/internal/domain/valueobject"
)

// Periods is the number of consecutive billing periods in a profile.
const Periods = 6

// Declared input bounds, inclusive.
const (
	LimitBalMin  = 0
	LimitBalMax  = 1_500_000
	AgeMin       = 18
	AgeMax       = 100
	PayStatusMin = -2
	PayStatusMax = 8
	BillAmtMin   = -1_000_000
	BillAmtMax   = 2_000_000
	PayAmtMin    = 0
	PayAmtMax    = 2_500_000
)

// PayStatusFields names the six repayment status inputs. The source data set
// has no PAY_1 column, so the sequence skips from 0 to 2.
var PayStatusFields = [Periods]string{"pay_0", "pay_2", "pay_3", "pay_4", "pay_5", "pay_6"}

// ProfileParams carries raw, unvalidated profile input.
type ProfileParams struct {
	LimitBal  decimal.Decimal
	Age       int
	Sex       int
	Education int
	Marriage  int
	PayStatus []int
	BillAmt   []decimal.Decimal
	PayAmt    []decimal.Decimal
}

// CustomerProfile is an immutable, validated credit profile.
type CustomerProfile struct {
	limitBal  decimal.Decimal
	age       int
	sex       valueobject.Sex
	education valueobject.Education
	marriage  valueobject.Marriage
	payStatus [Periods]int
	billAmt   [Periods]decimal.Decimal
	payAmt    [Periods]decimal.Decimal
}

// NewCustomerProfile validates every field against its declared domain.
// All violations are reported together in a *ValidationError.
func NewCustomerProfile(p ProfileParams) (*CustomerProfile, error) {
	verr := &ValidationError{}
	profile := &CustomerProfile{
		limitBal: p.LimitBal,
		age:      p.Age,
	}

	if !within(p.LimitBal, LimitBalMin, LimitBalMax) {
		verr.add("limit_bal", fmt.Sprintf("must be between %d and %d, got %s", LimitBalMin, LimitBalMax, p.LimitBal))
	}
	if p.Age < AgeMin || p.Age > AgeMax {
		verr.add("age", fmt.Sprintf("must be between %d and %d, got %d", AgeMin, AgeMax, p.Age))
	}

	var err error
	if profile.sex, err = valueobject.SexFromCode(p.Sex); err != nil {
		verr.add("sex", err.Error())
	}
	if profile.education, err = valueobject.EducationFromCode(p.Education); err != nil {
		verr.add("education", err.Error())
	}
	if profile.marriage, err = valueobject.MarriageFromCode(p.Marriage); err != nil {
		verr.add("marriage", err.Error())
	}

	if len(p.PayStatus) != Periods {
		verr.add("pay_status", fmt.Sprintf("expected %d values, got %d", Periods, len(p.PayStatus)))
	} else {
		for i, v := range p.PayStatus {
			if v < PayStatusMin || v > PayStatusMax {
				verr.add(PayStatusFields[i], fmt.Sprintf("must be between %d and %d, got %d", PayStatusMin, PayStatusMax, v))
			}
			profile.payStatus[i] = v
		}
	}

	if len(p.BillAmt) != Periods {
		verr.add("bill_amt", fmt.Sprintf("expected %d values, got %d", Periods, len(p.BillAmt)))
	} else {
		for i, v := range p.BillAmt {
			if !within(v, BillAmtMin, BillAmtMax) {
				verr.add(fmt.Sprintf("bill_amt%d", i+1), fmt.Sprintf("must be between %d and %d, got %s", BillAmtMin, BillAmtMax, v))
			}
			profile.billAmt[i] = v
		}
	}

	if len(p.PayAmt) != Periods {
		verr.add("pay_amt", fmt.Sprintf("expected %d values, got %d", Periods, len(p.PayAmt)))
	} else {
		for i, v := range p.PayAmt {
			if !within(v, PayAmtMin, PayAmtMax) {
				verr.add(fmt.Sprintf("pay_amt%d", i+1), fmt.Sprintf("must be between %d and %d, got %s", PayAmtMin, PayAmtMax, v))
			}
			profile.payAmt[i] = v
		}
	}

	if !verr.empty() {
		return nil, verr
	}
	return profile, nil
}

func within(v decimal.Decimal, lo, hi int64) bool {
	return !v.LessThan(decimal.NewFromInt(lo)) && !v.GreaterThan(decimal.NewFromInt(hi))
}

// TotalBill returns the sum of the six statement balances.
func (c *CustomerProfile) TotalBill() decimal.Decimal {
	return decimal.Sum(decimal.Zero, c.billAmt[:]...)
}

// TotalPayment returns the sum of the six payments.
func (c *CustomerProfile) TotalPayment() decimal.Decimal {
	return decimal.Sum(decimal.Zero, c.payAmt[:]...)
}

// Summary returns the human readable overview of the profile.
func (c *CustomerProfile) Summary() InputSummary {
	return InputSummary{
		CreditLimit:  c.limitBal,
		TotalBill:    c.TotalBill(),
		TotalPayment: c.TotalPayment(),
		Sex:          c.sex.Label(),
		Education:    c.education.Label(),
		Marriage:     c.marriage.Label(),
	}
}

// --- Accessors ---

func (c *CustomerProfile) LimitBal() decimal.Decimal         { return c.limitBal }
func (c *CustomerProfile) Age() int                          { return c.age }
func (c *CustomerProfile) Sex() valueobject.Sex              { return c.sex }
func (c *CustomerProfile) Education() valueobject.Education  { return c.education }
func (c *CustomerProfile) Marriage() valueobject.Marriage    { return c.marriage }
func (c *CustomerProfile) PayStatus() [Periods]int           { return c.payStatus }
func (c *CustomerProfile) BillAmt() [Periods]decimal.Decimal { return c.billAmt }
func (c *CustomerProfile) PayAmt() [Periods]decimal.Decimal  { return c.payAmt }

// InputSummary is the display overview of a profile.
type InputSummary struct {
	CreditLimit  decimal.Decimal
	TotalBill    decimal.Decimal
	TotalPayment decimal.Decimal
	Sex          string
	Education    string
	Marriage     string
}
