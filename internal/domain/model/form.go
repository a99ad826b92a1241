package model

import (
	"fmt"
	"strings"

	"github.com/bibbank/creditrisk/internal/domain/valueobject"
)

// FieldOption is one choice of a categorical input.
type FieldOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// FieldSpec declares the bounds and default of one application form input.
type FieldSpec struct {
	Name    string        `json:"name"`
	Label   string        `json:"label"`
	Group   string        `json:"group"`
	Kind    string        `json:"kind"`
	Options []FieldOption `json:"options,omitempty"`
	Min     float64       `json:"min"`
	Max     float64       `json:"max"`
	Default float64       `json:"default"`
	Step    float64       `json:"step,omitempty"`
}

// Field kinds.
const (
	KindAmount  = "amount"
	KindInteger = "integer"
	KindSelect  = "select"
)

// Default values pre-filled in the application form.
const (
	DefaultLimitBal = 20_000
	DefaultAge      = 30
	amountStep      = 1_000
)

// FormFields returns every input of the application form in display order.
func FormFields() []FieldSpec {
	fields := []FieldSpec{
		{Name: "limit_bal", Label: "Credit Limit (LIMIT_BAL)", Group: "customer", Kind: KindAmount,
			Min: LimitBalMin, Max: LimitBalMax, Default: DefaultLimitBal, Step: amountStep},
		{Name: "age", Label: "Age", Group: "customer", Kind: KindInteger,
			Min: AgeMin, Max: AgeMax, Default: DefaultAge, Step: 1},
		selectField("sex", "Sex", []int{1, 2}, func(c int) string {
			s, _ := valueobject.SexFromCode(c)
			return fmt.Sprintf("%s (%d)", s.Label(), c)
		}),
		selectField("education", "Education Level", []int{0, 1, 2, 3, 4}, func(c int) string {
			e, _ := valueobject.EducationFromCode(c)
			return e.Label()
		}),
		selectField("marriage", "Marriage Status", []int{0, 1, 2, 3}, func(c int) string {
			m, _ := valueobject.MarriageFromCode(c)
			return m.Label()
		}),
	}

	for _, name := range PayStatusFields {
		fields = append(fields, FieldSpec{
			Name: name, Label: strings.ToUpper(name), Group: "repayment_status", Kind: KindInteger,
			Min: PayStatusMin, Max: PayStatusMax, Step: 1,
		})
	}
	for i := 1; i <= Periods; i++ {
		fields = append(fields, FieldSpec{
			Name: fmt.Sprintf("bill_amt%d", i), Label: fmt.Sprintf("BILL_AMT%d", i), Group: "bill_amounts",
			Kind: KindAmount, Min: BillAmtMin, Max: BillAmtMax, Step: amountStep,
		})
	}
	for i := 1; i <= Periods; i++ {
		fields = append(fields, FieldSpec{
			Name: fmt.Sprintf("pay_amt%d", i), Label: fmt.Sprintf("PAY_AMT%d", i), Group: "payment_amounts",
			Kind: KindAmount, Min: PayAmtMin, Max: PayAmtMax, Step: amountStep,
		})
	}
	return fields
}

// selectField defaults to the first option.
func selectField(name, label string, codes []int, labelOf func(int) string) FieldSpec {
	opts := make([]FieldOption, 0, len(codes))
	for _, c := range codes {
		opts = append(opts, FieldOption{Value: c, Label: labelOf(c)})
	}
	return FieldSpec{
		Name:    name,
		Label:   label,
		Group:   "customer",
		Kind:    KindSelect,
		Options: opts,
		Min:     float64(codes[0]),
		Max:     float64(codes[len(codes)-1]),
		Default: float64(codes[0]),
	}
}
