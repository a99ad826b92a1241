package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	urfave "github.com/urfave/cli/v3"

	"github.com/bibbank/creditrisk/internal/application/dto"
	"github.com/bibbank/creditrisk/internal/domain/model"
)

var zeros = strings.TrimSuffix(strings.Repeat("0,", model.Periods), ",")

func profileFlags() []urfave.Flag {
	return []urfave.Flag{
		&urfave.StringFlag{Name: "limit-bal", Usage: "Credit limit", Value: strconv.Itoa(model.DefaultLimitBal)},
		&urfave.IntFlag{Name: "age", Usage: "Age in years", Value: model.DefaultAge},
		&urfave.IntFlag{Name: "sex", Usage: "1=Male, 2=Female", Value: 1},
		&urfave.IntFlag{Name: "education", Usage: "0=Unknown, 1=Graduate School, 2=University, 3=High School, 4=Others"},
		&urfave.IntFlag{Name: "marriage", Usage: "0=Unknown, 1=Married, 2=Single, 3=Others"},
		&urfave.StringFlag{Name: "pay-status", Usage: "Comma separated repayment status, most recent month first", Value: zeros},
		&urfave.StringFlag{Name: "bill-amt", Usage: "Comma separated bill amounts, most recent month first", Value: zeros},
		&urfave.StringFlag{Name: "pay-amt", Usage: "Comma separated payment amounts, most recent month first", Value: zeros},
	}
}

// profileFromFlags assembles the request; range checks are left to the domain.
func profileFromFlags(cmd *urfave.Command) (dto.PredictRequest, error) {
	limitBal, err := decimal.NewFromString(strings.TrimSpace(cmd.String("limit-bal")))
	if err != nil {
		return dto.PredictRequest{}, fmt.Errorf("--limit-bal: %q is not a number", cmd.String("limit-bal"))
	}
	payStatus, err := parseInts("pay-status", cmd.String("pay-status"))
	if err != nil {
		return dto.PredictRequest{}, err
	}
	billAmt, err := parseAmounts("bill-amt", cmd.String("bill-amt"))
	if err != nil {
		return dto.PredictRequest{}, err
	}
	payAmt, err := parseAmounts("pay-amt", cmd.String("pay-amt"))
	if err != nil {
		return dto.PredictRequest{}, err
	}

	return dto.PredictRequest{
		LimitBal:  limitBal,
		Age:       cmd.Int("age"),
		Sex:       cmd.Int("sex"),
		Education: cmd.Int("education"),
		Marriage:  cmd.Int("marriage"),
		PayStatus: payStatus,
		BillAmt:   billAmt,
		PayAmt:    payAmt,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseInts(flag, s string) ([]int, error) {
	parts := splitList(s)
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("--%s: item %d %q is not an integer", flag, i+1, p)
		}
		out[i] = v
	}
	return out, nil
}

func parseAmounts(flag, s string) ([]decimal.Decimal, error) {
	parts := splitList(s)
	out := make([]decimal.Decimal, len(parts))
	for i, p := range parts {
		d, err := decimal.NewFromString(p)
		if err != nil {
			return nil, fmt.Errorf("--%s: item %d %q is not a number", flag, i+1, p)
		}
		out[i] = d
	}
	return out, nil
}
